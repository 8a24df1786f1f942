package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"

	"paju/constants"
	"paju/errors"
	"paju/models"
)

var hhmmRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// RegisterBindings đăng ký các rule riêng cho gin binding
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("hhmm", func(fl playground.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || IsValidTime(s)
	})
}

// IsValidTime kiểm tra chuỗi "HH:MM" 24h
func IsValidTime(s string) bool {
	return hhmmRegex.MatchString(s)
}

// ValidateHours validate giờ mở cửa của một ngày
func ValidateHours(h *models.RestaurantHours) error {
	if constants.WeekdayIndex(h.DayOfWeek) < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid day of week: "+h.DayOfWeek, nil)
	}

	for _, m := range constants.MenuTypes {
		w := h.Service(m)
		for _, t := range []*string{w.Open, w.Close} {
			if t == nil {
				continue
			}
			if s := strings.TrimSpace(*t); s != "" && !IsValidTime(s) {
				return errors.NewAppError(errors.ErrCodeInvalidFormat, m.Label()+" time must be HH:MM", nil)
			}
		}
	}
	return nil
}

// ValidateMenuItem validate món ăn trước khi lưu
func ValidateMenuItem(item *models.MenuItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Title is required", nil)
	}
	if strings.TrimSpace(item.Category) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Category is required", nil)
	}
	if !item.MenuType.Valid() {
		return errors.NewAppError(errors.ErrCodeInvalidMenu, "Menu type must be breakfast, lunch or dinner", nil)
	}
	if item.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Price cannot be negative", nil)
	}
	return nil
}

// ValidateCategory validate danh mục
func ValidateCategory(c *models.MenuCategory) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name is required", nil)
	}
	if !c.MenuType.Valid() {
		return errors.NewAppError(errors.ErrCodeInvalidMenu, "Menu type must be breakfast, lunch or dinner", nil)
	}
	return nil
}

// ValidateAnnouncement validate thông báo
func ValidateAnnouncement(a *models.Announcement) error {
	if strings.TrimSpace(a.Title) == "" || strings.TrimSpace(a.Message) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Title and message are required", nil)
	}
	if !constants.ValidPriority(a.Priority) {
		return errors.NewAppError(errors.ErrCodeValidation, "Priority must be low, medium, or high", nil)
	}
	if a.StartDate != nil && a.EndDate != nil && a.EndDate.Before(*a.StartDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "End date must be after start date", nil)
	}
	return nil
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if len(strings.TrimSpace(user.Username)) < 3 {
		return errors.NewAppError(errors.ErrCodeValidation, "Username must be at least 3 characters", nil)
	}
	if !constants.ValidRole(user.Role) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role must be admin or editor", nil)
	}
	return nil
}

// ValidatePassword kiểm tra độ dài mật khẩu
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}
	return nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// ParseDate đọc ngày từ form CMS. Chuỗi rỗng trả về nil
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid date: "+s, nil)
}
