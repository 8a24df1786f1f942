// Package repository holds the persistence contracts and the two backends
// that satisfy them: an in-process memory store for development and a gorm
// store for postgres or sqlite. The backend is picked once when the Store is
// built; callers never branch on it.
package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"paju/constants"
	"paju/models"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("record already exists")
	ErrInvalidMenuType = errors.New("invalid menu type")
)

type MenuItemRepository interface {
	// List trả về món ăn theo display_order, id. menuType nil là tất cả
	List(ctx context.Context, menuType *constants.MenuType) ([]models.MenuItem, error)
	Get(ctx context.Context, id uint) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, item *models.MenuItem) error
	// Delete trả về bản ghi đã xóa để xử lý ảnh đi kèm
	Delete(ctx context.Context, id uint) (*models.MenuItem, error)
	// Reorder gán display_order = vị trí + 1 cho các id thuộc (menuType, category)
	Reorder(ctx context.Context, menuType constants.MenuType, category string, ids []uint) ([]models.MenuItem, error)
}

type CategoryRepository interface {
	List(ctx context.Context, menuType *constants.MenuType) ([]models.MenuCategory, error)
	Get(ctx context.Context, id uint) (*models.MenuCategory, error)
	Create(ctx context.Context, category *models.MenuCategory) error
	Update(ctx context.Context, category *models.MenuCategory) error
	Delete(ctx context.Context, id uint) (*models.MenuCategory, error)
	Reorder(ctx context.Context, menuType constants.MenuType, ids []uint) ([]models.MenuCategory, error)
}

type MenuStatusRepository interface {
	List(ctx context.Context) ([]models.MenuStatus, error)
	// Set bật/tắt một menu type và trả về toàn bộ trạng thái
	Set(ctx context.Context, menuType constants.MenuType, enabled bool) ([]models.MenuStatus, error)
}

type HoursRepository interface {
	// List trả về 7 ngày theo thứ tự Monday -> Sunday
	List(ctx context.Context) ([]models.RestaurantHours, error)
	Get(ctx context.Context, id uint) (*models.RestaurantHours, error)
	Create(ctx context.Context, hours *models.RestaurantHours) error
	Update(ctx context.Context, hours *models.RestaurantHours) error
	Count(ctx context.Context) (int64, error)
}

type AnnouncementRepository interface {
	List(ctx context.Context) ([]models.Announcement, error)
	// ListActive trả về thông báo đang hiệu lực tại now, priority cao trước rồi mới nhất trước
	ListActive(ctx context.Context, now time.Time) ([]models.Announcement, error)
	Get(ctx context.Context, id uint) (*models.Announcement, error)
	Create(ctx context.Context, a *models.Announcement) error
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id uint) error
}

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// Store gom tất cả repository của một backend
type Store struct {
	Items         MenuItemRepository
	Categories    CategoryRepository
	MenuStatus    MenuStatusRepository
	Hours         HoursRepository
	Announcements AnnouncementRepository
	Users         UserRepository

	// Backend là tên backend, chỉ dùng cho log và healthz
	Backend string
	// Ping kiểm tra kết nối, nil với memory store
	Ping func(ctx context.Context) error
	// Close giải phóng kết nối
	Close func() error
}

// Healthy kiểm tra backend còn phản hồi
func (s *Store) Healthy(ctx context.Context) error {
	if s.Ping == nil {
		return nil
	}
	return s.Ping(ctx)
}

// sortWeek sắp xếp Monday -> Sunday, ngày không hợp lệ xếp cuối
func sortWeek(days []models.RestaurantHours) {
	sort.SliceStable(days, func(i, j int) bool {
		return weekRank(days[i].DayOfWeek) < weekRank(days[j].DayOfWeek)
	})
}

func weekRank(day string) int {
	if i := constants.WeekdayIndex(day); i >= 0 {
		return i
	}
	return len(constants.Weekdays)
}

// sortNewest sắp xếp created_at giảm dần
func sortNewest(list []models.Announcement) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
}

// lessActive so sánh theo priority giảm dần rồi created_at giảm dần
func lessActive(a, b models.Announcement) bool {
	ra, rb := constants.PriorityRank(a.Priority), constants.PriorityRank(b.Priority)
	if ra != rb {
		return ra > rb
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
