package models

import (
	"time"

	"paju/constants"
)

// RestaurantHours là giờ mở cửa của một ngày trong tuần.
// Giờ của từng service là nullable, định dạng "HH:MM" 24h.
type RestaurantHours struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	DayOfWeek          string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"dayOfWeek"`
	IsClosed           bool      `gorm:"default:false" json:"isClosed"`
	IsBreakfastService bool      `gorm:"default:false" json:"isBreakfastService"`
	BreakfastOpenTime  *string   `gorm:"type:varchar(5)" json:"breakfastOpenTime,omitempty"`
	BreakfastCloseTime *string   `gorm:"type:varchar(5)" json:"breakfastCloseTime,omitempty"`
	IsLunchService     bool      `gorm:"default:false" json:"isLunchService"`
	LunchOpenTime      *string   `gorm:"type:varchar(5)" json:"lunchOpenTime,omitempty"`
	LunchCloseTime     *string   `gorm:"type:varchar(5)" json:"lunchCloseTime,omitempty"`
	IsDinnerService    bool      `gorm:"default:false" json:"isDinnerService"`
	DinnerOpenTime     *string   `gorm:"type:varchar(5)" json:"dinnerOpenTime,omitempty"`
	DinnerCloseTime    *string   `gorm:"type:varchar(5)" json:"dinnerCloseTime,omitempty"`
	OpenTime           string    `gorm:"type:varchar(5);default:'09:00'" json:"openTime"`
	CloseTime          string    `gorm:"type:varchar(5);default:'17:00'" json:"closeTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ServiceWindow là cờ và khung giờ của một service trong ngày
type ServiceWindow struct {
	Enabled bool
	Open    *string
	Close   *string
}

// Service trả về khung giờ của service tương ứng
func (h *RestaurantHours) Service(m constants.MenuType) ServiceWindow {
	switch m {
	case constants.MenuBreakfast:
		return ServiceWindow{h.IsBreakfastService, h.BreakfastOpenTime, h.BreakfastCloseTime}
	case constants.MenuLunch:
		return ServiceWindow{h.IsLunchService, h.LunchOpenTime, h.LunchCloseTime}
	case constants.MenuDinner:
		return ServiceWindow{h.IsDinnerService, h.DinnerOpenTime, h.DinnerCloseTime}
	}
	return ServiceWindow{}
}

// SetService ghi đè khung giờ của một service
func (h *RestaurantHours) SetService(m constants.MenuType, w ServiceWindow) {
	switch m {
	case constants.MenuBreakfast:
		h.IsBreakfastService, h.BreakfastOpenTime, h.BreakfastCloseTime = w.Enabled, w.Open, w.Close
	case constants.MenuLunch:
		h.IsLunchService, h.LunchOpenTime, h.LunchCloseTime = w.Enabled, w.Open, w.Close
	case constants.MenuDinner:
		h.IsDinnerService, h.DinnerOpenTime, h.DinnerCloseTime = w.Enabled, w.Open, w.Close
	}
}

// Clone copy cả các con trỏ giờ để bản sao không dùng chung bộ nhớ
func (h RestaurantHours) Clone() RestaurantHours {
	out := h
	for _, m := range constants.MenuTypes {
		w := h.Service(m)
		out.SetService(m, ServiceWindow{Enabled: w.Enabled, Open: cloneString(w.Open), Close: cloneString(w.Close)})
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
