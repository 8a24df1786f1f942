package services

import (
	"context"
	"strings"

	"paju/commands"
	"paju/constants"
	"paju/display"
	"paju/dto"
	"paju/models"
	"paju/services/notification"
)

// HoursService quản lý giờ mở cửa
type HoursService struct {
	base
}

func NewHoursService(deps Deps) *HoursService {
	return &HoursService{base: base{deps.withDefaults()}}
}

// List trả về 7 ngày Monday -> Sunday
func (s *HoursService) List(ctx context.Context) ([]models.RestaurantHours, error) {
	days, err := readThrough(ctx, s.Cache, s.Logger, constants.CacheKeyHours, s.CacheTTL, func() ([]models.RestaurantHours, error) {
		return s.Store.Hours.List(ctx)
	})
	return days, s.storeError("list hours", err)
}

// Display gộp các ngày liên tiếp có cùng lịch
func (s *HoursService) Display(ctx context.Context) (*dto.HoursDisplay, error) {
	days, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.HoursDisplay{Groups: display.GroupDays(days)}, nil
}

// applyTime: nil giữ nguyên, chuỗi rỗng xóa giờ
func applyTime(dst **string, v *string) {
	if v == nil {
		return
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		*dst = nil
		return
	}
	*dst = &t
}

func applyBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Update cập nhật từng phần giờ của một ngày
func (s *HoursService) Update(ctx context.Context, id uint, in dto.UpdateHoursInput) (*models.RestaurantHours, error) {
	day, err := s.Store.Hours.Get(ctx, id)
	if err != nil {
		return nil, s.storeError("load hours", err)
	}

	applyBool(&day.IsClosed, in.IsClosed)
	applyBool(&day.IsBreakfastService, in.IsBreakfastService)
	applyTime(&day.BreakfastOpenTime, in.BreakfastOpenTime)
	applyTime(&day.BreakfastCloseTime, in.BreakfastCloseTime)
	applyBool(&day.IsLunchService, in.IsLunchService)
	applyTime(&day.LunchOpenTime, in.LunchOpenTime)
	applyTime(&day.LunchCloseTime, in.LunchCloseTime)
	applyBool(&day.IsDinnerService, in.IsDinnerService)
	applyTime(&day.DinnerOpenTime, in.DinnerOpenTime)
	applyTime(&day.DinnerCloseTime, in.DinnerCloseTime)

	event := notification.NewMessageBuilder(notification.TypeHours, notification.ActionUpdated).WithID(day.ID).Build()
	if err := s.run(ctx, commands.NewUpdateHoursCommand(s.Store.Hours, day), event, constants.CacheKeyHours); err != nil {
		return nil, s.storeError("update hours", err)
	}
	return day, nil
}
