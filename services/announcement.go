package services

import (
	"context"
	"reflect"
	"strings"
	"time"

	"paju/constants"
	"paju/dto"
	"paju/errors"
	"paju/models"
	"paju/services/notification"
	"paju/validator"
)

// activeTTL ngắn vì danh sách phụ thuộc thời gian, cron làm mới mỗi phút
const activeTTL = 2 * time.Minute

// AnnouncementService quản lý thông báo trên banner
type AnnouncementService struct {
	base
	now func() time.Time
}

func NewAnnouncementService(deps Deps) *AnnouncementService {
	return &AnnouncementService{base: base{deps.withDefaults()}, now: time.Now}
}

func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	list, err := s.Store.Announcements.List(ctx)
	return list, s.storeError("list announcements", err)
}

// Active trả về thông báo đang hiệu lực, priority cao trước rồi mới nhất trước
func (s *AnnouncementService) Active(ctx context.Context) ([]models.Announcement, error) {
	list, err := readThrough(ctx, s.Cache, s.Logger, constants.CacheKeyActiveAnnouncements, activeTTL, func() ([]models.Announcement, error) {
		return s.Store.Announcements.ListActive(ctx, s.now())
	})
	return list, s.storeError("list active announcements", err)
}

// RefreshActive tính lại danh sách đang hiệu lực; nếu khác cache thì ghi đè và báo client.
// Trả về true khi danh sách thay đổi.
func (s *AnnouncementService) RefreshActive(ctx context.Context) (bool, error) {
	fresh, err := s.Store.Announcements.ListActive(ctx, s.now())
	if err != nil {
		return false, s.storeError("refresh active announcements", err)
	}

	var cached []models.Announcement
	hit, err := s.Cache.Get(ctx, constants.CacheKeyActiveAnnouncements, &cached)
	if err != nil {
		s.Logger.Error("cache get %s: %v", constants.CacheKeyActiveAnnouncements, err)
	}
	changed := !hit || !sameIDs(cached, fresh)

	if err := s.Cache.Set(ctx, constants.CacheKeyActiveAnnouncements, fresh, activeTTL); err != nil {
		s.Logger.Error("cache set %s: %v", constants.CacheKeyActiveAnnouncements, err)
	}
	if changed && hit {
		event := notification.NewMessageBuilder(notification.TypeAnnouncement, notification.ActionRefreshed).WithPayload(fresh).Build()
		if err := s.Notifier.Publish(event); err != nil {
			s.Logger.Debug("publish announcement refresh: %v", err)
		}
		s.Logger.Info("active announcements changed: %d active", len(fresh))
	}
	return changed, nil
}

func sameIDs(a, b []models.Announcement) bool {
	ids := func(list []models.Announcement) []uint {
		out := make([]uint, 0, len(list))
		for _, x := range list {
			out = append(out, x.ID)
		}
		return out
	}
	return reflect.DeepEqual(ids(a), ids(b))
}

// apply ghi các field có trong input vào a
func applyAnnouncement(a *models.Announcement, in dto.AnnouncementInput) error {
	if in.Title != nil {
		a.Title = strings.TrimSpace(*in.Title)
	}
	if in.Message != nil {
		a.Message = strings.TrimSpace(*in.Message)
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	if in.Priority != nil {
		a.Priority = *in.Priority
	}
	if in.StartDate != nil {
		d, err := validator.ParseDate(*in.StartDate)
		if err != nil {
			return err
		}
		a.StartDate = d
	}
	if in.EndDate != nil {
		d, err := validator.ParseDate(*in.EndDate)
		if err != nil {
			return err
		}
		a.EndDate = d
	}
	return validator.ValidateAnnouncement(a)
}

func (s *AnnouncementService) Create(ctx context.Context, in dto.AnnouncementInput) (*models.Announcement, error) {
	a := &models.Announcement{IsActive: true, Priority: constants.PriorityMedium}
	if err := applyAnnouncement(a, in); err != nil {
		return nil, err
	}
	if err := s.Store.Announcements.Create(ctx, a); err != nil {
		return nil, s.storeError("create announcement", err)
	}
	s.after(ctx, notification.NewMessageBuilder(notification.TypeAnnouncement, notification.ActionCreated).WithID(a.ID).Build(), constants.CacheKeyActiveAnnouncements)
	return a, nil
}

func (s *AnnouncementService) Update(ctx context.Context, id uint, in dto.AnnouncementInput) (*models.Announcement, error) {
	a, err := s.Store.Announcements.Get(ctx, id)
	if err != nil {
		return nil, s.storeError("load announcement", err)
	}
	if err := applyAnnouncement(a, in); err != nil {
		return nil, err
	}
	if err := s.Store.Announcements.Update(ctx, a); err != nil {
		return nil, s.storeError("update announcement", err)
	}
	s.after(ctx, notification.NewMessageBuilder(notification.TypeAnnouncement, notification.ActionUpdated).WithID(a.ID).Build(), constants.CacheKeyActiveAnnouncements)
	return a, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Announcement id is required", nil)
	}
	if err := s.Store.Announcements.Delete(ctx, id); err != nil {
		return s.storeError("delete announcement", err)
	}
	s.after(ctx, notification.NewMessageBuilder(notification.TypeAnnouncement, notification.ActionDeleted).WithID(id).Build(), constants.CacheKeyActiveAnnouncements)
	return nil
}
