package services

import (
	"context"
	stderrors "errors"
	"time"

	"paju/commands"
	"paju/errors"
	"paju/repository"
	"paju/services/logger"
	"paju/services/notification"
)

// DefaultCacheTTL là thời gian cache mặc định cho dữ liệu public
const DefaultCacheTTL = 10 * time.Minute

// Deps là các phụ thuộc dùng chung của các service nội dung
type Deps struct {
	Store    *repository.Store
	Cache    Cache
	Notifier notification.Service
	Logger   logger.Logger
	CacheTTL time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Cache == nil {
		d.Cache = NoopCache{}
	}
	if d.Notifier == nil {
		d.Notifier = notification.Nop{}
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	if d.CacheTTL <= 0 {
		d.CacheTTL = DefaultCacheTTL
	}
	return d
}

// base gom phần chạy command, xóa cache và phát sự kiện
type base struct {
	Deps
}

// run chạy command, xóa các cache key liên quan rồi báo cho client
func (b *base) run(ctx context.Context, cmd commands.Command, event notification.Event, keys ...string) error {
	if err := cmd.Execute(ctx); err != nil {
		return err
	}
	b.after(ctx, event, keys...)
	return nil
}

// after xử lý sau khi ghi thành công
func (b *base) after(ctx context.Context, event notification.Event, keys ...string) {
	invalidate(ctx, b.Cache, b.Logger, keys...)
	if err := b.Notifier.Publish(event); err != nil {
		b.Logger.Debug("publish %s/%s: %v", event.Type, event.Action, err)
	}
	b.Logger.Info("%s %s id=%d", event.Type, event.Action, event.ID)
}

// storeError bọc lỗi repository thành AppError, giữ ErrNotFound/ErrDuplicate để controller map status
func (b *base) storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, repository.ErrInvalidMenuType) {
		return errors.NewAppError(errors.ErrCodeInvalidMenu, "Menu type must be breakfast, lunch or dinner", err)
	}
	if errors.IsAppError(err) || stderrors.Is(err, repository.ErrNotFound) || stderrors.Is(err, repository.ErrDuplicate) {
		return err
	}
	b.Logger.Error("%s: %v", op, err)
	return errors.NewAppError(errors.ErrCodeDBError, "Could not "+op, err)
}
