package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"paju/services/logger"
)

// AnnouncementRefresher tính lại danh sách thông báo đang hiệu lực
type AnnouncementRefresher interface {
	RefreshActive(ctx context.Context) (bool, error)
}

// InitCronJobs đăng ký các cron job và khởi động scheduler
func InitCronJobs(c *cron.Cron, spec string, refresher AnnouncementRefresher, log logger.Logger) error {
	// thông báo có start/end date tự bật tắt theo thời gian, không có request ghi nào xóa cache
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		changed, err := refresher.RefreshActive(ctx)
		if err != nil {
			log.Error("refresh active announcements: %v", err)
			return
		}
		if changed {
			log.Debug("active announcements refreshed")
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("cron jobs initialized, announcement refresh %q", spec)
	return nil
}
