package services

import (
	"context"
	stderrors "errors"
	"os"
	"path"

	"paju/dto"
	"paju/errors"
	"paju/services/notification"
	"paju/storage"
)

// Trạng thái của từng món khi chuyển ảnh
const (
	MigrateMigrated = "migrated"
	MigrateSkipped  = "skipped"
	MigrateMissing  = "missing"
	MigrateFailed   = "failed"
)

// MigrateLocalImages đưa ảnh của các món còn trỏ vào thư mục uploads local
// lên backend ảnh hiện tại rồi ghi lại imageUrl. Lỗi của từng món chỉ nằm trong report,
// file local được giữ nguyên.
func (s *MenuService) MigrateLocalImages(ctx context.Context, source *storage.LocalStorage) (*dto.MigrateUploadsReport, error) {
	if s.images == nil || source == nil {
		return nil, errors.NewAppError(errors.ErrCodeStorage, "Image storage is not configured", nil)
	}
	items, err := s.Store.Items.List(ctx, nil)
	if err != nil {
		return nil, s.storeError("list menu items", err)
	}

	report := &dto.MigrateUploadsReport{Checked: len(items), Results: []dto.MigrateUploadResult{}}
	sameBackend := s.images.Name() == source.Name()

	for i := range items {
		item := &items[i]
		if !source.Owns(item.ImageURL) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.ToMigrate++
		res := dto.MigrateUploadResult{ID: item.ID, From: item.ImageURL}

		if sameBackend {
			res.Status, res.Reason = MigrateSkipped, "Image storage is already local"
			report.Results = append(report.Results, res)
			continue
		}

		data, err := source.Read(item.ImageURL)
		if err != nil {
			res.Status, res.Reason = MigrateFailed, err.Error()
			if stderrors.Is(err, os.ErrNotExist) {
				res.Status, res.Reason = MigrateMissing, "Local file not found"
			}
			report.Results = append(report.Results, res)
			continue
		}

		uploaded, err := s.images.Upload(ctx, storage.GenerateFilename(path.Base(item.ImageURL), ""), data)
		if err != nil {
			s.Logger.Error("migrate image of item %d to %s: %v", item.ID, s.images.Name(), err)
			res.Status, res.Reason = MigrateFailed, "Upload failed: "+err.Error()
			report.Results = append(report.Results, res)
			continue
		}

		item.ImageURL = uploaded.URL
		if err := s.Store.Items.Update(ctx, item); err != nil {
			s.Logger.Error("save migrated image of item %d: %v", item.ID, err)
			s.deleteImage(ctx, uploaded.URL)
			res.Status, res.Reason = MigrateFailed, "Update failed: "+err.Error()
			report.Results = append(report.Results, res)
			continue
		}
		res.Status, res.To = MigrateMigrated, uploaded.URL
		report.Migrated++
		report.Results = append(report.Results, res)
	}

	s.Logger.Info("migrated %d/%d local images to %s", report.Migrated, report.ToMigrate, s.images.Name())
	if report.Migrated > 0 {
		s.after(ctx, notification.NewMessageBuilder(notification.TypeMenuItem, notification.ActionUpdated).
			WithPayload(map[string]interface{}{"migratedImages": report.Migrated}).Build(), menuCacheKeys...)
	}
	return report, nil
}
