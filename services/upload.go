package services

import (
	"context"

	"paju/dto"
	"paju/errors"
	"paju/services/logger"
	"paju/storage"
)

// UploadService kiểm tra và lưu ảnh món ăn
type UploadService struct {
	images storage.ImageStorage
	logger logger.Logger
}

func NewUploadService(images storage.ImageStorage, log logger.Logger) *UploadService {
	if log == nil {
		log = logger.Nop()
	}
	return &UploadService{images: images, logger: log}
}

func (s *UploadService) Backend() string {
	return s.images.Name()
}

// Upload nhận nội dung file gốc, đặt lại tên rồi lưu
func (s *UploadService) Upload(ctx context.Context, originalName string, data []byte) (*dto.UploadResult, error) {
	mime, ext, err := storage.ValidateImage(data)
	if err != nil {
		return nil, err
	}
	filename := storage.GenerateFilename(originalName, ext)
	res, err := s.images.Upload(ctx, filename, data)
	if err != nil {
		s.logger.Error("upload %s to %s: %v", filename, s.images.Name(), err)
		return nil, errors.NewAppError(errors.ErrCodeStorage, "Failed to upload file", err)
	}
	s.logger.Info("uploaded %s (%d bytes) to %s", res.Filename, res.Size, s.images.Name())
	return &dto.UploadResult{URL: res.URL, Filename: res.Filename, Size: res.Size, Type: mime}, nil
}
