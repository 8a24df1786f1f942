package config

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"

	"paju/storage"
)

// NewImageStorage tạo backend lưu ảnh. local trả thêm LocalStorage để router serve file tĩnh
func NewImageStorage(cfg *Config) (storage.ImageStorage, *storage.LocalStorage, error) {
	switch cfg.Storage.Backend {
	case "local":
		local, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.URLPrefix)
		if err != nil {
			return nil, nil, err
		}
		return local, local, nil
	case "cloudinary":
		cld, err := cloudinary.NewFromURL(cfg.Storage.CloudinaryURL)
		if err != nil {
			return nil, nil, fmt.Errorf("init cloudinary: %w", err)
		}
		return storage.NewCloudinaryStorage(cld, cfg.Storage.Folder), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
