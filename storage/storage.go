// Package storage uploads menu images either to a local directory served by
// the API itself or to Cloudinary. The backend is chosen once at startup.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"paju/errors"
)

// MaxImageSize là dung lượng tối đa của ảnh upload (5MB)
const MaxImageSize = 5 * 1024 * 1024

var allowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

// Result là kết quả upload
type Result struct {
	URL      string
	Filename string
	Size     int64
}

// ImageStorage lưu và xóa ảnh món ăn
type ImageStorage interface {
	Upload(ctx context.Context, filename string, data []byte) (*Result, error)
	// Delete bỏ qua URL không thuộc backend này
	Delete(ctx context.Context, url string) error
	Name() string
}

// ValidateImage kiểm tra dung lượng và loại ảnh theo nội dung file,
// trả về mime type và extension tương ứng
func ValidateImage(data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", "", errors.NewAppError(errors.ErrCodeInvalidImage, "File is empty", nil)
	}
	if len(data) > MaxImageSize {
		return "", "", errors.NewAppError(errors.ErrCodeFileTooLarge, "File too large. Please upload an image smaller than 5MB.", nil)
	}
	mtype := mimetype.Detect(data)
	for _, allowed := range allowedTypes {
		if mtype.Is(allowed) {
			return allowed, mtype.Extension(), nil
		}
	}
	return "", "", errors.NewAppError(errors.ErrCodeInvalidImage, "Invalid file type. Please upload a JPEG, PNG, or WebP image.", nil)
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateFilename tạo tên file duy nhất từ tên gốc, ví dụ
// "Bánh Xèo.JPG" -> "banh-xeo-1715340000000-3f9a1c.jpg"
func GenerateFilename(originalName, fallbackExt string) string {
	return generateFilename(originalName, fallbackExt, time.Now(), uuid.NewString()[:6])
}

func generateFilename(originalName, fallbackExt string, now time.Time, suffix string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if ext == "" || nonAlnum.MatchString(ext) {
		ext = strings.TrimPrefix(fallbackExt, ".")
	}
	if ext == "" {
		ext = "jpg"
	}

	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	clean := nonAlnum.ReplaceAllString(strings.ToLower(unidecode.Unidecode(base)), "-")
	clean = strings.Trim(clean, "-")
	if len(clean) > 30 {
		clean = strings.TrimRight(clean[:30], "-")
	}
	if clean == "" {
		clean = "image"
	}
	return fmt.Sprintf("%s-%d-%s.%s", clean, now.UnixMilli(), suffix, ext)
}
