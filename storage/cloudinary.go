package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// uploadAPI là phần của cloudinary uploader mà storage dùng
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryStorage upload ảnh lên Cloudinary trong một folder
type CloudinaryStorage struct {
	api    uploadAPI
	folder string
}

func NewCloudinaryStorage(cld *cloudinary.Cloudinary, folder string) *CloudinaryStorage {
	return &CloudinaryStorage{api: &cld.Upload, folder: folder}
}

func (s *CloudinaryStorage) Name() string { return "cloudinary" }

func (s *CloudinaryStorage) Upload(ctx context.Context, filename string, data []byte) (*Result, error) {
	publicID := strings.TrimSuffix(filename, path.Ext(filename))
	resp, err := s.api.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID: publicID,
		Folder:   s.folder,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return &Result{
		URL:      resp.SecureURL,
		Filename: filename,
		Size:     int64(resp.Bytes),
	}, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, url string) error {
	publicID := PublicIDFromURL(url)
	if publicID == "" {
		return nil
	}
	resp, err := s.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, resp.Error.Message)
	}
	return nil
}

var versionSegment = regexp.MustCompile(`^v[0-9]+$`)

// PublicIDFromURL lấy public_id từ secure URL của Cloudinary,
// ví dụ ".../image/upload/v1715/menu-items/galbi.jpg" -> "menu-items/galbi".
// URL không phải của Cloudinary trả về chuỗi rỗng.
func PublicIDFromURL(url string) string {
	if !strings.Contains(url, "res.cloudinary.com") {
		return ""
	}
	_, rest, ok := strings.Cut(url, "/upload/")
	if !ok || rest == "" {
		return ""
	}
	rest, _, _ = strings.Cut(rest, "?")

	segments := strings.Split(rest, "/")
	for i, seg := range segments {
		if versionSegment.MatchString(seg) {
			segments = segments[i+1:]
			break
		}
	}
	id := strings.Join(segments, "/")
	return strings.TrimSuffix(id, path.Ext(id))
}
