package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage ghi ảnh vào thư mục uploads, router phục vụ tại URLPrefix
type LocalStorage struct {
	dir       string
	urlPrefix string
}

func NewLocalStorage(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (s *LocalStorage) Name() string { return "local" }

// Dir là thư mục chứa ảnh
func (s *LocalStorage) Dir() string { return s.dir }

// URLPrefix là đường dẫn public của thư mục ảnh
func (s *LocalStorage) URLPrefix() string { return s.urlPrefix }

func (s *LocalStorage) Upload(_ context.Context, filename string, data []byte) (*Result, error) {
	name := filepath.Base(filename)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", name, err)
	}
	return &Result{
		URL:      s.urlPrefix + "/" + name,
		Filename: name,
		Size:     int64(len(data)),
	}, nil
}

// Owns cho biết URL có trỏ vào thư mục uploads này không
func (s *LocalStorage) Owns(url string) bool {
	return strings.HasPrefix(url, s.urlPrefix+"/")
}

func (s *LocalStorage) path(url string) string {
	return filepath.Join(s.dir, filepath.Base(strings.TrimPrefix(url, s.urlPrefix+"/")))
}

// Read đọc lại file theo URL public. File không tồn tại trả lỗi bọc os.ErrNotExist
func (s *LocalStorage) Read(url string) ([]byte, error) {
	if !s.Owns(url) {
		return nil, fmt.Errorf("%s is not a local upload: %w", url, os.ErrNotExist)
	}
	data, err := os.ReadFile(s.path(url))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return data, nil
}

func (s *LocalStorage) Delete(_ context.Context, url string) error {
	if !s.Owns(url) {
		return nil
	}
	name := filepath.Base(s.path(url))
	err := os.Remove(s.path(url))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}
