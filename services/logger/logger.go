package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel đọc level từ config, mặc định là info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	}
	return InfoLevel
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Options cấu hình cho ZeroLogger
type Options struct {
	Level   Level
	Console bool   // console writer cho development, JSON cho production
	Dir     string // nếu khác rỗng thì ghi thêm ra file logs/app-YYYY-MM-DD.log
}

// ZeroLogger implement Logger interface sử dụng zerolog
type ZeroLogger struct {
	zl zerolog.Logger
}

// New tạo logger theo options
func New(opts Options) (*ZeroLogger, error) {
	var out io.Writer = os.Stdout
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		name := filepath.Join(opts.Dir, fmt.Sprintf("app-%s.log", time.Now().Format("2006-01-02")))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = zerolog.MultiLevelWriter(out, f)
	}

	zl := zerolog.New(out).Level(opts.Level.zerolog()).With().Timestamp().Logger()
	return &ZeroLogger{zl: zl}, nil
}

// NewWithWriter tạo logger ghi ra writer bất kỳ (dùng trong test)
func NewWithWriter(w io.Writer, level Level) *ZeroLogger {
	return &ZeroLogger{zl: zerolog.New(w).Level(level.zerolog()).With().Timestamp().Logger()}
}

// Nop trả về logger bỏ qua mọi message
func Nop() *ZeroLogger {
	return &ZeroLogger{zl: zerolog.Nop()}
}

// Zerolog trả về logger gốc cho middleware cần field có cấu trúc
func (l *ZeroLogger) Zerolog() *zerolog.Logger {
	return &l.zl
}

// Info log thông tin
func (l *ZeroLogger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Error log lỗi
func (l *ZeroLogger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Debug log debug
func (l *ZeroLogger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}
