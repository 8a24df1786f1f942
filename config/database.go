package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"paju/repository"
)

// OpenDB mở kết nối gorm theo driver, nil với driver memory
func OpenDB(cfg *Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}
	if cfg.IsProduction() {
		gcfg.Logger = gormlogger.Default.LogMode(gormlogger.Error)
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "memory":
		return nil, nil
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		if dir := filepath.Dir(cfg.Database.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.Database.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Database.Driver, err)
	}
	if cfg.Database.Driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite chỉ cho một writer
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// OpenStore chọn backend lưu trữ một lần lúc khởi động; gorm store được migrate luôn
func OpenStore(cfg *Config) (*repository.Store, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	if db == nil {
		return repository.NewMemoryStore(), nil
	}
	if err := repository.Migrate(db); err != nil {
		return nil, err
	}
	return repository.NewGormStore(db), nil
}
