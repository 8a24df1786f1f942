package dto

import "paju/display"

// HoursDisplay là giờ mở cửa đã gộp cho trang public
type HoursDisplay struct {
	Groups []display.DayGroup `json:"groups"`
}

// UploadResult là kết quả upload ảnh
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Store   string `json:"store"`
	Cache   string `json:"cache"`
	Storage string `json:"storage"`
}

// MigrateUploadResult là kết quả chuyển ảnh của một món
type MigrateUploadResult struct {
	ID     uint   `json:"id"`
	From   string `json:"from"`
	To     string `json:"to,omitempty"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type MigrateUploadsReport struct {
	Checked   int                   `json:"checked"`
	ToMigrate int                   `json:"toMigrate"`
	Migrated  int                   `json:"migrated"`
	Results   []MigrateUploadResult `json:"results"`
}
