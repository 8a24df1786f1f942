package dto

// AnnouncementInput dùng cho cả tạo mới và cập nhật.
// Ngày nhận RFC3339, "2006-01-02T15:04" hoặc "2006-01-02"; chuỗi rỗng là bỏ giới hạn.
type AnnouncementInput struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	Message   *string `json:"message"`
	IsActive  *bool   `json:"isActive"`
	Priority  *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}
