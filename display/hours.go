// Package display tính những gì trang public hiển thị từ dữ liệu đã lưu:
// gộp giờ mở cửa theo dãy ngày, dòng giờ của từng service và các món đang bán.
// Các hàm ở đây không có I/O và không trả lỗi.
package display

import (
	"strings"

	"paju/constants"
	"paju/models"
)

// DayGroup là dãy ngày liên tiếp dài nhất có cùng lịch
type DayGroup struct {
	Label    string                   `json:"label"`
	Days     []models.RestaurantHours `json:"days"`
	Closed   bool                     `json:"closed"`
	Services []string                 `json:"services"`
}

// nil, rỗng hoặc toàn khoảng trắng đều thành ""
func normalizeTime(t *string) string {
	if t == nil {
		return ""
	}
	return strings.TrimSpace(*t)
}

// Equivalent cho biết hai ngày có hiển thị cùng một lịch không
func Equivalent(a, b *models.RestaurantHours) bool {
	if a.IsClosed && b.IsClosed {
		return true
	}
	if a.IsClosed != b.IsClosed {
		return false
	}
	for _, m := range constants.MenuTypes {
		wa, wb := a.Service(m), b.Service(m)
		if wa.Enabled != wb.Enabled ||
			normalizeTime(wa.Open) != normalizeTime(wb.Open) ||
			normalizeTime(wa.Close) != normalizeTime(wb.Close) {
			return false
		}
	}
	return true
}

// GroupDays chia các ngày theo thứ tự đầu vào thành các dãy tương đương.
// Mỗi ngày chỉ so với ngày ngay trước nó.
func GroupDays(days []models.RestaurantHours) []DayGroup {
	groups := []DayGroup{}
	if len(days) == 0 {
		return groups
	}

	var runs [][]models.RestaurantHours
	current := []models.RestaurantHours{days[0]}
	for i := 1; i < len(days); i++ {
		if Equivalent(&current[len(current)-1], &days[i]) {
			current = append(current, days[i])
			continue
		}
		runs = append(runs, current)
		current = []models.RestaurantHours{days[i]}
	}
	runs = append(runs, current)

	for _, run := range runs {
		lines, open := ServiceLines(&run[0])
		if lines == nil {
			lines = []string{}
		}
		groups = append(groups, DayGroup{
			Label:    GroupLabel(run),
			Days:     run,
			Closed:   !open || len(lines) == 0,
			Services: lines,
		})
	}
	return groups
}

// GroupLabel: một ngày thì lấy tên ngày, nhiều ngày thì "đầu - cuối"
func GroupLabel(run []models.RestaurantHours) string {
	switch len(run) {
	case 0:
		return ""
	case 1:
		return run[0].DayOfWeek
	}
	return run[0].DayOfWeek + " - " + run[len(run)-1].DayOfWeek
}
