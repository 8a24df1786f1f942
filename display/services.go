package display

import (
	"fmt"
	"strconv"
	"strings"

	"paju/constants"
	"paju/models"
)

const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "17:00"
)

// ServiceLines trả về các dòng kiểu "Lunch: 11:00AM - 3:00PM" theo thứ tự
// breakfast, lunch, dinner. Ngày đóng cửa trả (nil, false); ngày mở nhưng
// không có service hợp lệ trả slice rỗng và true.
func ServiceLines(day *models.RestaurantHours) ([]string, bool) {
	if day.IsClosed {
		return nil, false
	}
	lines := []string{}
	for _, m := range constants.MenuTypes {
		w := day.Service(m)
		open, close := normalizeTime(w.Open), normalizeTime(w.Close)
		if !w.Enabled || open == "" || close == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s - %s", m.Label(), FormatTime(open), FormatTime(close)))
	}
	return lines, true
}

// FormatTime đổi "13:30" thành "1:30PM", chuỗi không đúng dạng HH:MM trả về ""
func FormatTime(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return ""
	}
	h, m, ok := strings.Cut(t, ":")
	if !ok || len(h) == 0 || len(h) > 2 || len(m) != 2 || !allDigits(h) || !allDigits(m) || m > "59" {
		return ""
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour > 23 {
		return ""
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour > 12:
		display = hour - 12
	}
	return fmt.Sprintf("%d:%s%s", display, m, suffix)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// LegacyOpenClose tính cặp openTime/closeTime cũ: giờ mở sớm nhất và giờ đóng
// muộn nhất của các service đang bật, mặc định 09:00/17:00.
// Giờ dạng HH:MM có số 0 đầu nên so sánh chuỗi đúng thứ tự thời gian.
func LegacyOpenClose(day *models.RestaurantHours) (string, string) {
	open, close := "", ""
	for _, m := range constants.MenuTypes {
		w := day.Service(m)
		if !w.Enabled {
			continue
		}
		if o := normalizeTime(w.Open); o != "" && (open == "" || o < open) {
			open = o
		}
		if c := normalizeTime(w.Close); c != "" && c > close {
			close = c
		}
	}
	if open == "" {
		open = DefaultOpenTime
	}
	if close == "" {
		close = DefaultCloseTime
	}
	return open, close
}
