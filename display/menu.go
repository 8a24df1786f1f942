package display

import (
	"paju/constants"
	"paju/models"
)

// EnabledMenuTypes trả các menu type đang bật theo thứ tự breakfast, lunch, dinner
func EnabledMenuTypes(statuses []models.MenuStatus) []constants.MenuType {
	enabled := make(map[constants.MenuType]bool, len(statuses))
	for _, s := range statuses {
		if s.IsEnabled {
			enabled[s.MenuType] = true
		}
	}
	out := []constants.MenuType{}
	for _, m := range constants.MenuTypes {
		if enabled[m] {
			out = append(out, m)
		}
	}
	return out
}

// FilterMenu giữ các món đang bán thuộc menu type được chọn, chỉ khi type đó đang bật.
// Giữ nguyên thứ tự đầu vào.
func FilterMenu(items []models.MenuItem, selected constants.MenuType, enabled []constants.MenuType) []models.MenuItem {
	out := []models.MenuItem{}
	if !contains(enabled, selected) {
		return out
	}
	for _, item := range items {
		if item.IsAvailable && item.MenuType == selected {
			out = append(out, item)
		}
	}
	return out
}

// DefaultMenuType: dinner nếu đang bật, không thì type bật đầu tiên.
// Không có type nào bật vẫn trả dinner.
func DefaultMenuType(enabled []constants.MenuType) constants.MenuType {
	if len(enabled) == 0 || contains(enabled, constants.MenuDinner) {
		return constants.MenuDinner
	}
	return enabled[0]
}

// Categories trả các category không trùng theo thứ tự xuất hiện
func Categories(items []models.MenuItem) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out
}

func contains(list []constants.MenuType, m constants.MenuType) bool {
	for _, v := range list {
		if v == m {
			return true
		}
	}
	return false
}
