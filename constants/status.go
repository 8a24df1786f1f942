package constants

// MenuType là một khung giờ phục vụ (service) của nhà hàng
type MenuType string

const (
	MenuBreakfast MenuType = "breakfast"
	MenuLunch     MenuType = "lunch"
	MenuDinner    MenuType = "dinner"
)

// MenuTypes theo thứ tự hiển thị cố định
var MenuTypes = []MenuType{MenuBreakfast, MenuLunch, MenuDinner}

func (m MenuType) Valid() bool {
	switch m {
	case MenuBreakfast, MenuLunch, MenuDinner:
		return true
	}
	return false
}

// Label trả về tên hiển thị, ví dụ "Lunch"
func (m MenuType) Label() string {
	switch m {
	case MenuBreakfast:
		return "Breakfast"
	case MenuLunch:
		return "Lunch"
	case MenuDinner:
		return "Dinner"
	}
	return string(m)
}

// User roles
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}

// Announcement priority
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// PriorityRank dùng để sắp xếp, high trước
func PriorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Weekdays theo thứ tự Monday -> Sunday
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayIndex trả về vị trí của ngày trong tuần, -1 nếu không hợp lệ
func WeekdayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

// Cache keys
const (
	CacheKeyHours               = "restaurant:hours"
	CacheKeyMenuItems           = "menu:items:all"
	CacheKeyMenuStatus          = "menu:status"
	CacheKeyActiveAnnouncements = "announcements:active"
	CacheKeyCategories          = "menu:categories:all"
)
