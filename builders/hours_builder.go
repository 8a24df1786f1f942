package builders

import (
	"paju/constants"
	"paju/models"
)

// HoursBuilder giúp tạo giờ mở cửa của một ngày theo từng bước
type HoursBuilder struct {
	hours *models.RestaurantHours
}

// NewHoursBuilder tạo instance mới cho ngày day, mặc định mở cửa và chưa có service nào
func NewHoursBuilder(day string) *HoursBuilder {
	return &HoursBuilder{
		hours: &models.RestaurantHours{DayOfWeek: day},
	}
}

// WithID gán id
func (b *HoursBuilder) WithID(id uint) *HoursBuilder {
	b.hours.ID = id
	return b
}

// Closed đánh dấu ngày nghỉ
func (b *HoursBuilder) Closed() *HoursBuilder {
	b.hours.IsClosed = true
	return b
}

// WithService bật service m với khung giờ open-close
func (b *HoursBuilder) WithService(m constants.MenuType, open, close string) *HoursBuilder {
	b.hours.SetService(m, models.ServiceWindow{Enabled: true, Open: &open, Close: &close})
	return b
}

func (b *HoursBuilder) WithBreakfast(open, close string) *HoursBuilder {
	return b.WithService(constants.MenuBreakfast, open, close)
}

func (b *HoursBuilder) WithLunch(open, close string) *HoursBuilder {
	return b.WithService(constants.MenuLunch, open, close)
}

func (b *HoursBuilder) WithDinner(open, close string) *HoursBuilder {
	return b.WithService(constants.MenuDinner, open, close)
}

// WithLegacy gán openTime/closeTime cũ
func (b *HoursBuilder) WithLegacy(open, close string) *HoursBuilder {
	b.hours.OpenTime = open
	b.hours.CloseTime = close
	return b
}

// Build trả về bản ghi hoàn chỉnh
func (b *HoursBuilder) Build() models.RestaurantHours {
	return *b.hours
}

// DefaultWeek là lịch mặc định khi khởi tạo dữ liệu
func DefaultWeek() []models.RestaurantHours {
	return []models.RestaurantHours{
		NewHoursBuilder("Monday").WithLunch("11:00", "15:00").WithDinner("17:00", "21:00").WithLegacy("11:00", "21:00").Build(),
		NewHoursBuilder("Tuesday").WithLunch("11:00", "15:00").WithDinner("17:00", "21:00").WithLegacy("11:00", "21:00").Build(),
		NewHoursBuilder("Wednesday").WithLunch("11:00", "15:00").WithDinner("17:00", "21:00").WithLegacy("11:00", "21:00").Build(),
		NewHoursBuilder("Thursday").WithLunch("11:00", "15:00").WithDinner("17:00", "21:00").WithLegacy("11:00", "21:00").Build(),
		NewHoursBuilder("Friday").WithLunch("11:00", "15:00").WithDinner("17:00", "22:00").WithLegacy("11:00", "22:00").Build(),
		NewHoursBuilder("Saturday").WithBreakfast("08:00", "11:00").WithLunch("11:00", "15:00").WithDinner("17:00", "22:00").WithLegacy("08:00", "22:00").Build(),
		NewHoursBuilder("Sunday").WithBreakfast("09:00", "12:00").WithLunch("12:00", "15:00").WithLegacy("09:00", "15:00").Build(),
	}
}
