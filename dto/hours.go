package dto

// UpdateHoursInput cập nhật từng phần giờ mở cửa của một ngày.
// Field nil giữ nguyên; chuỗi rỗng ở field giờ sẽ xóa giờ đó.
type UpdateHoursInput struct {
	IsClosed           *bool   `json:"isClosed"`
	IsBreakfastService *bool   `json:"isBreakfastService"`
	BreakfastOpenTime  *string `json:"breakfastOpenTime" binding:"omitempty,hhmm"`
	BreakfastCloseTime *string `json:"breakfastCloseTime" binding:"omitempty,hhmm"`
	IsLunchService     *bool   `json:"isLunchService"`
	LunchOpenTime      *string `json:"lunchOpenTime" binding:"omitempty,hhmm"`
	LunchCloseTime     *string `json:"lunchCloseTime" binding:"omitempty,hhmm"`
	IsDinnerService    *bool   `json:"isDinnerService"`
	DinnerOpenTime     *string `json:"dinnerOpenTime" binding:"omitempty,hhmm"`
	DinnerCloseTime    *string `json:"dinnerCloseTime" binding:"omitempty,hhmm"`
}
