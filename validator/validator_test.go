package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paju/constants"
	"paju/errors"
	"paju/models"
)

func strPtr(s string) *string { return &s }

func TestIsValidTime(t *testing.T) {
	for _, ok := range []string{"00:00", "09:30", "12:00", "23:59"} {
		assert.True(t, IsValidTime(ok), ok)
	}
	for _, bad := range []string{"", "9:30", "24:00", "12:60", "noon", "12:00:00"} {
		assert.False(t, IsValidTime(bad), bad)
	}
}

func TestValidateHours(t *testing.T) {
	h := &models.RestaurantHours{DayOfWeek: "Monday", IsLunchService: true, LunchOpenTime: strPtr("11:00"), LunchCloseTime: strPtr(" ")}
	assert.NoError(t, ValidateHours(h))

	h.DinnerOpenTime = strPtr("5pm")
	err := ValidateHours(h)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetAppError(err).Code)

	assert.Error(t, ValidateHours(&models.RestaurantHours{DayOfWeek: "Funday"}))
}

func TestValidateAnnouncement(t *testing.T) {
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	a := &models.Announcement{Title: "Closed", Message: "Holiday", Priority: constants.PriorityMedium}
	assert.NoError(t, ValidateAnnouncement(a))

	a.Priority = "urgent"
	assert.Error(t, ValidateAnnouncement(a))

	a.Priority = constants.PriorityHigh
	a.StartDate, a.EndDate = &start, &end
	assert.Error(t, ValidateAnnouncement(a))

	assert.Error(t, ValidateAnnouncement(&models.Announcement{Title: " ", Message: "x", Priority: constants.PriorityLow}))
}

func TestValidateUserAndPassword(t *testing.T) {
	assert.NoError(t, ValidateUser(&models.User{Username: "chef", Role: constants.RoleEditor}))
	assert.Error(t, ValidateUser(&models.User{Username: "ab", Role: constants.RoleEditor}))
	assert.Error(t, ValidateUser(&models.User{Username: "chef", Role: "owner"}))
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
}

func TestValidateMenuItem(t *testing.T) {
	item := &models.MenuItem{Title: "Galbi", Category: "Grill", MenuType: constants.MenuDinner, Price: 32}
	assert.NoError(t, ValidateMenuItem(item))
	item.MenuType = "brunch"
	assert.Equal(t, errors.ErrCodeInvalidMenu, errors.GetAppError(ValidateMenuItem(item)).Code)
	item.MenuType = constants.MenuDinner
	item.Price = -1
	assert.Error(t, ValidateMenuItem(item))
	assert.Error(t, ValidateCategory(&models.MenuCategory{Name: "", MenuType: constants.MenuLunch}))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate("2026-05-10T18:30")
	require.NoError(t, err)
	assert.Equal(t, 18, d.Hour())

	d, err = ParseDate("2026-05-10T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseDate("10/05/2026")
	assert.Error(t, err)
}
