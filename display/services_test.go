package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paju/builders"
)

func TestFormatTime(t *testing.T) {
	cases := map[string]string{
		"00:00":    "12:00AM",
		"00:15":    "12:15AM",
		"09:05":    "9:05AM",
		"11:59":    "11:59AM",
		"12:00":    "12:00PM",
		"12:30":    "12:30PM",
		"13:30":    "1:30PM",
		"23:45":    "11:45PM",
		" 17:00":   "5:00PM",
		"":         "",
		"   ":      "",
		"noon":     "",
		"ab:cd":    "",
		"25:00":    "",
		"-1:00":    "",
		"9:05":     "9:05AM",
		"13:":      "",
		"13:5":     "",
		"12:00:00": "",
		"+1:00":    "",
		"1 :00":    "",
		"12:60":    "",
		"123:00":   "",
		"07:4a":    "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatTime(in), "input %q", in)
	}
}

func TestServiceLines(t *testing.T) {
	t.Run("ClosedSentinel", func(t *testing.T) {
		day := builders.NewHoursBuilder("Monday").Closed().WithLunch("11:00", "15:00").Build()
		lines, open := ServiceLines(&day)
		assert.False(t, open)
		assert.Nil(t, lines)
	})

	t.Run("FixedOrder", func(t *testing.T) {
		day := builders.NewHoursBuilder("Saturday").
			WithDinner("17:00", "22:00").
			WithBreakfast("08:00", "11:00").
			WithLunch("11:00", "15:00").
			Build()
		lines, open := ServiceLines(&day)
		assert.True(t, open)
		assert.Equal(t, []string{
			"Breakfast: 8:00AM - 11:00AM",
			"Lunch: 11:00AM - 3:00PM",
			"Dinner: 5:00PM - 10:00PM",
		}, lines)
	})

	t.Run("MissingTimeSkipsService", func(t *testing.T) {
		day := builders.NewHoursBuilder("Monday").WithDinner("17:00", "21:00").Build()
		day.IsLunchService = true
		day.LunchOpenTime = strPtr("11:00")
		lines, open := ServiceLines(&day)
		assert.True(t, open)
		assert.Equal(t, []string{"Dinner: 5:00PM - 9:00PM"}, lines)
	})

	t.Run("DisabledServiceSkipped", func(t *testing.T) {
		day := builders.NewHoursBuilder("Monday").WithLunch("11:00", "15:00").Build()
		day.IsLunchService = false
		lines, open := ServiceLines(&day)
		assert.True(t, open)
		assert.NotNil(t, lines)
		assert.Empty(t, lines)
	})
}

func TestLegacyOpenClose(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		day := builders.NewHoursBuilder("Monday").Build()
		open, close := LegacyOpenClose(&day)
		assert.Equal(t, DefaultOpenTime, open)
		assert.Equal(t, DefaultCloseTime, close)
	})

	t.Run("SpanOfServices", func(t *testing.T) {
		day := builders.NewHoursBuilder("Saturday").
			WithBreakfast("08:00", "11:00").
			WithDinner("17:00", "22:00").
			Build()
		open, close := LegacyOpenClose(&day)
		assert.Equal(t, "08:00", open)
		assert.Equal(t, "22:00", close)
	})

	t.Run("DisabledIgnored", func(t *testing.T) {
		day := builders.NewHoursBuilder("Sunday").WithBreakfast("07:00", "23:00").WithLunch("12:00", "15:00").Build()
		day.IsBreakfastService = false
		open, close := LegacyOpenClose(&day)
		assert.Equal(t, "12:00", open)
		assert.Equal(t, "15:00", close)
	})
}
