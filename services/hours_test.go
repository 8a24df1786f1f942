package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paju/constants"
	"paju/dto"
	"paju/repository"
	"paju/services/notification"
)

func newHoursService(t *testing.T) (*HoursService, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	_, err := NewSeeder(env.deps.Store, nil, SeedOptions{}).seedHours(context.Background())
	require.NoError(t, err)
	return NewHoursService(env.deps), env
}

func TestHoursServiceList(t *testing.T) {
	s, env := newHoursService(t)
	days, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, constants.Weekdays[0], days[0].DayOfWeek)
	assert.Equal(t, "11:00", days[0].OpenTime)
	assert.True(t, env.redis.Exists(constants.CacheKeyHours))
}

func TestHoursServiceDisplay(t *testing.T) {
	s, _ := newHoursService(t)
	view, err := s.Display(context.Background())
	require.NoError(t, err)

	labels := []string{}
	for _, g := range view.Groups {
		labels = append(labels, g.Label)
	}
	assert.Equal(t, []string{"Monday - Thursday", "Friday", "Saturday", "Sunday"}, labels)
	assert.Equal(t, []string{"Lunch: 11:00AM - 3:00PM", "Dinner: 5:00PM - 9:00PM"}, view.Groups[0].Services)
}

func TestHoursServiceUpdate(t *testing.T) {
	ctx := context.Background()
	s, env := newHoursService(t)
	days, err := s.List(ctx)
	require.NoError(t, err)
	monday := days[0]

	updated, err := s.Update(ctx, monday.ID, dto.UpdateHoursInput{
		IsBreakfastService: ptr(true),
		BreakfastOpenTime:  ptr("07:30"),
		BreakfastCloseTime: ptr("10:00"),
		DinnerCloseTime:    ptr("22:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "07:30", updated.OpenTime)
	assert.Equal(t, "22:30", updated.CloseTime)
	assert.True(t, updated.IsLunchService)
	assert.False(t, env.redis.Exists(constants.CacheKeyHours))
	assert.Equal(t, notification.TypeHours, env.events.last().Type)

	view, err := s.Display(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Monday", view.Groups[0].Label)
	assert.Equal(t, "Tuesday - Thursday", view.Groups[1].Label)

	cleared, err := s.Update(ctx, monday.ID, dto.UpdateHoursInput{BreakfastOpenTime: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.BreakfastOpenTime)
	assert.Equal(t, "11:00", cleared.OpenTime)

	closed, err := s.Update(ctx, monday.ID, dto.UpdateHoursInput{IsClosed: ptr(true)})
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)

	_, err = s.Update(ctx, monday.ID, dto.UpdateHoursInput{LunchOpenTime: ptr("25:00")})
	assert.Error(t, err)

	_, err = s.Update(ctx, 999, dto.UpdateHoursInput{IsClosed: ptr(false)})
	assert.True(t, stderrors.Is(err, repository.ErrNotFound))
}
