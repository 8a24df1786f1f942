package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"paju/constants"
	"paju/models"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// mỗi connection :memory: là một database riêng
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))

	store := NewGormStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func backends() map[string]func(t *testing.T) *Store {
	return map[string]func(t *testing.T) *Store{
		"memory": func(*testing.T) *Store { return NewMemoryStore() },
		"sqlite": newSQLiteStore,
	}
}

func strPtr(s string) *string { return &s }

func TestStoreContract(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			t.Run("MenuItems", func(t *testing.T) { testMenuItems(t, open(t)) })
			t.Run("Categories", func(t *testing.T) { testCategories(t, open(t)) })
			t.Run("MenuStatus", func(t *testing.T) { testMenuStatus(t, open(t)) })
			t.Run("Hours", func(t *testing.T) { testHours(t, open(t)) })
			t.Run("Announcements", func(t *testing.T) { testAnnouncements(t, open(t)) })
			t.Run("Users", func(t *testing.T) { testUsers(t, open(t)) })
			t.Run("Healthy", func(t *testing.T) { assert.NoError(t, open(t).Healthy(context.Background())) })
		})
	}
}

func testMenuItems(t *testing.T, s *Store) {
	ctx := context.Background()
	items := []*models.MenuItem{
		{Title: "Bibimbap", Price: 14.5, Category: "Mains", MenuType: constants.MenuLunch, IsAvailable: true, DisplayOrder: 2},
		{Title: "Kimchi Jjigae", Price: 13, Category: "Mains", MenuType: constants.MenuLunch, IsAvailable: false, DisplayOrder: 1},
		{Title: "Galbi", Price: 32, Category: "Grill", MenuType: constants.MenuDinner, IsAvailable: true, DisplayOrder: 1},
		{Title: "Mandu", Price: 9, Category: "Mains", MenuType: constants.MenuLunch, IsAvailable: true, DisplayOrder: 3},
	}
	for _, it := range items {
		require.NoError(t, s.Items.Create(ctx, it))
		require.NotZero(t, it.ID)
	}

	all, err := s.Items.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	lunch := constants.MenuLunch
	got, err := s.Items.List(ctx, &lunch)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Kimchi Jjigae", "Bibimbap", "Mandu"}, []string{got[0].Title, got[1].Title, got[2].Title})
	assert.False(t, got[0].IsAvailable)

	_, err = s.Items.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	item, err := s.Items.Get(ctx, items[0].ID)
	require.NoError(t, err)
	item.Price = 15.25
	item.IsAvailable = false
	require.NoError(t, s.Items.Update(ctx, item))
	item, err = s.Items.Get(ctx, items[0].ID)
	require.NoError(t, err)
	assert.InDelta(t, 15.25, item.Price, 0.001)
	assert.False(t, item.IsAvailable)
	assert.False(t, item.CreatedAt.IsZero())

	assert.ErrorIs(t, s.Items.Update(ctx, &models.MenuItem{ID: 9999, Title: "ghost", MenuType: constants.MenuLunch}), ErrNotFound)

	// Galbi thuộc dinner nên bị bỏ qua
	reordered, err := s.Items.Reorder(ctx, constants.MenuLunch, "Mains", []uint{items[3].ID, items[2].ID, items[0].ID, items[1].ID})
	require.NoError(t, err)
	require.Len(t, reordered, 3)
	assert.Equal(t, items[3].ID, reordered[0].ID)
	assert.Equal(t, 1, reordered[0].DisplayOrder)
	assert.Equal(t, items[0].ID, reordered[1].ID)
	assert.Equal(t, 3, reordered[1].DisplayOrder)
	assert.Equal(t, items[1].ID, reordered[2].ID)
	assert.Equal(t, 4, reordered[2].DisplayOrder)

	galbi, err := s.Items.Get(ctx, items[2].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, galbi.DisplayOrder)

	deleted, err := s.Items.Delete(ctx, items[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "Galbi", deleted.Title)
	_, err = s.Items.Delete(ctx, items[2].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func testCategories(t *testing.T, s *Store) {
	ctx := context.Background()
	names := []string{"Starters", "Mains", "Desserts"}
	var ids []uint
	for i, n := range names {
		c := &models.MenuCategory{Name: n, MenuType: constants.MenuDinner, DisplayOrder: i + 1}
		require.NoError(t, s.Categories.Create(ctx, c))
		ids = append(ids, c.ID)
	}
	other := &models.MenuCategory{Name: "Pastries", MenuType: constants.MenuBreakfast, DisplayOrder: 1}
	require.NoError(t, s.Categories.Create(ctx, other))

	dinner := constants.MenuDinner
	cats, err := s.Categories.List(ctx, &dinner)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Starters", cats[0].Name)

	cats, err = s.Categories.Reorder(ctx, constants.MenuDinner, []uint{ids[2], ids[0], ids[1], other.ID})
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, []string{"Desserts", "Starters", "Mains"}, []string{cats[0].Name, cats[1].Name, cats[2].Name})

	c, err := s.Categories.Get(ctx, ids[1])
	require.NoError(t, err)
	c.Name = "Main Dishes"
	require.NoError(t, s.Categories.Update(ctx, c))
	c, err = s.Categories.Get(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "Main Dishes", c.Name)

	deleted, err := s.Categories.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Starters", deleted.Name)
	_, err = s.Categories.Get(ctx, ids[0])
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := s.Categories.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func testMenuStatus(t *testing.T, s *Store) {
	ctx := context.Background()

	list, err := s.MenuStatus.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, m := range []constants.MenuType{constants.MenuDinner, constants.MenuBreakfast, constants.MenuLunch} {
		_, err := s.MenuStatus.Set(ctx, m, true)
		require.NoError(t, err)
	}
	list, err = s.MenuStatus.Set(ctx, constants.MenuLunch, false)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, constants.MenuBreakfast, list[0].MenuType)
	assert.Equal(t, constants.MenuLunch, list[1].MenuType)
	assert.False(t, list[1].IsEnabled)
	assert.True(t, list[2].IsEnabled)

	_, err = s.MenuStatus.Set(ctx, constants.MenuType("brunch"), true)
	assert.ErrorIs(t, err, ErrInvalidMenuType)
}

func testHours(t *testing.T, s *Store) {
	ctx := context.Background()
	for _, day := range []string{"Sunday", "Monday", "Wednesday", "Tuesday", "Saturday", "Friday", "Thursday"} {
		require.NoError(t, s.Hours.Create(ctx, &models.RestaurantHours{DayOfWeek: day, OpenTime: "09:00", CloseTime: "17:00"}))
	}
	assert.ErrorIs(t, s.Hours.Create(ctx, &models.RestaurantHours{DayOfWeek: "Monday"}), ErrDuplicate)

	n, err := s.Hours.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)

	days, err := s.Hours.List(ctx)
	require.NoError(t, err)
	require.Len(t, days, 7)
	for i, d := range days {
		assert.Equal(t, constants.Weekdays[i], d.DayOfWeek)
	}

	mon := days[0]
	mon.IsLunchService = true
	mon.LunchOpenTime = strPtr("11:00")
	mon.LunchCloseTime = strPtr("15:00")
	mon.IsClosed = false
	require.NoError(t, s.Hours.Update(ctx, &mon))

	got, err := s.Hours.Get(ctx, mon.ID)
	require.NoError(t, err)
	assert.True(t, got.IsLunchService)
	require.NotNil(t, got.LunchOpenTime)
	assert.Equal(t, "11:00", *got.LunchOpenTime)
	assert.Nil(t, got.DinnerOpenTime)

	// xóa giờ về nil phải được lưu lại
	got.LunchOpenTime = nil
	require.NoError(t, s.Hours.Update(ctx, got))
	got, err = s.Hours.Get(ctx, mon.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LunchOpenTime)

	assert.ErrorIs(t, s.Hours.Update(ctx, &models.RestaurantHours{ID: 9999, DayOfWeek: "Funday"}), ErrNotFound)
}

func testAnnouncements(t *testing.T, s *Store) {
	ctx := context.Background()
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	create := func(title, priority string, active bool, start, end *time.Time) *models.Announcement {
		a := &models.Announcement{Title: title, Message: title, Priority: priority, IsActive: active, StartDate: start, EndDate: end}
		require.NoError(t, s.Announcements.Create(ctx, a))
		return a
	}
	create("low", constants.PriorityLow, true, nil, nil)
	create("high", constants.PriorityHigh, true, &past, &future)
	create("inactive", constants.PriorityHigh, false, nil, nil)
	create("not-started", constants.PriorityHigh, true, &future, nil)
	create("expired", constants.PriorityHigh, true, nil, &past)
	create("medium", constants.PriorityMedium, true, &past, nil)
	last := create("high-newer", constants.PriorityHigh, true, nil, &future)

	active, err := s.Announcements.ListActive(ctx, now)
	require.NoError(t, err)
	var titles []string
	for _, a := range active {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"high-newer", "high", "medium", "low"}, titles)

	all, err := s.Announcements.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "high-newer", all[0].Title)

	last.IsActive = false
	require.NoError(t, s.Announcements.Update(ctx, last))
	active, err = s.Announcements.ListActive(ctx, now)
	require.NoError(t, err)
	assert.Len(t, active, 3)

	require.NoError(t, s.Announcements.Delete(ctx, last.ID))
	assert.ErrorIs(t, s.Announcements.Delete(ctx, last.ID), ErrNotFound)
	_, err = s.Announcements.Get(ctx, last.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func testUsers(t *testing.T, s *Store) {
	ctx := context.Background()
	admin := &models.User{Username: "admin", PasswordHash: "x", Role: constants.RoleAdmin, IsActive: true}
	require.NoError(t, s.Users.Create(ctx, admin))
	editor := &models.User{Username: "editor", PasswordHash: "y", Role: constants.RoleEditor, IsActive: false}
	require.NoError(t, s.Users.Create(ctx, editor))

	assert.ErrorIs(t, s.Users.Create(ctx, &models.User{Username: "admin", PasswordHash: "z", Role: constants.RoleEditor}), ErrDuplicate)

	u, err := s.Users.GetByUsername(ctx, "editor")
	require.NoError(t, err)
	assert.False(t, u.IsActive)
	_, err = s.Users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	u.Username = "admin"
	assert.ErrorIs(t, s.Users.Update(ctx, u), ErrDuplicate)
	u.Username = "writer"
	u.IsActive = true
	require.NoError(t, s.Users.Update(ctx, u))
	u, err = s.Users.GetByID(ctx, editor.ID)
	require.NoError(t, err)
	assert.Equal(t, "writer", u.Username)
	assert.True(t, u.IsActive)

	n, err := s.Users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	list, err := s.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, s.Users.Delete(ctx, editor.ID))
	assert.ErrorIs(t, s.Users.Delete(ctx, editor.ID), ErrNotFound)
}
