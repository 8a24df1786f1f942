package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paju/constants"
	"paju/models"
)

func TestSearchMenu(t *testing.T) {
	items := []models.MenuItem{
		{ID: 1, Title: "Kimchi Jjigae", Description: "Spicy kimchi stew", Category: "Main Courses", MenuType: constants.MenuDinner},
		{ID: 2, Title: "Kimchi Pancake", Category: "Hot Breakfast", MenuType: constants.MenuBreakfast},
		{ID: 3, Title: "Bibimbap", Description: "Mixed rice bowl", Category: "Main Courses", MenuType: constants.MenuDinner},
		{ID: 4, Title: "Ramen Bowl", Category: "Soups", MenuType: constants.MenuLunch},
	}

	results := SearchMenu(items, "kimchi", 0)
	require.Len(t, results, 2)
	assert.EqualValues(t, 1, results[0].Item.ID)
	assert.EqualValues(t, 2, results[1].Item.ID)

	results = SearchMenu(items, "bibimbab", 0)
	require.NotEmpty(t, results)
	assert.EqualValues(t, 3, results[0].Item.ID)

	results = SearchMenu(items, "KIMCHI", 1)
	assert.Len(t, results, 1)

	assert.Empty(t, SearchMenu(items, "   ", 0))
	assert.Empty(t, SearchMenu(items, "zzzzzzzz", 0))
	assert.Empty(t, SearchMenu(nil, "kimchi", 0))
}

func TestMenuServiceSearch(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newMenuService(t)
	_, err := s.SetStatus(ctx, constants.MenuDinner, true)
	require.NoError(t, err)
	_, err = s.SetStatus(ctx, constants.MenuLunch, false)
	require.NoError(t, err)

	createItem(t, s, "Ramen Bowl", "Soups", constants.MenuLunch)
	dinner := createItem(t, s, "Ramen Special", "Main Courses", constants.MenuDinner)

	results, err := s.Search(ctx, "ramen", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, dinner, results[0].Item.ID)
}
