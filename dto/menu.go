package dto

import (
	"paju/constants"
	"paju/models"
)

type CreateMenuItemInput struct {
	Title        string             `json:"title" binding:"required,max=255"`
	Description  string             `json:"description"`
	Price        *float64           `json:"price" binding:"required,gte=0"`
	Category     string             `json:"category" binding:"required"`
	MenuType     constants.MenuType `json:"menuType" binding:"required,oneof=breakfast lunch dinner"`
	ImageURL     string             `json:"imageUrl"`
	IsAvailable  *bool              `json:"isAvailable"`
	DisplayOrder *int               `json:"displayOrder" binding:"omitempty,gte=0"`
}

// UpdateMenuItemInput cập nhật từng phần, field nil giữ nguyên
type UpdateMenuItemInput struct {
	Title        *string             `json:"title" binding:"omitempty,min=1,max=255"`
	Description  *string             `json:"description"`
	Price        *float64            `json:"price" binding:"omitempty,gte=0"`
	Category     *string             `json:"category" binding:"omitempty,min=1"`
	MenuType     *constants.MenuType `json:"menuType" binding:"omitempty,oneof=breakfast lunch dinner"`
	ImageURL     *string             `json:"imageUrl"`
	IsAvailable  *bool               `json:"isAvailable"`
	DisplayOrder *int                `json:"displayOrder" binding:"omitempty,gte=0"`
}

type ReorderItemsInput struct {
	MenuType   constants.MenuType `json:"menuType" binding:"required,oneof=breakfast lunch dinner"`
	Category   string             `json:"category" binding:"required"`
	OrderedIDs []uint             `json:"orderedIds" binding:"required,min=1"`
}

type CategoryInput struct {
	Name         string             `json:"name" binding:"required,max=100"`
	MenuType     constants.MenuType `json:"menuType" binding:"required,oneof=breakfast lunch dinner"`
	DisplayOrder *int               `json:"displayOrder" binding:"omitempty,gte=0"`
}

type UpdateCategoryInput struct {
	Name         *string             `json:"name" binding:"omitempty,min=1,max=100"`
	MenuType     *constants.MenuType `json:"menuType" binding:"omitempty,oneof=breakfast lunch dinner"`
	DisplayOrder *int                `json:"displayOrder" binding:"omitempty,gte=0"`
}

type ReorderCategoriesInput struct {
	MenuType   constants.MenuType `json:"menuType" binding:"required,oneof=breakfast lunch dinner"`
	OrderedIDs []uint             `json:"orderedIds" binding:"required,min=1"`
}

type MenuStatusInput struct {
	MenuType  constants.MenuType `json:"menuType" binding:"required,oneof=breakfast lunch dinner"`
	IsEnabled *bool              `json:"isEnabled" binding:"required"`
}

// MenuDisplay là dữ liệu trang menu public cho một menu type
type MenuDisplay struct {
	Selected   constants.MenuType   `json:"selected"`
	Enabled    []constants.MenuType `json:"enabled"`
	Categories []string             `json:"categories"`
	Items      []models.MenuItem    `json:"items"`
}

// SearchResult là một món khớp với từ khóa
type SearchResult struct {
	Item  models.MenuItem `json:"item"`
	Score float64         `json:"score"`
}
