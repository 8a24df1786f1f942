package commands

import (
	"context"

	"paju/constants"
	"paju/display"
	"paju/models"
	"paju/repository"
	"paju/validator"
)

// Command là một thao tác ghi dữ liệu chạy qua service
type Command interface {
	Execute(ctx context.Context) error
}

// ReorderItemsCommand sắp xếp lại món trong một (menuType, category)
type ReorderItemsCommand struct {
	repo     repository.MenuItemRepository
	menuType constants.MenuType
	category string
	ids      []uint

	Result []models.MenuItem
}

func NewReorderItemsCommand(repo repository.MenuItemRepository, menuType constants.MenuType, category string, ids []uint) *ReorderItemsCommand {
	return &ReorderItemsCommand{
		repo:     repo,
		menuType: menuType,
		category: category,
		ids:      ids,
	}
}

func (c *ReorderItemsCommand) Execute(ctx context.Context) error {
	items, err := c.repo.Reorder(ctx, c.menuType, c.category, c.ids)
	if err != nil {
		return err
	}
	c.Result = items
	return nil
}

// ReorderCategoriesCommand sắp xếp lại danh mục của một menuType
type ReorderCategoriesCommand struct {
	repo     repository.CategoryRepository
	menuType constants.MenuType
	ids      []uint

	Result []models.MenuCategory
}

func NewReorderCategoriesCommand(repo repository.CategoryRepository, menuType constants.MenuType, ids []uint) *ReorderCategoriesCommand {
	return &ReorderCategoriesCommand{
		repo:     repo,
		menuType: menuType,
		ids:      ids,
	}
}

func (c *ReorderCategoriesCommand) Execute(ctx context.Context) error {
	cats, err := c.repo.Reorder(ctx, c.menuType, c.ids)
	if err != nil {
		return err
	}
	c.Result = cats
	return nil
}

// SetMenuStatusCommand bật/tắt một menu type
type SetMenuStatusCommand struct {
	repo     repository.MenuStatusRepository
	menuType constants.MenuType
	enabled  bool

	Result []models.MenuStatus
}

func NewSetMenuStatusCommand(repo repository.MenuStatusRepository, menuType constants.MenuType, enabled bool) *SetMenuStatusCommand {
	return &SetMenuStatusCommand{
		repo:     repo,
		menuType: menuType,
		enabled:  enabled,
	}
}

func (c *SetMenuStatusCommand) Execute(ctx context.Context) error {
	statuses, err := c.repo.Set(ctx, c.menuType, c.enabled)
	if err != nil {
		return err
	}
	c.Result = statuses
	return nil
}

// UpdateHoursCommand lưu giờ của một ngày, openTime/closeTime cũ luôn được tính lại từ các service
type UpdateHoursCommand struct {
	repo  repository.HoursRepository
	hours *models.RestaurantHours
}

func NewUpdateHoursCommand(repo repository.HoursRepository, hours *models.RestaurantHours) *UpdateHoursCommand {
	return &UpdateHoursCommand{
		repo:  repo,
		hours: hours,
	}
}

func (c *UpdateHoursCommand) Execute(ctx context.Context) error {
	if err := validator.ValidateHours(c.hours); err != nil {
		return err
	}
	c.hours.OpenTime, c.hours.CloseTime = display.LegacyOpenClose(c.hours)
	return c.repo.Update(ctx, c.hours)
}
