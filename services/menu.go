package services

import (
	"context"
	"strings"

	"paju/commands"
	"paju/constants"
	"paju/display"
	"paju/dto"
	"paju/errors"
	"paju/models"
	"paju/services/notification"
	"paju/storage"
	"paju/validator"
)

var menuCacheKeys = []string{constants.CacheKeyMenuItems, constants.CacheKeyCategories, constants.CacheKeyMenuStatus}

// MenuService quản lý món ăn, danh mục và trạng thái menu
type MenuService struct {
	base
	images storage.ImageStorage
}

func NewMenuService(deps Deps, images storage.ImageStorage) *MenuService {
	return &MenuService{base: base{deps.withDefaults()}, images: images}
}

// ---- items ----

// ListItems trả về món theo display_order, menuType nil là tất cả
func (s *MenuService) ListItems(ctx context.Context, menuType *constants.MenuType) ([]models.MenuItem, error) {
	all, err := readThrough(ctx, s.Cache, s.Logger, constants.CacheKeyMenuItems, s.CacheTTL, func() ([]models.MenuItem, error) {
		return s.Store.Items.List(ctx, nil)
	})
	if err != nil {
		return nil, s.storeError("list menu items", err)
	}
	if menuType == nil {
		return all, nil
	}
	out := []models.MenuItem{}
	for _, it := range all {
		if it.MenuType == *menuType {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *MenuService) GetItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	item, err := s.Store.Items.Get(ctx, id)
	return item, s.storeError("load menu item", err)
}

// nextItemOrder là display_order tiếp theo trong (menuType, category)
func (s *MenuService) nextItemOrder(ctx context.Context, menuType constants.MenuType, category string) (int, error) {
	items, err := s.Store.Items.List(ctx, &menuType)
	if err != nil {
		return 0, err
	}
	highest := 0
	for _, it := range items {
		if it.Category == category && it.DisplayOrder > highest {
			highest = it.DisplayOrder
		}
	}
	return highest + 1, nil
}

func (s *MenuService) CreateItem(ctx context.Context, in dto.CreateMenuItemInput) (*models.MenuItem, error) {
	item := &models.MenuItem{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		MenuType:    in.MenuType,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		IsAvailable: true,
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if err := validator.ValidateMenuItem(item); err != nil {
		return nil, err
	}

	if in.DisplayOrder != nil {
		item.DisplayOrder = *in.DisplayOrder
	} else {
		order, err := s.nextItemOrder(ctx, item.MenuType, item.Category)
		if err != nil {
			return nil, s.storeError("create menu item", err)
		}
		item.DisplayOrder = order
	}

	if err := s.Store.Items.Create(ctx, item); err != nil {
		return nil, s.storeError("create menu item", err)
	}
	s.after(ctx, notification.NewMessageBuilder(notification.TypeMenuItem, notification.ActionCreated).WithID(item.ID).Build(), menuCacheKeys...)
	return item, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, id uint, in dto.UpdateMenuItemInput) (*models.MenuItem, error) {
	item, err := s.Store.Items.Get(ctx, id)
	if err != nil {
		return nil, s.storeError("load menu item", err)
	}
	oldImage := item.ImageURL

	if in.Title != nil {
		item.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.MenuType != nil {
		item.MenuType = *in.MenuType
	}
	if in.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.DisplayOrder != nil {
		item.DisplayOrder = *in.DisplayOrder
	}
	if err := validator.ValidateMenuItem(item); err != nil {
		return nil, err
	}

	if err := s.Store.Items.Update(ctx, item); err != nil {
		return nil, s.storeError("update menu item", err)
	}
	if oldImage != "" && oldImage != item.ImageURL {
		s.deleteImage(ctx, oldImage)
	}
	s.after(ctx, notification.NewMessageBuilder(notification.TypeMenuItem, notification.ActionUpdated).WithID(item.ID).Build(), menuCacheKeys...)
	return item, nil
}

// DeleteItem xóa món và ảnh của món. Lỗi xóa ảnh chỉ được log.
func (s *MenuService) DeleteItem(ctx context.Context, id uint) error {
	item, err := s.Store.Items.Delete(ctx, id)
	if err != nil {
		return s.storeError("delete menu item", err)
	}
	if item.ImageURL != "" {
		s.deleteImage(ctx, item.ImageURL)
	}
	s.after(ctx, notification.NewMessageBuilder(notification.TypeMenuItem, notification.ActionDeleted).WithID(id).Build(), menuCacheKeys...)
	return nil
}

func (s *MenuService) deleteImage(ctx context.Context, url string) {
	if s.images == nil {
		return
	}
	if err := s.images.Delete(ctx, url); err != nil {
		s.Logger.Error("delete image %s: %v", url, err)
	}
}

func (s *MenuService) ReorderItems(ctx context.Context, in dto.ReorderItemsInput) ([]models.MenuItem, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Invalid or missing category", nil)
	}
	if !in.MenuType.Valid() {
		return nil, errors.NewAppError(errors.ErrCodeInvalidMenu, "Invalid or missing menuType", nil)
	}
	if len(in.OrderedIDs) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "orderedIds must be a non-empty array", nil)
	}
	cmd := commands.NewReorderItemsCommand(s.Store.Items, in.MenuType, category, in.OrderedIDs)
	event := notification.NewMessageBuilder(notification.TypeMenuItem, notification.ActionReordered).
		WithPayload(map[string]string{"menuType": string(in.MenuType), "category": category}).Build()
	if err := s.run(ctx, cmd, event, menuCacheKeys...); err != nil {
		return nil, s.storeError("reorder menu items", err)
	}
	return cmd.Result, nil
}

// ---- categories ----

func (s *MenuService) ListCategories(ctx context.Context, menuType *constants.MenuType) ([]models.MenuCategory, error) {
	all, err := readThrough(ctx, s.Cache, s.Logger, constants.CacheKeyCategories, s.CacheTTL, func() ([]models.MenuCategory, error) {
		return s.Store.Categories.List(ctx, nil)
	})
	if err != nil {
		return nil, s.storeError("list categories", err)
	}
	if menuType == nil {
		return all, nil
	}
	out := []models.MenuCategory{}
	for _, c := range all {
		if c.MenuType == *menuType {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MenuService) CreateCategory(ctx context.Context, in dto.CategoryInput) (*models.MenuCategory, error) {
	cat := &models.MenuCategory{Name: strings.TrimSpace(in.Name), MenuType: in.MenuType}
	if err := validator.ValidateCategory(cat); err != nil {
		return nil, err
	}
	if in.DisplayOrder != nil {
		cat.DisplayOrder = *in.DisplayOrder
	} else {
		existing, err := s.Store.Categories.List(ctx, &cat.MenuType)
		if err != nil {
			return nil, s.storeError("create category", err)
		}
		for _, c := range existing {
			if c.DisplayOrder >= cat.DisplayOrder {
				cat.DisplayOrder = c.DisplayOrder
			}
		}
		cat.DisplayOrder++
	}

	if err := s.Store.Categories.Create(ctx, cat); err != nil {
		return nil, s.storeError("create category", err)
	}
	s.after(ctx, notification.NewMessageBuilder(notification.TypeCategory, notification.ActionCreated).WithID(cat.ID).Build(), constants.CacheKeyCategories)
	return cat, nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, id uint, in dto.UpdateCategoryInput) (*models.MenuCategory, error) {
	cat, err := s.Store.Categories.Get(ctx, id)
	if err != nil {
		return nil, s.storeError("load category", err)
	}
	if in.Name != nil {
		cat.Name = strings.TrimSpace(*in.Name)
	}
	if in.MenuType != nil {
		cat.MenuType = *in.MenuType
	}
	if in.DisplayOrder != nil {
		cat.DisplayOrder = *in.DisplayOrder
	}
	if err := validator.ValidateCategory(cat); err != nil {
		return nil, err
	}
	if err := s.Store.Categories.Update(ctx, cat); err != nil {
		return nil, s.storeError("update category", err)
	}
	s.after(ctx, notification.NewMessageBuilder(notification.TypeCategory, notification.ActionUpdated).WithID(cat.ID).Build(), constants.CacheKeyCategories)
	return cat, nil
}

// DeleteCategory chỉ xóa danh mục, các món vẫn giữ tên category cũ
func (s *MenuService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.Store.Categories.Delete(ctx, id); err != nil {
		return s.storeError("delete category", err)
	}
	s.after(ctx, notification.NewMessageBuilder(notification.TypeCategory, notification.ActionDeleted).WithID(id).Build(), constants.CacheKeyCategories)
	return nil
}

func (s *MenuService) ReorderCategories(ctx context.Context, in dto.ReorderCategoriesInput) ([]models.MenuCategory, error) {
	if !in.MenuType.Valid() {
		return nil, errors.NewAppError(errors.ErrCodeInvalidMenu, "Invalid or missing menuType", nil)
	}
	if len(in.OrderedIDs) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "orderedIds must be a non-empty array", nil)
	}
	cmd := commands.NewReorderCategoriesCommand(s.Store.Categories, in.MenuType, in.OrderedIDs)
	event := notification.NewMessageBuilder(notification.TypeCategory, notification.ActionReordered).
		WithPayload(map[string]string{"menuType": string(in.MenuType)}).Build()
	if err := s.run(ctx, cmd, event, constants.CacheKeyCategories); err != nil {
		return nil, s.storeError("reorder categories", err)
	}
	return cmd.Result, nil
}

// ---- status ----

func (s *MenuService) ListStatus(ctx context.Context) ([]models.MenuStatus, error) {
	statuses, err := readThrough(ctx, s.Cache, s.Logger, constants.CacheKeyMenuStatus, s.CacheTTL, func() ([]models.MenuStatus, error) {
		return s.Store.MenuStatus.List(ctx)
	})
	return statuses, s.storeError("list menu status", err)
}

// EnabledMenuTypes trả về các menu type đang bật theo thứ tự breakfast, lunch, dinner
func (s *MenuService) EnabledMenuTypes(ctx context.Context) ([]constants.MenuType, error) {
	statuses, err := s.ListStatus(ctx)
	if err != nil {
		return nil, err
	}
	return display.EnabledMenuTypes(statuses), nil
}

func (s *MenuService) SetStatus(ctx context.Context, menuType constants.MenuType, enabled bool) ([]models.MenuStatus, error) {
	cmd := commands.NewSetMenuStatusCommand(s.Store.MenuStatus, menuType, enabled)
	event := notification.NewMessageBuilder(notification.TypeMenuStatus, notification.ActionUpdated).
		WithPayload(map[string]interface{}{"menuType": menuType, "isEnabled": enabled}).Build()
	if err := s.run(ctx, cmd, event, constants.CacheKeyMenuStatus); err != nil {
		return nil, s.storeError("update menu status", err)
	}
	return cmd.Result, nil
}

// ---- public display ----

// Display trả về menu public của menu type được chọn.
// selected rỗng thì chọn theo DefaultMenuType.
func (s *MenuService) Display(ctx context.Context, selected string) (*dto.MenuDisplay, error) {
	enabled, err := s.EnabledMenuTypes(ctx)
	if err != nil {
		return nil, err
	}

	menuType := constants.MenuType(strings.ToLower(strings.TrimSpace(selected)))
	if menuType == "" {
		menuType = display.DefaultMenuType(enabled)
	} else if !menuType.Valid() {
		return nil, errors.NewAppError(errors.ErrCodeInvalidMenu, "Menu type must be breakfast, lunch or dinner", nil)
	}

	items, err := s.ListItems(ctx, nil)
	if err != nil {
		return nil, err
	}
	filtered := display.FilterMenu(items, menuType, enabled)
	return &dto.MenuDisplay{
		Selected:   menuType,
		Enabled:    enabled,
		Categories: display.Categories(filtered),
		Items:      filtered,
	}, nil
}
