package services

import (
	"context"
	"fmt"

	"paju/builders"
	"paju/constants"
	"paju/display"
	"paju/models"
	"paju/repository"
	"paju/services/logger"
)

type SeedOptions struct {
	AdminPassword  string
	EditorPassword string
}

// SeedReport cho biết bảng nào đã được tạo dữ liệu mẫu
type SeedReport struct {
	Hours      int `json:"hours"`
	Categories int `json:"categories"`
	Items      int `json:"items"`
	Statuses   int `json:"statuses"`
	Users      int `json:"users"`
}

// Seeder tạo dữ liệu mặc định, bỏ qua bảng đã có dữ liệu
type Seeder struct {
	store  *repository.Store
	logger logger.Logger
	opts   SeedOptions
}

func NewSeeder(store *repository.Store, log logger.Logger, opts SeedOptions) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = "admin123"
	}
	if opts.EditorPassword == "" {
		opts.EditorPassword = "editor123"
	}
	return &Seeder{store: store, logger: log, opts: opts}
}

var defaultCategories = []models.MenuCategory{
	{Name: "Appetizers", MenuType: constants.MenuDinner, DisplayOrder: 1},
	{Name: "Main Courses", MenuType: constants.MenuDinner, DisplayOrder: 2},
	{Name: "Desserts", MenuType: constants.MenuDinner, DisplayOrder: 3},
	{Name: "Hot Breakfast", MenuType: constants.MenuBreakfast, DisplayOrder: 1},
	{Name: "Pastries", MenuType: constants.MenuBreakfast, DisplayOrder: 2},
	{Name: "Soups", MenuType: constants.MenuLunch, DisplayOrder: 1},
	{Name: "Entrees", MenuType: constants.MenuLunch, DisplayOrder: 2},
}

var sampleItems = []models.MenuItem{
	{Title: "Korean BBQ Bulgogi", Description: "Thinly sliced marinated beef grilled to perfection, served with steamed rice and banchan", Price: 28, Category: "Main Courses", MenuType: constants.MenuDinner},
	{Title: "Bibimbap", Description: "Traditional mixed rice bowl with seasoned vegetables, choice of protein, and gochujang", Price: 22, Category: "Main Courses", MenuType: constants.MenuDinner},
	{Title: "Kimchi Jjigae", Description: "Spicy kimchi stew with pork belly and tofu, served with steamed rice", Price: 18, Category: "Main Courses", MenuType: constants.MenuDinner},
	{Title: "Korean Fried Chicken", Description: "Crispy double-fried chicken wings with sweet and spicy glaze", Price: 16, Category: "Appetizers", MenuType: constants.MenuDinner},
	{Title: "Pajeon", Description: "Savory scallion pancake with dipping sauce", Price: 14, Category: "Appetizers", MenuType: constants.MenuDinner},
	{Title: "Hotteok", Description: "Sweet Korean pancake filled with brown sugar, cinnamon, and nuts", Price: 8, Category: "Desserts", MenuType: constants.MenuDinner},
	{Title: "Korean Toast", Description: "Fluffy sandwich with egg, cabbage, and special sauce", Price: 12, Category: "Hot Breakfast", MenuType: constants.MenuBreakfast},
	{Title: "Kimchi Pancake", Description: "Crispy pancake made with fermented kimchi", Price: 10, Category: "Hot Breakfast", MenuType: constants.MenuBreakfast},
	{Title: "Sweet Red Bean Bun", Description: "Soft steamed bun filled with sweet red bean paste", Price: 6, Category: "Pastries", MenuType: constants.MenuBreakfast},
	{Title: "Korean Corn Dog", Description: "Rice batter coated sausage on a stick", Price: 8, Category: "Entrees", MenuType: constants.MenuLunch},
	{Title: "Ramen Bowl", Description: "Rich pork bone broth with fresh noodles and toppings", Price: 16, Category: "Soups", MenuType: constants.MenuLunch},
}

// Seed chạy toàn bộ các bước, dừng ở lỗi đầu tiên
func (s *Seeder) Seed(ctx context.Context) (*SeedReport, error) {
	report := &SeedReport{}
	steps := []struct {
		name string
		run  func(context.Context) (int, error)
		dst  *int
	}{
		{"hours", s.seedHours, &report.Hours},
		{"categories", s.seedCategories, &report.Categories},
		{"menu items", s.seedItems, &report.Items},
		{"menu status", s.seedStatuses, &report.Statuses},
		{"users", s.seedUsers, &report.Users},
	}
	for _, step := range steps {
		n, err := step.run(ctx)
		if err != nil {
			s.logger.Error("seed %s: %v", step.name, err)
			return report, fmt.Errorf("seed %s: %w", step.name, err)
		}
		*step.dst = n
		if n > 0 {
			s.logger.Info("seeded %d %s", n, step.name)
		}
	}
	return report, nil
}

func (s *Seeder) seedHours(ctx context.Context) (int, error) {
	count, err := s.store.Hours.Count(ctx)
	if err != nil || count > 0 {
		return 0, err
	}
	week := builders.DefaultWeek()
	for i := range week {
		week[i].OpenTime, week[i].CloseTime = display.LegacyOpenClose(&week[i])
		if err := s.store.Hours.Create(ctx, &week[i]); err != nil {
			return i, err
		}
	}
	return len(week), nil
}

func (s *Seeder) seedCategories(ctx context.Context) (int, error) {
	existing, err := s.store.Categories.List(ctx, nil)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	for i, c := range defaultCategories {
		c := c
		if err := s.store.Categories.Create(ctx, &c); err != nil {
			return i, err
		}
	}
	return len(defaultCategories), nil
}

func (s *Seeder) seedItems(ctx context.Context) (int, error) {
	existing, err := s.store.Items.List(ctx, nil)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	order := map[string]int{}
	for i, it := range sampleItems {
		it := it
		key := string(it.MenuType) + "/" + it.Category
		order[key]++
		it.DisplayOrder = order[key]
		it.IsAvailable = true
		if err := s.store.Items.Create(ctx, &it); err != nil {
			return i, err
		}
	}
	return len(sampleItems), nil
}

// seedStatuses chỉ bật các menu chưa có dòng trạng thái
func (s *Seeder) seedStatuses(ctx context.Context) (int, error) {
	existing, err := s.store.MenuStatus.List(ctx)
	if err != nil {
		return 0, err
	}
	have := map[constants.MenuType]bool{}
	for _, st := range existing {
		have[st.MenuType] = true
	}
	n := 0
	for _, m := range constants.MenuTypes {
		if have[m] {
			continue
		}
		if _, err := s.store.MenuStatus.Set(ctx, m, true); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (s *Seeder) seedUsers(ctx context.Context) (int, error) {
	count, err := s.store.Users.Count(ctx)
	if err != nil || count > 0 {
		return 0, err
	}
	accounts := []struct{ username, password, role string }{
		{"admin", s.opts.AdminPassword, constants.RoleAdmin},
		{"editor", s.opts.EditorPassword, constants.RoleEditor},
	}
	for i, a := range accounts {
		hash, err := HashPassword(a.password)
		if err != nil {
			return i, err
		}
		user := &models.User{Username: a.username, PasswordHash: hash, Role: a.role, IsActive: true}
		if err := s.store.Users.Create(ctx, user); err != nil {
			return i, err
		}
	}
	return len(accounts), nil
}
