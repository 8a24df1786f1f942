package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"paju/constants"
	"paju/models"
)

// memoryDB là dữ liệu dùng chung của memory store, bảo vệ bởi một RWMutex.
// Giá trị trả ra luôn là bản copy để caller không sửa được state bên trong.
type memoryDB struct {
	mu sync.RWMutex

	items         map[uint]models.MenuItem
	categories    map[uint]models.MenuCategory
	statuses      map[constants.MenuType]models.MenuStatus
	hours         map[uint]models.RestaurantHours
	announcements map[uint]models.Announcement
	users         map[uint]models.User

	seq map[string]uint
	now func() time.Time
}

func (db *memoryDB) nextID(table string) uint {
	db.seq[table]++
	return db.seq[table]
}

// NewMemoryStore tạo store trong bộ nhớ, mất dữ liệu khi process dừng
func NewMemoryStore() *Store {
	db := &memoryDB{
		items:         make(map[uint]models.MenuItem),
		categories:    make(map[uint]models.MenuCategory),
		statuses:      make(map[constants.MenuType]models.MenuStatus),
		hours:         make(map[uint]models.RestaurantHours),
		announcements: make(map[uint]models.Announcement),
		users:         make(map[uint]models.User),
		seq:           make(map[string]uint),
		now:           time.Now,
	}
	return &Store{
		Items:         &memItemRepo{db},
		Categories:    &memCategoryRepo{db},
		MenuStatus:    &memStatusRepo{db},
		Hours:         &memHoursRepo{db},
		Announcements: &memAnnouncementRepo{db},
		Users:         &memUserRepo{db},
		Backend:       "memory",
		Close:         func() error { return nil },
	}
}

// ---- menu items ----

type memItemRepo struct{ db *memoryDB }

func sortItems(items []models.MenuItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].DisplayOrder != items[j].DisplayOrder {
			return items[i].DisplayOrder < items[j].DisplayOrder
		}
		return items[i].ID < items[j].ID
	})
}

func (r *memItemRepo) List(_ context.Context, menuType *constants.MenuType) ([]models.MenuItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := []models.MenuItem{}
	for _, it := range r.db.items {
		if menuType != nil && it.MenuType != *menuType {
			continue
		}
		out = append(out, it)
	}
	sortItems(out)
	return out, nil
}

func (r *memItemRepo) Get(_ context.Context, id uint) (*models.MenuItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	it, ok := r.db.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (r *memItemRepo) Create(_ context.Context, item *models.MenuItem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := r.db.now()
	item.ID = r.db.nextID("menu_items")
	item.CreatedAt, item.UpdatedAt = now, now
	r.db.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) Update(_ context.Context, item *models.MenuItem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	old, ok := r.db.items[item.ID]
	if !ok {
		return ErrNotFound
	}
	item.CreatedAt = old.CreatedAt
	item.UpdatedAt = r.db.now()
	r.db.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) Delete(_ context.Context, id uint) (*models.MenuItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	it, ok := r.db.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.db.items, id)
	return &it, nil
}

func (r *memItemRepo) Reorder(_ context.Context, menuType constants.MenuType, category string, ids []uint) ([]models.MenuItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := r.db.now()
	for i, id := range ids {
		it, ok := r.db.items[id]
		if !ok || it.MenuType != menuType || it.Category != category {
			continue
		}
		it.DisplayOrder = i + 1
		it.UpdatedAt = now
		r.db.items[id] = it
	}

	out := []models.MenuItem{}
	for _, it := range r.db.items {
		if it.MenuType == menuType && it.Category == category {
			out = append(out, it)
		}
	}
	sortItems(out)
	return out, nil
}

// ---- categories ----

type memCategoryRepo struct{ db *memoryDB }

func sortCategories(cats []models.MenuCategory) {
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].DisplayOrder != cats[j].DisplayOrder {
			return cats[i].DisplayOrder < cats[j].DisplayOrder
		}
		return cats[i].ID < cats[j].ID
	})
}

func (r *memCategoryRepo) List(_ context.Context, menuType *constants.MenuType) ([]models.MenuCategory, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := []models.MenuCategory{}
	for _, c := range r.db.categories {
		if menuType != nil && c.MenuType != *menuType {
			continue
		}
		out = append(out, c)
	}
	sortCategories(out)
	return out, nil
}

func (r *memCategoryRepo) Get(_ context.Context, id uint) (*models.MenuCategory, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *memCategoryRepo) Create(_ context.Context, category *models.MenuCategory) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	category.ID = r.db.nextID("menu_categories")
	category.CreatedAt = r.db.now()
	r.db.categories[category.ID] = *category
	return nil
}

func (r *memCategoryRepo) Update(_ context.Context, category *models.MenuCategory) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	old, ok := r.db.categories[category.ID]
	if !ok {
		return ErrNotFound
	}
	category.CreatedAt = old.CreatedAt
	r.db.categories[category.ID] = *category
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id uint) (*models.MenuCategory, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.db.categories, id)
	return &c, nil
}

func (r *memCategoryRepo) Reorder(_ context.Context, menuType constants.MenuType, ids []uint) ([]models.MenuCategory, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, id := range ids {
		c, ok := r.db.categories[id]
		if !ok || c.MenuType != menuType {
			continue
		}
		c.DisplayOrder = i + 1
		r.db.categories[id] = c
	}

	out := []models.MenuCategory{}
	for _, c := range r.db.categories {
		if c.MenuType == menuType {
			out = append(out, c)
		}
	}
	sortCategories(out)
	return out, nil
}

// ---- menu status ----

type memStatusRepo struct{ db *memoryDB }

func (r *memStatusRepo) list() []models.MenuStatus {
	out := []models.MenuStatus{}
	for _, m := range constants.MenuTypes {
		if s, ok := r.db.statuses[m]; ok {
			out = append(out, s)
		}
	}
	return out
}

func (r *memStatusRepo) List(_ context.Context) ([]models.MenuStatus, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.list(), nil
}

func (r *memStatusRepo) Set(_ context.Context, menuType constants.MenuType, enabled bool) ([]models.MenuStatus, error) {
	if !menuType.Valid() {
		return nil, ErrInvalidMenuType
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.statuses[menuType]
	if !ok {
		s = models.MenuStatus{ID: r.db.nextID("menu_status"), MenuType: menuType}
	}
	s.IsEnabled = enabled
	s.UpdatedAt = r.db.now()
	r.db.statuses[menuType] = s
	return r.list(), nil
}

// ---- hours ----

type memHoursRepo struct{ db *memoryDB }

func (r *memHoursRepo) List(_ context.Context) ([]models.RestaurantHours, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.RestaurantHours, 0, len(r.db.hours))
	for _, h := range r.db.hours {
		out = append(out, h.Clone())
	}
	sortWeek(out)
	return out, nil
}

func (r *memHoursRepo) Get(_ context.Context, id uint) (*models.RestaurantHours, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	h, ok := r.db.hours[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := h.Clone()
	return &c, nil
}

func (r *memHoursRepo) Create(_ context.Context, hours *models.RestaurantHours) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, h := range r.db.hours {
		if h.DayOfWeek == hours.DayOfWeek {
			return ErrDuplicate
		}
	}
	hours.ID = r.db.nextID("restaurant_hours")
	hours.UpdatedAt = r.db.now()
	r.db.hours[hours.ID] = hours.Clone()
	return nil
}

func (r *memHoursRepo) Update(_ context.Context, hours *models.RestaurantHours) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.hours[hours.ID]; !ok {
		return ErrNotFound
	}
	hours.UpdatedAt = r.db.now()
	r.db.hours[hours.ID] = hours.Clone()
	return nil
}

func (r *memHoursRepo) Count(_ context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return int64(len(r.db.hours)), nil
}

// ---- announcements ----

type memAnnouncementRepo struct{ db *memoryDB }

func (r *memAnnouncementRepo) List(_ context.Context) ([]models.Announcement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Announcement, 0, len(r.db.announcements))
	for _, a := range r.db.announcements {
		out = append(out, a)
	}
	sortNewest(out)
	return out, nil
}

func (r *memAnnouncementRepo) ListActive(_ context.Context, now time.Time) ([]models.Announcement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := []models.Announcement{}
	for _, a := range r.db.announcements {
		if a.ActiveAt(now) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessActive(out[i], out[j]) })
	return out, nil
}

func (r *memAnnouncementRepo) Get(_ context.Context, id uint) (*models.Announcement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	a, ok := r.db.announcements[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *memAnnouncementRepo) Create(_ context.Context, a *models.Announcement) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := r.db.now()
	a.ID = r.db.nextID("announcements")
	a.CreatedAt, a.UpdatedAt = now, now
	r.db.announcements[a.ID] = *a
	return nil
}

func (r *memAnnouncementRepo) Update(_ context.Context, a *models.Announcement) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	old, ok := r.db.announcements[a.ID]
	if !ok {
		return ErrNotFound
	}
	a.CreatedAt = old.CreatedAt
	a.UpdatedAt = r.db.now()
	r.db.announcements[a.ID] = *a
	return nil
}

func (r *memAnnouncementRepo) Delete(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.announcements[id]; !ok {
		return ErrNotFound
	}
	delete(r.db.announcements, id)
	return nil
}

// ---- users ----

type memUserRepo struct{ db *memoryDB }

func (r *memUserRepo) List(_ context.Context) ([]models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memUserRepo) usernameTaken(username string, exceptID uint) bool {
	for _, u := range r.db.users {
		if u.Username == username && u.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.usernameTaken(user.Username, 0) {
		return ErrDuplicate
	}
	now := r.db.now()
	user.ID = r.db.nextID("users")
	user.CreatedAt, user.UpdatedAt = now, now
	r.db.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	old, ok := r.db.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	if r.usernameTaken(user.Username, user.ID) {
		return ErrDuplicate
	}
	user.CreatedAt = old.CreatedAt
	user.UpdatedAt = r.db.now()
	r.db.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.db.users, id)
	return nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return int64(len(r.db.users)), nil
}
