package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"paju/constants"
	"paju/models"
)

// NewGormStore tạo store trên gorm (postgres hoặc sqlite)
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Items:         &gormItemRepo{db},
		Categories:    &gormCategoryRepo{db},
		MenuStatus:    &gormStatusRepo{db},
		Hours:         &gormHoursRepo{db},
		Announcements: &gormAnnouncementRepo{db},
		Users:         &gormUserRepo{db},
		Backend:       db.Dialector.Name(),
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Close: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// Migrate tạo/cập nhật bảng cho tất cả model
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.MenuItem{},
		&models.MenuCategory{},
		&models.MenuStatus{},
		&models.RestaurantHours{},
		&models.Announcement{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// translate map lỗi gorm sang lỗi của package
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

// first đọc một bản ghi theo id
func first[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var out T
	if err := db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// save ghi đè toàn bộ bản ghi đã tồn tại, giữ nguyên created_at
func save[T any](ctx context.Context, db *gorm.DB, id uint, value *T) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Omit("created_at").Save(value).Error)
	})
}

// ---- menu items ----

type gormItemRepo struct{ db *gorm.DB }

func (r *gormItemRepo) List(ctx context.Context, menuType *constants.MenuType) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	q := r.db.WithContext(ctx).Order("display_order, id")
	if menuType != nil {
		q = q.Where("menu_type = ?", *menuType)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormItemRepo) Get(ctx context.Context, id uint) (*models.MenuItem, error) {
	return first[models.MenuItem](ctx, r.db, id)
}

func (r *gormItemRepo) Create(ctx context.Context, item *models.MenuItem) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

func (r *gormItemRepo) Update(ctx context.Context, item *models.MenuItem) error {
	return save(ctx, r.db, item.ID, item)
}

func (r *gormItemRepo) Delete(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return translate(err)
		}
		return tx.Delete(&models.MenuItem{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormItemRepo) Reorder(ctx context.Context, menuType constants.MenuType, category string, ids []uint) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&models.MenuItem{}).
				Where("id = ? AND menu_type = ? AND category = ?", id, menuType, category).
				Update("display_order", i+1).Error; err != nil {
				return err
			}
		}
		return tx.Where("menu_type = ? AND category = ?", menuType, category).
			Order("display_order, id").Find(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ---- categories ----

type gormCategoryRepo struct{ db *gorm.DB }

func (r *gormCategoryRepo) List(ctx context.Context, menuType *constants.MenuType) ([]models.MenuCategory, error) {
	cats := []models.MenuCategory{}
	q := r.db.WithContext(ctx).Order("display_order, id")
	if menuType != nil {
		q = q.Where("menu_type = ?", *menuType)
	}
	if err := q.Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *gormCategoryRepo) Get(ctx context.Context, id uint) (*models.MenuCategory, error) {
	return first[models.MenuCategory](ctx, r.db, id)
}

func (r *gormCategoryRepo) Create(ctx context.Context, category *models.MenuCategory) error {
	return translate(r.db.WithContext(ctx).Create(category).Error)
}

func (r *gormCategoryRepo) Update(ctx context.Context, category *models.MenuCategory) error {
	return save(ctx, r.db, category.ID, category)
}

func (r *gormCategoryRepo) Delete(ctx context.Context, id uint) (*models.MenuCategory, error) {
	var cat models.MenuCategory
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, id).Error; err != nil {
			return translate(err)
		}
		return tx.Delete(&models.MenuCategory{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *gormCategoryRepo) Reorder(ctx context.Context, menuType constants.MenuType, ids []uint) ([]models.MenuCategory, error) {
	cats := []models.MenuCategory{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&models.MenuCategory{}).
				Where("id = ? AND menu_type = ?", id, menuType).
				Update("display_order", i+1).Error; err != nil {
				return err
			}
		}
		return tx.Where("menu_type = ?", menuType).Order("display_order, id").Find(&cats).Error
	})
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// ---- menu status ----

type gormStatusRepo struct{ db *gorm.DB }

func (r *gormStatusRepo) list(db *gorm.DB) ([]models.MenuStatus, error) {
	statuses := []models.MenuStatus{}
	if err := db.Find(&statuses).Error; err != nil {
		return nil, err
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return menuRank(statuses[i].MenuType) < menuRank(statuses[j].MenuType)
	})
	return statuses, nil
}

func menuRank(m constants.MenuType) int {
	for i, v := range constants.MenuTypes {
		if v == m {
			return i
		}
	}
	return len(constants.MenuTypes)
}

func (r *gormStatusRepo) List(ctx context.Context) ([]models.MenuStatus, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *gormStatusRepo) Set(ctx context.Context, menuType constants.MenuType, enabled bool) ([]models.MenuStatus, error) {
	if !menuType.Valid() {
		return nil, ErrInvalidMenuType
	}
	var out []models.MenuStatus
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var status models.MenuStatus
		err := tx.Where("menu_type = ?", menuType).First(&status).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			status = models.MenuStatus{MenuType: menuType, IsEnabled: enabled}
			if err := tx.Create(&status).Error; err != nil {
				return translate(err)
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&status).Update("is_enabled", enabled).Error; err != nil {
				return err
			}
		}
		var err2 error
		out, err2 = r.list(tx)
		return err2
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ---- hours ----

type gormHoursRepo struct{ db *gorm.DB }

func (r *gormHoursRepo) List(ctx context.Context) ([]models.RestaurantHours, error) {
	days := []models.RestaurantHours{}
	if err := r.db.WithContext(ctx).Find(&days).Error; err != nil {
		return nil, err
	}
	sortWeek(days)
	return days, nil
}

func (r *gormHoursRepo) Get(ctx context.Context, id uint) (*models.RestaurantHours, error) {
	return first[models.RestaurantHours](ctx, r.db, id)
}

func (r *gormHoursRepo) Create(ctx context.Context, hours *models.RestaurantHours) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.RestaurantHours{}).
		Where("day_of_week = ?", hours.DayOfWeek).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicate
	}
	return translate(r.db.WithContext(ctx).Create(hours).Error)
}

func (r *gormHoursRepo) Update(ctx context.Context, hours *models.RestaurantHours) error {
	return save(ctx, r.db, hours.ID, hours)
}

func (r *gormHoursRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.RestaurantHours{}).Count(&n).Error
	return n, err
}

// ---- announcements ----

type gormAnnouncementRepo struct{ db *gorm.DB }

func (r *gormAnnouncementRepo) List(ctx context.Context) ([]models.Announcement, error) {
	list := []models.Announcement{}
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *gormAnnouncementRepo) ListActive(ctx context.Context, now time.Time) ([]models.Announcement, error) {
	list := []models.Announcement{}
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return lessActive(list[i], list[j]) })
	return list, nil
}

func (r *gormAnnouncementRepo) Get(ctx context.Context, id uint) (*models.Announcement, error) {
	return first[models.Announcement](ctx, r.db, id)
}

func (r *gormAnnouncementRepo) Create(ctx context.Context, a *models.Announcement) error {
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

func (r *gormAnnouncementRepo) Update(ctx context.Context, a *models.Announcement) error {
	return save(ctx, r.db, a.ID, a)
}

func (r *gormAnnouncementRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Announcement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- users ----

type gormUserRepo struct{ db *gorm.DB }

func (r *gormUserRepo) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *gormUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return first[models.User](ctx, r.db, id)
}

func (r *gormUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepo) usernameTaken(ctx context.Context, username string, exceptID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? AND id <> ?", username, exceptID).Count(&n).Error
	return n > 0, err
}

func (r *gormUserRepo) Create(ctx context.Context, user *models.User) error {
	taken, err := r.usernameTaken(ctx, user.Username, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicate
	}
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *gormUserRepo) Update(ctx context.Context, user *models.User) error {
	taken, err := r.usernameTaken(ctx, user.Username, user.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicate
	}
	return save(ctx, r.db, user.ID, user)
}

func (r *gormUserRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormUserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}
