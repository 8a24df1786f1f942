package models

import (
	"time"

	"paju/constants"
)

type MenuItem struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	Title        string             `gorm:"not null" json:"title"`
	Description  string             `json:"description"`
	Price        float64            `gorm:"type:decimal(10,2);not null" json:"price"`
	Category     string             `gorm:"index:idx_menu_items_type_category" json:"category"`
	MenuType     constants.MenuType `gorm:"type:varchar(20);not null;index:idx_menu_items_type_category" json:"menuType"`
	ImageURL     string             `json:"imageUrl,omitempty"`
	IsAvailable  bool               `gorm:"not null" json:"isAvailable"`
	DisplayOrder int                `gorm:"default:0" json:"displayOrder"`
	CreatedAt    time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
}

type MenuCategory struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	Name         string             `gorm:"not null" json:"name"`
	MenuType     constants.MenuType `gorm:"type:varchar(20);not null;index" json:"menuType"`
	DisplayOrder int                `gorm:"default:0" json:"displayOrder"`
	CreatedAt    time.Time          `gorm:"autoCreateTime" json:"createdAt"`
}

// MenuStatus bật/tắt cả một menu (breakfast/lunch/dinner) trên trang public
type MenuStatus struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	MenuType  constants.MenuType `gorm:"type:varchar(20);uniqueIndex;not null" json:"menuType"`
	IsEnabled bool               `gorm:"not null" json:"isEnabled"`
	UpdatedAt time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (MenuStatus) TableName() string {
	return "menu_status"
}
