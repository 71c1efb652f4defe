package models

import "time"

// Category is a self-referencing product category tree. Parent assignment is
// validated in CategoryService so the tree stays acyclic.
type Category struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string `gorm:"type:varchar(128);not null" json:"name"`
	Description      string `gorm:"type:text" json:"description"`
	ParentCategoryID *uint  `gorm:"index" json:"parent_category_id,omitempty"`
	IsActive         bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	ParentCategory *Category  `gorm:"foreignKey:ParentCategoryID" json:"parent_category,omitempty"`
	SubCategories  []Category `gorm:"foreignKey:ParentCategoryID" json:"sub_categories,omitempty"`
}

// CategoryRequest is the payload for creating or updating a category.
type CategoryRequest struct {
	Name             string `json:"name" binding:"required,max=128"`
	Description      string `json:"description"`
	ParentCategoryID *uint  `json:"parent_category_id"`
	IsActive         *bool  `json:"is_active"`
}
