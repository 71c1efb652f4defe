package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Deleting a product is restricted while order
// items or order-product rows still reference it; the database FK blocks it.
type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(128);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	SKU         string          `gorm:"type:varchar(32);uniqueIndex;not null" json:"sku"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	CategoryID  uint            `gorm:"index;not null" json:"category_id"`
	SupplierID  uint            `gorm:"index;not null" json:"supplier_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Category *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Supplier *Supplier     `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Stock    *ProductStock `gorm:"foreignKey:ProductID" json:"stock,omitempty"`
}

// ProductStock is the single stock record per product.
// Available is always quantity - reserved, recomputed on every write.
type ProductStock struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"uniqueIndex;not null" json:"product_id"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"`
	Reserved  int       `gorm:"not null;default:0" json:"reserved"`
	Available int       `gorm:"not null;default:0" json:"available"`
	Location  string    `gorm:"type:varchar(64)" json:"location"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Supplier provides products. Referenced products restrict its deletion.
type Supplier struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyName string `gorm:"type:varchar(128);not null" json:"company_name"`
	ContactName string `gorm:"type:varchar(64)" json:"contact_name"`
	Email       string `gorm:"type:varchar(128)" json:"email"`
	Phone       string `gorm:"type:varchar(32)" json:"phone"`
	City        string `gorm:"type:varchar(64)" json:"city"`
	Country     string `gorm:"type:varchar(64)" json:"country"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required,max=128"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	SKU         string  `json:"sku" binding:"required,max=32"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	SupplierID  uint    `json:"supplier_id" binding:"required"`
	IsActive    *bool   `json:"is_active"`
}

// StockRequest is the payload for PUT /api/products/:id/stock.
type StockRequest struct {
	Quantity int    `json:"quantity" binding:"gte=0"`
	Reserved int    `json:"reserved" binding:"gte=0"`
	Location string `json:"location" binding:"max=64"`
}
