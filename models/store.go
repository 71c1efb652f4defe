package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StationaryStore is a physical store location.
type StationaryStore struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(128);not null" json:"name"`
	Phone       string    `gorm:"type:varchar(32)" json:"phone"`
	Email       string    `gorm:"type:varchar(128)" json:"email"`
	OpeningDate time.Time `json:"opening_date"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	AddressID   uint      `gorm:"index;not null" json:"address_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Address   *Address                  `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	Employees []StationaryStoreEmployee `gorm:"foreignKey:StationaryStoreID;constraint:OnDelete:CASCADE" json:"employees,omitempty"`
}

// StationaryStoreEmployee is a store staff member.
type StationaryStoreEmployee struct {
	ID                uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	StationaryStoreID uint            `gorm:"index;not null" json:"stationary_store_id"`
	FirstName         string          `gorm:"type:varchar(64);not null" json:"first_name"`
	LastName          string          `gorm:"type:varchar(64);not null" json:"last_name"`
	Email             string          `gorm:"type:varchar(128)" json:"email"`
	Phone             string          `gorm:"type:varchar(32)" json:"phone"`
	Position          string          `gorm:"type:varchar(64)" json:"position"`
	HireDate          time.Time       `json:"hire_date"`
	Salary            decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"salary"`
	IsActive          bool            `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// StoreRequest is the payload for creating or updating a store.
type StoreRequest struct {
	Name        string     `json:"name" binding:"required,max=128"`
	Phone       string     `json:"phone" binding:"max=32"`
	Email       string     `json:"email" binding:"omitempty,email"`
	OpeningDate *time.Time `json:"opening_date"`
	AddressID   uint       `json:"address_id" binding:"required"`
	IsActive    *bool      `json:"is_active"`
}
