package models

import "time"

// Address is a customer address. At most one address per customer carries
// is_default = true; AddressService enforces that on every write.
type Address struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Street     string `gorm:"type:varchar(128);not null" json:"street"`
	City       string `gorm:"type:varchar(64);not null" json:"city"`
	State      string `gorm:"type:varchar(64)" json:"state"`
	PostalCode string `gorm:"type:varchar(16);not null" json:"postal_code"`
	Country    string `gorm:"type:varchar(64);not null" json:"country"`
	IsDefault  bool   `gorm:"not null;default:false" json:"is_default"`
	CustomerID uint   `gorm:"index;not null" json:"customer_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Customer *User `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// AddressRequest is the payload for creating or updating an address.
type AddressRequest struct {
	Street     string `json:"street" binding:"required,max=128"`
	City       string `json:"city" binding:"required,max=64"`
	State      string `json:"state" binding:"max=64"`
	PostalCode string `json:"postal_code" binding:"required,max=16"`
	Country    string `json:"country" binding:"required,max=64"`
	IsDefault  bool   `json:"is_default"`
	CustomerID uint   `json:"customer_id" binding:"required"`
}
