package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole tags a user row. The customer-specific columns below are only
// populated when the role is RoleCustomer.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User is a role-tagged account row stored in Postgres. Customer-only data
// (customer number, spend totals) lives in nullable columns selected by Role.
type User struct {
	ID           uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string   `gorm:"type:varchar(64);not null" json:"first_name"`
	LastName     string   `gorm:"type:varchar(64);not null" json:"last_name"`
	Email        string   `gorm:"type:varchar(128);uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"type:varchar(128);not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	IsActive     bool     `gorm:"not null;default:true" json:"is_active"`

	// Customer payload, nil/zero for non-customer roles.
	CustomerNumber *string         `gorm:"type:varchar(32);uniqueIndex" json:"customer_number,omitempty"`
	TotalSpent     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_spent"`
	LastOrderDate  *time.Time      `json:"last_order_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Addresses []Address `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Orders    []Order   `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,max=64"`
	LastName  string `json:"last_name" binding:"required,max=64"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the public user fields.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
