package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the invoice payment state.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
)

// Invoice is a per-order invoice. InvoiceNumber follows INV/YYYY/MM/NNNN
// with the sequence resetting each calendar month; the unique index is the
// backstop against concurrent generation.
type Invoice struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       uint            `gorm:"uniqueIndex;not null" json:"order_id"`
	InvoiceNumber string          `gorm:"type:varchar(32);uniqueIndex;not null" json:"invoice_number"`
	InvoiceDate   time.Time       `gorm:"not null" json:"invoice_date"`
	DueDate       time.Time       `gorm:"not null" json:"due_date"`
	SubTotal      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"sub_total"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"tax_amount"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_amount"`
	Status        InvoiceStatus   `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	PaymentMethod string          `gorm:"type:varchar(64)" json:"payment_method"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// InvoiceRequest is the payload for creating or updating an invoice.
type InvoiceRequest struct {
	OrderID       uint    `json:"order_id" binding:"required"`
	TaxAmount     float64 `json:"tax_amount" binding:"gte=0"`
	PaymentMethod string  `json:"payment_method" binding:"max=64"`
	Status        string  `json:"status" binding:"omitempty,oneof=Pending Paid"`
}

// MarkPaidRequest is the payload for POST /api/invoices/:id/mark-paid.
type MarkPaidRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,max=64"`
}
