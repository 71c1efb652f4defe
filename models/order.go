package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// orderTransitions is the allowed state machine. Completed and Cancelled are
// terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// CanTransitionTo reports whether the status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether the status is one of the known states.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Order is a customer order. TotalAmount is computed from items once at
// creation and is not recomputed when the order is updated later.
type Order struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID      uint            `gorm:"index;not null" json:"customer_id"`
	OrderDate       time.Time       `gorm:"not null" json:"order_date"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_amount"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	ShippingAddress string          `gorm:"type:varchar(256)" json:"shipping_address"`
	BillingAddress  string          `gorm:"type:varchar(256)" json:"billing_address"`
	InvoiceID       *uint           `gorm:"uniqueIndex" json:"invoice_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Customer      *User          `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	OrderItems    []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items,omitempty"`
	OrderProducts []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_products,omitempty"`
}

// OrderItem is a line on an order. TotalPrice = Quantity * UnitPrice.
type OrderItem struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    uint            `gorm:"index;not null" json:"order_id"`
	ProductID  uint            `gorm:"index;not null" json:"product_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// OrderProduct is the many-to-many bridge between orders and products,
// kept independent of OrderItem.
type OrderProduct struct {
	OrderID    uint            `gorm:"primaryKey" json:"order_id"`
	ProductID  uint            `gorm:"primaryKey" json:"product_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_price"`
}

// OrderItemRequest is one line of an order payload.
type OrderItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

// OrderRequest is the payload for creating or updating an order.
type OrderRequest struct {
	CustomerID      uint               `json:"customer_id" binding:"required"`
	ShippingAddress string             `json:"shipping_address" binding:"max=256"`
	BillingAddress  string             `json:"billing_address" binding:"max=256"`
	Items           []OrderItemRequest `json:"items" binding:"dive"`
}
