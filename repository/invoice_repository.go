package repository

import (
	"context"
	"time"
	"webstore/models"

	"gorm.io/gorm"
)

// InvoiceRepository defines data-access operations for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	FindByID(ctx context.Context, id uint) (*models.Invoice, error)
	FindAll(ctx context.Context, customerID *uint) ([]models.Invoice, error)
	Update(ctx context.Context, invoice *models.Invoice) error
	CountByMonth(ctx context.Context, year int, month time.Month) (int64, error)
}

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository.
func NewGormInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Order").
		Preload("Order.Customer").
		First(&inv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *GormInvoiceRepository) FindAll(ctx context.Context, customerID *uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	query := r.db.WithContext(ctx).
		Preload("Order").
		Preload("Order.Customer").
		Order("invoices.id")
	if customerID != nil {
		query = query.
			Joins("JOIN orders ON orders.id = invoices.order_id").
			Where("orders.customer_id = ?", *customerID)
	}
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *GormInvoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

// CountByMonth counts invoices whose invoice_date falls inside the given
// calendar month. Read fresh on every call; the unique index on
// invoice_number backstops concurrent generation.
func (r *GormInvoiceRepository) CountByMonth(ctx context.Context, year int, month time.Month) (int64, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("invoice_date >= ? AND invoice_date < ?", start, end).
		Count(&count).Error
	return count, err
}
