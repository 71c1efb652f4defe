package repository

import (
	"context"
	"webstore/models"

	"gorm.io/gorm"
)

// AddressRepository defines data-access operations for customer addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *models.Address) error
	FindByID(ctx context.Context, id uint) (*models.Address, error)
	FindAll(ctx context.Context, customerID *uint) ([]models.Address, error)
	FindDefault(ctx context.Context, customerID uint) (*models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id uint) error
	ClearDefaults(ctx context.Context, customerID uint) error
	SetDefault(ctx context.Context, address *models.Address) error
}

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository.
func NewGormAddressRepository(db *gorm.DB) AddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) Create(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *GormAddressRepository) FindByID(ctx context.Context, id uint) (*models.Address, error) {
	var a models.Address
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAddressRepository) FindAll(ctx context.Context, customerID *uint) ([]models.Address, error) {
	var addresses []models.Address
	query := r.db.WithContext(ctx).Order("id")
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	if err := query.Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *GormAddressRepository) FindDefault(ctx context.Context, customerID uint) (*models.Address, error) {
	var a models.Address
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND is_default = ?", customerID, true).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAddressRepository) Update(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Save(address).Error
}

func (r *GormAddressRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Address{}, id).Error
}

// ClearDefaults unsets is_default on every address of the customer.
func (r *GormAddressRepository) ClearDefaults(ctx context.Context, customerID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Address{}).
		Where("customer_id = ?", customerID).
		Update("is_default", false).Error
}

// SetDefault clears the customer's other defaults and marks the given
// address default in a single transaction.
func (r *GormAddressRepository) SetDefault(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).
			Where("customer_id = ? AND id <> ?", address.CustomerID, address.ID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Address{}).
			Where("id = ?", address.ID).
			Update("is_default", true).Error
	})
}
