package repository

import (
	"context"
	"strings"
	"webstore/models"

	"gorm.io/gorm"
)

// StoreFilter narrows store listings. Nil fields are ignored.
type StoreFilter struct {
	City   *string
	Active *bool
}

// StoreRepository defines data-access operations for stationary stores.
type StoreRepository interface {
	Create(ctx context.Context, store *models.StationaryStore) error
	FindByID(ctx context.Context, id uint) (*models.StationaryStore, error)
	FindAll(ctx context.Context, filter StoreFilter) ([]models.StationaryStore, error)
	Update(ctx context.Context, store *models.StationaryStore) error
}

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository.
func NewGormStoreRepository(db *gorm.DB) StoreRepository {
	return &GormStoreRepository{db: db}
}

func (r *GormStoreRepository) Create(ctx context.Context, store *models.StationaryStore) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *GormStoreRepository) FindByID(ctx context.Context, id uint) (*models.StationaryStore, error) {
	var s models.StationaryStore
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Employees").
		First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormStoreRepository) FindAll(ctx context.Context, filter StoreFilter) ([]models.StationaryStore, error) {
	var stores []models.StationaryStore
	query := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Employees").
		Order("stationary_stores.id")
	if filter.City != nil {
		query = query.
			Joins("JOIN addresses ON addresses.id = stationary_stores.address_id").
			Where("LOWER(addresses.city) LIKE ?", "%"+strings.ToLower(*filter.City)+"%")
	}
	if filter.Active != nil {
		query = query.Where("stationary_stores.is_active = ?", *filter.Active)
	}
	if err := query.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *GormStoreRepository) Update(ctx context.Context, store *models.StationaryStore) error {
	return r.db.WithContext(ctx).Save(store).Error
}
