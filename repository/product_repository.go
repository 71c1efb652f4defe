package repository

import (
	"context"
	"webstore/models"

	"gorm.io/gorm"
)

// ProductRepository defines data-access operations for products and stock.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindAll(ctx context.Context, categoryID *uint) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	FindStock(ctx context.Context, productID uint) (*models.ProductStock, error)
	SaveStock(ctx context.Context, stock *models.ProductStock) error
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		Preload("Stock").
		First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) FindAll(ctx context.Context, categoryID *uint) ([]models.Product, error) {
	var products []models.Product
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		Preload("Stock").
		Order("id")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product. The FK constraints from order_items and
// order_products are restrictive, so a referenced product fails here with a
// constraint violation rather than cascading.
func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, id).Error
}

func (r *GormProductRepository) FindStock(ctx context.Context, productID uint) (*models.ProductStock, error) {
	var s models.ProductStock
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormProductRepository) SaveStock(ctx context.Context, stock *models.ProductStock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}
