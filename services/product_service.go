package services

import (
	"context"
	"encoding/json"
	"time"
	"webstore/models"
	"webstore/repository"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	productCacheKey = "products:all"
	productCacheTTL = 60 * time.Second
)

// ProductService defines the business logic for products and stock.
type ProductService interface {
	Create(ctx context.Context, req *models.ProductRequest) (*models.Product, *ServiceError)
	Update(ctx context.Context, id uint, req *models.ProductRequest) (*models.Product, *ServiceError)
	Get(ctx context.Context, id uint) (*models.Product, *ServiceError)
	List(ctx context.Context, categoryID *uint) ([]models.Product, *ServiceError)
	Delete(ctx context.Context, id uint) *ServiceError
	UpdateStock(ctx context.Context, productID uint, req *models.StockRequest) (*models.ProductStock, *ServiceError)
}

// productServiceImpl implements ProductService with an optional Redis
// read-through cache on the unfiltered listing. A nil client disables
// caching entirely.
type productServiceImpl struct {
	repo   repository.ProductRepository
	cache  *redis.Client
	logger *zap.Logger
}

// NewProductService creates a new ProductService. Pass a nil cache to run
// without Redis.
func NewProductService(repo repository.ProductRepository, cache *redis.Client, logger *zap.Logger) ProductService {
	return &productServiceImpl{repo: repo, cache: cache, logger: logger}
}

// Create persists a product together with its single stock record.
func (s *productServiceImpl) Create(ctx context.Context, req *models.ProductRequest) (*models.Product, *ServiceError) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		SKU:         req.SKU,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
		IsActive:    true,
		Stock:       &models.ProductStock{},
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if isDuplicate(err) {
			return nil, &ServiceError{StatusCode: 409, Message: "SKU already exists"}
		}
		if isForeignKeyViolation(err) {
			return nil, &ServiceError{StatusCode: 400, Message: "Category or supplier does not exist"}
		}
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save product"}
	}

	s.invalidateCache(ctx)
	s.logger.Info("Product created", zap.Uint("product_id", product.ID), zap.String("sku", product.SKU))
	return product, nil
}

func (s *productServiceImpl) Update(ctx context.Context, id uint, req *models.ProductRequest) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to fetch product", zap.Uint("product_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch product"}
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = decimal.NewFromFloat(req.Price)
	product.SKU = req.SKU
	product.CategoryID = req.CategoryID
	product.SupplierID = req.SupplierID
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, product); err != nil {
		if isDuplicate(err) {
			return nil, &ServiceError{StatusCode: 409, Message: "SKU already exists"}
		}
		s.logger.Error("Failed to update product", zap.Uint("product_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save product"}
	}

	s.invalidateCache(ctx)
	return product, nil
}

func (s *productServiceImpl) Get(ctx context.Context, id uint) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to fetch product", zap.Uint("product_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch product"}
	}
	return product, nil
}

// List returns products, read through the cache when no category filter is
// applied. Cache failures are logged and fall back to the database.
func (s *productServiceImpl) List(ctx context.Context, categoryID *uint) ([]models.Product, *ServiceError) {
	if s.cache != nil && categoryID == nil {
		if cached, err := s.cache.Get(ctx, productCacheKey).Result(); err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.repo.FindAll(ctx, categoryID)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list products"}
	}

	if s.cache != nil && categoryID == nil {
		if data, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, productCacheKey, data, productCacheTTL).Err(); err != nil {
				s.logger.Warn("Failed to cache product list", zap.Error(err))
			}
		}
	}
	return products, nil
}

// Delete removes a product unless order rows still reference it, in which
// case the restrictive FK surfaces as a conflict.
func (s *productServiceImpl) Delete(ctx context.Context, id uint) *ServiceError {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to fetch product", zap.Uint("product_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete product"}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return &ServiceError{StatusCode: 409, Message: "Product is referenced by existing orders"}
		}
		s.logger.Error("Failed to delete product", zap.Uint("product_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete product"}
	}

	s.invalidateCache(ctx)
	return nil
}

// UpdateStock writes the product's stock record, keeping
// available = quantity - reserved.
func (s *productServiceImpl) UpdateStock(ctx context.Context, productID uint, req *models.StockRequest) (*models.ProductStock, *ServiceError) {
	if req.Reserved > req.Quantity {
		return nil, &ServiceError{StatusCode: 400, Message: "Reserved cannot exceed quantity"}
	}

	if _, err := s.repo.FindByID(ctx, productID); err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to fetch product", zap.Uint("product_id", productID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update stock"}
	}

	stock, err := s.repo.FindStock(ctx, productID)
	if err != nil {
		if !isNotFound(err) {
			s.logger.Error("Failed to fetch stock", zap.Uint("product_id", productID), zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to update stock"}
		}
		stock = &models.ProductStock{ProductID: productID}
	}

	stock.Quantity = req.Quantity
	stock.Reserved = req.Reserved
	stock.Available = req.Quantity - req.Reserved
	if req.Location != "" {
		stock.Location = req.Location
	}

	if err := s.repo.SaveStock(ctx, stock); err != nil {
		s.logger.Error("Failed to save stock", zap.Uint("product_id", productID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update stock"}
	}

	s.invalidateCache(ctx)
	return stock, nil
}

func (s *productServiceImpl) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, productCacheKey).Err(); err != nil {
		s.logger.Warn("Failed to invalidate product cache", zap.Error(err))
	}
}
