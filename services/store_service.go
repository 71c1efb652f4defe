package services

import (
	"context"
	"time"
	"webstore/models"
	"webstore/repository"

	"go.uber.org/zap"
)

// StoreService defines the business logic for stationary stores.
type StoreService interface {
	Create(ctx context.Context, req *models.StoreRequest) (*models.StationaryStore, *ServiceError)
	Update(ctx context.Context, id uint, req *models.StoreRequest) (*models.StationaryStore, *ServiceError)
	Get(ctx context.Context, id uint) (*models.StationaryStore, *ServiceError)
	List(ctx context.Context, filter repository.StoreFilter) ([]models.StationaryStore, *ServiceError)
	Activate(ctx context.Context, id uint) *ServiceError
	Deactivate(ctx context.Context, id uint) *ServiceError
}

type storeServiceImpl struct {
	repo   repository.StoreRepository
	logger *zap.Logger
}

// NewStoreService creates a new StoreService.
func NewStoreService(repo repository.StoreRepository, logger *zap.Logger) StoreService {
	return &storeServiceImpl{repo: repo, logger: logger}
}

func (s *storeServiceImpl) Create(ctx context.Context, req *models.StoreRequest) (*models.StationaryStore, *ServiceError) {
	store := &models.StationaryStore{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		AddressID: req.AddressID,
		IsActive:  true,
	}
	if req.OpeningDate != nil {
		store.OpeningDate = *req.OpeningDate
	} else {
		store.OpeningDate = time.Now()
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, store); err != nil {
		if isForeignKeyViolation(err) {
			return nil, &ServiceError{StatusCode: 400, Message: "Address does not exist"}
		}
		s.logger.Error("Failed to create store", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save store"}
	}

	s.logger.Info("Store created", zap.Uint("store_id", store.ID), zap.String("name", store.Name))
	return store, nil
}

func (s *storeServiceImpl) Update(ctx context.Context, id uint, req *models.StoreRequest) (*models.StationaryStore, *ServiceError) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Store not found"}
		}
		s.logger.Error("Failed to fetch store", zap.Uint("store_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch store"}
	}

	store.Name = req.Name
	store.Phone = req.Phone
	store.Email = req.Email
	store.AddressID = req.AddressID
	if req.OpeningDate != nil {
		store.OpeningDate = *req.OpeningDate
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, store); err != nil {
		s.logger.Error("Failed to update store", zap.Uint("store_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save store"}
	}
	return store, nil
}

func (s *storeServiceImpl) Get(ctx context.Context, id uint) (*models.StationaryStore, *ServiceError) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Store not found"}
		}
		s.logger.Error("Failed to fetch store", zap.Uint("store_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch store"}
	}
	return store, nil
}

func (s *storeServiceImpl) List(ctx context.Context, filter repository.StoreFilter) ([]models.StationaryStore, *ServiceError) {
	stores, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list stores", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list stores"}
	}
	return stores, nil
}

// Activate sets is_active on an existing store. Missing id yields 404.
func (s *storeServiceImpl) Activate(ctx context.Context, id uint) *ServiceError {
	return s.setActive(ctx, id, true)
}

// Deactivate clears is_active on an existing store. Missing id yields 404.
func (s *storeServiceImpl) Deactivate(ctx context.Context, id uint) *ServiceError {
	return s.setActive(ctx, id, false)
}

func (s *storeServiceImpl) setActive(ctx context.Context, id uint, active bool) *ServiceError {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return &ServiceError{StatusCode: 404, Message: "Store not found"}
		}
		s.logger.Error("Failed to fetch store", zap.Uint("store_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to update store"}
	}

	store.IsActive = active
	if err := s.repo.Update(ctx, store); err != nil {
		s.logger.Error("Failed to update store", zap.Uint("store_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to update store"}
	}

	s.logger.Info("Store active flag changed", zap.Uint("store_id", id), zap.Bool("is_active", active))
	return nil
}
