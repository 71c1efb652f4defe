package services

import (
	"context"
	"webstore/models"
	"webstore/repository"

	"go.uber.org/zap"
)

// CategoryService defines the business logic for the category tree.
type CategoryService interface {
	Create(ctx context.Context, req *models.CategoryRequest) (*models.Category, *ServiceError)
	Update(ctx context.Context, id uint, req *models.CategoryRequest) (*models.Category, *ServiceError)
	Get(ctx context.Context, id uint) (*models.Category, *ServiceError)
	List(ctx context.Context) ([]models.Category, *ServiceError)
}

type categoryServiceImpl struct {
	repo   repository.CategoryRepository
	logger *zap.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repository.CategoryRepository, logger *zap.Logger) CategoryService {
	return &categoryServiceImpl{repo: repo, logger: logger}
}

func (s *categoryServiceImpl) Create(ctx context.Context, req *models.CategoryRequest) (*models.Category, *ServiceError) {
	if svcErr := s.validateParent(ctx, 0, req.ParentCategoryID); svcErr != nil {
		return nil, svcErr
	}

	category := &models.Category{
		Name:             req.Name,
		Description:      req.Description,
		ParentCategoryID: req.ParentCategoryID,
		IsActive:         true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save category"}
	}

	s.logger.Info("Category created", zap.Uint("category_id", category.ID), zap.String("name", category.Name))
	return category, nil
}

func (s *categoryServiceImpl) Update(ctx context.Context, id uint, req *models.CategoryRequest) (*models.Category, *ServiceError) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Category not found"}
		}
		s.logger.Error("Failed to fetch category", zap.Uint("category_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch category"}
	}

	if svcErr := s.validateParent(ctx, id, req.ParentCategoryID); svcErr != nil {
		return nil, svcErr
	}

	category.Name = req.Name
	category.Description = req.Description
	category.ParentCategoryID = req.ParentCategoryID
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, category); err != nil {
		s.logger.Error("Failed to update category", zap.Uint("category_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save category"}
	}
	return category, nil
}

func (s *categoryServiceImpl) Get(ctx context.Context, id uint) (*models.Category, *ServiceError) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Category not found"}
		}
		s.logger.Error("Failed to fetch category", zap.Uint("category_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch category"}
	}
	return category, nil
}

func (s *categoryServiceImpl) List(ctx context.Context) ([]models.Category, *ServiceError) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list categories"}
	}
	return categories, nil
}

// validateParent checks that the requested parent exists and that assigning
// it would not close a cycle. It walks the ancestor chain from the parent up;
// hitting selfID means the parent is a descendant of the category being
// updated. selfID 0 means a create, which cannot form a cycle.
func (s *categoryServiceImpl) validateParent(ctx context.Context, selfID uint, parentID *uint) *ServiceError {
	if parentID == nil {
		return nil
	}
	if selfID != 0 && *parentID == selfID {
		return &ServiceError{StatusCode: 400, Message: "Category cannot be its own parent"}
	}

	current := *parentID
	// Bounded walk so a corrupted tree cannot loop forever.
	for depth := 0; depth < 100; depth++ {
		parent, err := s.repo.FindByID(ctx, current)
		if err != nil {
			if isNotFound(err) {
				if current == *parentID {
					return &ServiceError{StatusCode: 400, Message: "Parent category does not exist"}
				}
				return nil
			}
			s.logger.Error("Failed to walk category ancestors", zap.Uint("category_id", current), zap.Error(err))
			return &ServiceError{StatusCode: 500, Message: "Failed to validate parent category"}
		}
		if parent.ParentCategoryID == nil {
			return nil
		}
		if selfID != 0 && *parent.ParentCategoryID == selfID {
			return &ServiceError{StatusCode: 400, Message: "Parent assignment would create a cycle"}
		}
		current = *parent.ParentCategoryID
	}
	return &ServiceError{StatusCode: 400, Message: "Category tree is too deep"}
}
