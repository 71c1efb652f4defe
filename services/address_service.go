package services

import (
	"context"
	"webstore/models"
	"webstore/repository"

	"go.uber.org/zap"
)

// AddressService defines the business logic for customer addresses. The one
// invariant it owns: at most one address per customer has is_default = true.
type AddressService interface {
	Create(ctx context.Context, req *models.AddressRequest) (*models.Address, *ServiceError)
	Update(ctx context.Context, id uint, req *models.AddressRequest) (*models.Address, *ServiceError)
	Get(ctx context.Context, id uint) (*models.Address, *ServiceError)
	List(ctx context.Context, customerID *uint) ([]models.Address, *ServiceError)
	GetDefault(ctx context.Context, customerID uint) (*models.Address, *ServiceError)
	SetAsDefault(ctx context.Context, id uint) *ServiceError
	Delete(ctx context.Context, id uint) *ServiceError
}

type addressServiceImpl struct {
	repo   repository.AddressRepository
	logger *zap.Logger
}

// NewAddressService creates a new AddressService.
func NewAddressService(repo repository.AddressRepository, logger *zap.Logger) AddressService {
	return &addressServiceImpl{repo: repo, logger: logger}
}

// Create persists a new address. When the payload marks it default, every
// existing address of the customer is cleared first.
func (s *addressServiceImpl) Create(ctx context.Context, req *models.AddressRequest) (*models.Address, *ServiceError) {
	if req.IsDefault {
		if err := s.repo.ClearDefaults(ctx, req.CustomerID); err != nil {
			s.logger.Error("Failed to clear default addresses", zap.Uint("customer_id", req.CustomerID), zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to save address"}
		}
	}

	address := &models.Address{
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsDefault:  req.IsDefault,
		CustomerID: req.CustomerID,
	}

	if err := s.repo.Create(ctx, address); err != nil {
		if isForeignKeyViolation(err) {
			return nil, &ServiceError{StatusCode: 400, Message: "Customer does not exist"}
		}
		s.logger.Error("Failed to create address", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save address"}
	}

	s.logger.Info("Address created", zap.Uint("address_id", address.ID), zap.Uint("customer_id", address.CustomerID))
	return address, nil
}

// Update maps the payload onto an existing row, keeping the default-address
// invariant when the payload promotes the address.
func (s *addressServiceImpl) Update(ctx context.Context, id uint, req *models.AddressRequest) (*models.Address, *ServiceError) {
	address, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Address not found"}
		}
		s.logger.Error("Failed to fetch address", zap.Uint("address_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch address"}
	}

	if req.IsDefault && !address.IsDefault {
		if err := s.repo.ClearDefaults(ctx, req.CustomerID); err != nil {
			s.logger.Error("Failed to clear default addresses", zap.Uint("customer_id", req.CustomerID), zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to save address"}
		}
	}

	address.Street = req.Street
	address.City = req.City
	address.State = req.State
	address.PostalCode = req.PostalCode
	address.Country = req.Country
	address.IsDefault = req.IsDefault
	address.CustomerID = req.CustomerID

	if err := s.repo.Update(ctx, address); err != nil {
		s.logger.Error("Failed to update address", zap.Uint("address_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save address"}
	}
	return address, nil
}

func (s *addressServiceImpl) Get(ctx context.Context, id uint) (*models.Address, *ServiceError) {
	address, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Address not found"}
		}
		s.logger.Error("Failed to fetch address", zap.Uint("address_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch address"}
	}
	return address, nil
}

func (s *addressServiceImpl) List(ctx context.Context, customerID *uint) ([]models.Address, *ServiceError) {
	addresses, err := s.repo.FindAll(ctx, customerID)
	if err != nil {
		s.logger.Error("Failed to list addresses", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list addresses"}
	}
	return addresses, nil
}

func (s *addressServiceImpl) GetDefault(ctx context.Context, customerID uint) (*models.Address, *ServiceError) {
	address, err := s.repo.FindDefault(ctx, customerID)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Customer has no default address"}
		}
		s.logger.Error("Failed to fetch default address", zap.Uint("customer_id", customerID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch default address"}
	}
	return address, nil
}

// SetAsDefault makes the address the customer's only default. A missing id
// yields 404 and mutates nothing; both writes happen in one transaction.
func (s *addressServiceImpl) SetAsDefault(ctx context.Context, id uint) *ServiceError {
	address, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return &ServiceError{StatusCode: 404, Message: "Address not found"}
		}
		s.logger.Error("Failed to fetch address", zap.Uint("address_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to set default address"}
	}

	if err := s.repo.SetDefault(ctx, address); err != nil {
		s.logger.Error("Failed to set default address", zap.Uint("address_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to set default address"}
	}

	s.logger.Info("Default address set", zap.Uint("address_id", id), zap.Uint("customer_id", address.CustomerID))
	return nil
}

// Delete removes an address. Deleting the default does not promote another.
func (s *addressServiceImpl) Delete(ctx context.Context, id uint) *ServiceError {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return &ServiceError{StatusCode: 404, Message: "Address not found"}
		}
		s.logger.Error("Failed to fetch address", zap.Uint("address_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete address"}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return &ServiceError{StatusCode: 409, Message: "Address is still referenced"}
		}
		s.logger.Error("Failed to delete address", zap.Uint("address_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete address"}
	}
	return nil
}
