package services

import (
	"context"
	"time"
	"webstore/models"
	"webstore/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderService defines the business logic for orders: total computation at
// creation time and the status state machine.
type OrderService interface {
	Create(ctx context.Context, req *models.OrderRequest) (*models.Order, *ServiceError)
	Update(ctx context.Context, id uint, req *models.OrderRequest) (*models.Order, *ServiceError)
	Get(ctx context.Context, id uint) (*models.Order, *ServiceError)
	List(ctx context.Context, customerID *uint) ([]models.Order, *ServiceError)
	Process(ctx context.Context, id uint) *ServiceError
	Cancel(ctx context.Context, id uint) *ServiceError
	Complete(ctx context.Context, id uint) *ServiceError
}

type orderServiceImpl struct {
	repo   repository.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repository.OrderRepository, logger *zap.Logger) OrderService {
	return &orderServiceImpl{repo: repo, logger: logger}
}

// CalculateOrderTotal sums quantity * unit price across the items.
// An empty list yields zero. Negative values are rejected by request
// validation before this runs.
func CalculateOrderTotal(items []models.OrderItemRequest) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// Create persists a new order with its items. The total is computed here,
// once; later updates do not recompute it.
func (s *orderServiceImpl) Create(ctx context.Context, req *models.OrderRequest) (*models.Order, *ServiceError) {
	order := &models.Order{
		CustomerID:      req.CustomerID,
		OrderDate:       time.Now(),
		TotalAmount:     CalculateOrderTotal(req.Items),
		Status:          models.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		if isForeignKeyViolation(err) {
			return nil, &ServiceError{StatusCode: 400, Message: "Customer does not exist"}
		}
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
	}

	if len(req.Items) > 0 {
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			unitPrice := decimal.NewFromFloat(item.UnitPrice)
			items = append(items, models.OrderItem{
				OrderID:    order.ID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				UnitPrice:  unitPrice,
				TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
			})
		}
		if err := s.repo.AddItems(ctx, items); err != nil {
			s.logger.Error("Failed to add order items", zap.Uint("order_id", order.ID), zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
		}

		if err := s.repo.AddOrderProducts(ctx, bridgeRows(order.ID, req.Items)); err != nil {
			s.logger.Error("Failed to add order products", zap.Uint("order_id", order.ID), zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
		}
	}

	s.logger.Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("customer_id", order.CustomerID),
		zap.String("total", order.TotalAmount.StringFixed(2)),
	)

	created, err := s.repo.FindByID(ctx, order.ID)
	if err != nil {
		return order, nil
	}
	return created, nil
}

// bridgeRows collapses the item list into one order_products row per
// product; the composite key forbids duplicates.
func bridgeRows(orderID uint, items []models.OrderItemRequest) []models.OrderProduct {
	byProduct := make(map[uint]*models.OrderProduct)
	order := make([]uint, 0, len(items))
	for _, item := range items {
		unitPrice := decimal.NewFromFloat(item.UnitPrice)
		row, ok := byProduct[item.ProductID]
		if !ok {
			row = &models.OrderProduct{
				OrderID:   orderID,
				ProductID: item.ProductID,
				UnitPrice: unitPrice,
			}
			byProduct[item.ProductID] = row
			order = append(order, item.ProductID)
		}
		row.Quantity += item.Quantity
		row.TotalPrice = row.TotalPrice.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	rows := make([]models.OrderProduct, 0, len(byProduct))
	for _, productID := range order {
		rows = append(rows, *byProduct[productID])
	}
	return rows
}

// Update maps the payload onto an existing order. The stored total is left
// untouched; item edits after creation do not recompute it.
func (s *orderServiceImpl) Update(ctx context.Context, id uint, req *models.OrderRequest) (*models.Order, *ServiceError) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order", zap.Uint("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch order"}
	}

	order.CustomerID = req.CustomerID
	order.ShippingAddress = req.ShippingAddress
	order.BillingAddress = req.BillingAddress

	if err := s.repo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order", zap.Uint("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}
	return order, nil
}

func (s *orderServiceImpl) Get(ctx context.Context, id uint) (*models.Order, *ServiceError) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order", zap.Uint("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch order"}
	}
	return order, nil
}

func (s *orderServiceImpl) List(ctx context.Context, customerID *uint) ([]models.Order, *ServiceError) {
	orders, err := s.repo.FindAll(ctx, customerID)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list orders"}
	}
	return orders, nil
}

// Process moves the order to Processing if the state machine allows it.
func (s *orderServiceImpl) Process(ctx context.Context, id uint) *ServiceError {
	return s.transition(ctx, id, models.OrderStatusProcessing)
}

// Cancel moves the order to Cancelled if the state machine allows it.
func (s *orderServiceImpl) Cancel(ctx context.Context, id uint) *ServiceError {
	return s.transition(ctx, id, models.OrderStatusCancelled)
}

// Complete moves the order to Completed if the state machine allows it.
func (s *orderServiceImpl) Complete(ctx context.Context, id uint) *ServiceError {
	return s.transition(ctx, id, models.OrderStatusCompleted)
}

func (s *orderServiceImpl) transition(ctx context.Context, id uint, next models.OrderStatus) *ServiceError {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order", zap.Uint("order_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to fetch order"}
	}

	if !order.Status.CanTransitionTo(next) {
		return &ServiceError{
			StatusCode: 409,
			Message:    "Cannot move order from " + string(order.Status) + " to " + string(next),
		}
	}

	order.Status = next
	if err := s.repo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order status", zap.Uint("order_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to update order status"}
	}

	s.logger.Info("Order status changed", zap.Uint("order_id", id), zap.String("status", string(next)))
	return nil
}
