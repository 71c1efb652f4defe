package services_test

import (
	"context"
	"testing"
	"webstore/models"
	"webstore/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ---- mock repository ----

type mockOrderRepo struct {
	createErr        error
	findByIDOrder    *models.Order
	findByIDErr      error
	findAllOrders    []models.Order
	findAllErr       error
	updateErr        error
	addItemsErr      error
	addProductsErr   error
	createdOrder     *models.Order
	updatedOrder     *models.Order
	addedItems       []models.OrderItem
	addedOrderRows   []models.OrderProduct
}

func (m *mockOrderRepo) Create(_ context.Context, o *models.Order) error {
	if m.createErr == nil {
		o.ID = 1
		m.createdOrder = o
	}
	return m.createErr
}
func (m *mockOrderRepo) FindByID(_ context.Context, id uint) (*models.Order, error) {
	if m.findByIDErr != nil {
		return nil, m.findByIDErr
	}
	if m.findByIDOrder != nil {
		return m.findByIDOrder, nil
	}
	return m.createdOrder, nil
}
func (m *mockOrderRepo) FindAll(_ context.Context, _ *uint) ([]models.Order, error) {
	return m.findAllOrders, m.findAllErr
}
func (m *mockOrderRepo) Update(_ context.Context, o *models.Order) error {
	if m.updateErr == nil {
		m.updatedOrder = o
	}
	return m.updateErr
}
func (m *mockOrderRepo) AddItems(_ context.Context, items []models.OrderItem) error {
	m.addedItems = items
	return m.addItemsErr
}
func (m *mockOrderRepo) AddOrderProducts(_ context.Context, rows []models.OrderProduct) error {
	m.addedOrderRows = rows
	return m.addProductsErr
}

func newOrderService(repo *mockOrderRepo) services.OrderService {
	logger, _ := zap.NewDevelopment()
	return services.NewOrderService(repo, logger)
}

// ---- total computation ----

func TestCalculateOrderTotal_EmptyList(t *testing.T) {
	total := services.CalculateOrderTotal(nil)
	assert.True(t, total.IsZero())
}

func TestCalculateOrderTotal_SumsLines(t *testing.T) {
	items := []models.OrderItemRequest{
		{ProductID: 1, Quantity: 4, UnitPrice: 2.50},
		{ProductID: 2, Quantity: 2, UnitPrice: 8.90},
	}
	total := services.CalculateOrderTotal(items)
	assert.Equal(t, "27.80", total.StringFixed(2))
}

// ---- create / update ----

func TestOrderCreate_ComputesTotalOnce(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := newOrderService(repo)

	req := &models.OrderRequest{
		CustomerID: 7,
		Items: []models.OrderItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: 1000.00},
		},
	}
	order, svcErr := svc.Create(context.Background(), req)

	assert.Nil(t, svcErr)
	assert.NotNil(t, order)
	assert.Equal(t, "2000.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, repo.addedItems, 1)
	assert.Equal(t, "2000.00", repo.addedItems[0].TotalPrice.StringFixed(2))
}

func TestOrderCreate_DuplicateProductsCollapseInBridge(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := newOrderService(repo)

	req := &models.OrderRequest{
		CustomerID: 7,
		Items: []models.OrderItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: 10.00},
			{ProductID: 1, Quantity: 3, UnitPrice: 10.00},
		},
	}
	_, svcErr := svc.Create(context.Background(), req)

	assert.Nil(t, svcErr)
	assert.Len(t, repo.addedItems, 2)
	assert.Len(t, repo.addedOrderRows, 1)
	assert.Equal(t, 5, repo.addedOrderRows[0].Quantity)
	assert.Equal(t, "50.00", repo.addedOrderRows[0].TotalPrice.StringFixed(2))
}

func TestOrderUpdate_DoesNotRecomputeTotal(t *testing.T) {
	existing := &models.Order{
		ID:          5,
		CustomerID:  7,
		Status:      models.OrderStatusPending,
		TotalAmount: decimal.RequireFromString("150.00"),
	}
	repo := &mockOrderRepo{findByIDOrder: existing}
	svc := newOrderService(repo)

	req := &models.OrderRequest{
		CustomerID: 7,
		Items: []models.OrderItemRequest{
			{ProductID: 1, Quantity: 100, UnitPrice: 9.99},
		},
	}
	order, svcErr := svc.Update(context.Background(), 5, req)

	assert.Nil(t, svcErr)
	assert.Equal(t, "150.00", order.TotalAmount.StringFixed(2))
}

func TestOrderUpdate_NotFound(t *testing.T) {
	repo := &mockOrderRepo{findByIDErr: gorm.ErrRecordNotFound}
	svc := newOrderService(repo)

	_, svcErr := svc.Update(context.Background(), 42, &models.OrderRequest{CustomerID: 7})

	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

// ---- state machine ----

func TestOrderTransitions_PendingToProcessing(t *testing.T) {
	repo := &mockOrderRepo{findByIDOrder: &models.Order{ID: 5, Status: models.OrderStatusPending}}
	svc := newOrderService(repo)

	svcErr := svc.Process(context.Background(), 5)

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusProcessing, repo.updatedOrder.Status)
}

func TestOrderTransitions_ProcessingToCompleted(t *testing.T) {
	repo := &mockOrderRepo{findByIDOrder: &models.Order{ID: 5, Status: models.OrderStatusProcessing}}
	svc := newOrderService(repo)

	svcErr := svc.Complete(context.Background(), 5)

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusCompleted, repo.updatedOrder.Status)
}

func TestOrderTransitions_CompletedCannotBeCancelled(t *testing.T) {
	repo := &mockOrderRepo{findByIDOrder: &models.Order{ID: 5, Status: models.OrderStatusCompleted}}
	svc := newOrderService(repo)

	svcErr := svc.Cancel(context.Background(), 5)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
	assert.Nil(t, repo.updatedOrder)
}

func TestOrderTransitions_PendingCannotComplete(t *testing.T) {
	repo := &mockOrderRepo{findByIDOrder: &models.Order{ID: 5, Status: models.OrderStatusPending}}
	svc := newOrderService(repo)

	svcErr := svc.Complete(context.Background(), 5)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
}

func TestOrderTransitions_CancelledIsTerminal(t *testing.T) {
	repo := &mockOrderRepo{findByIDOrder: &models.Order{ID: 5, Status: models.OrderStatusCancelled}}
	svc := newOrderService(repo)

	svcErr := svc.Process(context.Background(), 5)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
}

func TestOrderCancel_NotFound(t *testing.T) {
	repo := &mockOrderRepo{findByIDErr: gorm.ErrRecordNotFound}
	svc := newOrderService(repo)

	svcErr := svc.Cancel(context.Background(), 42)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
