package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"webstore/controllers"
	"webstore/models"
	"webstore/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// ---- concrete mock implementing services.OrderService ----

type mockOrderSvc struct {
	order       *models.Order
	orders      []models.Order
	createErr   *services.ServiceError
	updateErr   *services.ServiceError
	getErr      *services.ServiceError
	listErr     *services.ServiceError
	processErr  *services.ServiceError
	cancelErr   *services.ServiceError
	completeErr *services.ServiceError
}

func (m *mockOrderSvc) Create(_ context.Context, _ *models.OrderRequest) (*models.Order, *services.ServiceError) {
	return m.order, m.createErr
}
func (m *mockOrderSvc) Update(_ context.Context, _ uint, _ *models.OrderRequest) (*models.Order, *services.ServiceError) {
	return m.order, m.updateErr
}
func (m *mockOrderSvc) Get(_ context.Context, _ uint) (*models.Order, *services.ServiceError) {
	return m.order, m.getErr
}
func (m *mockOrderSvc) List(_ context.Context, _ *uint) ([]models.Order, *services.ServiceError) {
	return m.orders, m.listErr
}
func (m *mockOrderSvc) Process(_ context.Context, _ uint) *services.ServiceError {
	return m.processErr
}
func (m *mockOrderSvc) Cancel(_ context.Context, _ uint) *services.ServiceError {
	return m.cancelErr
}
func (m *mockOrderSvc) Complete(_ context.Context, _ uint) *services.ServiceError {
	return m.completeErr
}

func setupOrderRouter(svc services.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := controllers.NewOrderController(svc)

	r.GET("/api/orders", c.List)
	r.GET("/api/orders/:id", c.Get)
	r.POST("/api/orders", c.Create)
	r.PUT("/api/orders/:id", c.Update)
	r.POST("/api/orders/:id/process", c.Process)
	r.POST("/api/orders/:id/cancel", c.Cancel)
	r.POST("/api/orders/:id/complete", c.Complete)
	return r
}

// ---- tests ----

func TestOrderCreate_Success(t *testing.T) {
	svc := &mockOrderSvc{order: &models.Order{
		ID: 1, CustomerID: 7,
		TotalAmount: decimal.RequireFromString("27.80"),
		Status:      models.OrderStatusPending,
	}}
	r := setupOrderRouter(svc)

	body := models.OrderRequest{
		CustomerID: 7,
		Items: []models.OrderItemRequest{
			{ProductID: 1, Quantity: 4, UnitPrice: 2.50},
		},
	}
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Contains(t, resp, "order")
}

func TestOrderCreate_MissingCustomerRejected(t *testing.T) {
	r := setupOrderRouter(&mockOrderSvc{})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte(`{"items":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderCreate_NegativeQuantityRejected(t *testing.T) {
	r := setupOrderRouter(&mockOrderSvc{})

	body := []byte(`{"customer_id":7,"items":[{"product_id":1,"quantity":-2,"unit_price":2.5}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderGet_NotFound(t *testing.T) {
	svc := &mockOrderSvc{getErr: &services.ServiceError{StatusCode: 404, Message: "Order not found"}}
	r := setupOrderRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/42", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderGet_InvalidID(t *testing.T) {
	r := setupOrderRouter(&mockOrderSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderCancel_ConflictOnTerminalState(t *testing.T) {
	svc := &mockOrderSvc{cancelErr: &services.ServiceError{
		StatusCode: 409, Message: "Cannot move order from Completed to Cancelled",
	}}
	r := setupOrderRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/5/cancel", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Contains(t, resp["error"], "Cannot move order")
}

func TestOrderComplete_Success(t *testing.T) {
	r := setupOrderRouter(&mockOrderSvc{})

	req := httptest.NewRequest(http.MethodPost, "/api/orders/5/complete", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
