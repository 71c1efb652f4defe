package controllers

import (
	"context"
	"net/http"
	"webstore/models"
	"webstore/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for orders.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(svc services.OrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// List handles GET /api/orders
func (oc *OrderController) List(ctx *gin.Context) {
	customerID := parseUintQuery(ctx, "customer_id")

	orders, svcErr := oc.orderService.List(ctx.Request.Context(), customerID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": orders})
}

// Get handles GET /api/orders/:id
func (oc *OrderController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	order, svcErr := oc.orderService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// Create handles POST /api/orders
func (oc *OrderController) Create(ctx *gin.Context) {
	var req models.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orderService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"order": order})
}

// Update handles PUT /api/orders/:id
func (oc *OrderController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req models.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orderService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// Process handles POST /api/orders/:id/process
func (oc *OrderController) Process(ctx *gin.Context) {
	oc.transition(ctx, oc.orderService.Process, "Order is being processed")
}

// Cancel handles POST /api/orders/:id/cancel
func (oc *OrderController) Cancel(ctx *gin.Context) {
	oc.transition(ctx, oc.orderService.Cancel, "Order cancelled")
}

// Complete handles POST /api/orders/:id/complete
func (oc *OrderController) Complete(ctx *gin.Context) {
	oc.transition(ctx, oc.orderService.Complete, "Order completed")
}

func (oc *OrderController) transition(ctx *gin.Context, fn func(c context.Context, id uint) *services.ServiceError, message string) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if svcErr := fn(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}
