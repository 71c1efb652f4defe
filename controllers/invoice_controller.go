package controllers

import (
	"net/http"
	"webstore/models"
	"webstore/services"

	"github.com/gin-gonic/gin"
)

// InvoiceController handles HTTP requests for invoices.
type InvoiceController struct {
	invoiceService services.InvoiceService
}

// NewInvoiceController creates a new InvoiceController.
func NewInvoiceController(svc services.InvoiceService) *InvoiceController {
	return &InvoiceController{invoiceService: svc}
}

// List handles GET /api/invoices
func (ic *InvoiceController) List(ctx *gin.Context) {
	customerID := parseUintQuery(ctx, "customer_id")

	invoices, svcErr := ic.invoiceService.List(ctx.Request.Context(), customerID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// Get handles GET /api/invoices/:id
func (ic *InvoiceController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	invoice, svcErr := ic.invoiceService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// Create handles POST /api/invoices
func (ic *InvoiceController) Create(ctx *gin.Context) {
	var req models.InvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	invoice, svcErr := ic.invoiceService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

// Update handles PUT /api/invoices/:id
func (ic *InvoiceController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req models.InvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	invoice, svcErr := ic.invoiceService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// CreateFromOrder handles POST /api/invoices/from-order/:orderId
func (ic *InvoiceController) CreateFromOrder(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "orderId")
	if !ok {
		return
	}

	invoice, svcErr := ic.invoiceService.CreateFromOrder(ctx.Request.Context(), orderID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

// MarkPaid handles POST /api/invoices/:id/mark-paid
func (ic *InvoiceController) MarkPaid(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req models.MarkPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := ic.invoiceService.MarkPaid(ctx.Request.Context(), id, req.PaymentMethod); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Invoice marked as paid"})
}

// GenerateNumber handles GET /api/invoices/generate-number
func (ic *InvoiceController) GenerateNumber(ctx *gin.Context) {
	number, svcErr := ic.invoiceService.GenerateNumber(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"invoice_number": number})
}
