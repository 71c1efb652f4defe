package controllers

import (
	"net/http"
	"webstore/models"
	"webstore/services"

	"github.com/gin-gonic/gin"
)

// AddressController handles HTTP requests for customer addresses.
type AddressController struct {
	addressService services.AddressService
}

// NewAddressController creates a new AddressController.
func NewAddressController(svc services.AddressService) *AddressController {
	return &AddressController{addressService: svc}
}

// List handles GET /api/addresses
func (ac *AddressController) List(ctx *gin.Context) {
	customerID := parseUintQuery(ctx, "customer_id")

	addresses, svcErr := ac.addressService.List(ctx.Request.Context(), customerID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// Get handles GET /api/addresses/:id
func (ac *AddressController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	address, svcErr := ac.addressService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"address": address})
}

// Create handles POST /api/addresses
func (ac *AddressController) Create(ctx *gin.Context) {
	var req models.AddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	address, svcErr := ac.addressService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"address": address})
}

// Update handles PUT /api/addresses/:id
func (ac *AddressController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req models.AddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	address, svcErr := ac.addressService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"address": address})
}

// Delete handles DELETE /api/addresses/:id
func (ac *AddressController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if svcErr := ac.addressService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}

// SetDefault handles POST /api/addresses/:id/set-default
func (ac *AddressController) SetDefault(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if svcErr := ac.addressService.SetAsDefault(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Default address updated"})
}

// GetDefault handles GET /api/addresses/default/:customerId
func (ac *AddressController) GetDefault(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx, "customerId")
	if !ok {
		return
	}

	address, svcErr := ac.addressService.GetDefault(ctx.Request.Context(), customerID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"address": address})
}
