package controllers

import (
	"net/http"
	"strconv"
	"webstore/models"
	"webstore/repository"
	"webstore/services"

	"github.com/gin-gonic/gin"
)

// StoreController handles HTTP requests for stationary stores.
type StoreController struct {
	storeService services.StoreService
}

// NewStoreController creates a new StoreController.
func NewStoreController(svc services.StoreService) *StoreController {
	return &StoreController{storeService: svc}
}

// List handles GET /api/stores
func (sc *StoreController) List(ctx *gin.Context) {
	var filter repository.StoreFilter
	if city := ctx.Query("city"); city != "" {
		filter.City = &city
	}
	if raw := ctx.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.Active = &active
		}
	}

	stores, svcErr := sc.storeService.List(ctx.Request.Context(), filter)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"stores": stores})
}

// Get handles GET /api/stores/:id
func (sc *StoreController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	store, svcErr := sc.storeService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"store": store})
}

// Create handles POST /api/stores
func (sc *StoreController) Create(ctx *gin.Context) {
	var req models.StoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	store, svcErr := sc.storeService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"store": store})
}

// Update handles PUT /api/stores/:id
func (sc *StoreController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req models.StoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	store, svcErr := sc.storeService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"store": store})
}

// Activate handles POST /api/stores/:id/activate
func (sc *StoreController) Activate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if svcErr := sc.storeService.Activate(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Store activated"})
}

// Deactivate handles POST /api/stores/:id/deactivate
func (sc *StoreController) Deactivate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if svcErr := sc.storeService.Deactivate(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Store deactivated"})
}
