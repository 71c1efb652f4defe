package routes

import (
	"webstore/controllers"
	"webstore/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Controllers bundles everything RegisterRoutes wires up.
type Controllers struct {
	Auth     *controllers.AuthController
	Address  *controllers.AddressController
	Order    *controllers.OrderController
	Invoice  *controllers.InvoiceController
	Store    *controllers.StoreController
	Product  *controllers.ProductController
	Category *controllers.CategoryController
	Seed     *controllers.SeedController
}

// RegisterRoutes sets up the /api group: CORS and rate limiting on the whole
// group, JWT on mutating routes, admin on deletes and seeding.
func RegisterRoutes(r *gin.Engine, c Controllers, jwtSecret string, allowedOrigins []string) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")

	api := r.Group("/api")
	api.Use(cors.New(corsConfig))
	api.Use(middleware.RateLimitMiddleware(rate.Limit(20), 40))

	auth := middleware.AuthMiddleware(jwtSecret)
	admin := middleware.AdminOnly()

	api.POST("/auth/register", c.Auth.Register)
	api.POST("/auth/login", c.Auth.Login)

	addresses := api.Group("/addresses")
	{
		addresses.GET("", c.Address.List)
		addresses.GET("/:id", c.Address.Get)
		addresses.GET("/default/:customerId", c.Address.GetDefault)
		addresses.POST("", auth, c.Address.Create)
		addresses.PUT("/:id", auth, c.Address.Update)
		addresses.DELETE("/:id", auth, admin, c.Address.Delete)
		addresses.POST("/:id/set-default", auth, c.Address.SetDefault)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", c.Order.List)
		orders.GET("/:id", c.Order.Get)
		orders.POST("", auth, c.Order.Create)
		orders.PUT("/:id", auth, c.Order.Update)
		orders.POST("/:id/process", auth, c.Order.Process)
		orders.POST("/:id/cancel", auth, c.Order.Cancel)
		orders.POST("/:id/complete", auth, c.Order.Complete)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", c.Invoice.List)
		// Static route before the :id param so gin does not shadow it.
		invoices.GET("/generate-number", c.Invoice.GenerateNumber)
		invoices.GET("/:id", c.Invoice.Get)
		invoices.POST("", auth, c.Invoice.Create)
		invoices.PUT("/:id", auth, c.Invoice.Update)
		invoices.POST("/from-order/:orderId", auth, c.Invoice.CreateFromOrder)
		invoices.POST("/:id/mark-paid", auth, c.Invoice.MarkPaid)
	}

	stores := api.Group("/stores")
	{
		stores.GET("", c.Store.List)
		stores.GET("/:id", c.Store.Get)
		stores.POST("", auth, c.Store.Create)
		stores.PUT("/:id", auth, c.Store.Update)
		stores.POST("/:id/activate", auth, c.Store.Activate)
		stores.POST("/:id/deactivate", auth, c.Store.Deactivate)
	}

	products := api.Group("/products")
	{
		products.GET("", c.Product.List)
		products.GET("/:id", c.Product.Get)
		products.POST("", auth, c.Product.Create)
		products.PUT("/:id", auth, c.Product.Update)
		products.PUT("/:id/stock", auth, c.Product.UpdateStock)
		products.DELETE("/:id", auth, admin, c.Product.Delete)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", c.Category.List)
		categories.GET("/:id", c.Category.Get)
		categories.POST("", auth, c.Category.Create)
		categories.PUT("/:id", auth, c.Category.Update)
	}

	api.POST("/seed", auth, admin, c.Seed.Seed)
}
