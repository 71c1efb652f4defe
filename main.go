package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"webstore/controllers"
	"webstore/database"
	"webstore/middleware"
	"webstore/repository"
	"webstore/routes"
	servicepkg "webstore/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if err := database.Connect(cfg.PostgresConfig(), logger); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	cache := database.ConnectRedis(cfg.RedisURL, logger)

	// Repository and DI chain
	userRepo := repository.NewGormUserRepository(database.DB)
	addressRepo := repository.NewGormAddressRepository(database.DB)
	categoryRepo := repository.NewGormCategoryRepository(database.DB)
	productRepo := repository.NewGormProductRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)
	invoiceRepo := repository.NewGormInvoiceRepository(database.DB)
	storeRepo := repository.NewGormStoreRepository(database.DB)

	authService := servicepkg.NewAuthService(userRepo, cfg.JWTSecret, logger)
	addressService := servicepkg.NewAddressService(addressRepo, logger)
	categoryService := servicepkg.NewCategoryService(categoryRepo, logger)
	productService := servicepkg.NewProductService(productRepo, cache, logger)
	orderService := servicepkg.NewOrderService(orderRepo, logger)
	invoiceService := servicepkg.NewInvoiceService(invoiceRepo, orderRepo, logger)
	storeService := servicepkg.NewStoreService(storeRepo, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "webstore"})
	})

	routes.RegisterRoutes(r, routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Address:  controllers.NewAddressController(addressService),
		Order:    controllers.NewOrderController(orderService),
		Invoice:  controllers.NewInvoiceController(invoiceService),
		Store:    controllers.NewStoreController(storeService),
		Product:  controllers.NewProductController(productService),
		Category: controllers.NewCategoryController(categoryService),
		Seed:     controllers.NewSeedController(database.DB),
	}, cfg.JWTSecret, strings.Split(cfg.AllowedOrigins, ","))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("WebStore server started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
