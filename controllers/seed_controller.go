package controllers

import (
	"net/http"
	"time"
	"webstore/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedController inserts a demo dataset for the frontend: suppliers,
// categories, products with stock, a customer with addresses, one order with
// items, and its invoice.
type SeedController struct {
	db *gorm.DB
}

// NewSeedController creates a new SeedController.
func NewSeedController(db *gorm.DB) *SeedController {
	return &SeedController{db: db}
}

// Seed handles POST /api/seed. Running it twice is a no-op; the check is on
// the demo customer's email.
func (sc *SeedController) Seed(ctx *gin.Context) {
	db := sc.db.WithContext(ctx.Request.Context())

	var existing int64
	if err := db.Model(&models.User{}).Where("email = ?", "jan.kowalski@example.com").Count(&existing).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed database"})
		return
	}
	if existing > 0 {
		ctx.JSON(http.StatusOK, gin.H{"message": "Database already seeded"})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		supplier := models.Supplier{
			CompanyName: "Paper Goods Sp. z o.o.",
			ContactName: "Anna Nowak",
			Email:       "contact@papergoods.example.com",
			Phone:       "+48 22 555 0101",
			City:        "Warsaw",
			Country:     "Poland",
			IsActive:    true,
		}
		if err := tx.Create(&supplier).Error; err != nil {
			return err
		}

		office := models.Category{Name: "Office Supplies", Description: "General office supplies", IsActive: true}
		if err := tx.Create(&office).Error; err != nil {
			return err
		}
		writing := models.Category{Name: "Writing", Description: "Pens, pencils, markers", ParentCategoryID: &office.ID, IsActive: true}
		if err := tx.Create(&writing).Error; err != nil {
			return err
		}

		products := []models.Product{
			{
				Name:       "Ballpoint Pen",
				Price:      decimal.RequireFromString("2.50"),
				SKU:        "PEN-001",
				CategoryID: writing.ID,
				SupplierID: supplier.ID,
				IsActive:   true,
				Stock:      &models.ProductStock{Quantity: 500, Reserved: 20, Available: 480, Location: "A-01"},
			},
			{
				Name:       "A4 Notebook",
				Price:      decimal.RequireFromString("8.90"),
				SKU:        "NTB-001",
				CategoryID: office.ID,
				SupplierID: supplier.ID,
				IsActive:   true,
				Stock:      &models.ProductStock{Quantity: 200, Reserved: 0, Available: 200, Location: "B-03"},
			},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		customerNumber := "CUST-00001"
		customer := models.User{
			FirstName:      "Jan",
			LastName:       "Kowalski",
			Email:          "jan.kowalski@example.com",
			PasswordHash:   string(hash),
			Role:           models.RoleCustomer,
			IsActive:       true,
			CustomerNumber: &customerNumber,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}

		addresses := []models.Address{
			{Street: "ul. Marszałkowska 1", City: "Warsaw", PostalCode: "00-001", Country: "Poland", IsDefault: true, CustomerID: customer.ID},
			{Street: "ul. Długa 15", City: "Kraków", PostalCode: "31-146", Country: "Poland", CustomerID: customer.ID},
		}
		if err := tx.Create(&addresses).Error; err != nil {
			return err
		}

		now := time.Now()
		order := models.Order{
			CustomerID:      customer.ID,
			OrderDate:       now,
			TotalAmount:     decimal.RequireFromString("46.80"),
			Status:          models.OrderStatusPending,
			ShippingAddress: "ul. Marszałkowska 1, 00-001 Warsaw",
			BillingAddress:  "ul. Marszałkowska 1, 00-001 Warsaw",
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := []models.OrderItem{
			{
				OrderID:    order.ID,
				ProductID:  products[0].ID,
				Quantity:   4,
				UnitPrice:  products[0].Price,
				TotalPrice: products[0].Price.Mul(decimal.NewFromInt(4)),
			},
			{
				OrderID:    order.ID,
				ProductID:  products[1].ID,
				Quantity:   4,
				UnitPrice:  products[1].Price,
				TotalPrice: products[1].Price.Mul(decimal.NewFromInt(4)),
			},
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		bridge := make([]models.OrderProduct, 0, len(items))
		for _, item := range items {
			bridge = append(bridge, models.OrderProduct{
				OrderID:    item.OrderID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				TotalPrice: item.TotalPrice,
			})
		}
		if err := tx.Create(&bridge).Error; err != nil {
			return err
		}

		tax := order.TotalAmount.Mul(decimal.RequireFromString("0.23")).Round(2)
		invoice := models.Invoice{
			OrderID:       order.ID,
			InvoiceNumber: "INV/" + now.Format("2006/01") + "/0001",
			InvoiceDate:   now,
			DueDate:       now.AddDate(0, 0, 30),
			SubTotal:      order.TotalAmount,
			TaxAmount:     tax,
			TotalAmount:   order.TotalAmount.Add(tax),
			Status:        models.InvoiceStatusPending,
			PaymentMethod: "Bank Transfer",
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		order.InvoiceID = &invoice.ID
		return tx.Save(&order).Error
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed database"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Database seeded"})
}
