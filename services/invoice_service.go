package services

import (
	"context"
	"fmt"
	"time"
	"webstore/models"
	"webstore/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// vatRate is the fixed 23% VAT applied when deriving an invoice from an
	// order.
	vatRateStr = "0.23"

	// invoiceDueDays is how long after the invoice date payment is due.
	invoiceDueDays = 30

	// defaultPaymentMethod is the placeholder used for derived invoices
	// until the invoice is actually paid.
	defaultPaymentMethod = "Bank Transfer"

	// numberRetries bounds the recompute-and-retry loop when two requests
	// race for the same monthly sequence and hit the unique index.
	numberRetries = 3
)

var vatRate = decimal.RequireFromString(vatRateStr)

// InvoiceService defines the business logic for invoices: monthly sequence
// numbering, derivation from orders, and payment marking.
type InvoiceService interface {
	Create(ctx context.Context, req *models.InvoiceRequest) (*models.Invoice, *ServiceError)
	Update(ctx context.Context, id uint, req *models.InvoiceRequest) (*models.Invoice, *ServiceError)
	Get(ctx context.Context, id uint) (*models.Invoice, *ServiceError)
	List(ctx context.Context, customerID *uint) ([]models.Invoice, *ServiceError)
	CreateFromOrder(ctx context.Context, orderID uint) (*models.Invoice, *ServiceError)
	MarkPaid(ctx context.Context, id uint, paymentMethod string) *ServiceError
	GenerateNumber(ctx context.Context) (string, *ServiceError)
}

type invoiceServiceImpl struct {
	repo      repository.InvoiceRepository
	orderRepo repository.OrderRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(repo repository.InvoiceRepository, orderRepo repository.OrderRepository, logger *zap.Logger) InvoiceService {
	return &invoiceServiceImpl{repo: repo, orderRepo: orderRepo, logger: logger, now: time.Now}
}

// FormatInvoiceNumber renders INV/YYYY/MM/NNNN with a two-digit month and a
// four-digit sequence.
func FormatInvoiceNumber(year int, month time.Month, sequence int64) string {
	return fmt.Sprintf("INV/%d/%02d/%04d", year, int(month), sequence)
}

// GenerateNumber computes the next invoice number for the current month:
// count of this month's invoices plus one, read fresh from the database.
func (s *invoiceServiceImpl) GenerateNumber(ctx context.Context) (string, *ServiceError) {
	now := s.now()
	count, err := s.repo.CountByMonth(ctx, now.Year(), now.Month())
	if err != nil {
		s.logger.Error("Failed to count invoices for month", zap.Error(err))
		return "", &ServiceError{StatusCode: 500, Message: "Failed to generate invoice number"}
	}
	return FormatInvoiceNumber(now.Year(), now.Month(), count+1), nil
}

// Create persists a new invoice for an order. The sub-total comes from the
// order's stored total, the invoice total is sub-total plus tax, and the
// number is generated here. A duplicate-number conflict (two requests racing
// in the same month) is retried with a recomputed sequence.
func (s *invoiceServiceImpl) Create(ctx context.Context, req *models.InvoiceRequest) (*models.Invoice, *ServiceError) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order for invoice", zap.Uint("order_id", req.OrderID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create invoice"}
	}

	status := models.InvoiceStatusPending
	if req.Status != "" {
		status = models.InvoiceStatus(req.Status)
	}

	now := s.now()
	taxAmount := decimal.NewFromFloat(req.TaxAmount)
	invoice := &models.Invoice{
		OrderID:       order.ID,
		InvoiceDate:   now,
		DueDate:       now.AddDate(0, 0, invoiceDueDays),
		SubTotal:      order.TotalAmount,
		TaxAmount:     taxAmount,
		TotalAmount:   order.TotalAmount.Add(taxAmount),
		Status:        status,
		PaymentMethod: req.PaymentMethod,
	}

	for attempt := 0; attempt < numberRetries; attempt++ {
		number, svcErr := s.GenerateNumber(ctx)
		if svcErr != nil {
			return nil, svcErr
		}
		invoice.InvoiceNumber = number

		err = s.repo.Create(ctx, invoice)
		if err == nil {
			break
		}
		if !isDuplicate(err) {
			s.logger.Error("Failed to create invoice", zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to create invoice"}
		}
		s.logger.Warn("Invoice number conflict, recomputing",
			zap.String("invoice_number", number),
			zap.Int("attempt", attempt+1),
		)
	}
	if err != nil {
		s.logger.Error("Invoice number conflicts exhausted retries", zap.Error(err))
		return nil, &ServiceError{StatusCode: 409, Message: "Invoice already exists for this order"}
	}

	// Link the 1:1 back-reference on the order.
	order.InvoiceID = &invoice.ID
	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to link invoice to order", zap.Uint("order_id", order.ID), zap.Error(err))
	}

	s.logger.Info("Invoice created",
		zap.Uint("invoice_id", invoice.ID),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.Uint("order_id", order.ID),
	)
	return invoice, nil
}

// Update maps the payload onto an existing invoice and keeps
// total = sub-total + tax.
func (s *invoiceServiceImpl) Update(ctx context.Context, id uint, req *models.InvoiceRequest) (*models.Invoice, *ServiceError) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Invoice not found"}
		}
		s.logger.Error("Failed to fetch invoice", zap.Uint("invoice_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch invoice"}
	}

	invoice.TaxAmount = decimal.NewFromFloat(req.TaxAmount)
	invoice.TotalAmount = invoice.SubTotal.Add(invoice.TaxAmount)
	if req.PaymentMethod != "" {
		invoice.PaymentMethod = req.PaymentMethod
	}
	if req.Status != "" {
		invoice.Status = models.InvoiceStatus(req.Status)
	}

	if err := s.repo.Update(ctx, invoice); err != nil {
		s.logger.Error("Failed to update invoice", zap.Uint("invoice_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update invoice"}
	}
	return invoice, nil
}

func (s *invoiceServiceImpl) Get(ctx context.Context, id uint) (*models.Invoice, *ServiceError) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Invoice not found"}
		}
		s.logger.Error("Failed to fetch invoice", zap.Uint("invoice_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch invoice"}
	}
	return invoice, nil
}

func (s *invoiceServiceImpl) List(ctx context.Context, customerID *uint) ([]models.Invoice, *ServiceError) {
	invoices, err := s.repo.FindAll(ctx, customerID)
	if err != nil {
		s.logger.Error("Failed to list invoices", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list invoices"}
	}
	return invoices, nil
}

// CreateFromOrder derives an invoice draft from the order: Pending status,
// placeholder payment method, tax at the fixed VAT rate of the order total.
// Everything else is delegated to Create.
func (s *invoiceServiceImpl) CreateFromOrder(ctx context.Context, orderID uint) (*models.Invoice, *ServiceError) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create invoice"}
	}

	tax, _ := order.TotalAmount.Mul(vatRate).Round(2).Float64()
	return s.Create(ctx, &models.InvoiceRequest{
		OrderID:       orderID,
		Status:        string(models.InvoiceStatusPending),
		PaymentMethod: defaultPaymentMethod,
		TaxAmount:     tax,
	})
}

// MarkPaid sets status, payment method, and payment timestamp on an
// existing invoice. Missing id yields 404 and mutates nothing.
func (s *invoiceServiceImpl) MarkPaid(ctx context.Context, id uint, paymentMethod string) *ServiceError {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return &ServiceError{StatusCode: 404, Message: "Invoice not found"}
		}
		s.logger.Error("Failed to fetch invoice", zap.Uint("invoice_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to mark invoice as paid"}
	}

	now := s.now()
	invoice.Status = models.InvoiceStatusPaid
	invoice.PaymentMethod = paymentMethod
	invoice.PaymentDate = &now

	if err := s.repo.Update(ctx, invoice); err != nil {
		s.logger.Error("Failed to mark invoice as paid", zap.Uint("invoice_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to mark invoice as paid"}
	}

	s.logger.Info("Invoice paid",
		zap.Uint("invoice_id", id),
		zap.String("payment_method", paymentMethod),
	)
	return nil
}
