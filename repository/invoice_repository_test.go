package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"
	"webstore/models"
	"webstore/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestInvoiceCreate_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormInvoiceRepository(gormDB)

	now := time.Now()
	invoice := &models.Invoice{
		OrderID:       9,
		InvoiceNumber: "INV/2024/01/0001",
		InvoiceDate:   now,
		DueDate:       now.AddDate(0, 0, 30),
		SubTotal:      decimal.RequireFromString("100.00"),
		TaxAmount:     decimal.RequireFromString("23.00"),
		TotalAmount:   decimal.RequireFromString("123.00"),
		Status:        models.InvoiceStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "invoices"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), invoice)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceFindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormInvoiceRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "invoices"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	inv, err := repo.FindByID(context.Background(), 42)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Nil(t, inv)
}

func TestCountByMonth_UsesMonthBounds(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormInvoiceRepository(gormDB)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "invoices" WHERE invoice_date >= $1 AND invoice_date < $2`)).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByMonth(context.Background(), 2024, time.January)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
