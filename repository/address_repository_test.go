package repository_test

import (
	"context"
	"regexp"
	"testing"
	"webstore/models"
	"webstore/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAddressFindAll_FiltersByCustomer(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormAddressRepository(gormDB)

	rows := sqlmock.NewRows([]string{"id", "street", "city", "postal_code", "country", "is_default", "customer_id"}).
		AddRow(1, "ul. Polna 4", "Warsaw", "00-625", "Poland", true, 7).
		AddRow(2, "ul. Długa 15", "Kraków", "31-146", "Poland", false, 7)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "addresses" WHERE customer_id = $1`)).
		WithArgs(7).
		WillReturnRows(rows)

	customerID := uint(7)
	addresses, err := repo.FindAll(context.Background(), &customerID)
	assert.NoError(t, err)
	assert.Len(t, addresses, 2)
	assert.True(t, addresses[0].IsDefault)
}

func TestAddressClearDefaults_UpdatesAllCustomerRows(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormAddressRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "addresses" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.ClearDefaults(context.Background(), 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressSetDefault_SingleTransaction(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormAddressRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "addresses" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "addresses" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SetDefault(context.Background(), &models.Address{ID: 3, CustomerID: 7})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressSetDefault_RollsBackOnFailure(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormAddressRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "addresses" SET`)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.SetDefault(context.Background(), &models.Address{ID: 3, CustomerID: 7})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
