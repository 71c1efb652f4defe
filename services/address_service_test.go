package services_test

import (
	"context"
	"errors"
	"testing"
	"webstore/models"
	"webstore/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ---- mock repository ----

type mockAddressRepo struct {
	createErr         error
	findByIDAddress   *models.Address
	findByIDErr       error
	findAllAddresses  []models.Address
	findAllErr        error
	findDefaultAddr   *models.Address
	findDefaultErr    error
	updateErr         error
	deleteErr         error
	clearDefaultsErr  error
	setDefaultErr     error
	clearDefaultsFor  []uint
	setDefaultCalled  bool
	setDefaultAddress *models.Address
}

func (m *mockAddressRepo) Create(_ context.Context, a *models.Address) error {
	return m.createErr
}
func (m *mockAddressRepo) FindByID(_ context.Context, id uint) (*models.Address, error) {
	return m.findByIDAddress, m.findByIDErr
}
func (m *mockAddressRepo) FindAll(_ context.Context, _ *uint) ([]models.Address, error) {
	return m.findAllAddresses, m.findAllErr
}
func (m *mockAddressRepo) FindDefault(_ context.Context, _ uint) (*models.Address, error) {
	return m.findDefaultAddr, m.findDefaultErr
}
func (m *mockAddressRepo) Update(_ context.Context, a *models.Address) error {
	return m.updateErr
}
func (m *mockAddressRepo) Delete(_ context.Context, _ uint) error {
	return m.deleteErr
}
func (m *mockAddressRepo) ClearDefaults(_ context.Context, customerID uint) error {
	m.clearDefaultsFor = append(m.clearDefaultsFor, customerID)
	return m.clearDefaultsErr
}
func (m *mockAddressRepo) SetDefault(_ context.Context, a *models.Address) error {
	m.setDefaultCalled = true
	m.setDefaultAddress = a
	return m.setDefaultErr
}

func newAddressService(repo *mockAddressRepo) services.AddressService {
	logger, _ := zap.NewDevelopment()
	return services.NewAddressService(repo, logger)
}

// ---- tests ----

func TestAddressCreate_DefaultClearsSiblings(t *testing.T) {
	repo := &mockAddressRepo{}
	svc := newAddressService(repo)

	req := &models.AddressRequest{
		Street: "ul. Polna 4", City: "Warsaw", PostalCode: "00-625", Country: "Poland",
		IsDefault: true, CustomerID: 7,
	}
	address, svcErr := svc.Create(context.Background(), req)

	assert.Nil(t, svcErr)
	assert.NotNil(t, address)
	assert.True(t, address.IsDefault)
	assert.Equal(t, []uint{7}, repo.clearDefaultsFor)
}

func TestAddressCreate_NonDefaultKeepsSiblings(t *testing.T) {
	repo := &mockAddressRepo{}
	svc := newAddressService(repo)

	req := &models.AddressRequest{
		Street: "ul. Polna 4", City: "Warsaw", PostalCode: "00-625", Country: "Poland",
		CustomerID: 7,
	}
	_, svcErr := svc.Create(context.Background(), req)

	assert.Nil(t, svcErr)
	assert.Empty(t, repo.clearDefaultsFor)
}

func TestAddressCreate_UnknownCustomer(t *testing.T) {
	repo := &mockAddressRepo{createErr: errors.New(`insert or update on table "addresses" violates foreign key constraint`)}
	svc := newAddressService(repo)

	req := &models.AddressRequest{
		Street: "ul. Polna 4", City: "Warsaw", PostalCode: "00-625", Country: "Poland",
		CustomerID: 9999,
	}
	_, svcErr := svc.Create(context.Background(), req)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestSetAsDefault_Success(t *testing.T) {
	repo := &mockAddressRepo{
		findByIDAddress: &models.Address{ID: 3, CustomerID: 7},
	}
	svc := newAddressService(repo)

	svcErr := svc.SetAsDefault(context.Background(), 3)

	assert.Nil(t, svcErr)
	assert.True(t, repo.setDefaultCalled)
	assert.Equal(t, uint(3), repo.setDefaultAddress.ID)
}

func TestSetAsDefault_MissingIDMutatesNothing(t *testing.T) {
	repo := &mockAddressRepo{findByIDErr: gorm.ErrRecordNotFound}
	svc := newAddressService(repo)

	svcErr := svc.SetAsDefault(context.Background(), 42)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.False(t, repo.setDefaultCalled)
	assert.Empty(t, repo.clearDefaultsFor)
}

func TestAddressUpdate_PromotionClearsSiblings(t *testing.T) {
	repo := &mockAddressRepo{
		findByIDAddress: &models.Address{ID: 3, CustomerID: 7, IsDefault: false},
	}
	svc := newAddressService(repo)

	req := &models.AddressRequest{
		Street: "ul. Polna 4", City: "Warsaw", PostalCode: "00-625", Country: "Poland",
		IsDefault: true, CustomerID: 7,
	}
	address, svcErr := svc.Update(context.Background(), 3, req)

	assert.Nil(t, svcErr)
	assert.True(t, address.IsDefault)
	assert.Equal(t, []uint{7}, repo.clearDefaultsFor)
}

func TestGetDefault_NoneFound(t *testing.T) {
	repo := &mockAddressRepo{findDefaultErr: gorm.ErrRecordNotFound}
	svc := newAddressService(repo)

	_, svcErr := svc.GetDefault(context.Background(), 7)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestAddressDelete_NotFound(t *testing.T) {
	repo := &mockAddressRepo{findByIDErr: gorm.ErrRecordNotFound}
	svc := newAddressService(repo)

	svcErr := svc.Delete(context.Background(), 42)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
