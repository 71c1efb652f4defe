package services_test

import (
	"context"
	"testing"
	"time"
	"webstore/models"
	"webstore/repository"
	"webstore/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ---- mock repository ----

type mockStoreRepo struct {
	createErr    error
	findByIDItem *models.StationaryStore
	findByIDErr  error
	findAllItems []models.StationaryStore
	findAllErr   error
	updateErr    error
	updated      *models.StationaryStore
	lastFilter   repository.StoreFilter
}

func (m *mockStoreRepo) Create(_ context.Context, s *models.StationaryStore) error {
	if m.createErr == nil {
		s.ID = 1
	}
	return m.createErr
}
func (m *mockStoreRepo) FindByID(_ context.Context, _ uint) (*models.StationaryStore, error) {
	return m.findByIDItem, m.findByIDErr
}
func (m *mockStoreRepo) FindAll(_ context.Context, filter repository.StoreFilter) ([]models.StationaryStore, error) {
	m.lastFilter = filter
	return m.findAllItems, m.findAllErr
}
func (m *mockStoreRepo) Update(_ context.Context, s *models.StationaryStore) error {
	if m.updateErr == nil {
		m.updated = s
	}
	return m.updateErr
}

func newStoreService(repo *mockStoreRepo) services.StoreService {
	logger, _ := zap.NewDevelopment()
	return services.NewStoreService(repo, logger)
}

// ---- tests ----

func TestStoreCreate_DefaultsOpeningDateAndActive(t *testing.T) {
	repo := &mockStoreRepo{}
	svc := newStoreService(repo)

	store, svcErr := svc.Create(context.Background(), &models.StoreRequest{
		Name: "Downtown", AddressID: 3,
	})

	assert.Nil(t, svcErr)
	assert.True(t, store.IsActive)
	assert.WithinDuration(t, time.Now(), store.OpeningDate, time.Second)
}

func TestStoreDeactivate_FlipsFlag(t *testing.T) {
	repo := &mockStoreRepo{findByIDItem: &models.StationaryStore{ID: 1, IsActive: true}}
	svc := newStoreService(repo)

	svcErr := svc.Deactivate(context.Background(), 1)

	assert.Nil(t, svcErr)
	assert.False(t, repo.updated.IsActive)
}

func TestStoreActivate_NotFound(t *testing.T) {
	repo := &mockStoreRepo{findByIDErr: gorm.ErrRecordNotFound}
	svc := newStoreService(repo)

	svcErr := svc.Activate(context.Background(), 42)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Nil(t, repo.updated)
}

func TestStoreList_PassesFilterThrough(t *testing.T) {
	repo := &mockStoreRepo{}
	svc := newStoreService(repo)

	city := "Warsaw"
	active := true
	_, svcErr := svc.List(context.Background(), repository.StoreFilter{City: &city, Active: &active})

	assert.Nil(t, svcErr)
	assert.Equal(t, "Warsaw", *repo.lastFilter.City)
	assert.True(t, *repo.lastFilter.Active)
}
