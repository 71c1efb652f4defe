package services_test

import (
	"context"
	"testing"
	"webstore/models"
	"webstore/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ---- mock repository ----

type mockCategoryRepo struct {
	categories map[uint]*models.Category
	createErr  error
	updateErr  error
	updated    *models.Category
}

func (m *mockCategoryRepo) Create(_ context.Context, c *models.Category) error {
	if m.createErr == nil {
		c.ID = uint(len(m.categories) + 1)
	}
	return m.createErr
}
func (m *mockCategoryRepo) FindByID(_ context.Context, id uint) (*models.Category, error) {
	if c, ok := m.categories[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockCategoryRepo) FindAll(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}
func (m *mockCategoryRepo) Update(_ context.Context, c *models.Category) error {
	if m.updateErr == nil {
		m.updated = c
	}
	return m.updateErr
}

func newCategoryService(repo *mockCategoryRepo) services.CategoryService {
	logger, _ := zap.NewDevelopment()
	return services.NewCategoryService(repo, logger)
}

func uintPtr(v uint) *uint { return &v }

// ---- tests ----

func TestCategoryCreate_WithExistingParent(t *testing.T) {
	repo := &mockCategoryRepo{categories: map[uint]*models.Category{
		1: {ID: 1, Name: "Office Supplies"},
	}}
	svc := newCategoryService(repo)

	category, svcErr := svc.Create(context.Background(), &models.CategoryRequest{
		Name:             "Writing",
		ParentCategoryID: uintPtr(1),
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, uint(1), *category.ParentCategoryID)
}

func TestCategoryCreate_UnknownParentRejected(t *testing.T) {
	repo := &mockCategoryRepo{categories: map[uint]*models.Category{}}
	svc := newCategoryService(repo)

	_, svcErr := svc.Create(context.Background(), &models.CategoryRequest{
		Name:             "Writing",
		ParentCategoryID: uintPtr(99),
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCategoryUpdate_SelfParentRejected(t *testing.T) {
	repo := &mockCategoryRepo{categories: map[uint]*models.Category{
		1: {ID: 1, Name: "Office Supplies"},
	}}
	svc := newCategoryService(repo)

	_, svcErr := svc.Update(context.Background(), 1, &models.CategoryRequest{
		Name:             "Office Supplies",
		ParentCategoryID: uintPtr(1),
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Nil(t, repo.updated)
}

func TestCategoryUpdate_CycleRejected(t *testing.T) {
	// 3 -> 2 -> 1; making 3 the parent of 1 closes the loop.
	repo := &mockCategoryRepo{categories: map[uint]*models.Category{
		1: {ID: 1, Name: "A"},
		2: {ID: 2, Name: "B", ParentCategoryID: uintPtr(1)},
		3: {ID: 3, Name: "C", ParentCategoryID: uintPtr(2)},
	}}
	svc := newCategoryService(repo)

	_, svcErr := svc.Update(context.Background(), 1, &models.CategoryRequest{
		Name:             "A",
		ParentCategoryID: uintPtr(3),
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Nil(t, repo.updated)
}

func TestCategoryUpdate_ReparentToSiblingAllowed(t *testing.T) {
	repo := &mockCategoryRepo{categories: map[uint]*models.Category{
		1: {ID: 1, Name: "A"},
		2: {ID: 2, Name: "B", ParentCategoryID: uintPtr(1)},
		3: {ID: 3, Name: "C", ParentCategoryID: uintPtr(1)},
	}}
	svc := newCategoryService(repo)

	category, svcErr := svc.Update(context.Background(), 3, &models.CategoryRequest{
		Name:             "C",
		ParentCategoryID: uintPtr(2),
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, uint(2), *category.ParentCategoryID)
}

func TestCategoryUpdate_NotFound(t *testing.T) {
	repo := &mockCategoryRepo{categories: map[uint]*models.Category{}}
	svc := newCategoryService(repo)

	_, svcErr := svc.Update(context.Background(), 42, &models.CategoryRequest{Name: "X"})

	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
