package mocks

import (
	"context"

	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockCategoryStore is a mock of store.CategoryStore interface for use with testify/mock
type TestifyMockCategoryStore struct {
	mock.Mock
}

var _ store.CategoryStore = (*TestifyMockCategoryStore)(nil)

// List is a mock implementation of store.CategoryStore.List
func (m *TestifyMockCategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]domain.Category); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.CategoryStore.Create
func (m *TestifyMockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
