package mocks

import (
	"context"

	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockReviewStore is a mock of store.ReviewStore interface for use with testify/mock
type TestifyMockReviewStore struct {
	mock.Mock
}

var _ store.ReviewStore = (*TestifyMockReviewStore)(nil)

func (m *TestifyMockReviewStore) review(args mock.Arguments) (*domain.Review, error) {
	if review, ok := args.Get(0).(*domain.Review); ok {
		return review, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of store.ReviewStore.List
func (m *TestifyMockReviewStore) List(ctx context.Context, opts domain.ListOptions) ([]domain.Review, error) {
	args := m.Called(ctx, opts)
	if reviews, ok := args.Get(0).([]domain.Review); ok {
		return reviews, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.ReviewStore.GetByID
func (m *TestifyMockReviewStore) GetByID(ctx context.Context, id int) (*domain.Review, error) {
	return m.review(m.Called(ctx, id))
}

// IncrementVotes is a mock implementation of store.ReviewStore.IncrementVotes
func (m *TestifyMockReviewStore) IncrementVotes(ctx context.Context, id int, inc *int) (*domain.Review, error) {
	return m.review(m.Called(ctx, id, inc))
}

// UpdateBody is a mock implementation of store.ReviewStore.UpdateBody
func (m *TestifyMockReviewStore) UpdateBody(ctx context.Context, id int, body *string) (*domain.Review, error) {
	return m.review(m.Called(ctx, id, body))
}

// Create is a mock implementation of store.ReviewStore.Create
func (m *TestifyMockReviewStore) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
