package mocks

import (
	"context"

	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockCommentStore is a mock of store.CommentStore interface for use with testify/mock
type TestifyMockCommentStore struct {
	mock.Mock
}

var _ store.CommentStore = (*TestifyMockCommentStore)(nil)

func (m *TestifyMockCommentStore) comments(args mock.Arguments) ([]domain.Comment, error) {
	if comments, ok := args.Get(0).([]domain.Comment); ok {
		return comments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockCommentStore) comment(args mock.Arguments) (*domain.Comment, error) {
	if comment, ok := args.Get(0).(*domain.Comment); ok {
		return comment, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of store.CommentStore.List
func (m *TestifyMockCommentStore) List(ctx context.Context, opts domain.ListOptions) ([]domain.Comment, error) {
	return m.comments(m.Called(ctx, opts))
}

// ListByReview is a mock implementation of store.CommentStore.ListByReview
func (m *TestifyMockCommentStore) ListByReview(
	ctx context.Context,
	reviewID int,
	opts domain.ListOptions,
) ([]domain.Comment, error) {
	return m.comments(m.Called(ctx, reviewID, opts))
}

// ListByAuthor is a mock implementation of store.CommentStore.ListByAuthor
func (m *TestifyMockCommentStore) ListByAuthor(
	ctx context.Context,
	username string,
	opts domain.ListOptions,
) ([]domain.Comment, error) {
	return m.comments(m.Called(ctx, username, opts))
}

// GetByID is a mock implementation of store.CommentStore.GetByID
func (m *TestifyMockCommentStore) GetByID(ctx context.Context, id int) (*domain.Comment, error) {
	return m.comment(m.Called(ctx, id))
}

// Create is a mock implementation of store.CommentStore.Create.
// Configure Run to fill in generated fields when the test needs them.
func (m *TestifyMockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// IncrementVotes is a mock implementation of store.CommentStore.IncrementVotes
func (m *TestifyMockCommentStore) IncrementVotes(ctx context.Context, id int, inc *int) (*domain.Comment, error) {
	return m.comment(m.Called(ctx, id, inc))
}

// UpdateBody is a mock implementation of store.CommentStore.UpdateBody
func (m *TestifyMockCommentStore) UpdateBody(ctx context.Context, id int, body *string) (*domain.Comment, error) {
	return m.comment(m.Called(ctx, id, body))
}

// Delete is a mock implementation of store.CommentStore.Delete
func (m *TestifyMockCommentStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
