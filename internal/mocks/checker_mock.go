package mocks

import (
	"context"

	"github.com/phrazzld/tabletop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockChecker is a mock of store.Checker interface for use with testify/mock
type TestifyMockChecker struct {
	mock.Mock
}

var _ store.Checker = (*TestifyMockChecker)(nil)

// EnsureIDExists is a mock implementation of store.Checker.EnsureIDExists
func (m *TestifyMockChecker) EnsureIDExists(ctx context.Context, ref store.Ref, rawID string) error {
	args := m.Called(ctx, ref, rawID)
	return args.Error(0)
}

// EnsureUserExists is a mock implementation of store.Checker.EnsureUserExists
func (m *TestifyMockChecker) EnsureUserExists(ctx context.Context, ref store.Ref, username string) error {
	args := m.Called(ctx, ref, username)
	return args.Error(0)
}

// EnsureNewUserAvailable is a mock implementation of store.Checker.EnsureNewUserAvailable
func (m *TestifyMockChecker) EnsureNewUserAvailable(ctx context.Context, ref store.Ref, username string) error {
	args := m.Called(ctx, ref, username)
	return args.Error(0)
}

// EnsureCategoryValid is a mock implementation of store.Checker.EnsureCategoryValid
func (m *TestifyMockChecker) EnsureCategoryValid(ctx context.Context, category *string) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
