package store

import (
	"context"

	"github.com/phrazzld/tabletop-api/internal/domain"
)

// UserStore defines the interface for user data access.
type UserStore interface {
	// List returns the usernames of all users sorted according to opts.
	// Returns domain.ErrInvalidCriteria or domain.ErrInvalidOrder for
	// unacceptable sort parameters.
	List(ctx context.Context, opts domain.ListOptions) ([]domain.UserSummary, error)

	// GetByUsername retrieves a user, matching the username case-insensitively.
	// Returns domain.ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Create inserts a new user.
	// Returns domain.ErrUsernameTaken if the username is already in use.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
