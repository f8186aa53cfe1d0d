package store

import (
	"context"

	"github.com/phrazzld/tabletop-api/internal/domain"
)

// ReviewStore defines the interface for review data access.
// Every returned review carries its derived comment count.
type ReviewStore interface {
	// List returns reviews sorted, filtered and paged according to opts.
	// Returns domain.ErrInvalidCriteria for a sort key outside the allow-list
	// and domain.ErrInvalidOrder for an unknown sort direction. A valid category
	// with no reviews yields an empty slice.
	List(ctx context.Context, opts domain.ListOptions) ([]domain.Review, error)

	// GetByID retrieves a single review.
	// Returns domain.ErrIDNotFound if the review does not exist.
	GetByID(ctx context.Context, id int) (*domain.Review, error)

	// IncrementVotes adds inc to the review's votes and returns the updated row.
	// A nil inc leaves the row untouched and returns it as is.
	// Returns domain.ErrIDNotFound if the review does not exist.
	IncrementVotes(ctx context.Context, id int, inc *int) (*domain.Review, error)

	// UpdateBody replaces the review text and returns the updated row.
	// A nil body leaves the row untouched and returns it as is.
	// Returns domain.ErrIDNotFound if the review does not exist.
	UpdateBody(ctx context.Context, id int, body *string) (*domain.Review, error)

	// Create inserts a review and fills in its generated fields. Used by
	// fixture seeding.
	Create(ctx context.Context, review *domain.Review) error
}
