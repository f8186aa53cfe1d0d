package store

import (
	"context"

	"github.com/phrazzld/tabletop-api/internal/domain"
)

// CommentStore defines the interface for comment data access.
type CommentStore interface {
	// List returns all comments sorted according to opts.
	// Returns domain.ErrInvalidCriteria or domain.ErrInvalidOrder for
	// unacceptable sort parameters.
	List(ctx context.Context, opts domain.ListOptions) ([]domain.Comment, error)

	// ListByReview returns the comments attached to a review, possibly none.
	ListByReview(ctx context.Context, reviewID int, opts domain.ListOptions) ([]domain.Comment, error)

	// ListByAuthor returns the comments written by a user, possibly none.
	ListByAuthor(ctx context.Context, username string, opts domain.ListOptions) ([]domain.Comment, error)

	// GetByID retrieves a single comment.
	// Returns domain.ErrIDNotFound if the comment does not exist.
	GetByID(ctx context.Context, id int) (*domain.Comment, error)

	// Create inserts a comment and fills in its generated fields.
	// Returns domain.ErrIncompleteBody if the body is empty.
	Create(ctx context.Context, comment *domain.Comment) error

	// IncrementVotes adds inc to the comment's votes and returns the updated row.
	// A nil inc leaves the row untouched and returns it as is.
	// Returns domain.ErrIDNotFound if the comment does not exist.
	IncrementVotes(ctx context.Context, id int, inc *int) (*domain.Comment, error)

	// UpdateBody replaces the comment text and returns the updated row.
	// A nil body leaves the row untouched and returns it as is.
	// Returns domain.ErrIDNotFound if the comment does not exist.
	UpdateBody(ctx context.Context, id int, body *string) (*domain.Comment, error)

	// Delete removes a comment.
	// Returns domain.ErrIDNotFound if the comment does not exist.
	Delete(ctx context.Context, id int) error
}
