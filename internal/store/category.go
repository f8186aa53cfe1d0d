package store

import (
	"context"

	"github.com/phrazzld/tabletop-api/internal/domain"
)

// CategoryStore defines the interface for category data access.
type CategoryStore interface {
	// List returns every category.
	List(ctx context.Context) ([]domain.Category, error)

	// Create inserts a category. Used by fixture seeding.
	Create(ctx context.Context, category *domain.Category) error
}
