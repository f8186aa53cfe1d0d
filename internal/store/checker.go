package store

import "context"

// Ref names a table and the key column an existence check runs against.
// Only the Refs declared in this package are accepted by Checker
// implementations, so neither part ever comes from client input.
type Ref struct {
	Table string
	Key   string
}

// Lookup references for every id- or username-keyed resource.
var (
	ReviewRef   = Ref{Table: "reviews", Key: "review_id"}
	CommentRef  = Ref{Table: "comments", Key: "comment_id"}
	UserRef     = Ref{Table: "users", Key: "username"}
	CategoryRef = Ref{Table: "categories", Key: "slug"}
)

// Checker confirms the type and existence of request parameters before the
// main operation runs. Every method returns nil on success or a
// *domain.APIError describing why the parameter was rejected.
type Checker interface {
	// EnsureIDExists fails with domain.ErrInvalidID if rawID is not an integer
	// and with domain.ErrIDNotFound if no row in ref matches it.
	EnsureIDExists(ctx context.Context, ref Ref, rawID string) error

	// EnsureUserExists fails with domain.ErrIncompleteBody if username is empty,
	// domain.ErrInvalidUsername if it is numeric and domain.ErrUserNotFound if
	// no row in ref matches it case-insensitively.
	EnsureUserExists(ctx context.Context, ref Ref, username string) error

	// EnsureNewUserAvailable applies the same presence and type checks as
	// EnsureUserExists but fails with domain.ErrUsernameTaken if a row matches.
	EnsureNewUserAvailable(ctx context.Context, ref Ref, username string) error

	// EnsureCategoryValid accepts a nil category. Otherwise it fails with
	// domain.ErrInvalidCategory for numeric values and
	// domain.ErrCategoryNotFound for unknown slugs.
	EnsureCategoryValid(ctx context.Context, category *string) error
}
