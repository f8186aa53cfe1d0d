package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity violates a database constraint
	// such as a foreign key or NOT NULL column.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidInput is returned when the database rejects a parameter value,
	// for example a number outside the column's range.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownRef is returned when an existence check is asked about a
	// table/key pair that is not on the allow-list.
	ErrUnknownRef = errors.New("unknown lookup reference")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
