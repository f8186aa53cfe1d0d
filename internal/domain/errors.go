package domain

import (
	"errors"
	"net/http"
)

// APIError is an error that carries the HTTP status and the message that is
// safe to show to clients. Every rejection a validator or accessor produces is
// one of the sentinels below, possibly wrapped.
type APIError struct {
	Status int
	Msg    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Msg
}

// NewAPIError creates a new APIError with the given status and message.
func NewAPIError(status int, msg string) *APIError {
	return &APIError{Status: status, Msg: msg}
}

// Client-facing errors. Messages are part of the public API and must not change.
var (
	// InvalidArgument
	ErrInvalidID       = NewAPIError(http.StatusBadRequest, "Bad request. Invalid ID.")
	ErrInvalidUsername = NewAPIError(http.StatusBadRequest, "Bad request. Invalid username.")
	ErrInvalidCategory = NewAPIError(http.StatusBadRequest, "Bad request. Invalid category.")

	// MissingField
	ErrIncompleteBody = NewAPIError(http.StatusBadRequest, "Bad request. Incomplete post body.")
	ErrMalformedBody  = NewAPIError(http.StatusBadRequest, "Bad request. Invalid request body.")

	// InvalidCriteria / InvalidOrder / InvalidVote
	ErrInvalidCriteria = NewAPIError(http.StatusBadRequest, "Bad request. Invalid criteria.")
	ErrInvalidOrder    = NewAPIError(http.StatusBadRequest, "Bad request. Invalid order.")
	ErrInvalidVote     = NewAPIError(http.StatusBadRequest, "Bad request. Invalid vote.")
	ErrInvalidLimit    = NewAPIError(http.StatusBadRequest, "Bad request. Invalid limit.")
	ErrInvalidPage     = NewAPIError(http.StatusBadRequest, "Bad request. Invalid page.")

	// Conflict
	ErrUsernameTaken = NewAPIError(http.StatusBadRequest, "Username already taken.")

	// NotFound
	ErrIDNotFound       = NewAPIError(http.StatusNotFound, "ID does not exist.")
	ErrUserNotFound     = NewAPIError(http.StatusNotFound, "User does not exist.")
	ErrCategoryNotFound = NewAPIError(http.StatusNotFound, "Category does not exist.")

	// Rate limiting
	ErrTooManyRequests = NewAPIError(http.StatusTooManyRequests, "Too many requests.")
)

// AsAPIError reports whether err is, or wraps, an *APIError and returns it.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
