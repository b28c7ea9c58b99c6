package apperrors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrNotFound covers both "does not exist" and "exists but is not
	// yours"; responses must not distinguish the two.
	ErrNotFound = errors.New("resource not found")
	// ErrSelfAction is returned when a user targets their own profile.
	ErrSelfAction = errors.New("You cannot follow yourself")
	// ErrUnauthorized is returned for missing or invalid credentials.
	ErrUnauthorized = errors.New("Unauthorized")
)

// Error is a user-facing message attached to one of the sentinel kinds.
type Error struct {
	Message string
	Kind    error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func NotFound(message string) *Error {
	return &Error{Message: message, Kind: ErrNotFound}
}

// ValidationError carries per-field messages for a 400 response.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// HTTPStatus maps a domain error to its response status code.
func HTTPStatus(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, ErrSelfAction):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
