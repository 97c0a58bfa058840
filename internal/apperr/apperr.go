// Package apperr defines the error taxonomy shared by repositories,
// services and HTTP handlers, plus the mapping onto response codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart means order placement was attempted on a cart with
	// zero entries.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrIntegrity means a cart entry references a product that no
	// longer exists in the catalog.
	ErrIntegrity = errors.New("cart references a missing product")
	// ErrAuth covers invalid credentials and missing tokens.
	ErrAuth = errors.New("invalid credentials")
	// ErrTokenInvalid covers malformed or expired tokens presented on
	// protected routes.
	ErrTokenInvalid = errors.New("invalid or expired token")
	// ErrDuplicateEmail is returned on account creation when the email
	// is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ValidationError reports bad or missing input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a *ValidationError.
func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// OrderPlacementError wraps any infrastructure failure that aborted the
// order placement transaction. The transaction is guaranteed to have
// made no partial writes when one of these surfaces.
type OrderPlacementError struct {
	Err error
}

func (e *OrderPlacementError) Error() string {
	return fmt.Sprintf("order placement failed: %v", e.Err)
}

func (e *OrderPlacementError) Unwrap() error { return e.Err }

// Status maps an error onto the HTTP status code the handlers respond
// with. Unknown errors map to 500.
func Status(err error) int {
	var ve *ValidationError
	var ope *OrderPlacementError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrIntegrity),
		errors.Is(err, ErrDuplicateEmail):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrTokenInvalid):
		return http.StatusForbidden
	case errors.As(err, &ope):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
