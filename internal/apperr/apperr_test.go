package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("missing field"), http.StatusBadRequest},
		{"empty cart", ErrEmptyCart, http.StatusBadRequest},
		{"integrity", fmt.Errorf("%w: product x", ErrIntegrity), http.StatusBadRequest},
		{"duplicate email", ErrDuplicateEmail, http.StatusBadRequest},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"auth", ErrAuth, http.StatusUnauthorized},
		{"bad token", ErrTokenInvalid, http.StatusForbidden},
		{"placement wraps infra", &OrderPlacementError{Err: errors.New("pg down")}, http.StatusInternalServerError},
		{"unknown", errors.New("surprise"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.err); got != tc.want {
				t.Errorf("Status(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestOrderPlacementErrorUnwraps(t *testing.T) {
	cause := errors.New("commit failed")
	err := error(&OrderPlacementError{Err: cause})
	if !errors.Is(err, cause) {
		t.Errorf("cause not reachable through Unwrap")
	}
}
