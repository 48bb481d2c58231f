package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(E(KindInvalidInput, "bad")); got != http.StatusBadRequest {
		t.Fatalf("invalid input status = %d, want %d", got, http.StatusBadRequest)
	}
	if got := HTTPStatus(E(KindNotFound, "missing")); got != http.StatusNotFound {
		t.Fatalf("not found status = %d, want %d", got, http.StatusNotFound)
	}
	if got := HTTPStatus(E(KindUnavailable, "down")); got != http.StatusServiceUnavailable {
		t.Fatalf("unavailable status = %d, want %d", got, http.StatusServiceUnavailable)
	}
}

func TestHTTPStatusDefaultsToInternalError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("nil status = %d, want %d", got, http.StatusOK)
	}
}

func TestHTTPStatusUnwrapsTypedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("fetch: %w", E(KindUnavailable, "catalog source returned 502"))
	if got := HTTPStatus(wrapped); got != http.StatusServiceUnavailable {
		t.Fatalf("wrapped status = %d, want %d", got, http.StatusServiceUnavailable)
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindNotFound}
	if got := err.Error(); got != string(KindNotFound) {
		t.Fatalf("Error() = %q, want %q", got, string(KindNotFound))
	}
}
