package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrValidationError(t *testing.T) {
	err := &ErrValidation{Field: "symbol", Message: "is required"}
	if got, want := err.Error(), "symbol: is required"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}
}

func TestErrUpstreamError(t *testing.T) {
	err := &ErrUpstream{Provider: "api-ninjas", Status: 502}
	if got, want := err.Error(), "api-ninjas: status 502"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}

	cause := stderrors.New("connection refused")
	wrapped := &ErrUpstream{Provider: "api-ninjas", Err: cause}
	if !stderrors.Is(wrapped, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
}
