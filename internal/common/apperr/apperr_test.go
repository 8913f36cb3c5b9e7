package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "Validation", err: Validation("bad input"), want: http.StatusBadRequest},
		{name: "Duplicate", err: Duplicate("slug taken"), want: http.StatusBadRequest},
		{name: "Not Found", err: NotFound("missing"), want: http.StatusNotFound},
		{name: "Persistence", err: Persistence("db down", errors.New("timeout")), want: http.StatusInternalServerError},
		{name: "Auth", err: Unauthorized("nope"), want: http.StatusUnauthorized},
		{name: "Plain Error", err: errors.New("anything"), want: http.StatusInternalServerError},
		{name: "Wrapped", err: fmt.Errorf("context: %w", NotFound("missing")), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestClientMessageHidesCause(t *testing.T) {
	err := Persistence("Failed to fetch reports", errors.New("connection refused: 10.0.0.5:27017"))

	if msg := ClientMessage(err); msg != "Failed to fetch reports" {
		t.Errorf("ClientMessage() = %q, internal cause must not leak", msg)
	}
	if msg := ClientMessage(errors.New("raw driver error")); msg != "Server error" {
		t.Errorf("ClientMessage() = %q, want generic message for unclassified errors", msg)
	}
}

func TestIsKindUnwraps(t *testing.T) {
	err := fmt.Errorf("outer: %w", Duplicate("taken"))
	if !IsKind(err, KindDuplicateKey) {
		t.Error("IsKind should match through wrapping")
	}
	if IsKind(err, KindNotFound) {
		t.Error("IsKind must not match a different kind")
	}
	if IsNotFound(nil) {
		t.Error("nil is not a not-found error")
	}
}
