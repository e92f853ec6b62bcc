package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestExternalCallErrorMatching(t *testing.T) {
	err := fmt.Errorf("stage translate: %w", NewExternalCallError("openai.chat", "http_request", 0, context.DeadlineExceeded))
	if !errors.Is(err, ErrExternalCall) {
		t.Fatalf("expected ErrExternalCall match: %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped cause to be reachable: %v", err)
	}
	var callErr *ExternalCallError
	if !errors.As(err, &callErr) {
		t.Fatal("errors.As failed")
	}
	if callErr.Op != "http_request" {
		t.Fatalf("Op = %q, want %q", callErr.Op, "http_request")
	}
}

func TestRejectionErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *RejectionError
		want string
	}{
		{name: "input", err: &RejectionError{Reason: ReasonEmptyInput}, want: "rejected: empty_input"},
		{name: "stage", err: &RejectionError{Reason: ReasonResponseTooShort, Stage: "enhance"}, want: "rejected at stage enhance: response_too_short"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
			if !errors.Is(tc.err, ErrRejected) {
				t.Fatal("expected ErrRejected match")
			}
			if errors.Is(tc.err, ErrExternalCall) {
				t.Fatal("rejection must not match ErrExternalCall")
			}
		})
	}
}
