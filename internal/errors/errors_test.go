package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAfishaError_Error(t *testing.T) {
	err := New(ErrCodeAuthRejected, "invalid username or password")

	msg := err.Error()
	if !strings.Contains(msg, "[AUTH-002]") {
		t.Errorf("error message missing code: %s", msg)
	}
	if !strings.Contains(msg, "invalid username or password") {
		t.Errorf("error message missing text: %s", msg)
	}
}

func TestAfishaError_WithSuggestions(t *testing.T) {
	err := New(ErrCodeEventNotFound, "event 7 not found").
		WithSuggestion("first").
		WithSuggestions("second", "third")

	if len(err.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(err.Suggestions))
	}
	msg := err.Error()
	if !strings.Contains(msg, "Suggestions:") {
		t.Errorf("error message missing suggestions block: %s", msg)
	}
}

func TestAfishaError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeSessionLoadFailed, "cannot read credentials", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("cause missing from message: %s", err.Error())
	}
}

func TestAfishaError_As(t *testing.T) {
	var target *AfishaError
	err := NewAuthRequiredError("/dashboard")

	if !errors.As(error(err), &target) {
		t.Fatal("errors.As failed for AfishaError")
	}
	if target.Code != ErrCodeAuthRequired {
		t.Errorf("code = %s, want %s", target.Code, ErrCodeAuthRequired)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AfishaError
		code ErrorCode
	}{
		{"auth required", NewAuthRequiredError("/my-events"), ErrCodeAuthRequired},
		{"auth rejected", NewAuthRejectedError(nil), ErrCodeAuthRejected},
		{"role mismatch", NewRoleMismatchError("/dashboard", []string{"organizer"}), ErrCodeAuthRoleMismatch},
		{"event not found", NewEventNotFoundError(42), ErrCodeEventNotFound},
		{"config invalid", NewConfigInvalidError("bad yaml", nil), ErrCodeConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}
