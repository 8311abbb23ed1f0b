package exitcode

import (
	gerrors "errors"
	"fmt"
	"testing"

	"github.com/studafishka/afishactl/internal/errors"
	"github.com/studafishka/afishactl/internal/platform"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", Success, 0},
		{"GeneralError", GeneralError, 1},
		{"UsageError", UsageError, 2},
		{"AuthError", AuthError, 3},
		{"NotFound", NotFound, 4},
		{"ConflictError", ConflictError, 5},
		{"NetworkError", NetworkError, 6},
		{"Interrupted", Interrupted, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("Exit code %s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			expected: Success,
		},
		{
			name:     "401 api error",
			err:      &platform.APIError{StatusCode: 401, Detail: "token not valid"},
			expected: AuthError,
		},
		{
			name:     "404 api error",
			err:      &platform.APIError{StatusCode: 404, Detail: "Not found."},
			expected: NotFound,
		},
		{
			name:     "400 api error is a domain conflict",
			err:      &platform.APIError{StatusCode: 400, Detail: "Already checked in"},
			expected: ConflictError,
		},
		{
			name:     "500 api error",
			err:      &platform.APIError{StatusCode: 500, Detail: "boom"},
			expected: GeneralError,
		},
		{
			name:     "auth required",
			err:      errors.NewAuthRequiredError("/my-events"),
			expected: AuthError,
		},
		{
			name:     "rejected credentials",
			err:      errors.NewAuthRejectedError(gerrors.New("401")),
			expected: AuthError,
		},
		{
			name:     "event not found",
			err:      errors.NewEventNotFoundError(7),
			expected: NotFound,
		},
		{
			name:     "check-in rejected",
			err:      errors.New(errors.ErrCodeCheckInRejected, "already attended"),
			expected: ConflictError,
		},
		{
			name:     "invalid config",
			err:      errors.NewConfigInvalidError("bad log level", nil),
			expected: UsageError,
		},
		{
			name:     "other app error",
			err:      errors.New(errors.ErrCodeFileWriteFailed, "disk full"),
			expected: GeneralError,
		},
		{
			name:     "generic error",
			err:      gerrors.New("something went wrong"),
			expected: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := DetermineExitCode(tt.err)
			if code != tt.expected {
				t.Errorf("DetermineExitCode(%v) = %d, want %d", tt.err, code, tt.expected)
			}
		})
	}
}

func TestDetermineExitCode_Wrapped(t *testing.T) {
	// Wrapped errors still classify by the underlying type.
	apiErr := &platform.APIError{StatusCode: 401, Detail: "token not valid"}
	wrapped := fmt.Errorf("fetching profile: %w", apiErr)

	if code := DetermineExitCode(wrapped); code != AuthError {
		t.Errorf("DetermineExitCode(wrapped 401) = %d, want %d", code, AuthError)
	}
}
