package exitcode

import (
	gerrors "errors"
	"os"

	"github.com/studafishka/afishactl/internal/errors"
	"github.com/studafishka/afishactl/internal/platform"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates the command needed a session the user does not have
	AuthError = 3

	// NotFound indicates the requested event or resource does not exist
	NotFound = 4

	// ConflictError indicates a domain conflict (already registered, no spots
	// left, already checked in)
	ConflictError = 5

	// NetworkError indicates a transport failure reaching the API
	NetworkError = 6

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var apiErr *platform.APIError
	if gerrors.As(err, &apiErr) {
		switch {
		case apiErr.IsUnauthorized():
			return AuthError
		case apiErr.IsNotFound():
			return NotFound
		case apiErr.IsInvalid():
			return ConflictError
		}
		return GeneralError
	}

	var appErr *errors.AfishaError
	if gerrors.As(err, &appErr) {
		switch appErr.Code {
		case errors.ErrCodeAuthRequired, errors.ErrCodeAuthRejected,
			errors.ErrCodeAuthTokenInvalid:
			return AuthError
		case errors.ErrCodeEventNotFound:
			return NotFound
		case errors.ErrCodeEventFull, errors.ErrCodeEventAlreadyJoined,
			errors.ErrCodeCheckInRejected, errors.ErrCodeCheckInDuplicate:
			return ConflictError
		case errors.ErrCodeConfigInvalid:
			return UsageError
		}
		return GeneralError
	}

	if platform.IsTransportError(err) {
		return NetworkError
	}

	return GeneralError
}
