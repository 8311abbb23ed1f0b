package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthRequired       ErrorCode = "AUTH-001"
	ErrCodeAuthRejected       ErrorCode = "AUTH-002"
	ErrCodeAuthRoleMismatch   ErrorCode = "AUTH-003"
	ErrCodeAuthTokenInvalid   ErrorCode = "AUTH-004"
	ErrCodeAuthRegisterFailed ErrorCode = "AUTH-005"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionLoadFailed ErrorCode = "SESSION-001"
	ErrCodeSessionSaveFailed ErrorCode = "SESSION-002"
	ErrCodeSessionCorrupt    ErrorCode = "SESSION-003"

	// Event errors (EVENT-001 to EVENT-099)
	ErrCodeEventNotFound      ErrorCode = "EVENT-001"
	ErrCodeEventInvalid       ErrorCode = "EVENT-002"
	ErrCodeEventFull          ErrorCode = "EVENT-003"
	ErrCodeEventAlreadyJoined ErrorCode = "EVENT-004"

	// Check-in errors (CHECKIN-001 to CHECKIN-099)
	ErrCodeCheckInBadCode   ErrorCode = "CHECKIN-001"
	ErrCodeCheckInRejected  ErrorCode = "CHECKIN-002"
	ErrCodeCheckInDuplicate ErrorCode = "CHECKIN-003"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileReadFailed  ErrorCode = "IO-001"
	ErrCodeFileWriteFailed ErrorCode = "IO-002"
	ErrCodeDirectoryFailed ErrorCode = "IO-003"
)

// AfishaError represents an enhanced error with code and suggestions
type AfishaError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *AfishaError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *AfishaError) Unwrap() error {
	return e.Cause
}

// New creates a new AfishaError
func New(code ErrorCode, message string) *AfishaError {
	return &AfishaError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AfishaError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *AfishaError {
	return &AfishaError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *AfishaError) WithSuggestion(suggestion string) *AfishaError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *AfishaError) WithSuggestions(suggestions ...string) *AfishaError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewAuthRequiredError indicates a command needs a logged-in session
func NewAuthRequiredError(path string) *AfishaError {
	return New(ErrCodeAuthRequired, fmt.Sprintf("authentication required for %s", path)).
		WithSuggestion(fmt.Sprintf("Run 'afishactl login --return-to %s' to sign in and come back", path))
}

// NewAuthRejectedError indicates the server refused the supplied credentials
func NewAuthRejectedError(cause error) *AfishaError {
	return Wrap(ErrCodeAuthRejected, "invalid username or password", cause).
		WithSuggestion("Check your credentials and try again").
		WithSuggestion("Use 'afishactl register' if you do not have an account yet")
}

// NewRoleMismatchError indicates the current user lacks every required role
func NewRoleMismatchError(path string, roles []string) *AfishaError {
	return New(ErrCodeAuthRoleMismatch,
		fmt.Sprintf("%s requires one of the roles: %s", path, strings.Join(roles, ", ")))
}

// NewEventNotFoundError creates an event lookup error
func NewEventNotFoundError(id int) *AfishaError {
	return New(ErrCodeEventNotFound, fmt.Sprintf("event %d not found", id)).
		WithSuggestion("Run 'afishactl events list' to see available events")
}

// NewConfigInvalidError creates a configuration error
func NewConfigInvalidError(details string, cause error) *AfishaError {
	return Wrap(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", details), cause).
		WithSuggestion("Check the config.yaml in your state directory").
		WithSuggestion("Environment variables AFISHA_API_URL / AFISHA_STATE_DIR override the file")
}
