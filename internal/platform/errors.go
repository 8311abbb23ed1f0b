package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// TransportError wraps a failure to reach the API at all (no response).
type TransportError struct {
	cause error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot reach the StudAfishka API: %v", e.cause)
}

// Unwrap exposes the underlying net error
func (e *TransportError) Unwrap() error {
	return e.cause
}

// IsTransportError reports whether err is (or wraps) a transport failure.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// APIError is a non-2xx response from the API. The backend reports errors in
// a few shapes: {"detail": "..."} for general failures, {"error": "..."} or
// {"message": "..."} for check-in outcomes, and {"field": ["msg", ...]} for
// validation failures attributable to individual form fields.
type APIError struct {
	StatusCode int

	// Detail is the general, non-field error message.
	Detail string

	// Fields maps form field names to their error messages.
	Fields map[string][]string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)

		var b strings.Builder
		for _, name := range names {
			if b.Len() > 0 {
				b.WriteString("; ")
			}
			b.WriteString(fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], ", ")))
		}
		return b.String()
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsUnauthorized reports an authentication rejection (401).
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports an authorization failure (403).
func (e *APIError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsNotFound reports a missing resource (404).
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsInvalid reports a validation failure or domain conflict (400).
func (e *APIError) IsInvalid() bool {
	return e.StatusCode == http.StatusBadRequest
}

// FieldErrors returns the messages attached to a single form field.
func (e *APIError) FieldErrors(field string) []string {
	return e.Fields[field]
}

// reserved payload keys that are general messages, not form fields
var generalKeys = map[string]bool{
	"detail":           true,
	"error":            true,
	"message":          true,
	"non_field_errors": true,
}

// newAPIError parses a non-2xx body into an APIError. Unparseable bodies
// fall back to the raw text as the detail.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}

	for key, raw := range payload {
		if generalKeys[key] {
			var msg string
			if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
				if apiErr.Detail == "" {
					apiErr.Detail = msg
				}
				continue
			}
			// non_field_errors arrives as a list
			var msgs []string
			if err := json.Unmarshal(raw, &msgs); err == nil && len(msgs) > 0 && apiErr.Detail == "" {
				apiErr.Detail = strings.Join(msgs, "; ")
			}
			continue
		}

		var msgs []string
		if err := json.Unmarshal(raw, &msgs); err == nil {
			if apiErr.Fields == nil {
				apiErr.Fields = make(map[string][]string)
			}
			apiErr.Fields[key] = msgs
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil {
			if apiErr.Fields == nil {
				apiErr.Fields = make(map[string][]string)
			}
			apiErr.Fields[key] = []string{msg}
		}
	}

	return apiErr
}
