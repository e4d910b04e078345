// Package apierrors provides shared error types for the Driftmail client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidRequest is returned for HTTP 400 responses and for
	// client-side precondition failures such as an empty identifier.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrQuotaExceeded is returned when the account's sending quota is exhausted.
	ErrQuotaExceeded = errors.New("quota exceeded")
)

// APIError represents an HTTP error from the Driftmail API.
// Body holds the raw response body for diagnostics.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
// Status codes outside the taxonomy match no sentinel.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrInvalidRequest
	case 401:
		return target == ErrUnauthorized
	case 402:
		return target == ErrQuotaExceeded
	}
	return false
}

// ValidationError reports a client-side precondition failure detected
// before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// NetworkError represents a transport-level failure. The underlying
// transport error is exposed unchanged through Unwrap.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
