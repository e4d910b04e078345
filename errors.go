package driftmail

import (
	"errors"
	"fmt"

	"github.com/driftmail/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidRequest is returned for HTTP 400 responses and for
	// client-side precondition failures such as an empty contact id.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrQuotaExceeded is returned when the account's sending quota is exhausted.
	ErrQuotaExceeded = errors.New("quota exceeded")
)

// DriftmailError is implemented by all SDK errors.
type DriftmailError interface {
	error
	DriftmailError() // marker method
}

// APIError represents an HTTP error from the Driftmail API.
//
// StatusCode is the HTTP status of the failed call and Body is the raw
// response body, kept verbatim for diagnostics. Status codes outside the
// taxonomy (400, 401, 402) match no sentinel and represent an unknown
// failure; the code and body are still carried.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
	RequestID  string // if returned by server
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

// DriftmailError implements the DriftmailError interface.
func (e *APIError) DriftmailError() {}

// Is implements errors.Is for sentinel error matching.
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

// ValidationError reports a client-side precondition failure. It is
// returned before any network call is attempted.
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

// DriftmailError implements the DriftmailError interface.
func (e *ValidationError) DriftmailError() {}

// NetworkError represents a transport-level failure (DNS, timeout,
// connection reset). The underlying transport error is not mapped to the
// status-code taxonomy and is exposed unchanged through Unwrap.
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

// DriftmailError implements the DriftmailError interface.
func (e *NetworkError) DriftmailError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, apierrors.ErrMissingAPIKey) {
		return ErrMissingAPIKey
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Body:       apiErr.Body,
			RequestID:  apiErr.RequestID,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}
