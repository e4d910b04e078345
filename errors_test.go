package driftmail

import (
	"errors"
	"testing"

	"github.com/driftmail/client-go/internal/apierrors"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrMissingAPIKey", ErrMissingAPIKey},
		{"ErrInvalidRequest", ErrInvalidRequest},
		{"ErrUnauthorized", ErrUnauthorized},
		{"ErrQuotaExceeded", ErrQuotaExceeded},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "with message",
			err:      &APIError{StatusCode: 401, Message: "invalid API key"},
			expected: "API error 401: invalid API key",
		},
		{
			name:     "without message",
			err:      &APIError{StatusCode: 500},
			expected: "API error 500",
		},
		{
			name:     "with request ID",
			err:      &APIError{StatusCode: 402, Message: "quota exhausted", RequestID: "req-123"},
			expected: "API error 402: quota exhausted (request_id: req-123)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		target     error
		expected   bool
	}{
		{"400 matches ErrInvalidRequest", 400, ErrInvalidRequest, true},
		{"401 matches ErrUnauthorized", 401, ErrUnauthorized, true},
		{"402 matches ErrQuotaExceeded", 402, ErrQuotaExceeded, true},
		{"401 does not match ErrQuotaExceeded", 401, ErrQuotaExceeded, false},
		{"404 matches no sentinel", 404, ErrInvalidRequest, false},
		{"500 matches no sentinel", 500, ErrUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{StatusCode: tt.statusCode}
			if got := errors.Is(err, tt.target); got != tt.expected {
				t.Errorf("errors.Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestValidationError_MatchesInvalidRequest(t *testing.T) {
	err := &ValidationError{Message: "contact id is required"}

	if !errors.Is(err, ErrInvalidRequest) {
		t.Error("ValidationError should match ErrInvalidRequest")
	}
}

func TestWrapError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		if wrapError(nil) != nil {
			t.Error("wrapError(nil) != nil")
		}
	})

	t.Run("missing API key", func(t *testing.T) {
		err := wrapError(apierrors.ErrMissingAPIKey)
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("wrapError() = %v, want ErrMissingAPIKey", err)
		}
	})

	t.Run("API error", func(t *testing.T) {
		internal := &apierrors.APIError{
			StatusCode: 402,
			Message:    "quota exhausted",
			Body:       `{"error":"quota exhausted"}`,
			RequestID:  "req-1",
		}
		err := wrapError(internal)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("wrapError() = %T, want *APIError", err)
		}
		if apiErr.StatusCode != 402 || apiErr.Body != internal.Body || apiErr.RequestID != "req-1" {
			t.Errorf("wrapped fields = %+v", apiErr)
		}
		if !errors.Is(err, ErrQuotaExceeded) {
			t.Error("wrapped 402 should match ErrQuotaExceeded")
		}
	})

	t.Run("network error", func(t *testing.T) {
		underlying := errors.New("connection reset")
		err := wrapError(&apierrors.NetworkError{Err: underlying, URL: "https://x"})

		var netErr *NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("wrapError() = %T, want *NetworkError", err)
		}
		if !errors.Is(err, underlying) {
			t.Error("wrapped network error should unwrap to the transport error")
		}
	})

	t.Run("unrelated error passes through", func(t *testing.T) {
		plain := errors.New("something else")
		if wrapError(plain) != plain {
			t.Error("unrelated errors should pass through unchanged")
		}
	})
}

func TestDriftmailErrorInterface(t *testing.T) {
	errs := []DriftmailError{
		&APIError{StatusCode: 500},
		&ValidationError{Message: "x"},
		&NetworkError{Err: errors.New("boom")},
	}
	for _, e := range errs {
		if e.Error() == "" {
			t.Errorf("%T has empty message", e)
		}
	}
}
