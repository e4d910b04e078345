package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/driftmail/client-go/internal/apierrors"
)

// Defaults applied by NewClient when the corresponding Config field is zero.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultAPIVersion = "v1"
)

// Config configures the API client.
type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client executes HTTP requests against the Driftmail API.
// It is safe for concurrent use; all state is set at construction.
type Client struct {
	rc     *resty.Client
	logger zerolog.Logger
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	version := cfg.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		// An injected transport keeps its own timeout unless one is set explicitly.
		rc = resty.NewWithClient(cfg.HTTPClient)
		if cfg.Timeout > 0 {
			rc.SetTimeout(cfg.Timeout)
		}
	} else {
		rc = resty.New()
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		rc.SetTimeout(timeout)
	}
	rc.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/") + "/" + version)
	rc.SetAuthToken(cfg.APIKey)
	rc.SetHeader("Accept", "application/json")
	// Status mapping happens in Do; resty must not retry behind our back.
	rc.SetRetryCount(0)

	return &Client{rc: rc, logger: cfg.Logger}, nil
}

// BaseURL returns the fully qualified base URL including the API version.
func (c *Client) BaseURL() string {
	return c.rc.BaseURL
}

// Do performs a single request round trip and maps the response.
//
// A 200 response is decoded into result (when non-nil). Any other status
// becomes an *apierrors.APIError carrying the raw body. Transport failures
// surface as *apierrors.NetworkError with the original error unwrapped.
// There are no retries; every failure is the final outcome of the call.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	requestID := uuid.NewString()

	req := c.rc.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID)
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msg("request failed")
		return &apierrors.NetworkError{Err: err, URL: c.rc.BaseURL + path}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID).
		Msg("request completed")

	if resp.StatusCode() != http.StatusOK {
		return parseErrorResponse(resp.StatusCode(), resp.Body())
	}

	if result != nil {
		if err := json.Unmarshal(resp.Body(), result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// parseErrorResponse builds an APIError from a non-200 response. The raw
// body is always kept; the server's error message and request id are
// extracted when the body parses as JSON.
func parseErrorResponse(statusCode int, body []byte) error {
	apiErr := &apierrors.APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var errResp struct {
		Error     string `json:"error"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			apiErr.Message = errResp.Error
		} else {
			apiErr.Message = errResp.Message
		}
		apiErr.RequestID = errResp.RequestID
	}

	return apiErr
}
