package driftmail

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL    = "https://api.driftmail.io"
	defaultAPIVersion = "v1"
)

// clientConfig holds configuration for the client.
// It is fixed at construction; the client never mutates it afterwards.
type clientConfig struct {
	baseURL    string
	apiVersion string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithAPIVersion sets the API version segment of every request path.
// Default: "v1"
func WithAPIVersion(version string) Option {
	return func(c *clientConfig) {
		c.apiVersion = version
	}
}

// WithTimeout sets the timeout applied to each HTTP request.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. Use this to control transport
// behavior such as connection pooling, TLS, or proxies.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets a logger for debug-level request/response logging.
// By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
