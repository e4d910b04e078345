package driftmail

import (
	"github.com/rs/zerolog"

	"github.com/driftmail/client-go/internal/api"
)

// Client is the Driftmail API client.
//
// It holds no mutable state; methods may be called concurrently from any
// number of goroutines. Cancellation and deadlines are controlled through
// the context passed to each call.
type Client struct {
	apiClient *api.Client
}

// New creates a new Driftmail client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:    defaultBaseURL,
		apiVersion: defaultAPIVersion,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		APIKey:     apiKey,
		BaseURL:    cfg.baseURL,
		APIVersion: cfg.apiVersion,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the fully qualified base URL including the API version.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}
