package driftmail

import (
	"context"

	"github.com/driftmail/client-go/internal/api"
)

// SendResult reports the outcome of a transactional send. Recipients maps
// each recipient address to its delivery status as reported by the server.
type SendResult struct {
	MessageID  string
	Recipients map[string]string
}

// sendConfig holds optional fields for a transactional send.
type sendConfig struct {
	name string
}

// SendOption configures a transactional send.
type SendOption func(*sendConfig)

// WithSenderName sets the display name used alongside the from address.
func WithSenderName(name string) SendOption {
	return func(c *sendConfig) {
		c.name = name
	}
}

// SendEmail sends a transactional email from the given address to one or
// more recipients. All recipients are submitted in a single call; the
// result carries a per-recipient delivery status.
func (c *Client) SendEmail(ctx context.Context, from string, to []string, subject, body string, opts ...SendOption) (*SendResult, error) {
	if from == "" {
		return nil, &ValidationError{Message: "from address is required"}
	}
	if len(to) == 0 {
		return nil, &ValidationError{Message: "at least one recipient is required"}
	}
	for _, addr := range to {
		if addr == "" {
			return nil, &ValidationError{Message: "recipient address cannot be empty"}
		}
	}

	cfg := &sendConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	result, err := c.apiClient.SendEmail(ctx, api.SendEmailParams{
		From:    from,
		To:      to,
		Subject: subject,
		Body:    body,
		Name:    cfg.name,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &SendResult{
		MessageID:  result.MessageID,
		Recipients: result.Recipients,
	}, nil
}
