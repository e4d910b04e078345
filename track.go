package driftmail

import (
	"context"
	"time"
)

// TrackResult is the acknowledgement returned when an event is recorded.
type TrackResult struct {
	Success   bool
	ContactID string
	EventID   string
	Timestamp time.Time
}

// Track records a named event against the contact with the given email
// address. Both the email and the event name are required.
func (c *Client) Track(ctx context.Context, email, event string) (*TrackResult, error) {
	if email == "" {
		return nil, &ValidationError{Message: "email is required"}
	}
	if event == "" {
		return nil, &ValidationError{Message: "event name is required"}
	}

	result, err := c.apiClient.Track(ctx, email, event)
	if err != nil {
		return nil, wrapError(err)
	}

	return &TrackResult{
		Success:   result.Success,
		ContactID: result.ContactID,
		EventID:   result.EventID,
		Timestamp: result.Timestamp,
	}, nil
}
