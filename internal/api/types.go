package api

import "time"

// TrackResult is the server acknowledgement for a tracked event.
type TrackResult struct {
	Success   bool      `json:"success"`
	ContactID string    `json:"contactId"`
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
}

// Contact is a recipient record in the remote system.
type Contact struct {
	ID         string         `json:"id"`
	Email      string         `json:"email"`
	Subscribed bool           `json:"subscribed"`
	Data       map[string]any `json:"data,omitempty"`
}

// SubscriptionResult reports a contact's subscription state after a toggle.
type SubscriptionResult struct {
	ID         string `json:"id"`
	Subscribed bool   `json:"subscribed"`
}

// SendResult reports per-recipient delivery status for a transactional send.
type SendResult struct {
	MessageID  string            `json:"messageId"`
	Recipients map[string]string `json:"recipients"`
}

// CreateContactParams is the request body for creating (upserting) a contact.
type CreateContactParams struct {
	Email      string         `json:"email"`
	Subscribed bool           `json:"subscribed"`
	Data       map[string]any `json:"data,omitempty"`
}

// SendEmailParams is the request body for sending a transactional email.
type SendEmailParams struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	Name    string   `json:"name,omitempty"`
}

type trackRequest struct {
	Email string `json:"email"`
	Event string `json:"event"`
}

type subscriptionRequest struct {
	ID string `json:"id"`
}
