package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Track records a named event against the contact with the given email address.
func (c *Client) Track(ctx context.Context, email, event string) (*TrackResult, error) {
	var result TrackResult
	if err := c.Do(ctx, http.MethodPost, "/track", trackRequest{Email: email, Event: event}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetContact fetches a single contact by id.
func (c *Client) GetContact(ctx context.Context, contactID string) (*Contact, error) {
	path := fmt.Sprintf("/contacts/%s", url.PathEscape(contactID))
	var result Contact
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListContacts fetches all contacts in server-returned order.
func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	var result []Contact
	if err := c.Do(ctx, http.MethodGet, "/contacts", nil, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = []Contact{}
	}
	return result, nil
}

// CountContacts returns the total number of contacts.
func (c *Client) CountContacts(ctx context.Context) (int, error) {
	var result struct {
		Count int `json:"count"`
	}
	if err := c.Do(ctx, http.MethodGet, "/contacts/count", nil, &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

// CreateContact creates or upserts a contact.
func (c *Client) CreateContact(ctx context.Context, params CreateContactParams) (*Contact, error) {
	var result Contact
	if err := c.Do(ctx, http.MethodPost, "/contacts", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SubscribeContact marks a contact as subscribed.
func (c *Client) SubscribeContact(ctx context.Context, contactID string) (*SubscriptionResult, error) {
	var result SubscriptionResult
	if err := c.Do(ctx, http.MethodPost, "/contacts/subscribe", subscriptionRequest{ID: contactID}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UnsubscribeContact marks a contact as unsubscribed.
func (c *Client) UnsubscribeContact(ctx context.Context, contactID string) (*SubscriptionResult, error) {
	var result SubscriptionResult
	if err := c.Do(ctx, http.MethodPost, "/contacts/unsubscribe", subscriptionRequest{ID: contactID}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendEmail sends a transactional email.
func (c *Client) SendEmail(ctx context.Context, params SendEmailParams) (*SendResult, error) {
	var result SendResult
	if err := c.Do(ctx, http.MethodPost, "/send", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteContact deletes a contact and returns it as it existed before deletion.
func (c *Client) DeleteContact(ctx context.Context, contactID string) (*Contact, error) {
	path := fmt.Sprintf("/contacts/%s", url.PathEscape(contactID))
	var result Contact
	if err := c.Do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
