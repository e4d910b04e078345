package driftmail

import (
	"context"

	"github.com/driftmail/client-go/internal/api"
)

// Contact is a recipient record in the remote system.
type Contact struct {
	ID         string
	Email      string
	Subscribed bool
	Data       map[string]any
}

// SubscriptionResult reports a contact's subscription state after a
// subscribe or unsubscribe call.
type SubscriptionResult struct {
	ID         string
	Subscribed bool
}

func newContactFromAPI(c *api.Contact) *Contact {
	return &Contact{
		ID:         c.ID,
		Email:      c.Email,
		Subscribed: c.Subscribed,
		Data:       c.Data,
	}
}

// GetContact fetches a single contact by id.
func (c *Client) GetContact(ctx context.Context, contactID string) (*Contact, error) {
	if contactID == "" {
		return nil, &ValidationError{Message: "contact id is required"}
	}

	result, err := c.apiClient.GetContact(ctx, contactID)
	if err != nil {
		return nil, wrapError(err)
	}
	return newContactFromAPI(result), nil
}

// ListContacts fetches all contacts. Order is as returned by the server;
// no sorting is applied or guaranteed.
func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	results, err := c.apiClient.ListContacts(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	contacts := make([]Contact, 0, len(results))
	for i := range results {
		contacts = append(contacts, *newContactFromAPI(&results[i]))
	}
	return contacts, nil
}

// CountContacts returns the total number of contacts.
func (c *Client) CountContacts(ctx context.Context) (int, error) {
	count, err := c.apiClient.CountContacts(ctx)
	if err != nil {
		return 0, wrapError(err)
	}
	return count, nil
}

// CreateContact creates a contact, or updates it if one already exists for
// the email address (server-side upsert). Arbitrary key/value data may be
// attached; pass nil for none.
func (c *Client) CreateContact(ctx context.Context, email string, subscribed bool, data map[string]any) (*Contact, error) {
	if email == "" {
		return nil, &ValidationError{Message: "email is required"}
	}

	result, err := c.apiClient.CreateContact(ctx, api.CreateContactParams{
		Email:      email,
		Subscribed: subscribed,
		Data:       data,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return newContactFromAPI(result), nil
}

// SubscribeContact marks a contact as subscribed.
func (c *Client) SubscribeContact(ctx context.Context, contactID string) (*SubscriptionResult, error) {
	if contactID == "" {
		return nil, &ValidationError{Message: "contact id is required"}
	}

	result, err := c.apiClient.SubscribeContact(ctx, contactID)
	if err != nil {
		return nil, wrapError(err)
	}
	return &SubscriptionResult{ID: result.ID, Subscribed: result.Subscribed}, nil
}

// UnsubscribeContact marks a contact as unsubscribed.
func (c *Client) UnsubscribeContact(ctx context.Context, contactID string) (*SubscriptionResult, error) {
	if contactID == "" {
		return nil, &ValidationError{Message: "contact id is required"}
	}

	result, err := c.apiClient.UnsubscribeContact(ctx, contactID)
	if err != nil {
		return nil, wrapError(err)
	}
	return &SubscriptionResult{ID: result.ID, Subscribed: result.Subscribed}, nil
}

// DeleteContact deletes a contact by id and returns the contact as it
// existed immediately before deletion.
func (c *Client) DeleteContact(ctx context.Context, contactID string) (*Contact, error) {
	if contactID == "" {
		return nil, &ValidationError{Message: "contact id is required"}
	}

	result, err := c.apiClient.DeleteContact(ctx, contactID)
	if err != nil {
		return nil, wrapError(err)
	}
	return newContactFromAPI(result), nil
}
