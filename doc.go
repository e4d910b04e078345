// Package driftmail provides a Go client SDK for Driftmail, a
// transactional-email and marketing-automation HTTP API.
//
// The SDK exposes one method per remote endpoint: event tracking, contact
// management (fetch, list, count, create, delete, subscribe, unsubscribe),
// and transactional email sending. Every call is a single request/response
// round trip; there are no retries and no local state beyond the immutable
// client configuration.
//
// Basic usage:
//
//	client, err := driftmail.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Record an event against a contact
//	result, err := client.Track(ctx, "user@example.com", "signed_up")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Send a transactional email
//	sent, err := client.SendEmail(ctx,
//	    "noreply@example.com",
//	    []string{"user@example.com"},
//	    "Welcome!",
//	    "Thanks for signing up.",
//	    driftmail.WithSenderName("Example App"),
//	)
//
// Errors are typed: use errors.Is with the package sentinels
// (ErrInvalidRequest, ErrUnauthorized, ErrQuotaExceeded) or errors.As with
// *APIError to inspect the status code and raw response body.
package driftmail
