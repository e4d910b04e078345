// Package api implements the HTTP layer of the Driftmail client.
//
// It owns the single request/response round trip shared by every endpoint:
// JSON serialization, bearer-token authorization, per-request ids, and the
// mapping from HTTP status codes to the error taxonomy in apierrors.
package api
