// Package client talks to the VMIS REST API.
//
// # Overview
//
// HTTPClient.Fetch is the single transport primitive: it resolves a relative
// endpoint against the configured base URL, sends JSON, attaches
// "Authorization: Bearer <token>" when the given session carries a token,
// and decodes nothing beyond checking that a 2xx body is JSON. The typed
// helpers (Login, Register, Dashboard, List, Create) are built on top of it
// and together satisfy the API interface used by the services layer.
//
// The client never reads or writes the session store: the caller passes the
// session explicitly and decides what an authorization failure means.
//
// # Error Handling
//
//   - *HTTPError for non-2xx answers (IsAuthRejected reports 401/403),
//   - *NetworkError when no response was received (wraps the transport
//     error, so errors.Is(err, context.Canceled) works),
//   - ErrInvalidResponseShape for malformed 2xx payloads.
//
// Nothing is retried.
package client
