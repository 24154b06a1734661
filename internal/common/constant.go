package common

// HTTP header names and values used on both sides of the API.
const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	ContentTypeHeader   = "Content-Type"
	AcceptHeader        = "Accept"
	JSONContentType     = "application/json"
	RequestIDHeader     = "X-Request-ID"
)
