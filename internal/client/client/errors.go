package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidResponseShape is returned when a 2xx body is not what the
// endpoint promises (e.g. a list endpoint answering with an object).
var ErrInvalidResponseShape = errors.New("invalid response shape")

// HTTPError is a non-2xx answer from the API.
type HTTPError struct {
	Status     int
	StatusText string
	// Message is the "error" field of the body, when the server sent one.
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d %s: %s", e.Status, e.StatusText, e.Message)
	}
	return fmt.Sprintf("http %d %s", e.Status, e.StatusText)
}

func newHTTPError(status int, body []byte) *HTTPError {
	e := &HTTPError{Status: status, StatusText: http.StatusText(status)}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		e.Message = payload.Error
	}
	return e
}

// NetworkError means no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	return 0
}

// IsAuthRejected reports whether err is a 401 or 403 answer, i.e. the
// session should be dropped.
func IsAuthRejected(err error) bool {
	switch StatusOf(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return false
}
