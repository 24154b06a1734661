// Package common defines constants and sentinel errors shared by the VMIS
// client and server. Callers should match the errors with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrInternal    = errors.New("internal error")
	ErrForbidden   = errors.New("invalid credentials")
	ErrUnknownKind = errors.New("unknown resource kind")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
