// Package metadata is the client's key/value table in the local SQLite
// database. The session store keeps its token and user id here.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the value of key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
