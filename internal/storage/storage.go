package storage

import (
	"context"
	"errors"
)

// ErrNotFound reports that no value exists under the requested key.
var ErrNotFound = errors.New("storage: key not found")

// KV is the durable client storage collaborator: plain text values under
// independent keys. The session core owns exactly two keys per client scope
// (the credential session record and the pending redirect); other code may
// share the underlying store, so callers re-validate everything they read.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
