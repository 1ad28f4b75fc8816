package redirect

import (
	"context"
	"errors"

	"github.com/block-mentor/block_mentor/internal/storage"
)

// Coordinator remembers the single destination a client was trying to reach
// before being diverted to the login screen. The path lives in durable
// storage so it survives a full page reload during the detour.
type Coordinator struct {
	kv  storage.KV
	key string
}

// NewCoordinator binds a coordinator to the redirect slot of the given client
// scope.
func NewCoordinator(kv storage.KV, scope string) *Coordinator {
	return &Coordinator{kv: kv, key: "client:" + scope + ":redirect"}
}

// Capture records path as the pending destination, replacing any earlier one.
// Only the most recent diversion matters.
func (c *Coordinator) Capture(ctx context.Context, path string) error {
	if path == "" {
		return errors.New("redirect: path is required")
	}
	return c.kv.Set(ctx, c.key, path)
}

// ConsumeIfPresent returns the pending destination exactly once, deleting it
// as it is read. ok is false when nothing was captured; the caller then falls
// back to its default landing path.
func (c *Coordinator) ConsumeIfPresent(ctx context.Context) (path string, ok bool, err error) {
	raw, err := c.kv.Get(ctx, c.key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if err := c.kv.Remove(ctx, c.key); err != nil {
		return "", false, err
	}
	return raw, true, nil
}
