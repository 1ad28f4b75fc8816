package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/block-mentor/block_mentor/internal/storage"
)

// Store persists at most one User per client scope in durable storage. Its
// presence is the sole source of "credential-authenticated".
type Store struct {
	kv  storage.KV
	key string
}

// NewStore binds a store to the session slot of the given client scope.
func NewStore(kv storage.KV, scope string) *Store {
	return &Store{kv: kv, key: "client:" + scope + ":session"}
}

// Save writes user as the current session record, replacing any existing one.
func (s *Store) Save(ctx context.Context, user User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, string(payload))
}

// Load returns the stored user, or nil when no session exists. The slot is
// shared storage that code outside this core can scribble on, so a record
// that fails to parse or lacks an email is purged and reported as absent;
// parse failures never reach the caller.
func (s *Store) Load(ctx context.Context) (*User, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.Email == "" {
		_ = s.kv.Remove(ctx, s.key)
		return nil, nil
	}
	return &user, nil
}

// Clear removes the session record. Clearing an empty slot is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Remove(ctx, s.key)
}
