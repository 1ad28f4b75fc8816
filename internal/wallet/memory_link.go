package wallet

import (
	"context"
	"errors"
	"sync"
)

type memoryLink struct {
	mu   sync.RWMutex
	conn Connection
}

// NewMemoryLink builds a standalone in-process link for tests.
func NewMemoryLink() Link {
	return &memoryLink{}
}

func (l *memoryLink) Connection(_ context.Context) (Connection, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.conn, nil
}

func (l *memoryLink) Connect(_ context.Context, address string) error {
	if address == "" {
		return errors.New("wallet: address is required")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conn = Connection{Connected: true, Address: address}
	return nil
}

// Disconnect drops the connection. Disconnecting an idle link is a no-op.
func (l *memoryLink) Disconnect(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conn = Connection{}
	return nil
}

type memoryRegistry struct {
	mu    sync.Mutex
	links map[string]Link
}

// NewMemoryRegistry builds a registry that provisions an in-process link per
// client scope on first use. It stands in for a real provider integration.
func NewMemoryRegistry() Registry {
	return &memoryRegistry{links: make(map[string]Link)}
}

func (r *memoryRegistry) LinkFor(scope string) Link {
	r.mu.Lock()
	defer r.mu.Unlock()
	link, ok := r.links[scope]
	if !ok {
		link = NewMemoryLink()
		r.links[scope] = link
	}
	return link
}
