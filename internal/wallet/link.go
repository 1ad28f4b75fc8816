package wallet

import "context"

// Connection is the provider-owned wallet state. The session core only reads
// it and, during logout, asks for a disconnect; it never fabricates one.
type Connection struct {
	Connected bool
	Address   string
}

// Link is the integration point with a wallet provider for one client.
type Link interface {
	Connection(ctx context.Context) (Connection, error)
	Connect(ctx context.Context, address string) error
	Disconnect(ctx context.Context) error
}

// Registry hands out the Link bound to a client scope.
type Registry interface {
	LinkFor(scope string) Link
}
