package identity

import (
	"github.com/block-mentor/block_mentor/internal/session"
	"github.com/block-mentor/block_mentor/internal/wallet"
)

// Identity is the merged authentication decision derived from the credential
// session and the wallet connection. It is computed on demand and never
// stored.
type Identity struct {
	Authenticated bool
	DisplayLabel  string
}

// source classifies which identity channels are live. Keeping the four cases
// explicit makes the display precedence auditable.
type source int

const (
	sourceNone source = iota
	sourceCredential
	sourceWallet
	sourceBoth
)

const fallbackLabel = "User"

// Resolve merges both identity sources. Either source alone authenticates;
// credential fields win over the wallet address for the display label. Pure:
// no I/O, no side effects.
func Resolve(user *session.User, conn wallet.Connection) Identity {
	src := classify(user, conn)
	return Identity{
		Authenticated: src != sourceNone,
		DisplayLabel:  label(user, conn),
	}
}

func classify(user *session.User, conn wallet.Connection) source {
	switch {
	case user != nil && conn.Connected:
		return sourceBoth
	case user != nil:
		return sourceCredential
	case conn.Connected:
		return sourceWallet
	default:
		return sourceNone
	}
}

func label(user *session.User, conn wallet.Connection) string {
	if user != nil {
		if user.Name != "" {
			return user.Name
		}
		if user.Email != "" {
			return user.Email
		}
	}
	if conn.Connected && conn.Address != "" {
		return TruncateAddress(conn.Address)
	}
	return fallbackLabel
}

// TruncateAddress shortens a wallet address to its first six and last four
// characters. Addresses too short to truncate are returned whole.
func TruncateAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
