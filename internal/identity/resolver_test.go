package identity

import (
	"testing"

	"github.com/block-mentor/block_mentor/internal/session"
	"github.com/block-mentor/block_mentor/internal/wallet"
)

func TestResolveAuthenticatedTruthTable(t *testing.T) {
	user := &session.User{Email: "a@b.com"}
	connected := wallet.Connection{Connected: true, Address: "0x1234567890abcdef1234"}

	cases := []struct {
		name string
		user *session.User
		conn wallet.Connection
		want bool
	}{
		{"neither", nil, wallet.Connection{}, false},
		{"credential only", user, wallet.Connection{}, true},
		{"wallet only", nil, connected, true},
		{"both", user, connected, true},
	}

	for _, tc := range cases {
		got := Resolve(tc.user, tc.conn)
		if got.Authenticated != tc.want {
			t.Fatalf("%s: expected authenticated=%v, got %v", tc.name, tc.want, got.Authenticated)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	user := &session.User{Email: "a@b.com", Name: "Ada"}
	conn := wallet.Connection{Connected: true, Address: "0x1234567890abcdef1234"}

	first := Resolve(user, conn)
	second := Resolve(user, conn)
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestResolveDisplayLabelPrecedence(t *testing.T) {
	conn := wallet.Connection{Connected: true, Address: "0x1234567890abcdef1234"}

	cases := []struct {
		name string
		user *session.User
		conn wallet.Connection
		want string
	}{
		{"name wins", &session.User{Email: "a@b.com", Name: "Ada"}, conn, "Ada"},
		{"email when no name", &session.User{Email: "a@b.com"}, conn, "a@b.com"},
		{"address when wallet only", nil, conn, "0x1234...1234"},
		{"fallback when neither", nil, wallet.Connection{}, "User"},
		{"fallback when connected without address", nil, wallet.Connection{Connected: true}, "User"},
	}

	for _, tc := range cases {
		got := Resolve(tc.user, tc.conn)
		if got.DisplayLabel != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got.DisplayLabel)
		}
	}
}

func TestTruncateAddress(t *testing.T) {
	if got := TruncateAddress("0x1234567890abcdef1234"); got != "0x1234...1234" {
		t.Fatalf("expected 0x1234...1234, got %q", got)
	}
	if got := TruncateAddress("0x12345678"); got != "0x12345678" {
		t.Fatalf("expected short address unchanged, got %q", got)
	}
}
