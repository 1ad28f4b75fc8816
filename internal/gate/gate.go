package gate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/block-mentor/block_mentor/internal/identity"
	"github.com/block-mentor/block_mentor/internal/redirect"
	"github.com/block-mentor/block_mentor/internal/session"
	"github.com/block-mentor/block_mentor/internal/storage"
	"github.com/block-mentor/block_mentor/internal/wallet"
)

// Well-known front end paths.
const (
	PathHome      = "/"
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathDashboard = "/dashboard"
)

// Action tells the front end what to do with an attempted navigation.
type Action string

const (
	ActionAllow    Action = "allow"
	ActionRedirect Action = "redirect"
)

// Decision is the gate's verdict for one navigation. Target is only set when
// Action is ActionRedirect.
type Decision struct {
	Action Action
	Target string
}

// Gate decides, on each relevant navigation, whether to divert the client.
// It re-reads both identity sources every time; there is no terminal state.
type Gate struct {
	kv     storage.KV
	links  wallet.Registry
	logger *slog.Logger
}

// New builds an auth gate over the shared storage and wallet registry.
func New(kv storage.KV, links wallet.Registry, logger *slog.Logger) *Gate {
	return &Gate{kv: kv, links: links, logger: logger}
}

// Evaluate applies the gate rules to the client entering path:
// an unauthenticated client entering a protected screen has the destination
// captured and is sent to the login screen; an authenticated client entering
// the login or registration screen is sent to the pending destination, or the
// dashboard, before the form renders. Everything else passes through.
func (g *Gate) Evaluate(ctx context.Context, scope, path string) (Decision, error) {
	user, err := session.NewStore(g.kv, scope).Load(ctx)
	if err != nil {
		return Decision{}, err
	}
	conn, err := g.links.LinkFor(scope).Connection(ctx)
	if err != nil {
		return Decision{}, err
	}
	id := identity.Resolve(user, conn)

	switch {
	case isAuthScreen(path) && id.Authenticated:
		target := PathDashboard
		if captured, ok, err := redirect.NewCoordinator(g.kv, scope).ConsumeIfPresent(ctx); err != nil {
			g.logger.Warn("consume pending redirect", "error", err)
		} else if ok {
			target = captured
		}
		return Decision{Action: ActionRedirect, Target: target}, nil
	case isProtected(path) && !id.Authenticated:
		if err := redirect.NewCoordinator(g.kv, scope).Capture(ctx, path); err != nil {
			g.logger.Warn("capture pending redirect", "error", err)
		}
		return Decision{Action: ActionRedirect, Target: PathLogin}, nil
	default:
		return Decision{Action: ActionAllow}, nil
	}
}

func isProtected(path string) bool {
	return path == PathDashboard || strings.HasPrefix(path, PathDashboard+"/")
}

// isAuthScreen reports whether path is the login or registration screen.
// These screens are never protected, so entering them unauthenticated
// captures nothing.
func isAuthScreen(path string) bool {
	return path == PathLogin || path == PathRegister
}
