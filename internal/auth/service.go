package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/block-mentor/block_mentor/internal/accounts"
	"github.com/block-mentor/block_mentor/internal/gate"
	"github.com/block-mentor/block_mentor/internal/identity"
	"github.com/block-mentor/block_mentor/internal/notification"
	"github.com/block-mentor/block_mentor/internal/redirect"
	"github.com/block-mentor/block_mentor/internal/session"
	"github.com/block-mentor/block_mentor/internal/storage"
	"github.com/block-mentor/block_mentor/internal/wallet"
)

// Verifier is the narrow interface to the credential verification service.
// accounts.Service satisfies it.
type Verifier interface {
	Authenticate(ctx context.Context, creds accounts.Credentials) (accounts.Account, error)
}

// Service runs the login flow and coordinates logout across both identity
// sources.
type Service struct {
	kv       storage.KV
	links    wallet.Registry
	verifier Verifier
	notifier notification.Notifier
	logger   *slog.Logger
	timeout  time.Duration

	// one outstanding login per client scope
	inflight sync.Map
}

// NewService builds the auth service. timeout bounds the verification round
// trip.
func NewService(kv storage.KV, links wallet.Registry, verifier Verifier, notifier notification.Notifier, logger *slog.Logger, timeout time.Duration) *Service {
	return &Service{kv: kv, links: links, verifier: verifier, notifier: notifier, logger: logger, timeout: timeout}
}

// Outcome reports a successful login and where the client should land next.
type Outcome struct {
	User       session.User
	RedirectTo string
}

// Login validates the submission, verifies credentials, stores the session
// record and resolves the post-login destination: the pending redirect when
// one was captured, otherwise the dashboard. While one submission is
// outstanding a second for the same scope is rejected with ErrLoginInFlight.
func (s *Service) Login(ctx context.Context, scope string, creds accounts.Credentials) (Outcome, error) {
	if creds.Email == "" || creds.Password == "" {
		return Outcome{}, ErrMissingFields
	}

	if _, busy := s.inflight.LoadOrStore(scope, struct{}{}); busy {
		return Outcome{}, ErrLoginInFlight
	}
	defer s.inflight.Delete(scope)

	verifyCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		verifyCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	account, err := s.verifier.Authenticate(verifyCtx, creds)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			s.notify(ctx, notification.KindLoginFailed, notification.CategoryError, "The email or password you entered is incorrect.")
			return Outcome{}, ErrInvalidCredentials
		}
		s.logger.Error("credential verification failed", "error", err)
		s.notify(ctx, notification.KindLoginFailed, notification.CategoryError, "There was a problem signing you in. Please try again.")
		return Outcome{}, ErrVerifyUnavailable
	}

	user := session.User{Email: account.Email, Name: account.Name}
	if err := session.NewStore(s.kv, scope).Save(ctx, user); err != nil {
		return Outcome{}, err
	}

	dest := gate.PathDashboard
	if path, ok, err := redirect.NewCoordinator(s.kv, scope).ConsumeIfPresent(ctx); err != nil {
		s.logger.Warn("consume pending redirect", "error", err)
	} else if ok {
		dest = path
	}

	s.notify(ctx, notification.KindLoginSucceeded, notification.CategorySuccess, "Welcome back to Block Mentor!")
	return Outcome{User: user, RedirectTo: dest}, nil
}

// Logout clears the credential session, then asks the wallet provider to
// disconnect if it reports a connection. The credential clear commits first
// and is never rolled back: a wallet failure surfaces as ErrWalletDisconnect
// with a warning notification, and the client stays wallet-authenticated
// until a retry succeeds. Calling Logout with neither source active is a
// no-op on each step.
func (s *Service) Logout(ctx context.Context, scope string) error {
	if err := session.NewStore(s.kv, scope).Clear(ctx); err != nil {
		return err
	}

	link := s.links.LinkFor(scope)
	conn, err := link.Connection(ctx)
	if err == nil && conn.Connected {
		err = link.Disconnect(ctx)
	}
	if err != nil {
		s.logger.Warn("wallet disconnect during logout", "error", err)
		s.notify(ctx, notification.KindLoggedOut, notification.CategoryWarning, "Signed out, but the wallet connection could not be released.")
		return errors.Join(ErrWalletDisconnect, err)
	}

	s.notify(ctx, notification.KindLoggedOut, notification.CategorySuccess, "You have been signed out of your account.")
	return nil
}

// Session reports the effective identity for the client, recomputed from
// both sources on every call.
func (s *Service) Session(ctx context.Context, scope string) (identity.Identity, error) {
	user, err := session.NewStore(s.kv, scope).Load(ctx)
	if err != nil {
		return identity.Identity{}, err
	}
	conn, err := s.links.LinkFor(scope).Connection(ctx)
	if err != nil {
		return identity.Identity{}, err
	}
	return identity.Resolve(user, conn), nil
}

func (s *Service) notify(ctx context.Context, kind, category, body string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, notification.Message{Kind: kind, Category: category, Body: body}); err != nil {
		s.logger.Warn("send notification", "kind", kind, "error", err)
	}
}
