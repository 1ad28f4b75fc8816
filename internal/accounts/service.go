package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// ErrInvalidCredentials covers unknown emails and wrong passwords alike, so
// callers cannot tell which half failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service manages account lifecycle and credential verification.
type Service struct {
	repo Repository
}

// NewService creates a new accounts service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates an account with a hashed password.
func (s *Service) Register(ctx context.Context, creds Credentials) (Account, error) {
	if !strings.Contains(creds.Email, "@") {
		return Account{}, errors.New("a valid email is required")
	}
	if len(creds.Password) < minPasswordLength {
		return Account{}, errors.New("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	account := Account{
		ID:           uuid.New().String(),
		Email:        creds.Email,
		Name:         creds.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return Account{}, err
	}

	return account, nil
}

// Authenticate verifies credentials against the stored hash. Repository
// failures other than a missing account pass through so callers can treat
// them as transport errors rather than bad credentials.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (Account, error) {
	account, err := s.repo.FindByEmail(ctx, creds.Email)
	if errors.Is(err, ErrNotFound) {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, err
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(creds.Password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}

	return account, nil
}
