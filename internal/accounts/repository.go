package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound reports that no account exists for the given email.
var ErrNotFound = errors.New("account not found")

// Repository persists accounts.
type Repository interface {
	Create(ctx context.Context, account Account) error
	FindByEmail(ctx context.Context, email string) (Account, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed account repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new account.
func (r *PostgresRepository) Create(ctx context.Context, account Account) error {
	accountID, err := uuid.Parse(account.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO accounts (id, email, name, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5)`, accountID, account.Email, account.Name, account.PasswordHash, account.CreatedAt.UTC())
	return err
}

// FindByEmail fetches an account by email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (Account, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email, name, password_hash, created_at FROM accounts WHERE email = $1`, email)
	var (
		id        uuid.UUID
		createdAt time.Time
		account   Account
	)
	if err := row.Scan(&id, &account.Email, &account.Name, &account.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	account.ID = id.String()
	account.CreatedAt = createdAt.UTC()
	return account, nil
}
