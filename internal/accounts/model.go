package accounts

import "time"

// Account represents a registered learner.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Credentials carries a registration or login attempt.
type Credentials struct {
	Email    string
	Password string
	Name     string
}
