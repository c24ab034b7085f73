package model

import (
	"context"
	"time"
)

// AccountStore defines persistence operations for local accounts.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (Account, error)
	Create(ctx context.Context, account Account) (Account, error)
}

// Account is a locally registered account with authentication material.
// It backs the local authenticator; the session-facing User carries no
// password material.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
}
