package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flirtshaala/flirtshaala/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	var account model.Account
	query := `SELECT id, email, name, password_hash, created_at
			  FROM accounts WHERE email = ?`

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.Name, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	query := `INSERT INTO accounts (id, email, name, password_hash, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Email, account.Name, account.PasswordHash, account.CreatedAt,
	)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}
