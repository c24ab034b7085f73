// Package auth provides the local account-registry authenticator.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/flirtshaala/flirtshaala/internal/logger"
	"github.com/flirtshaala/flirtshaala/internal/model"
)

var _ model.Authenticator = (*Local)(nil)

// Local authenticates against accounts stored in the local database with
// bcrypt-hashed passwords. Unknown emails and wrong passwords both map to
// ErrInvalidCredentials so the two cases are indistinguishable to a caller.
type Local struct {
	accounts model.AccountStore
	logger   *logger.Logger
}

func NewLocal(accounts model.AccountStore, logger *logger.Logger) *Local {
	return &Local{
		accounts: accounts,
		logger:   logger,
	}
}

func (l *Local) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	l.logger.Debug("local auth: authenticating", "email", email)

	account, err := l.accounts.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		l.logger.Info("local auth: password mismatch", "email", email)
		return model.User{}, model.ErrInvalidCredentials
	}

	return model.User{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		IsPremium: strings.Contains(account.Email, "premium"),
	}, nil
}

func (l *Local) Register(ctx context.Context, email, password, name string) (model.User, error) {
	l.logger.Debug("local auth: registering", "email", email)

	if email == "" || password == "" {
		return model.User{}, model.ErrInvalidCredentials
	}

	existing, err := l.accounts.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get account by email: %w", err)
	}
	if existing.ID != "" {
		l.logger.Info("local auth: email already in use", "email", email)
		return model.User{}, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account := model.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	account, err = l.accounts.Create(ctx, account)
	if err != nil {
		l.logger.Error("local auth: failed to create account",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create account: %w", err)
	}

	return model.User{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		IsPremium: false,
	}, nil
}
