package sim

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/flirtshaala/flirtshaala/internal/logger"
	"github.com/flirtshaala/flirtshaala/internal/model"
)

// demoAvatar is the fixed profile image every demo login gets.
const demoAvatar = "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=100"

var _ model.Authenticator = (*Auth)(nil)

// Auth is the demo authenticator. Any non-empty email/password pair is
// accepted; the account's display name is the email local part and premium
// status is granted when the email contains "premium".
type Auth struct {
	delays Delays
	logger *logger.Logger
}

func NewAuth(delays Delays, logger *logger.Logger) *Auth {
	return &Auth{
		delays: delays,
		logger: logger,
	}
}

func (a *Auth) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	if err := sleep(ctx, a.delays.Login); err != nil {
		return model.User{}, err
	}

	if email == "" || password == "" {
		return model.User{}, model.ErrInvalidCredentials
	}

	a.logger.Debug("demo auth: authenticated", "email", email)

	return model.User{
		ID:        "1",
		Email:     email,
		Name:      localPart(email),
		IsPremium: strings.Contains(email, "premium"),
		Avatar:    demoAvatar,
	}, nil
}

func (a *Auth) Register(ctx context.Context, email, password, name string) (model.User, error) {
	if err := sleep(ctx, a.delays.Signup); err != nil {
		return model.User{}, err
	}

	if email == "" || password == "" {
		return model.User{}, model.ErrInvalidCredentials
	}

	if name == "" {
		name = localPart(email)
	}

	a.logger.Debug("demo auth: registered", "email", email)

	return model.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		IsPremium: false,
	}, nil
}

func localPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
