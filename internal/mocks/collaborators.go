// Package mocks contains testify mocks for the collaborator and
// persistence interfaces in internal/model.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/flirtshaala/flirtshaala/internal/model"
)

type Authenticator struct {
	mock.Mock
}

func (m *Authenticator) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *Authenticator) Register(ctx context.Context, email, password, name string) (model.User, error) {
	args := m.Called(ctx, email, password, name)
	return args.Get(0).(model.User), args.Error(1)
}

type TextExtractor struct {
	mock.Mock
}

func (m *TextExtractor) ExtractText(ctx context.Context, imageURI string) (string, error) {
	args := m.Called(ctx, imageURI)
	return args.String(0), args.Error(1)
}

type ReplyGenerator struct {
	mock.Mock
}

func (m *ReplyGenerator) GenerateReply(ctx context.Context, sourceText string) (string, error) {
	args := m.Called(ctx, sourceText)
	return args.String(0), args.Error(1)
}

type Purchaser struct {
	mock.Mock
}

func (m *Purchaser) Purchase(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
