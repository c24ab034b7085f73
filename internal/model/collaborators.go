package model

import "context"

// Authenticator verifies and creates accounts.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (User, error)
	Register(ctx context.Context, email, password, name string) (User, error)
}

// TextExtractor pulls chat text out of a screenshot image.
type TextExtractor interface {
	ExtractText(ctx context.Context, imageURI string) (string, error)
}

// ReplyGenerator produces a witty reply for a source message.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, sourceText string) (string, error)
}

// Purchaser settles a premium upgrade purchase.
type Purchaser interface {
	Purchase(ctx context.Context) error
}
