package model

import "errors"

var (
	// ErrNotFound is returned by stores when a key or entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned by authenticators when the
	// email/password pair does not match an account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned on signup when the email is already in use.
	ErrEmailTaken = errors.New("email already in use")

	// ErrExtraction is returned when a screenshot cannot be processed.
	ErrExtraction = errors.New("text extraction failed")

	// ErrGeneration is returned when the reply service is unavailable.
	ErrGeneration = errors.New("reply generation failed")

	// ErrPurchaseFailed is returned when a premium purchase does not settle.
	ErrPurchaseFailed = errors.New("purchase failed")
)
