package model

import (
	"context"
	"io"
)

// KVStore defines the local key-value persistence contract. Get returns
// ErrNotFound for absent keys; Remove on an absent key is a no-op.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// ImageStore holds uploaded screenshot images addressed by URI.
type ImageStore interface {
	Upload(ctx context.Context, key string, reader io.Reader) (uri string, err error)
	Download(ctx context.Context, uri string) (io.ReadCloser, error)
	Delete(ctx context.Context, uri string) error
	Exists(ctx context.Context, uri string) (bool, error)
}
