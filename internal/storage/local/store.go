// Package local stores screenshot images as plain files under a base
// directory. It is the default image store when no object storage endpoint
// is configured.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/flirtshaala/flirtshaala/internal/model"
)

var _ model.ImageStore = (*Store)(nil)

type Store struct {
	baseDir string
}

// NewStore creates the base directory if needed.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	return &Store{
		baseDir: baseDir,
	}, nil
}

func (s *Store) path(uri string) string {
	name := strings.TrimPrefix(uri, "file://")
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.baseDir, filepath.Base(name))
}

func (s *Store) Upload(ctx context.Context, key string, reader io.Reader) (string, error) {
	path := filepath.Join(s.baseDir, filepath.Base(key))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve image path: %w", err)
	}

	return "file://" + abs, nil
}

func (s *Store) Download(ctx context.Context, uri string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(uri))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	return f, nil
}

func (s *Store) Delete(ctx context.Context, uri string) error {
	err := os.Remove(s.path(uri))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image file: %w", err)
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, uri string) (bool, error) {
	_, err := os.Stat(s.path(uri))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat image file: %w", err)
	}
	return true, nil
}
