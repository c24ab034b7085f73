package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/flirtshaala/flirtshaala/internal/model"
)

var _ model.KVStore = (*KVRepository)(nil)

// KVRepository implements the local key-value persistence contract on top
// of the kv table.
type KVRepository struct {
	db *Connection
}

func NewKVRepository(db *Connection) *KVRepository {
	return &KVRepository{
		db: db,
	}
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	query := `SELECT value FROM kv WHERE key = ?`

	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get value for key: %w", err)
	}

	return value, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
			  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set value for key: %w", err)
	}

	return nil
}

func (r *KVRepository) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM kv WHERE key = ?`

	// Deleting an absent key affects zero rows, which is fine.
	_, err := r.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("failed to remove key: %w", err)
	}

	return nil
}
