package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"locshare/internal/kv"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv_blobs (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// KVStore is a PostgreSQL implementation of kv.Store. Each key is one row.
type KVStore struct {
	q Querier
}

// NewKVStore creates a new PostgreSQL blob store.
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{q: db}
}

// Migrate creates the blob table if it does not exist.
func (s *KVStore) Migrate(ctx context.Context) error {
	if _, err := s.q.ExecContext(ctx, kvSchema); err != nil {
		return fmt.Errorf("failed to create kv_blobs: %w", err)
	}
	return nil
}

// Get retrieves the blob stored under key.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv_blobs WHERE key = $1`

	var value string
	err := s.q.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set overwrites the blob stored under key.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv_blobs (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	_, err := s.q.ExecContext(ctx, query, key, value)
	return err
}

var _ kv.Store = (*KVStore)(nil)
