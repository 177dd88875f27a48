package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// Runs only against a real server: POSTGRES_TEST_DSN=postgres://... go test ./...
func TestKVStore_Integration(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	s := NewKVStore(db)
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	key := "test:" + t.Name()
	t.Cleanup(func() { _, _ = db.ExecContext(ctx, `DELETE FROM kv_blobs WHERE key = $1`, key) })

	if _, ok, err := s.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, key, "a"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, key, "b"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok || v != "b" {
		t.Fatalf("expected b, got %q ok=%v err=%v", v, ok, err)
	}
}
