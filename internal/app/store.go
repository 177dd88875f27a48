package app

import (
	"context"
	"fmt"
	"log"

	"github.com/newrelic/go-agent/v3/newrelic"

	"locshare/internal/config"
	"locshare/internal/kv"
	internalRedis "locshare/internal/redis"
	"locshare/internal/repository/postgres"
	"locshare/internal/repository/sqlite"
)

// Backend is an opened blob store plus the function that releases it.
type Backend struct {
	Store kv.Store
	Close func() error
}

// NewBackend opens the blob store selected by cfg.Store.Backend.
func NewBackend(ctx context.Context, cfg *config.Config, nrApp *newrelic.Application) (*Backend, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		log.Println("Using in-memory store; locations are lost on restart")
		return &Backend{Store: kv.NewMemoryStore(), Close: func() error { return nil }}, nil

	case config.BackendRedis:
		client, err := NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			return nil, err
		}
		log.Printf("Connected to Redis at %s", cfg.Redis.Addr)
		return &Backend{Store: internalRedis.NewBlobStore(client, cfg.Redis.Namespace), Close: client.Close}, nil

	case config.BackendPostgres:
		db, err := NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			return nil, err
		}
		store := postgres.NewKVStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Println("Connected to PostgreSQL")
		return &Backend{Store: store, Close: db.Close}, nil

	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Printf("Opened SQLite database %s", cfg.Store.SQLitePath)
		return &Backend{Store: sqlite.NewKVStore(db), Close: db.Close}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
