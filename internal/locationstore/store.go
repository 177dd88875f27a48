// Package locationstore keeps the latest known location per phone number in a
// single serialized table stored under one key of a kv.Store.
package locationstore

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"locshare/internal/domain"
	"locshare/internal/kv"
)

// DefaultKey is the key the table is stored under.
const DefaultKey = "locations.csv"

// Store is the location record store. Each operation reads and rewrites the
// whole table; the mutex serializes operations within the process, while
// separate processes sharing a backend are last-write-wins.
type Store struct {
	mu  sync.Mutex
	kv  kv.Store
	key string
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the blob key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store on top of the given backend.
func NewStore(backend kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:  backend,
		key: DefaultKey,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the blob key the table is stored under.
func (s *Store) Key() string {
	return s.key
}

// Initialize writes an empty table if none exists yet.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", s.key, err)
	}
	if ok {
		return nil
	}
	if err := s.kv.Set(ctx, s.key, Header+"\n"); err != nil {
		return fmt.Errorf("failed to initialize %s: %w", s.key, err)
	}
	return nil
}

// UpsertLocation replaces the record for phoneNumber in place, or appends one
// if none exists, stamping it with the current time. An empty phone number is
// ignored.
func (s *Store) UpsertLocation(ctx context.Context, phoneNumber string, lat, lng float64) error {
	if phoneNumber == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(ctx)
	if err != nil {
		return err
	}

	record := domain.LocationRecord{
		PhoneNumber: phoneNumber,
		Latitude:    lat,
		Longitude:   lng,
		Timestamp:   s.now().UTC(),
	}

	replaced := false
	for i := range records {
		if records[i].PhoneNumber == phoneNumber {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	if err := s.kv.Set(ctx, s.key, Encode(records)); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.key, err)
	}
	return nil
}

// GetAllLocations returns a fresh snapshot of every record in table order.
func (s *Store) GetAllLocations(ctx context.Context) ([]domain.LocationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read(ctx)
}

func (s *Store) read(ctx context.Context) ([]domain.LocationRecord, error) {
	blob, _, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.key, err)
	}

	records, skipped := Decode(blob)
	if skipped > 0 {
		log.Printf("locationstore: skipped %d malformed line(s) in %s", skipped, s.key)
	}
	return records, nil
}
