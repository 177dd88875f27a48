package service_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"locshare/internal/domain"
)

// MockLocationStore is a mock implementation of service.LocationStore.
type MockLocationStore struct {
	mu      sync.RWMutex
	records []domain.LocationRecord

	// Counters for verification
	UpsertCallCount int32

	// Error injection
	UpsertError error
	GetAllError error
}

// NewMockLocationStore creates a new mock location store.
func NewMockLocationStore(records ...domain.LocationRecord) *MockLocationStore {
	return &MockLocationStore{records: records}
}

func (m *MockLocationStore) UpsertLocation(ctx context.Context, phoneNumber string, lat, lng float64) error {
	atomic.AddInt32(&m.UpsertCallCount, 1)
	if m.UpsertError != nil {
		return m.UpsertError
	}
	if phoneNumber == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	record := domain.LocationRecord{PhoneNumber: phoneNumber, Latitude: lat, Longitude: lng, Timestamp: time.Now().UTC()}
	for i, r := range m.records {
		if r.PhoneNumber == phoneNumber {
			m.records[i] = record
			return nil
		}
	}
	m.records = append(m.records, record)
	return nil
}

func (m *MockLocationStore) GetAllLocations(ctx context.Context) ([]domain.LocationRecord, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.LocationRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Count returns the number of stored records (for test assertions).
func (m *MockLocationStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
