package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// BlobStore keeps string blobs in Redis with plain GET/SET and no expiry.
type BlobStore struct {
	client    redis.Cmdable
	namespace string
}

// NewBlobStore creates a new BlobStore. Keys are prefixed with namespace.
func NewBlobStore(client redis.Cmdable, namespace string) *BlobStore {
	return &BlobStore{client: client, namespace: namespace}
}

// Get returns the blob stored under key.
func (s *BlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.namespace+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set overwrites the blob stored under key.
func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.namespace+key, value, 0).Err()
}
