package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeCmdable answers GET/SET from a map. Embedding the interface keeps the
// fake small; any other command panics.
type fakeCmdable struct {
	redis.Cmdable
	values map[string]string
	getErr error
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{values: make(map[string]string)}
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if f.getErr != nil {
		cmd.SetErr(f.getErr)
		return cmd
	}
	v, ok := f.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	f.values[key] = value.(string)
	cmd.SetVal("OK")
	return cmd
}

func TestBlobStore_MissIsNotAnError(t *testing.T) {
	t.Parallel()

	s := NewBlobStore(newFakeCmdable(), "locshare:")
	v, ok, err := s.Get(context.Background(), "locations.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || v != "" {
		t.Errorf("expected miss, got ok=%v value=%q", ok, v)
	}
}

func TestBlobStore_SetThenGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fake := newFakeCmdable()
	s := NewBlobStore(fake, "locshare:")

	if err := s.Set(ctx, "locations.csv", "header\n"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := fake.values["locshare:locations.csv"]; !ok {
		t.Errorf("expected namespaced key, got %v", fake.values)
	}

	v, ok, err := s.Get(ctx, "locations.csv")
	if err != nil || !ok || v != "header\n" {
		t.Errorf("expected stored blob, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestBlobStore_GetError(t *testing.T) {
	t.Parallel()

	fake := newFakeCmdable()
	fake.getErr = errors.New("connection refused")
	s := NewBlobStore(fake, "")

	if _, _, err := s.Get(context.Background(), "k"); !errors.Is(err, fake.getErr) {
		t.Errorf("expected connection error, got %v", err)
	}
}
