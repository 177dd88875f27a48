package redis

import "locshare/internal/kv"

// Ensure concrete types implement interfaces.
var _ kv.Store = (*BlobStore)(nil)
