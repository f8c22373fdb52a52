package service

import (
	"context"
	"time"
)

// Cache is a shared byte store with per-entry expiry. Writes are last-write-wins.
type Cache interface {
	// Get returns the stored value. found is false for missing or expired keys.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key for ttl. A zero ttl never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
