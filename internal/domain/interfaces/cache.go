package interfaces

import (
	"context"
	"time"
)

// Cache is a key/value store with per-entry expiry. Values are opaque
// strings; serialization is owned by the caller. Get on an unknown or
// expired key returns an error the caller treats as "absent".
type Cache interface {
	// Get retrieves a value by key
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value with the given TTL, overwriting any existing
	// entry and resetting its expiry window
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Ping verifies the backing store is reachable
	Ping(ctx context.Context) error

	// Close releases any connections held by the implementation
	Close() error
}
