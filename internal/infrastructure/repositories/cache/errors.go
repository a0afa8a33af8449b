package cache

import "errors"

var (
	// ErrKeyNotFound is returned when a key has never been stored
	ErrKeyNotFound = errors.New("cache key not found")

	// ErrKeyExpired is returned when a key exists but its TTL has elapsed.
	// Callers treat this identically to ErrKeyNotFound.
	ErrKeyExpired = errors.New("cache key expired")
)

// IsMiss reports whether an error from Get means "absent" rather than a
// backend failure. Expired and never-cached are the same to callers.
func IsMiss(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, ErrKeyExpired)
}
