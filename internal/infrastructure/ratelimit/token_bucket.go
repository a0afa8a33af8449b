package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket implements a simple token bucket rate limiter
type TokenBucket struct {
	mu         sync.Mutex
	capacity   int       // maximum number of tokens
	tokens     int       // current number of tokens
	refillRate int       // tokens per second
	lastRefill time.Time // last refill time
}

// NewTokenBucket creates a new token bucket rate limiter.
// capacity: maximum number of tokens in the bucket.
// refillRate: number of tokens added per second.
func NewTokenBucket(capacity, refillRate int) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity, // start with a full bucket
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow checks if a request is allowed and consumes a token if available
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()

	if tb.tokens > 0 {
		tb.tokens--
		return true
	}

	return false
}

// Tokens returns the current number of available tokens
func (tb *TokenBucket) Tokens() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	return tb.tokens
}

// refill adds tokens based on elapsed time since the last refill.
// Must be called with the lock held.
func (tb *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)

	tokensToAdd := int(elapsed.Seconds() * float64(tb.refillRate))

	if tokensToAdd > 0 {
		tb.tokens += tokensToAdd
		if tb.tokens > tb.capacity {
			tb.tokens = tb.capacity
		}
		tb.lastRefill = now
	}
}

// LimiterCollection manages one token bucket per client
type LimiterCollection struct {
	mu         sync.RWMutex
	buckets    map[string]*TokenBucket
	capacity   int
	refillRate int
	// Cleanup old buckets to prevent unbounded growth
	lastCleanup     time.Time
	cleanupInterval time.Duration
}

// NewLimiterCollection creates a new collection of per-client limiters
func NewLimiterCollection(capacity, refillRate int) *LimiterCollection {
	return &LimiterCollection{
		buckets:         make(map[string]*TokenBucket),
		capacity:        capacity,
		refillRate:      refillRate,
		lastCleanup:     time.Now(),
		cleanupInterval: 10 * time.Minute,
	}
}

// Allow checks if a request from the given client is allowed
func (lc *LimiterCollection) Allow(clientID string) bool {
	return lc.getBucket(clientID).Allow()
}

// getBucket gets or creates a token bucket for the client
func (lc *LimiterCollection) getBucket(clientID string) *TokenBucket {
	lc.mu.RLock()
	bucket, exists := lc.buckets[clientID]
	lc.mu.RUnlock()

	if exists {
		return bucket
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	// Double-check: another goroutine might have created it
	if bucket, exists := lc.buckets[clientID]; exists {
		return bucket
	}

	bucket = NewTokenBucket(lc.capacity, lc.refillRate)
	lc.buckets[clientID] = bucket

	lc.maybeCleanup()

	return bucket
}

// maybeCleanup removes buckets that look unused. Must be called with the
// write lock held.
func (lc *LimiterCollection) maybeCleanup() {
	now := time.Now()
	if now.Sub(lc.lastCleanup) < lc.cleanupInterval {
		return
	}

	cutoff := now.Add(-30 * time.Minute)

	for clientID, bucket := range lc.buckets {
		// A full bucket that has not refilled recently is likely idle
		if bucket.tokens == bucket.capacity && bucket.lastRefill.Before(cutoff) {
			delete(lc.buckets, clientID)
		}
	}

	lc.lastCleanup = now
}
