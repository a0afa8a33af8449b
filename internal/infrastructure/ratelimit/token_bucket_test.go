package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucket_Allow(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		requests int
		wantOK   int
	}{
		{name: "within capacity", capacity: 5, requests: 3, wantOK: 3},
		{name: "exactly capacity", capacity: 5, requests: 5, wantOK: 5},
		{name: "over capacity", capacity: 5, requests: 8, wantOK: 5},
		{name: "single token", capacity: 1, requests: 3, wantOK: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket := NewTokenBucket(tt.capacity, 1)

			allowed := 0
			for i := 0; i < tt.requests; i++ {
				if bucket.Allow() {
					allowed++
				}
			}

			assert.Equal(t, tt.wantOK, allowed)
		})
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := NewTokenBucket(2, 100) // 100 tokens/second refills fast

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, bucket.Allow())
}

func TestTokenBucket_RefillCapsAtCapacity(t *testing.T) {
	bucket := NewTokenBucket(3, 1000)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 3, bucket.Tokens())
}

func TestLimiterCollection_PerClientIsolation(t *testing.T) {
	limiter := NewLimiterCollection(1, 1)

	assert.True(t, limiter.Allow("client-a"))
	assert.False(t, limiter.Allow("client-a"))

	// A different client has its own bucket
	assert.True(t, limiter.Allow("client-b"))
}

func TestLimiterCollection_ConcurrentClients(t *testing.T) {
	limiter := NewLimiterCollection(100, 10)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = limiter.Allow("shared-client")
			}
		}()
	}
	wg.Wait()

	// 200 requests against capacity 100 must leave the bucket empty
	assert.False(t, limiter.Allow("shared-client"))
}
