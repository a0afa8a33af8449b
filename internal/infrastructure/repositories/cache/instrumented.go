package cache

import (
	"context"
	"time"

	"crypto-ticker-service/internal/domain/interfaces"
	"crypto-ticker-service/internal/infrastructure/metrics"
)

// InstrumentedCache decorates a Cache implementation with Prometheus
// metrics for every operation.
type InstrumentedCache struct {
	inner interfaces.Cache
}

// NewInstrumentedCache wraps a cache with operation metrics
func NewInstrumentedCache(inner interfaces.Cache) interfaces.Cache {
	return &InstrumentedCache{inner: inner}
}

func (c *InstrumentedCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.inner.Get(ctx, key)
	switch {
	case err == nil:
		metrics.RecordCacheOperation("get", "hit")
	case IsMiss(err):
		metrics.RecordCacheOperation("get", "miss")
	default:
		metrics.RecordCacheOperation("get", "error")
	}
	return val, err
}

func (c *InstrumentedCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	err := c.inner.Set(ctx, key, value, ttl)
	if err != nil {
		metrics.RecordCacheOperation("set", "error")
	} else {
		metrics.RecordCacheOperation("set", "success")
	}
	return err
}

func (c *InstrumentedCache) Delete(ctx context.Context, key string) error {
	err := c.inner.Delete(ctx, key)
	if err != nil {
		metrics.RecordCacheOperation("delete", "error")
	} else {
		metrics.RecordCacheOperation("delete", "success")
	}
	return err
}

func (c *InstrumentedCache) Ping(ctx context.Context) error {
	return c.inner.Ping(ctx)
}

func (c *InstrumentedCache) Close() error {
	return c.inner.Close()
}
