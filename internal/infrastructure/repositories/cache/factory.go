package cache

import (
	"context"
	"fmt"
	"time"

	"crypto-ticker-service/internal/domain/interfaces"
	"crypto-ticker-service/internal/infrastructure/config"
	"crypto-ticker-service/internal/infrastructure/logging"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
)

// CacheType represents the type of cache implementation
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeRedis  CacheType = "redis"
)

const (
	redisProbeAttempts = 3
	redisProbeDelay    = 500 * time.Millisecond
	redisProbeTimeout  = 5 * time.Second
)

// Factory provides methods to create cache instances
type Factory struct{}

// NewFactory creates a new cache factory
func NewFactory() *Factory {
	return &Factory{}
}

// CreateCache creates a cache instance based on configuration. The result
// is always wrapped with metrics instrumentation.
func (f *Factory) CreateCache(cfg config.CacheConfig) (interfaces.Cache, error) {
	ctx := context.Background()

	switch CacheType(cfg.Backend) {
	case CacheTypeMemory:
		logging.Info(ctx, "Creating memory cache", logging.Fields{
			"type": "memory",
		})
		return NewInstrumentedCache(NewMemoryCache()), nil

	case CacheTypeRedis:
		logging.Info(ctx, "Creating Redis cache", logging.Fields{
			"type":     "redis",
			"addr":     cfg.Redis.Addr,
			"database": cfg.Redis.DB,
		})
		inner, err := f.createRedisCache(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewInstrumentedCache(inner), nil

	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Backend)
	}
}

// createRedisCache creates a Redis-backed cache and verifies connectivity.
// The probe retries with backoff so a Redis that is still coming up (e.g.
// during a compose start) does not fail the whole service; the request
// path itself never retries.
func (f *Factory) createRedisCache(cfg config.RedisConfig) (interfaces.Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), redisProbeTimeout)
			defer cancel()
			return rdb.Ping(ctx).Err()
		},
		retry.Attempts(redisProbeAttempts),
		retry.Delay(redisProbeDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			logging.WarnWithError(context.Background(), "Redis connectivity probe failed, retrying", err, logging.Fields{
				"attempt":      n + 1,
				"max_attempts": redisProbeAttempts,
				"addr":         cfg.Addr,
			})
		}),
	)
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	logging.Info(context.Background(), "Redis connection established successfully", logging.Fields{
		"addr":     cfg.Addr,
		"database": cfg.DB,
	})
	return NewRedisCacheWithClient(rdb), nil
}
