package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"crypto-ticker-service/internal/domain/entities"
	"crypto-ticker-service/internal/domain/interfaces"
	"crypto-ticker-service/internal/infrastructure/logging"
	"crypto-ticker-service/internal/infrastructure/metrics"
)

const (
	// DefaultCacheTTL is used when no TTL is configured
	DefaultCacheTTL = 60 * time.Second

	// CacheKeyPrefix namespaces price entries in the cache
	CacheKeyPrefix = "price:"
)

// priceService implements the PriceService interface: cache-aside
// read-through over a PriceProvider, write-on-success-only. It is the
// single writer to the cache for price payloads.
type priceService struct {
	provider interfaces.PriceProvider
	cache    interfaces.Cache
	cacheTTL time.Duration
}

// NewPriceService creates a new price service instance
func NewPriceService(provider interfaces.PriceProvider, cache interfaces.Cache, ttl time.Duration) interfaces.PriceService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &priceService{
		provider: provider,
		cache:    cache,
		cacheTTL: ttl,
	}
}

// GetPrice returns the cached payload for (id, currency) when present,
// otherwise fetches from the provider and caches successful results.
// Errors are returned as-is and never cached, so a transient upstream
// failure is re-attempted on the very next call.
func (s *priceService) GetPrice(ctx context.Context, id, currency string) (*entities.Price, error) {
	key := s.cacheKey(id, currency)

	if cached, err := s.getFromCache(ctx, key); err == nil {
		metrics.RecordPriceRequest(cached.ID, true)
		logging.CacheOperation(ctx, "get", key, true, logging.Fields{
			"asset_id": id,
			"currency": currency,
		})
		return cached, nil
	}

	metrics.RecordPriceRequest(strings.ToLower(id), false)
	logging.CacheOperation(ctx, "get", key, false, logging.Fields{
		"asset_id": id,
		"currency": currency,
	})

	price, err := s.provider.GetPrice(ctx, id, currency)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cachePrice(ctx, key, price); cacheErr != nil {
		// A failed write only costs the next request a refetch
		logging.WarnWithError(ctx, "Failed to cache price", cacheErr, logging.Fields{
			"cache_key": key,
		})
	}

	return price, nil
}

// getFromCache retrieves and deserializes a cached payload. A value that
// fails to deserialize is dropped and treated as a miss.
func (s *priceService) getFromCache(ctx context.Context, key string) (*entities.Price, error) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var price entities.Price
	if err := json.Unmarshal([]byte(raw), &price); err != nil {
		logging.WarnWithError(ctx, "Dropping undecodable cache entry", err, logging.Fields{
			"cache_key": key,
		})
		_ = s.cache.Delete(ctx, key)
		return nil, err
	}

	return &price, nil
}

// cachePrice serializes and stores a successful payload
func (s *priceService) cachePrice(ctx context.Context, key string, price *entities.Price) error {
	raw, err := json.Marshal(price)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, string(raw), s.cacheTTL)
}

// cacheKey derives the cache key from lower-cased (id, currency), so two
// requests differing only in letter case share one entry
func (s *priceService) cacheKey(id, currency string) string {
	return CacheKeyPrefix + strings.ToLower(strings.TrimSpace(id)) + ":" + strings.ToLower(strings.TrimSpace(currency))
}
