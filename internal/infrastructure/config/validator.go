package config

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const (
	// MinCacheTTL is the floor for the configured cache TTL. Zero and
	// negative values are clamped up, never treated as "disable caching".
	MinCacheTTL = 1 * time.Second

	// DefaultUpstreamTimeout bounds a single upstream round-trip.
	DefaultUpstreamTimeout = 8 * time.Second

	// FallbackCurrency is used when the configured default currency is
	// unset or invalid.
	FallbackCurrency = "USD"
)

// Normalize applies sanitization rules to a loaded configuration so the
// rest of the system can rely on canonical values.
func Normalize(cfg *Config) {
	if cfg.Cache.TTL < MinCacheTTL {
		cfg.Cache.TTL = MinCacheTTL
	}

	if cfg.Upstream.Timeout <= 0 {
		cfg.Upstream.Timeout = DefaultUpstreamTimeout
	}
	cfg.Upstream.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Upstream.BaseURL), "/")

	cfg.Ticker.DefaultCurrency = SanitizeCurrency(cfg.Ticker.DefaultCurrency)

	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}

	cfg.Cache.Backend = strings.ToLower(strings.TrimSpace(cfg.Cache.Backend))
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
}

// SanitizeCurrency normalizes a currency code to upper-case letters only,
// falling back to USD when nothing valid remains.
func SanitizeCurrency(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	if b.Len() == 0 {
		return FallbackCurrency
	}
	return b.String()
}

// Validate checks a normalized configuration for values that should fail
// startup rather than be silently corrected.
func Validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in range 1-65535, got %d", cfg.Server.Port)
	}

	switch cfg.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got %q", cfg.Cache.Backend)
	}

	if cfg.Cache.Backend == "redis" && cfg.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for the redis backend")
	}

	if cfg.Auth.Enabled && cfg.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required when auth is enabled")
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.Capacity <= 0 {
			return fmt.Errorf("rate_limit.capacity must be positive, got %d", cfg.RateLimit.Capacity)
		}
		if cfg.RateLimit.RefillRate <= 0 {
			return fmt.Errorf("rate_limit.refill_rate must be positive, got %d", cfg.RateLimit.RefillRate)
		}
	}

	return nil
}
