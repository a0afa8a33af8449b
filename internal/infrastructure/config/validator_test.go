package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CacheTTLClamp(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		want time.Duration
	}{
		{name: "zero TTL clamps to minimum", ttl: 0, want: MinCacheTTL},
		{name: "negative TTL clamps to minimum", ttl: -10 * time.Second, want: MinCacheTTL},
		{name: "sub-second TTL clamps to minimum", ttl: 200 * time.Millisecond, want: MinCacheTTL},
		{name: "exactly minimum is kept", ttl: MinCacheTTL, want: MinCacheTTL},
		{name: "normal TTL is kept", ttl: 60 * time.Second, want: 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			cfg.Cache.TTL = tt.ttl
			Normalize(cfg)
			assert.Equal(t, tt.want, cfg.Cache.TTL)
		})
	}
}

func TestNormalize_UpstreamDefaults(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Upstream.Timeout = 0
	cfg.Upstream.BaseURL = "  https://api.example.com/v1/ "
	Normalize(cfg)

	assert.Equal(t, DefaultUpstreamTimeout, cfg.Upstream.Timeout)
	assert.Equal(t, "https://api.example.com/v1", cfg.Upstream.BaseURL)
}

func TestNormalize_BackendDefaults(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Cache.Backend = " Redis "
	Normalize(cfg)
	assert.Equal(t, "redis", cfg.Cache.Backend)

	cfg = GetDefaultConfig()
	cfg.Cache.Backend = ""
	Normalize(cfg)
	assert.Equal(t, "memory", cfg.Cache.Backend)
}

func TestSanitizeCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase is uppercased", input: "usd", want: "USD"},
		{name: "already canonical", input: "EUR", want: "EUR"},
		{name: "mixed case", input: "gBp", want: "GBP"},
		{name: "digits stripped", input: "us1d", want: "USD"},
		{name: "punctuation stripped", input: "u-s.d!", want: "USD"},
		{name: "whitespace stripped", input: " eur ", want: "EUR"},
		{name: "empty falls back", input: "", want: "USD"},
		{name: "only symbols falls back", input: "$$$123", want: "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeCurrency(tt.input))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "default config is valid",
			modify: func(cfg *Config) {},
		},
		{
			name: "port out of range",
			modify: func(cfg *Config) {
				cfg.Server.Port = 70000
			},
			wantErr: "server.port",
		},
		{
			name: "zero port",
			modify: func(cfg *Config) {
				cfg.Server.Port = 0
			},
			wantErr: "server.port",
		},
		{
			name: "unknown backend",
			modify: func(cfg *Config) {
				cfg.Cache.Backend = "memcached"
			},
			wantErr: "cache.backend",
		},
		{
			name: "redis backend without addr",
			modify: func(cfg *Config) {
				cfg.Cache.Backend = "redis"
				cfg.Cache.Redis.Addr = ""
			},
			wantErr: "cache.redis.addr",
		},
		{
			name: "auth enabled without key",
			modify: func(cfg *Config) {
				cfg.Auth.Enabled = true
				cfg.Auth.APIKey = ""
			},
			wantErr: "auth.api_key",
		},
		{
			name: "rate limit enabled with zero capacity",
			modify: func(cfg *Config) {
				cfg.RateLimit.Enabled = true
				cfg.RateLimit.Capacity = 0
			},
			wantErr: "rate_limit.capacity",
		},
		{
			name: "rate limit enabled with zero refill rate",
			modify: func(cfg *Config) {
				cfg.RateLimit.Enabled = true
				cfg.RateLimit.RefillRate = 0
			},
			wantErr: "rate_limit.refill_rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.modify(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
