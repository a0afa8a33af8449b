package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading using Viper
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader instance
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Load loads configuration from files and environment variables, applies
// normalization and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.setupViper(); err != nil {
		return nil, fmt.Errorf("failed to setup viper: %w", err)
	}

	if err := l.v.ReadInConfig(); err != nil {
		// If config.yaml doesn't exist, use only env vars and defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := GetDefaultConfig()
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Normalize(config)

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setupViper configures Viper to read files and env vars
func (l *Loader) setupViper() error {
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	// Search for configuration files in:
	l.v.AddConfigPath("./configs")          // Configs directory in root
	l.v.AddConfigPath("../configs")         // For when running from cmd/
	l.v.AddConfigPath(".")                  // Current directory
	l.v.AddConfigPath("/etc/crypto-ticker") // System (production)

	// Automatic environment variables: CRYPTO_TICKER_UPSTREAM_BASE_URL etc.
	l.v.AutomaticEnv()
	l.v.SetEnvPrefix("CRYPTO_TICKER")
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	l.bindEnvVars()

	return nil
}

// bindEnvVars maps plain environment variables to configuration keys
func (l *Loader) bindEnvVars() {
	envMappings := map[string]string{
		"server.port":             "PORT",
		"cache.backend":           "CACHE_BACKEND",
		"cache.ttl":               "CACHE_TTL",
		"cache.redis.addr":        "REDIS_ADDR",
		"cache.redis.password":    "REDIS_PASSWORD",
		"cache.redis.db":          "REDIS_DB",
		"upstream.base_url":       "UPSTREAM_BASE_URL",
		"upstream.timeout":        "UPSTREAM_TIMEOUT",
		"ticker.default_currency": "DEFAULT_CURRENCY",
		"logging.level":           "LOG_LEVEL",
		"logging.format":          "LOG_FORMAT",
		"rate_limit.enabled":      "RATE_LIMIT_ENABLED",
		"rate_limit.capacity":     "RATE_LIMIT_CAPACITY",
		"rate_limit.refill_rate":  "RATE_LIMIT_REFILL_RATE",
		"auth.enabled":            "AUTH_ENABLED",
		"auth.api_key":            "AUTH_API_KEY",
	}

	for configKey, envVar := range envMappings {
		_ = l.v.BindEnv(configKey, envVar)
	}
}
