package ratelimit

import (
	"net"
	"net/http"
	"strings"

	"crypto-ticker-service/internal/infrastructure/config"
	"crypto-ticker-service/internal/infrastructure/logging"
)

// Middleware provides per-client rate limiting for HTTP requests
type Middleware struct {
	limiter   *LimiterCollection
	skipPaths map[string]bool
	enabled   bool
}

// NewMiddleware creates a rate limiting middleware from configuration
func NewMiddleware(cfg config.RateLimitConfig) *Middleware {
	// Operational endpoints are never rate limited
	skipPaths := map[string]bool{
		"/health":  true,
		"/ready":   true,
		"/metrics": true,
	}

	var limiter *LimiterCollection
	if cfg.Enabled {
		limiter = NewLimiterCollection(cfg.Capacity, cfg.RefillRate)
	}

	return &Middleware{
		limiter:   limiter,
		skipPaths: skipPaths,
		enabled:   cfg.Enabled,
	}
}

// Handler wraps the next handler with the rate limit check
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled || m.skipPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		clientID := clientIdentifier(r)
		if !m.limiter.Allow(clientID) {
			logging.Warn(r.Context(), "Request rate limited", logging.Fields{
				"client_id": clientID,
				"http_path": r.URL.Path,
			})
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":true,"message":"Too many requests."}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIdentifier derives a rate-limit key from the client address
func clientIdentifier(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx != -1 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
