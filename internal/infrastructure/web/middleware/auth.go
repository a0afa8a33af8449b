package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"crypto-ticker-service/internal/infrastructure/config"
	"crypto-ticker-service/internal/infrastructure/logging"
)

// AuthMiddleware enforces an optional API key header. Disabled by default;
// when enabled, requests without the configured key are rejected except on
// the unauthenticated path allowlist.
type AuthMiddleware struct {
	cfg config.AuthConfig
}

// NewAuthMiddleware creates an auth middleware from configuration
func NewAuthMiddleware(cfg config.AuthConfig) *AuthMiddleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-API-Key"
	}
	return &AuthMiddleware{cfg: cfg}
}

// Handler wraps the next handler with the API key check
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.cfg.Enabled || m.isUnauthPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		provided := r.Header.Get(m.cfg.HeaderName)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.cfg.APIKey)) != 1 {
			logging.Warn(r.Context(), "Rejected request with missing or invalid API key", logging.Fields{
				"http_path": r.URL.Path,
				"remote_ip": getRemoteIP(r),
			})
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":true,"message":"Invalid or missing API key."}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isUnauthPath checks the allowlist of paths that skip authentication
func (m *AuthMiddleware) isUnauthPath(path string) bool {
	for _, p := range m.cfg.UnauthPaths {
		if strings.HasSuffix(p, "/") {
			if strings.HasPrefix(path, p) || path == strings.TrimSuffix(p, "/") {
				return true
			}
			continue
		}
		if path == p {
			return true
		}
	}
	return false
}
