package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"crypto-ticker-service/internal/infrastructure/config"
)

func runAuthRequest(cfg config.AuthConfig, path, apiKey string) *httptest.ResponseRecorder {
	mw := NewAuthMiddleware(cfg)
	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_Handler(t *testing.T) {
	enabledCfg := config.AuthConfig{
		Enabled:     true,
		APIKey:      "secret-key",
		HeaderName:  "X-API-Key",
		UnauthPaths: []string{"/health", "/ready", "/metrics", "/swagger/"},
	}

	tests := []struct {
		name     string
		cfg      config.AuthConfig
		path     string
		apiKey   string
		wantCode int
	}{
		{
			name:     "disabled lets everything through",
			cfg:      config.AuthConfig{Enabled: false},
			path:     "/api/v1/price?id=bitcoin",
			wantCode: http.StatusOK,
		},
		{
			name:     "valid key accepted",
			cfg:      enabledCfg,
			path:     "/api/v1/price?id=bitcoin",
			apiKey:   "secret-key",
			wantCode: http.StatusOK,
		},
		{
			name:     "missing key rejected",
			cfg:      enabledCfg,
			path:     "/api/v1/price?id=bitcoin",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong key rejected",
			cfg:      enabledCfg,
			path:     "/api/v1/price?id=bitcoin",
			apiKey:   "wrong-key",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "health skips auth",
			cfg:      enabledCfg,
			path:     "/health",
			wantCode: http.StatusOK,
		},
		{
			name:     "metrics skips auth",
			cfg:      enabledCfg,
			path:     "/metrics",
			wantCode: http.StatusOK,
		},
		{
			name:     "swagger prefix skips auth",
			cfg:      enabledCfg,
			path:     "/swagger/index.html",
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runAuthRequest(tt.cfg, tt.path, tt.apiKey)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":true,"message":"Invalid or missing API key."}`, rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_DefaultsHeaderName(t *testing.T) {
	mw := NewAuthMiddleware(config.AuthConfig{Enabled: true, APIKey: "k"})
	assert.Equal(t, "X-API-Key", mw.cfg.HeaderName)
}
