package web

import (
	"net/http"

	"crypto-ticker-service/internal/infrastructure/config"
	"crypto-ticker-service/internal/infrastructure/metrics"
	"crypto-ticker-service/internal/infrastructure/ratelimit"
	"crypto-ticker-service/internal/infrastructure/web/handlers"
	"crypto-ticker-service/internal/infrastructure/web/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires all routes and middleware into an http.Handler
func NewRouter(priceHandler *handlers.PriceHandler, healthHandler *handlers.HealthHandler, cfg *config.Config) http.Handler {
	r := mux.NewRouter()

	// Middleware order: tracing first so every later log carries the
	// request ID, then metrics, then access control.
	r.Use(middleware.RequestTracingMiddleware)
	r.Use(metrics.HTTPMetricsMiddleware)
	r.Use(ratelimit.NewMiddleware(cfg.RateLimit).Handler)
	r.Use(middleware.NewAuthMiddleware(cfg.Auth).Handler)

	r.HandleFunc("/api/v1/price", priceHandler.GetPrice).Methods(http.MethodGet)

	r.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	r.HandleFunc("/ready", healthHandler.Ready).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return r
}
