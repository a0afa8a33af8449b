// @title Crypto Ticker Service API
// @version 1.0
// @description Cryptocurrency price retrieval service with a short-lived cache.
// @BasePath /
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"crypto-ticker-service/internal/application/services"
	"crypto-ticker-service/internal/infrastructure/config"
	"crypto-ticker-service/internal/infrastructure/logging"
	"crypto-ticker-service/internal/infrastructure/metrics"
	"crypto-ticker-service/internal/infrastructure/repositories/cache"
	"crypto-ticker-service/internal/infrastructure/upstream"
	"crypto-ticker-service/internal/infrastructure/web"
	"crypto-ticker-service/internal/infrastructure/web/handlers"
	"crypto-ticker-service/internal/infrastructure/web/server"

	_ "crypto-ticker-service/docs"
)

const serviceVersion = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.NewLoader().Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging
	loggerConfig := logging.DefaultConfig()
	loggerConfig.Level = logging.LogLevelFromString(cfg.Logging.Level)
	loggerConfig.Format = logging.LogFormatFromString(cfg.Logging.Format)
	loggerConfig.Version = serviceVersion
	if err := logging.Init(loggerConfig); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	ctx := context.Background()
	logging.Info(ctx, "Starting crypto ticker service", logging.Fields{
		"version":          serviceVersion,
		"cache_backend":    cfg.Cache.Backend,
		"cache_ttl":        cfg.Cache.TTL.String(),
		"default_currency": cfg.Ticker.DefaultCurrency,
		"upstream_set":     cfg.Upstream.BaseURL != "",
	})

	if cfg.Upstream.BaseURL == "" {
		// The service still starts; every fetch fails fast with a
		// configuration error payload until a base URL is set.
		logging.Warn(ctx, "No upstream base URL configured, price fetches will fail", nil)
	}

	// Create cache backend
	priceCache, err := cache.NewFactory().CreateCache(cfg.Cache)
	if err != nil {
		logging.ErrorWithError(ctx, "Failed to create cache", err, nil)
		os.Exit(1)
	}
	defer func() {
		_ = priceCache.Close()
	}()

	metrics.SetServiceInfo(serviceVersion, cfg.Cache.Backend)

	// Wire the pipeline: provider -> service -> handlers
	provider := upstream.NewRestProvider(cfg.Upstream)
	priceService := services.NewPriceService(provider, priceCache, cfg.Cache.TTL)

	priceHandler := handlers.NewPriceHandler(priceService, cfg.Ticker.DefaultCurrency)
	healthHandler := handlers.NewHealthHandler(priceCache)

	router := web.NewRouter(priceHandler, healthHandler, cfg)
	srv := server.NewServer(router, cfg.Server.Port)

	// Start server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logging.ErrorWithError(ctx, "Failed to start server", err, nil)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info(ctx, "Shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logging.ErrorWithError(ctx, "Server forced to shutdown", err, nil)
		os.Exit(1)
	}

	logging.Info(ctx, "Server shutdown completed", nil)
}
