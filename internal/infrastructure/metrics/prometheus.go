package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the crypto ticker service
var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_ticker_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crypto_ticker_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Cache metrics
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_ticker_cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"}, // operation: get/set/delete, result: hit/miss/success/error
	)

	// Upstream API metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_ticker_upstream_requests_total",
			Help: "Total number of upstream API requests",
		},
		[]string{"status_code"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crypto_ticker_upstream_request_duration_seconds",
			Help:    "Upstream API request duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0}, // external APIs can be slower
		},
		[]string{"outcome"}, // outcome: success/transport_error/upstream_error/malformed
	)

	// Business metrics
	PriceRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_ticker_price_requests_total",
			Help: "Total number of price requests by asset",
		},
		[]string{"asset", "cache_result"}, // cache_result: hit/miss
	)

	CurrentPrices = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "crypto_ticker_current_prices",
			Help: "Most recently fetched asset prices",
		},
		[]string{"asset", "currency"},
	)

	ServiceInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "crypto_ticker_service_info",
			Help: "Service information",
		},
		[]string{"version", "cache_backend"},
	)
)

// RecordHTTPRequest records metrics for a completed HTTP request
func RecordHTTPRequest(method, path string, statusCode int, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// RecordCacheOperation records a cache operation with its result
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordUpstreamRequest records an upstream API call
func RecordUpstreamRequest(statusCode int, outcome string, durationSeconds float64) {
	UpstreamRequestsTotal.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	UpstreamRequestDuration.WithLabelValues(outcome).Observe(durationSeconds)
}

// RecordPriceRequest records a price request and whether the cache served it
func RecordPriceRequest(asset string, cacheHit bool) {
	result := "miss"
	if cacheHit {
		result = "hit"
	}
	PriceRequestsTotal.WithLabelValues(asset, result).Inc()
}

// UpdateCurrentPrice updates the gauge for the latest known price
func UpdateCurrentPrice(asset, currency string, price float64) {
	CurrentPrices.WithLabelValues(asset, currency).Set(price)
}

// SetServiceInfo publishes static service information
func SetServiceInfo(version, cacheBackend string) {
	ServiceInfo.WithLabelValues(version, cacheBackend).Set(1)
}
