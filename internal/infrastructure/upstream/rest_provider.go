package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crypto-ticker-service/internal/domain/entities"
	"crypto-ticker-service/internal/domain/interfaces"
	"crypto-ticker-service/internal/infrastructure/config"
	"crypto-ticker-service/internal/infrastructure/logging"
	"crypto-ticker-service/internal/infrastructure/metrics"
)

const (
	// DefaultTimeout bounds a single upstream round-trip
	DefaultTimeout = 8 * time.Second

	pricePath = "/price/"
)

// RestProvider implements the PriceProvider interface against a remote
// HTTP API exposing GET {base_url}/price/{id}. It performs no caching and
// no retries; every call is a single round-trip and every failure maps to
// a FetchError with a consumer-safe message.
type RestProvider struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.PriceProvider = (*RestProvider)(nil)

// NewRestProvider creates a provider from the upstream configuration
func NewRestProvider(cfg config.UpstreamConfig) *RestProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &RestProvider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetPrice fetches and normalizes price data for (id, currency)
func (p *RestProvider) GetPrice(ctx context.Context, id, currency string) (*entities.Price, error) {
	if p.baseURL == "" {
		// Configuration error: fail fast, no network call
		return nil, entities.NewFetchError(MsgMissingBaseURL, ErrMissingBaseURL)
	}

	requestURL := p.baseURL + pricePath + url.PathEscape(id)

	logging.Debug(ctx, "Fetching price from upstream API", logging.Fields{
		"url":      requestURL,
		"asset_id": id,
		"currency": currency,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, entities.NewFetchError(err.Error(), err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := p.httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		// Transport failure (DNS, connection, timeout): surface the
		// transport error description
		metrics.RecordUpstreamRequest(0, "transport_error", requestDuration.Seconds())
		logging.ErrorWithError(ctx, "Upstream API request failed", err, logging.Fields{
			"url":         requestURL,
			"duration_ms": float64(requestDuration.Nanoseconds()) / 1e6,
		})
		return nil, entities.NewFetchError(err.Error(), err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordUpstreamRequest(resp.StatusCode, "transport_error", requestDuration.Seconds())
		return nil, entities.NewFetchError(err.Error(), err)
	}

	if resp.StatusCode != http.StatusOK || len(bytes.TrimSpace(body)) == 0 {
		metrics.RecordUpstreamRequest(resp.StatusCode, "upstream_error", requestDuration.Seconds())
		logging.Error(ctx, "Upstream API returned an unusable response", logging.Fields{
			"url":         requestURL,
			"status_code": resp.StatusCode,
			"body_bytes":  len(body),
		})
		return nil, entities.NewFetchError(MsgUpstreamAPIError, ErrUpstreamStatus)
	}

	var raw upstreamPrice
	if err := json.Unmarshal(body, &raw); err != nil {
		metrics.RecordUpstreamRequest(resp.StatusCode, "malformed", requestDuration.Seconds())
		logging.WarnWithError(ctx, "Failed to decode upstream response", err, logging.Fields{
			"url": requestURL,
		})
		return nil, entities.NewFetchError(MsgMalformedResponse, ErrMalformedResponse)
	}

	if raw.ID == "" || raw.Price == nil {
		metrics.RecordUpstreamRequest(resp.StatusCode, "malformed", requestDuration.Seconds())
		logging.Warn(ctx, "Upstream response lacks required fields", logging.Fields{
			"url":       requestURL,
			"has_id":    raw.ID != "",
			"has_price": raw.Price != nil,
		})
		return nil, entities.NewFetchError(MsgMalformedResponse, ErrMalformedResponse)
	}

	price := p.normalize(&raw, currency)

	metrics.RecordUpstreamRequest(resp.StatusCode, "success", requestDuration.Seconds())
	metrics.UpdateCurrentPrice(price.ID, price.Currency, price.Price)
	logging.Debug(ctx, "Upstream price fetched", logging.Fields{
		"asset_id":    price.ID,
		"currency":    price.Currency,
		"price":       price.Price,
		"duration_ms": float64(requestDuration.Nanoseconds()) / 1e6,
	})

	return price, nil
}

// normalize maps a raw upstream body into the canonical payload shape.
// The requested currency fills in when upstream omits one; cachedAt falls
// back to the fetch time, so a cached payload's timestamp reflects when it
// was fetched rather than true upstream freshness.
func (p *RestProvider) normalize(raw *upstreamPrice, requestedCurrency string) *entities.Price {
	currency := raw.Currency
	if currency == "" {
		currency = requestedCurrency
	}

	cachedAt := raw.CachedAt
	if cachedAt == "" {
		cachedAt = time.Now().UTC().Format(time.RFC3339)
	}

	return entities.NewPrice(
		raw.ID,
		raw.Name,
		strings.ToUpper(raw.Symbol),
		float64(*raw.Price),
		strings.ToUpper(currency),
		cachedAt,
	)
}
