package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto-ticker-service/internal/application/dto"
	"crypto-ticker-service/internal/domain/entities"
)

// mockPriceService delegates to a function so each test controls behavior
type mockPriceService struct {
	fn func(ctx context.Context, id, currency string) (*entities.Price, error)
}

func (m *mockPriceService) GetPrice(ctx context.Context, id, currency string) (*entities.Price, error) {
	return m.fn(ctx, id, currency)
}

func performPriceRequest(t *testing.T, handler *PriceHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.GetPrice(rec, req)
	return rec
}

func TestPriceHandler_GetPrice_Success(t *testing.T) {
	svc := &mockPriceService{fn: func(ctx context.Context, id, currency string) (*entities.Price, error) {
		return entities.NewPrice("bitcoin", "Bitcoin", "BTC", 67000.5, "USD", "2024-01-15T10:30:00Z"), nil
	}}
	handler := NewPriceHandler(svc, "USD")

	rec := performPriceRequest(t, handler, "/api/v1/price?id=bitcoin")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload dto.PricePayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "bitcoin", payload.ID)
	assert.Equal(t, "BTC", payload.Symbol)
	assert.Equal(t, 67000.5, payload.Price)
	assert.Equal(t, "USD", payload.Currency)
	assert.Equal(t, "2024-01-15T10:30:00Z", payload.CachedAt)
}

func TestPriceHandler_GetPrice_MissingID(t *testing.T) {
	svc := &mockPriceService{fn: func(ctx context.Context, id, currency string) (*entities.Price, error) {
		t.Fatal("service must not be called without an id")
		return nil, nil
	}}
	handler := NewPriceHandler(svc, "USD")

	tests := []struct {
		name   string
		target string
	}{
		{name: "absent id", target: "/api/v1/price"},
		{name: "empty id", target: "/api/v1/price?id="},
		{name: "whitespace id", target: "/api/v1/price?id=%20%20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performPriceRequest(t, handler, tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var payload dto.ErrorPayload
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.True(t, payload.Error)
			assert.Equal(t, "Missing required 'id' parameter.", payload.Message)
		})
	}
}

func TestPriceHandler_GetPrice_PipelineErrorIsInBand(t *testing.T) {
	svc := &mockPriceService{fn: func(ctx context.Context, id, currency string) (*entities.Price, error) {
		return nil, entities.NewFetchError("Upstream API error.", errors.New("status 500"))
	}}
	handler := NewPriceHandler(svc, "USD")

	rec := performPriceRequest(t, handler, "/api/v1/price?id=bitcoin")

	// Pipeline failures keep a successful transport status
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload dto.ErrorPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Error)
	assert.Equal(t, "Upstream API error.", payload.Message)
}

func TestPriceHandler_GetPrice_UnexpectedErrorIsMasked(t *testing.T) {
	svc := &mockPriceService{fn: func(ctx context.Context, id, currency string) (*entities.Price, error) {
		return nil, errors.New("pq: connection reset at 10.0.0.5")
	}}
	handler := NewPriceHandler(svc, "USD")

	rec := performPriceRequest(t, handler, "/api/v1/price?id=bitcoin")

	assert.Equal(t, http.StatusOK, rec.Code)

	var payload dto.ErrorPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Error)
	assert.Equal(t, "Internal error.", payload.Message)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestPriceHandler_GetPrice_CurrencyHandling(t *testing.T) {
	tests := []struct {
		name            string
		defaultCurrency string
		target          string
		wantCurrency    string
	}{
		{
			name:            "absent currency uses default",
			defaultCurrency: "EUR",
			target:          "/api/v1/price?id=bitcoin",
			wantCurrency:    "EUR",
		},
		{
			name:            "explicit currency wins",
			defaultCurrency: "EUR",
			target:          "/api/v1/price?id=bitcoin&currency=GBP",
			wantCurrency:    "GBP",
		},
		{
			name:            "currency is upper-cased",
			defaultCurrency: "USD",
			target:          "/api/v1/price?id=bitcoin&currency=jpy",
			wantCurrency:    "JPY",
		},
		{
			name:            "empty default falls back to USD",
			defaultCurrency: "",
			target:          "/api/v1/price?id=bitcoin",
			wantCurrency:    "USD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCurrency string
			svc := &mockPriceService{fn: func(ctx context.Context, id, currency string) (*entities.Price, error) {
				gotCurrency = currency
				return entities.NewPrice("bitcoin", "Bitcoin", "BTC", 1, currency, "2024-01-15T10:30:00Z"), nil
			}}
			handler := NewPriceHandler(svc, tt.defaultCurrency)

			rec := performPriceRequest(t, handler, tt.target)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantCurrency, gotCurrency)
		})
	}
}
