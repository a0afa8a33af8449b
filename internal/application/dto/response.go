package dto

import (
	"crypto-ticker-service/internal/domain/entities"
)

// PricePayload represents a successful price response
// @Description Normalized price data for one asset in one currency
type PricePayload struct {
	ID       string  `json:"id" example:"bitcoin"`
	Name     string  `json:"name" example:"Bitcoin"`
	Symbol   string  `json:"symbol" example:"BTC"`
	Price    float64 `json:"price" example:"67000.5"`
	Currency string  `json:"currency" example:"USD"`
	CachedAt string  `json:"cachedAt" example:"2024-01-15T10:30:00Z"`
}

// ErrorPayload represents a failed retrieval. It is returned with HTTP 200
// for pipeline-level failures (the error is in-band) and with HTTP 4xx for
// boundary validation errors.
// @Description Error payload with a consumer-safe message
type ErrorPayload struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message" example:"Upstream API error."`
}

// NewPricePayload maps a domain price entity to the response payload
func NewPricePayload(price *entities.Price) *PricePayload {
	return &PricePayload{
		ID:       price.ID,
		Name:     price.Name,
		Symbol:   price.Symbol,
		Price:    price.Price,
		Currency: price.Currency,
		CachedAt: price.CachedAt,
	}
}

// NewErrorPayload creates an error payload with the given message
func NewErrorPayload(message string) *ErrorPayload {
	return &ErrorPayload{
		Error:   true,
		Message: message,
	}
}

// NewErrorPayloadFromError creates an error payload from a pipeline error,
// surfacing only its consumer-safe message
func NewErrorPayloadFromError(err error) *ErrorPayload {
	return NewErrorPayload(entities.SafeMessage(err))
}
