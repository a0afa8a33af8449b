package interfaces

import (
	"context"

	"crypto-ticker-service/internal/domain/entities"
)

// PriceProvider fetches and normalizes price data for (asset id, currency)
// from an external source. Implementations perform exactly one round-trip
// per call; caching and failure policy belong to the caller.
type PriceProvider interface {
	GetPrice(ctx context.Context, id, currency string) (*entities.Price, error)
}
