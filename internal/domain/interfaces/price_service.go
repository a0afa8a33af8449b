package interfaces

import (
	"context"

	"crypto-ticker-service/internal/domain/entities"
)

// PriceService is the retrieval entrypoint consumed by the request
// boundary: cache-aside read-through over a PriceProvider. Errors returned
// here are *entities.FetchError values and are never cached.
type PriceService interface {
	GetPrice(ctx context.Context, id, currency string) (*entities.Price, error)
}
