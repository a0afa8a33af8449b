package entities

// Price is the canonical normalized price payload for one asset in one
// currency. Symbol and Currency are always upper-case; CachedAt is an
// ISO-8601 timestamp marking when the value was produced (upstream value
// if present, fetch time otherwise).
type Price struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	CachedAt string  `json:"cachedAt"`
}

func NewPrice(id, name, symbol string, price float64, currency, cachedAt string) *Price {
	return &Price{
		ID:       id,
		Name:     name,
		Symbol:   symbol,
		Price:    price,
		Currency: currency,
		CachedAt: cachedAt,
	}
}
