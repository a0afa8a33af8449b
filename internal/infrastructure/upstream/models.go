package upstream

import (
	"bytes"
	"strconv"
)

// upstreamPrice represents the raw upstream response body. Only id and
// price are required; everything else is optional and defaulted during
// normalization.
type upstreamPrice struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Symbol   string     `json:"symbol"`
	Price    *flexFloat `json:"price"`
	Currency string     `json:"currency"`
	CachedAt string     `json:"cachedAt"`
}

// flexFloat accepts a JSON number or a numeric string. Some upstreams quote
// their prices.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		data = bytes.TrimSpace([]byte(unquoted))
	}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return &strconv.NumError{Func: "ParseFloat", Num: string(data), Err: strconv.ErrSyntax}
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}
