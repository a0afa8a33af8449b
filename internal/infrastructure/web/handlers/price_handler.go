package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"crypto-ticker-service/internal/application/dto"
	"crypto-ticker-service/internal/domain/interfaces"
	"crypto-ticker-service/internal/infrastructure/logging"
)

// PriceHandler handles price retrieval requests
type PriceHandler struct {
	priceService    interfaces.PriceService
	defaultCurrency string
}

// NewPriceHandler creates a new price handler. defaultCurrency substitutes
// for an absent currency parameter and is normalized to upper-case.
func NewPriceHandler(priceService interfaces.PriceService, defaultCurrency string) *PriceHandler {
	defaultCurrency = strings.ToUpper(strings.TrimSpace(defaultCurrency))
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}
	return &PriceHandler{
		priceService:    priceService,
		defaultCurrency: defaultCurrency,
	}
}

// GetPrice godoc
// @Summary Get asset price
// @Description Returns the cached or freshly fetched price for an asset in the requested currency. Pipeline failures are reported in-band with HTTP 200 and an error payload.
// @Tags price
// @Accept json
// @Produce json
// @Param id query string true "Asset id (e.g. bitcoin)"
// @Param currency query string false "Currency code (defaults to the configured default)"
// @Success 200 {object} dto.PricePayload "Price payload, or an error payload for pipeline failures"
// @Failure 400 {object} dto.ErrorPayload "Missing required id parameter"
// @Router /api/v1/price [get]
func (h *PriceHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		// Boundary validation: reject before the pipeline runs
		h.writeJSONResponse(ctx, w, http.StatusBadRequest, dto.NewErrorPayload("Missing required 'id' parameter."))
		return
	}

	currency := strings.TrimSpace(r.URL.Query().Get("currency"))
	if currency == "" {
		currency = h.defaultCurrency
	}
	currency = strings.ToUpper(currency)

	logging.Debug(ctx, "Handling price request", logging.Fields{
		"asset_id": id,
		"currency": currency,
	})

	price, err := h.priceService.GetPrice(ctx, id, currency)
	if err != nil {
		// Domain-level failure travels in-band; the transport status
		// stays successful
		logging.WarnWithError(ctx, "Price retrieval failed", err, logging.Fields{
			"asset_id": id,
			"currency": currency,
		})
		h.writeJSONResponse(ctx, w, http.StatusOK, dto.NewErrorPayloadFromError(err))
		return
	}

	h.writeJSONResponse(ctx, w, http.StatusOK, dto.NewPricePayload(price))
}

// writeJSONResponse writes a JSON response body
func (h *PriceHandler) writeJSONResponse(ctx context.Context, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.ErrorWithError(ctx, "Failed to encode JSON response", err, logging.Fields{
			"status_code": statusCode,
		})
	}
}
