package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"crypto-ticker-service/internal/domain/interfaces"
)

// HealthResponse represents the health check response
// @Description Health check response with service status
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
}

// HealthHandler handles the health check endpoints
type HealthHandler struct {
	cache interfaces.Cache
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cache interfaces.Cache) *HealthHandler {
	return &HealthHandler{
		cache: cache,
	}
}

// Health godoc
// @Summary Basic health check
// @Description Verifies that the service is running. Responds quickly without checking dependencies.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is running"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, &HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services: map[string]string{
			"service": "running",
		},
	})
}

// Ready godoc
// @Summary Readiness check
// @Description Verifies that the service is ready to receive traffic, including the cache backend.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is ready"
// @Failure 503 {object} HealthResponse "A dependency is failing"
// @Router /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	services := make(map[string]string)

	if err := h.cache.Ping(ctx); err != nil {
		services["cache"] = "error: " + err.Error()
		h.writeJSONResponse(w, http.StatusServiceUnavailable, &HealthResponse{
			Status:    "unhealthy",
			Timestamp: time.Now(),
			Services:  services,
		})
		return
	}

	services["cache"] = "ready"
	services["service"] = "ready"

	h.writeJSONResponse(w, http.StatusOK, &HealthResponse{
		Status:    "ready",
		Timestamp: time.Now(),
		Services:  services,
	})
}

// writeJSONResponse writes a JSON response body
func (h *HealthHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":true,"message":"Failed to encode response."}`))
	}
}
