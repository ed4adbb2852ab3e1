package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents a liveness check response
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// default: ok
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler for the liveness check.
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router / [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status: "ok",
		})
	}
}
