package health

import (
	"encoding/json"
	"net/http"
)

// Handler serves the health endpoints from a registry.
type Handler struct {
	registry *Registry
}

// NewHandler creates a Handler for the given registry.
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// Live handles GET /health/live.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.registry.Liveness(r.Context()))
}

// Ready handles GET /health/ready.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.registry.Readiness(r.Context()))
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.registry.Health(r.Context()))
}

func writeResponse(w http.ResponseWriter, resp Response) {
	code := http.StatusOK
	if resp.Status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}
