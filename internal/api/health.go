package api

import (
	"net/http"
	"time"

	"github.com/dropspot/dropspot/internal/api/respond"
	"github.com/dropspot/dropspot/internal/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	st store.Store
}

func NewHealthHandler(st store.Store) *HealthHandler { return &HealthHandler{st: st} }

// CheckHealth GET /api/health
// Always returns 200; the body reports healthy/unhealthy.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// CheckStoreHealth GET /api/health/db
// Probes the backing store connection when the adapter supports it.
func (h *HealthHandler) CheckStoreHealth(w http.ResponseWriter, r *http.Request) {
	pinger, ok := h.st.(store.HealthPinger)
	if !ok {
		respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"status": "unknown"})
		return
	}
	if err := pinger.HealthPing(r.Context()); err != nil {
		respond.WriteError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"status": "healthy"})
}
