package api

import (
	"net/http"
	"time"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// CheckHealth handles GET /api/health. Always 200; liveness only — the
// remote store is probed by actual operations, not pinged from here.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
