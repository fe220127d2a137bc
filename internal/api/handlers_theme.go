package api

import (
	"encoding/json"
	"net/http"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
	"github.com/hearthkeep/hearthkeep/internal/services"
)

// ThemeHandler handles the site-wide theme choice.
type ThemeHandler struct {
	svc *services.ThemeService
}

func NewThemeHandler(svc *services.ThemeService) *ThemeHandler {
	return &ThemeHandler{svc: svc}
}

// Get handles GET /api/theme
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	theme, err := h.svc.Get(r.Context())
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

// Set handles PUT /api/theme
func (h *ThemeHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.svc.Set(r.Context(), req.Theme); err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"theme": req.Theme})
}
