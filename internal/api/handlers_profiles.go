package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/services"
)

// ProfileHandler handles profile HTTP requests.
type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Create handles POST /api/profiles
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	rec, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, rec)
}

// GetByName handles GET /api/profiles/{name}
func (h *ProfileHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, rec)
}

// Update handles PATCH /api/profiles/{id} with a partial attribute patch.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.Attributes
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	rec, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, rec)
}
