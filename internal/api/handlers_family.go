package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/services"
)

// FamilyHandler handles family-tree HTTP requests.
type FamilyHandler struct {
	svc *services.FamilyService
}

func NewFamilyHandler(svc *services.FamilyService) *FamilyHandler {
	return &FamilyHandler{svc: svc}
}

// Add handles POST /api/family-members
func (h *FamilyHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req services.AddFamilyMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	rec, err := h.svc.Add(r.Context(), req)
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, rec)
}

// List handles GET /api/family-members
func (h *FamilyHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"familyMembers": recs, "count": len(recs)})
}

// Update handles PATCH /api/family-members/{id}
func (h *FamilyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var attrs model.Attributes
	if err := json.NewDecoder(r.Body).Decode(&attrs); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	rec, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], attrs)
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/family-members/{id}
func (h *FamilyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
