package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/services"
)

// MemoryHandler handles memory-wall HTTP requests (thin transport layer).
type MemoryHandler struct {
	svc *services.MemoryService
}

func NewMemoryHandler(svc *services.MemoryService) *MemoryHandler {
	return &MemoryHandler{svc: svc}
}

// Create handles POST /api/memories
func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateMemoryRequest
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

// List handles GET /api/memories
func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"memories": recs, "count": len(recs)})
}

// Update handles PATCH /api/memories/{id}
func (h *MemoryHandler) Update(w http.ResponseWriter, r *http.Request) {
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

// Delete handles DELETE /api/memories/{id}
func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
