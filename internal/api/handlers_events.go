package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/services"
)

// EventHandler handles events-calendar HTTP requests.
type EventHandler struct {
	svc *services.EventService
}

func NewEventHandler(svc *services.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// Create handles POST /api/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateEventRequest
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

// List handles GET /api/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"events": recs, "count": len(recs)})
}

// Update handles PATCH /api/events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
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

// Delete handles DELETE /api/events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
