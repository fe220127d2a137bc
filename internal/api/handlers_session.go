package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
	"github.com/hearthkeep/hearthkeep/internal/session"
)

// SessionHandler exposes the shared-password gate.
type SessionHandler struct {
	gate *session.Gate
}

func NewSessionHandler(gate *session.Gate) *SessionHandler {
	return &SessionHandler{gate: gate}
}

// Login handles POST /api/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.gate.Login(req.Password); err != nil {
		if errors.Is(err, session.ErrBadPassword) {
			respond.WriteError(w, http.StatusUnauthorized, "wrong password")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]bool{"active": true})
}

// Logout handles POST /api/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.gate.Logout()
	respond.WriteJSON(w, http.StatusOK, map[string]bool{"active": false})
}

// Status handles GET /api/session
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]bool{"active": h.gate.Active()})
}
