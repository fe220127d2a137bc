package api

import (
	"net/http"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
	"github.com/hearthkeep/hearthkeep/internal/services"
)

// ExportHandler serves the full-archive download.
type ExportHandler struct {
	svc *services.ExportService
}

func NewExportHandler(svc *services.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export handles GET /api/export
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	archive, err := h.svc.Export(r.Context())
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="hearthkeep-export.json"`)
	respond.WriteJSON(w, http.StatusOK, archive)
}
