package api

import (
	"net/http"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
	"github.com/hearthkeep/hearthkeep/internal/model"
	"github.com/hearthkeep/hearthkeep/internal/query"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// SearchHandler answers free-text and tag searches. Everything runs
// client-side over one listing; there is no remote query language to
// push down to.
type SearchHandler struct {
	store store.Store
}

func NewSearchHandler(st store.Store) *SearchHandler {
	return &SearchHandler{store: st}
}

// Search handles GET /api/search?q=...&tag=...&kind=...
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	tag := r.URL.Query().Get("tag")
	kind := model.Kind(r.URL.Query().Get("kind"))

	recs, err := h.store.List(r.Context(), store.ListOptions{Kind: kind})
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	if tag != "" {
		recs = query.FilterByTag(recs, tag)
	}
	recs = query.Search(recs, q)

	respond.WriteJSON(w, http.StatusOK, map[string]any{"results": recs, "count": len(recs)})
}
