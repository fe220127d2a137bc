package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
	"github.com/hearthkeep/hearthkeep/internal/services"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// photoFormLimit caps a single photo or video upload.
const photoFormLimit = 256 << 20

// PhotoHandler handles photo and video HTTP requests.
type PhotoHandler struct {
	svc *services.PhotoService
}

func NewPhotoHandler(svc *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{svc: svc}
}

// Upload handles POST /api/photos (multipart: "file" part + metadata
// fields).
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(photoFormLimit); err != nil {
		respond.WriteBadRequest(w, "Invalid multipart form")
		return
	}
	f, fh, err := r.FormFile("file")
	if err != nil {
		respond.WriteBadRequest(w, "Missing file part")
		return
	}
	defer f.Close()

	rec, err := h.svc.Upload(r.Context(), services.UploadPhotoRequest{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     f,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Date:        r.FormValue("date"),
		Location:    r.FormValue("location"),
		Tags:        r.Form["tags"],
	})
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, rec)
}

// List handles GET /api/photos?media=image|video
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	media := store.MediaFilter(r.URL.Query().Get("media"))
	switch media {
	case store.MediaAny, store.MediaImage, store.MediaVideo:
	default:
		respond.WriteBadRequest(w, "media must be image or video")
		return
	}
	recs, err := h.svc.List(r.Context(), media)
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"photos": recs, "count": len(recs)})
}

// Delete handles DELETE /api/photos/{id}
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Link handles GET /api/photos/{id}/link. The link may lag behind the
// response while the share grant propagates remotely.
func (h *PhotoHandler) Link(w http.ResponseWriter, r *http.Request) {
	link, err := h.svc.Link(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"link": link})
}
