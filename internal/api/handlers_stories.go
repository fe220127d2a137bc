package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
	"github.com/hearthkeep/hearthkeep/internal/services"
)

// storyFormLimit caps an illustrated-story upload (fields + images).
const storyFormLimit = 64 << 20

// StoryHandler handles story HTTP requests. Create takes multipart form
// data: text fields plus any number of "images" file parts.
type StoryHandler struct {
	svc *services.StoryService
}

func NewStoryHandler(svc *services.StoryService) *StoryHandler {
	return &StoryHandler{svc: svc}
}

// Create handles POST /api/stories
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(storyFormLimit); err != nil {
		respond.WriteBadRequest(w, "Invalid multipart form")
		return
	}

	req := services.CreateStoryRequest{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
		Author:  r.FormValue("author"),
		Date:    r.FormValue("date"),
		Tags:    r.Form["tags"],
	}
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["images"] {
			f, err := fh.Open()
			if err != nil {
				respond.WriteBadRequest(w, "Unreadable image part: "+fh.Filename)
				return
			}
			defer f.Close()
			req.Images = append(req.Images, services.ImageUpload{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Content:     f,
			})
		}
	}

	rec, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, rec)
}

// List handles GET /api/stories
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"stories": recs, "count": len(recs)})
}

// Delete handles DELETE /api/stories/{id}
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respond.WriteStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
