package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/hearthkeep/hearthkeep/internal/api/recovery"
	"github.com/hearthkeep/hearthkeep/internal/services"
	"github.com/hearthkeep/hearthkeep/internal/session"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

// NewRouter wires every endpoint of the family-memories API over the
// given content store.
func NewRouter(st store.Store, gate *session.Gate, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	router.Use(recovery.Middleware)
	router.Use(requestLogging(log))
	router.Use(requireSession(gate))

	memoryHandler := NewMemoryHandler(services.NewMemoryService(st))
	eventHandler := NewEventHandler(services.NewEventService(st))
	familyHandler := NewFamilyHandler(services.NewFamilyService(st))
	storyHandler := NewStoryHandler(services.NewStoryService(st, log))
	profileHandler := NewProfileHandler(services.NewProfileService(st))
	themeHandler := NewThemeHandler(services.NewThemeService(st))
	photoHandler := NewPhotoHandler(services.NewPhotoService(st))
	searchHandler := NewSearchHandler(st)
	exportHandler := NewExportHandler(services.NewExportService(st))
	sessionHandler := NewSessionHandler(gate)
	healthHandler := NewHealthHandler()

	// Session gate
	router.HandleFunc("/api/session/login", sessionHandler.Login).Methods("POST")
	router.HandleFunc("/api/session/logout", sessionHandler.Logout).Methods("POST")
	router.HandleFunc("/api/session", sessionHandler.Status).Methods("GET")

	// Memory wall
	router.HandleFunc("/api/memories", memoryHandler.List).Methods("GET")
	router.HandleFunc("/api/memories", memoryHandler.Create).Methods("POST")
	router.HandleFunc("/api/memories/{id}", memoryHandler.Update).Methods("PATCH")
	router.HandleFunc("/api/memories/{id}", memoryHandler.Delete).Methods("DELETE")

	// Events calendar
	router.HandleFunc("/api/events", eventHandler.List).Methods("GET")
	router.HandleFunc("/api/events", eventHandler.Create).Methods("POST")
	router.HandleFunc("/api/events/{id}", eventHandler.Update).Methods("PATCH")
	router.HandleFunc("/api/events/{id}", eventHandler.Delete).Methods("DELETE")

	// Family tree
	router.HandleFunc("/api/family-members", familyHandler.List).Methods("GET")
	router.HandleFunc("/api/family-members", familyHandler.Add).Methods("POST")
	router.HandleFunc("/api/family-members/{id}", familyHandler.Update).Methods("PATCH")
	router.HandleFunc("/api/family-members/{id}", familyHandler.Delete).Methods("DELETE")

	// Stories (multipart: fields + images)
	router.HandleFunc("/api/stories", storyHandler.List).Methods("GET")
	router.HandleFunc("/api/stories", storyHandler.Create).Methods("POST")
	router.HandleFunc("/api/stories/{id}", storyHandler.Delete).Methods("DELETE")

	// Profiles
	router.HandleFunc("/api/profiles", profileHandler.Create).Methods("POST")
	router.HandleFunc("/api/profiles/{name}", profileHandler.GetByName).Methods("GET")
	router.HandleFunc("/api/profiles/{id}", profileHandler.Update).Methods("PATCH")

	// Theme
	router.HandleFunc("/api/theme", themeHandler.Get).Methods("GET")
	router.HandleFunc("/api/theme", themeHandler.Set).Methods("PUT")

	// Photos and videos
	router.HandleFunc("/api/photos", photoHandler.List).Methods("GET")
	router.HandleFunc("/api/photos", photoHandler.Upload).Methods("POST")
	router.HandleFunc("/api/photos/{id}", photoHandler.Delete).Methods("DELETE")
	router.HandleFunc("/api/photos/{id}/link", photoHandler.Link).Methods("GET")

	// Search and export
	router.HandleFunc("/api/search", searchHandler.Search).Methods("GET")
	router.HandleFunc("/api/export", exportHandler.Export).Methods("GET")

	// Health
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	return router
}
