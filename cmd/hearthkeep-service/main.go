package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hearthkeep/hearthkeep/internal/api"
	"github.com/hearthkeep/hearthkeep/internal/config"
	"github.com/hearthkeep/hearthkeep/internal/platform/logger"
	"github.com/hearthkeep/hearthkeep/internal/session"
	"github.com/hearthkeep/hearthkeep/internal/store/drive"
)

func main() {
	log := logger.New("hearthkeep-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("folder", cfg.DriveFolderID).
		Int("http_port", cfg.HTTPPort).
		Msg("hearthkeep starting…")

	ctx := context.Background()
	st, err := drive.New(ctx, drive.Config{
		CredentialsFile: cfg.DriveCredentialsFile,
		FolderID:        cfg.DriveFolderID,
		PageSize:        cfg.ListPageSize,
		CallTimeout:     time.Duration(cfg.CallTimeoutSeconds) * time.Second,
		MaxRetries:      cfg.MaxRetries,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Drive store unavailable")
	}

	gate := session.New(cfg.SharedPassword, cfg.SessionFlagPath)

	router := api.NewRouter(st, gate, log)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
