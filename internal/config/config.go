package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the service configuration. Environment variables use the
// HEARTHKEEP_ prefix.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Drive store: the single shared folder every record lives in, and
	// the service-account credentials that may write to it.
	DriveFolderID        string `envconfig:"DRIVE_FOLDER_ID" required:"true"`
	DriveCredentialsFile string `envconfig:"DRIVE_CREDENTIALS_FILE" required:"true"`

	// ListPageSize caps a single folder listing.
	ListPageSize int64 `envconfig:"LIST_PAGE_SIZE" default:"1000"`

	// CallTimeoutSeconds bounds each remote call; expiry is a transient
	// failure.
	CallTimeoutSeconds int `envconfig:"CALL_TIMEOUT_SECONDS" default:"30"`

	// MaxRetries bounds the transient-error retry loop per operation.
	MaxRetries uint64 `envconfig:"MAX_RETRIES" default:"3"`

	// Shared-password gate. Soft access control, not real authentication.
	SharedPassword  string `envconfig:"SHARED_PASSWORD" required:"true"`
	SessionFlagPath string `envconfig:"SESSION_FLAG_PATH" default:".hearthkeep-session"`
}

// New loads configuration from the environment.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("HEARTHKEEP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.ListPageSize <= 0 || cfg.ListPageSize > 1000 {
		return nil, fmt.Errorf("LIST_PAGE_SIZE must be in 1..1000, got %d", cfg.ListPageSize)
	}
	return &cfg, nil
}
