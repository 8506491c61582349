package driving

import "github.com/fsgc-labs/titan-scout/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get resolves current settings, falling back to defaults per field.
	Get() (*domain.Settings, error)

	// Set stores a single dot-notation key.
	Set(key string, value any) error

	// Path returns the backing configuration file path.
	Path() string
}
