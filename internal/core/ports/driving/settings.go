package driving

import "github.com/custodia-labs/heos-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// SetPageSize updates the container page size.
	SetPageSize(size int) error

	// SetRateLimit updates the command throttle.
	SetRateLimit(perSecond float64, burst int) error

	// SetCatalogPath updates the catalog file location.
	SetCatalogPath(path string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
