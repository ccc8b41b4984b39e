package domain

import "fmt"

// DefaultPageSize is the number of records requested per container page.
const DefaultPageSize = 50

// IndexSettings controls how child indexes are built.
type IndexSettings struct {
	// PageSize is the window requested per container page.
	PageSize int
}

// CommandSettings throttles commands sent to the device.
type CommandSettings struct {
	// RateLimit is the sustained number of commands per second.
	RateLimit float64

	// Burst is the number of commands allowed back to back.
	Burst int
}

// CatalogSettings locates the catalog served by the in-memory device.
type CatalogSettings struct {
	// Path is the TOML catalog file.
	Path string
}

// AppSettings holds all configurable application settings.
type AppSettings struct {
	Index    IndexSettings
	Commands CommandSettings
	Catalog  CatalogSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Index: IndexSettings{
			PageSize: DefaultPageSize,
		},
		Commands: CommandSettings{
			RateLimit: 10,
			Burst:     5,
		},
	}
}

// Validate checks that numeric settings are usable.
func (s AppSettings) Validate() error {
	if s.Index.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidInput, s.Index.PageSize)
	}
	if s.Commands.RateLimit <= 0 {
		return fmt.Errorf("%w: rate limit must be positive, got %g", ErrInvalidInput, s.Commands.RateLimit)
	}
	if s.Commands.Burst <= 0 {
		return fmt.Errorf("%w: burst must be positive, got %d", ErrInvalidInput, s.Commands.Burst)
	}
	return nil
}
