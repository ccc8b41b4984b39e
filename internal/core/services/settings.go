package services

import (
	"fmt"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
	"github.com/custodia-labs/heos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/heos-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPageSize    = "index.page_size"
	keyRateLimit   = "commands.rate_limit"
	keyBurst       = "commands.burst"
	keyCatalogPath = "catalog.path"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or non-positive values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}

	defaults := domain.DefaultAppSettings()
	return &domain.AppSettings{
		Index: domain.IndexSettings{
			PageSize: s.getInt(keyPageSize, defaults.Index.PageSize),
		},
		Commands: domain.CommandSettings{
			RateLimit: s.getFloat(keyRateLimit, defaults.Commands.RateLimit),
			Burst:     s.getInt(keyBurst, defaults.Commands.Burst),
		},
		Catalog: domain.CatalogSettings{
			Path: s.configStore.GetString(keyCatalogPath),
		},
	}, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyPageSize, settings.Index.PageSize); err != nil {
		return fmt.Errorf("save page size: %w", err)
	}
	if err := s.configStore.Set(keyRateLimit, settings.Commands.RateLimit); err != nil {
		return fmt.Errorf("save rate limit: %w", err)
	}
	if err := s.configStore.Set(keyBurst, settings.Commands.Burst); err != nil {
		return fmt.Errorf("save burst: %w", err)
	}
	if err := s.configStore.Set(keyCatalogPath, settings.Catalog.Path); err != nil {
		return fmt.Errorf("save catalog path: %w", err)
	}
	return nil
}

// SetPageSize updates the container page size.
func (s *SettingsService) SetPageSize(size int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Index.PageSize = size
	return s.Save(settings)
}

// SetRateLimit updates the command throttle.
func (s *SettingsService) SetRateLimit(perSecond float64, burst int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Commands.RateLimit = perSecond
	settings.Commands.Burst = burst
	return s.Save(settings)
}

// SetCatalogPath updates the catalog file location.
func (s *SettingsService) SetCatalogPath(path string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Catalog.Path = path
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}
