package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
	"github.com/kenkundert/bw-export/internal/core/ports/driving"
	"github.com/kenkundert/bw-export/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages the persisted export settings.
type SettingsService struct {
	store driven.SettingsStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get retrieves the current export settings.
func (s *SettingsService) Get() (domain.ExportSettings, error) {
	settings, err := s.store.Load()
	if err != nil {
		return domain.ExportSettings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// SetFolderTemplate updates the folder name template. An empty
// template disables folder assignment entirely.
func (s *SettingsService) SetFolderTemplate(template string) error {
	settings, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	settings.FolderTemplate = template
	if err := s.store.Save(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	logger.Debug("Folder template set to %q", template)
	return nil
}

// ResetSeed replaces the namespace seed with a fresh random UUID.
// Every identifier derived from the old seed is orphaned, so a
// subsequent import creates new Bitwarden entries instead of
// updating existing ones.
func (s *SettingsService) ResetSeed() (domain.ExportSettings, error) {
	settings, err := s.store.Load()
	if err != nil {
		return domain.ExportSettings{}, fmt.Errorf("load settings: %w", err)
	}

	settings.Seed = uuid.New()
	if err := s.store.Save(settings); err != nil {
		return domain.ExportSettings{}, fmt.Errorf("save settings: %w", err)
	}

	logger.Debug("Namespace seed regenerated")
	return settings, nil
}

// Path reports where the settings are persisted.
func (s *SettingsService) Path() string {
	return s.store.Path()
}
