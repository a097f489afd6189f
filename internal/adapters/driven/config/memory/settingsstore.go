// Package memory provides an in-memory settings store for testing.
package memory

import (
	"sync"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is an in-memory implementation of driven.SettingsStore
// for testing.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.ExportSettings
	saved    bool
}

// NewSettingsStore creates a new in-memory settings store.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

// Load returns the stored settings, generating defaults on first use.
func (s *SettingsStore) Load() (domain.ExportSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		s.settings = domain.DefaultExportSettings()
		s.saved = true
	}
	return s.settings, nil
}

// Save stores the settings.
func (s *SettingsStore) Save(settings domain.ExportSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.saved = true
	return nil
}

// Path returns the configuration file path.
func (s *SettingsStore) Path() string {
	return ":memory:"
}
