// Package file provides a TOML-backed settings store.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// settingsFile is the on-disk TOML shape. The key names are the
// original tool's: uuid is the identity seed, folder the name
// template.
type settingsFile struct {
	Seed           string `toml:"uuid"`
	FolderTemplate string `toml:"folder"`
}

// SettingsStore persists export settings as TOML. By default the file
// lives at <config-dir>/bw-export/settings.toml; the file carries the
// namespace seed, so it is written with restricted permissions.
type SettingsStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewSettingsStore creates a TOML-based settings store.
// If path is empty, the XDG config directory is used.
func NewSettingsStore(path string) (*SettingsStore, error) {
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, "bw-export", "settings.toml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create settings directory: %w", err)
	}

	return &SettingsStore{filePath: path}, nil
}

// Load reads the settings file. On first run, when no file exists yet,
// fresh defaults are generated and saved. A file that exists but does
// not parse is an error: regenerating it would orphan every identifier
// derived from the old seed.
func (s *SettingsStore) Load() (domain.ExportSettings, error) {
	s.mu.RLock()
	data, err := os.ReadFile(s.filePath)
	s.mu.RUnlock()

	if err != nil {
		if os.IsNotExist(err) {
			settings := domain.DefaultExportSettings()
			if err := s.Save(settings); err != nil {
				return domain.ExportSettings{}, err
			}
			return settings, nil
		}
		return domain.ExportSettings{}, fmt.Errorf("read %s: %w", s.filePath, err)
	}

	var loaded settingsFile
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return domain.ExportSettings{}, fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	seed, err := uuid.Parse(loaded.Seed)
	if err != nil {
		return domain.ExportSettings{}, fmt.Errorf("invalid seed in %s: %w", s.filePath, err)
	}

	return domain.ExportSettings{
		Seed:           seed,
		FolderTemplate: loaded.FolderTemplate,
	}, nil
}

// Save writes the settings file with restricted permissions.
func (s *SettingsStore) Save(settings domain.ExportSettings) error {
	data, err := toml.Marshal(settingsFile{
		Seed:           settings.Seed.String(),
		FolderTemplate: settings.FolderTemplate,
	})
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", s.filePath, err)
	}
	return nil
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
