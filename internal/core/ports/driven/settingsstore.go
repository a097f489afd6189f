package driven

import "github.com/kenkundert/bw-export/internal/core/domain"

// SettingsStore provides access to the persisted export settings.
// Implementations handle storage (e.g., TOML files) and first-run
// creation of the identity seed.
type SettingsStore interface {
	// Load returns the persisted settings. A store with nothing
	// persisted yet creates defaults, saves them, and returns those.
	Load() (domain.ExportSettings, error)

	// Save persists settings, replacing what is stored.
	Save(settings domain.ExportSettings) error

	// Path returns the settings file path.
	Path() string
}
