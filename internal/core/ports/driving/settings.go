package driving

import "github.com/kenkundert/bw-export/internal/core/domain"

// SettingsService manages the persisted export settings.
type SettingsService interface {
	// Get retrieves current export settings, creating defaults on
	// first use.
	Get() (domain.ExportSettings, error)

	// SetFolderTemplate updates the folder name template. An empty
	// template disables the export folder.
	SetFolderTemplate(template string) error

	// ResetSeed replaces the identity seed with a fresh random one and
	// returns the updated settings. Identifiers from earlier exports
	// will no longer match afterwards.
	ResetSeed() (domain.ExportSettings, error)

	// Path returns the settings file path.
	Path() string
}
