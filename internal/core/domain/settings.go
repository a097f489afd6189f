package domain

import "github.com/google/uuid"

// DefaultFolderTemplate names the export folder after the run date,
// e.g. "Avendesora-260823".
const DefaultFolderTemplate = "[Avendesora-]YYMMDD"

// ExportSettings holds the persisted per-user export configuration.
type ExportSettings struct {
	// Seed is the identity seed: the namespace every exported
	// identifier is derived from. Generated once on first run, then
	// held immutable; regenerating it orphans previously exported
	// identifiers.
	Seed uuid.UUID

	// FolderTemplate renders the export folder's display name (see
	// RenderFolderName). An empty template disables the folder: no
	// folders array is written and records carry no id/folderId.
	FolderTemplate string
}

// DefaultExportSettings returns settings for a first run: a fresh
// random seed and the stock folder template.
func DefaultExportSettings() ExportSettings {
	return ExportSettings{
		Seed:           uuid.New(),
		FolderTemplate: DefaultFolderTemplate,
	}
}

// FolderEnabled reports whether exports group records under a folder.
func (s ExportSettings) FolderEnabled() bool {
	return s.FolderTemplate != ""
}
