package driving

import (
	"context"

	"github.com/kenkundert/bw-export/internal/core/domain"
)

// Exporter runs the end-to-end account export.
type Exporter interface {
	// Export assembles every opted-in account and writes the vault
	// document through the configured writer. Any assembly failure
	// aborts the run before anything is written.
	Export(ctx context.Context) (*ExportSummary, error)

	// Preview assembles every opted-in account without writing.
	Preview(ctx context.Context) (*ExportPreview, error)
}

// ExportSummary reports what an export run produced.
type ExportSummary struct {
	// Path is the output file written.
	Path string

	// Exported is the number of records written.
	Exported int

	// Skipped is the number of accounts without export instructions.
	Skipped int

	// Folder is the rendered folder name, empty when disabled.
	Folder string
}

// ExportPreview is an assembled document that was not written.
type ExportPreview struct {
	// Document is the assembled vault document.
	Document *domain.VaultDocument

	// Skipped is the number of accounts without export instructions.
	Skipped int

	// Folder is the rendered folder name, empty when disabled.
	Folder string
}
