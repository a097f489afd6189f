package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
	"github.com/kenkundert/bw-export/internal/core/ports/driving"
	"github.com/kenkundert/bw-export/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.Exporter = (*ExportService)(nil)

// ExportService drives the end-to-end export: settings, folder
// derivation, per-account assembly, and the final write.
type ExportService struct {
	source    driven.AccountSource
	settings  driven.SettingsStore
	writer    driven.VaultWriter
	assembler *Assembler

	// now is replaceable in tests.
	now func() time.Time
}

// NewExportService creates a new export service.
func NewExportService(
	source driven.AccountSource,
	parser driven.FieldBlockParser,
	settings driven.SettingsStore,
	writer driven.VaultWriter,
) *ExportService {
	return &ExportService{
		source:    source,
		settings:  settings,
		writer:    writer,
		assembler: NewAssembler(NewValueResolver(source), parser),
		now:       time.Now,
	}
}

// Export assembles every opted-in account and writes the vault
// document. Nothing is written unless every account assembles cleanly.
func (s *ExportService) Export(ctx context.Context) (*driving.ExportSummary, error) {
	preview, err := s.Preview(ctx)
	if err != nil {
		return nil, err
	}

	path, err := s.writer.Write(preview.Document)
	if err != nil {
		return nil, fmt.Errorf("write vault: %w", err)
	}

	logger.Debug("Wrote %s", path)
	return &driving.ExportSummary{
		Path:     path,
		Exported: len(preview.Document.Items),
		Skipped:  preview.Skipped,
		Folder:   preview.Folder,
	}, nil
}

// Preview assembles every opted-in account without writing.
func (s *ExportService) Preview(ctx context.Context) (*driving.ExportPreview, error) {
	// 1. Load settings (created with a fresh seed on first run)
	settings, err := s.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	// 2. Render the folder name and derive its identifier
	folderName := domain.RenderFolderName(settings.FolderTemplate, s.now())
	var folderID *uuid.UUID
	if folderName != "" {
		id := domain.FolderID(settings.Seed, folderName)
		folderID = &id
		logger.Debug("Folder %q -> %s", folderName, id)
	}

	// 3. Enumerate accounts
	accounts, err := s.source.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	// 4. Assemble opted-in accounts in enumeration order, failing
	// fast on the first bad declaration
	document := &domain.VaultDocument{Items: make([]domain.Record, 0, len(accounts))}
	skipped := 0
	for _, account := range accounts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !account.Exported() {
			skipped++
			logger.Debug("Skipping %s: no export instructions", account.Name)
			continue
		}
		record, err := s.assembler.Assemble(ctx, account, folderID)
		if err != nil {
			return nil, err
		}
		document.Items = append(document.Items, record)
	}

	// 5. Attach the folder
	if folderID != nil {
		document.Folders = []domain.Folder{{ID: folderID.String(), Name: folderName}}
	}

	logger.Debug("Assembled %d records, skipped %d accounts", len(document.Items), skipped)
	return &driving.ExportPreview{
		Document: document,
		Skipped:  skipped,
		Folder:   folderName,
	}, nil
}
