// Package csvfile writes the vault document in the Bitwarden CSV
// import format. The CSV layout only represents login and secure note
// records; anything else is skipped with a warning.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
	"github.com/kenkundert/bw-export/internal/logger"
)

// DefaultPath is where the export lands unless overridden.
const DefaultPath = "bitwarden.csv"

// Ensure Writer implements the interface.
var _ driven.VaultWriter = (*Writer)(nil)

// header is the column layout the target system imports.
var header = []string{
	"folder", "favorite", "type", "name", "notes",
	"fields", "login_uri", "login_username", "login_password", "login_totp",
}

// Writer serializes a vault document to a CSV file.
type Writer struct {
	path string
}

// New creates a CSV vault writer. An empty path selects DefaultPath.
func New(path string) *Writer {
	if path == "" {
		path = DefaultPath
	}
	return &Writer{path: path}
}

// Write serializes doc and returns the written path. The CSV format
// carries no identifiers, so only the folder name survives from the
// folder settings.
func (w *Writer) Write(doc *domain.VaultDocument) (string, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("encode csv: %w", err)
	}

	folder := ""
	if len(doc.Folders) > 0 {
		folder = doc.Folders[0].Name
	}

	for _, record := range doc.Items {
		row, ok := csvRow(folder, record)
		if !ok {
			logger.Warn("Skipping %s: %s records have no CSV form",
				stringAt(record, "name"), typeLabel(record))
			continue
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("encode csv: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("encode csv: %w", err)
	}

	if err := os.WriteFile(w.path, buf.Bytes(), 0600); err != nil {
		return "", fmt.Errorf("write %s: %w", w.path, err)
	}
	// WriteFile's mode only applies on create.
	if err := os.Chmod(w.path, 0600); err != nil {
		return "", fmt.Errorf("restrict %s: %w", w.path, err)
	}
	return w.path, nil
}

// csvRow flattens one record into the CSV layout. It reports false
// for record types the layout cannot carry.
func csvRow(folder string, record domain.Record) ([]string, bool) {
	var kind string
	switch record["type"] {
	case domain.TypeLogin:
		kind = "login"
	case domain.TypeSecureNote:
		kind = "note"
	default:
		return nil, false
	}

	return []string{
		folder,
		"", // favorite is never set
		kind,
		stringAt(record, "name"),
		stringAt(record, "notes"),
		joinFields(record),
		joinURIs(record),
		nestedString(record, "login", "username"),
		nestedString(record, "login", "password"),
		nestedString(record, "login", "totp"),
	}, true
}

// typeLabel names a record's type for log lines.
func typeLabel(record domain.Record) string {
	id, ok := record["type"].(int)
	if !ok {
		return "untyped"
	}
	entryType, ok := domain.EntryTypeByID(id)
	if !ok {
		return "unknown"
	}
	return entryType.Name
}

// stringAt reads a top-level string field, empty when absent.
func stringAt(record domain.Record, key string) string {
	s, _ := record[key].(string)
	return s
}

// nestedString reads a nested string field, empty when absent.
func nestedString(record domain.Record, path ...string) string {
	value, ok := record.Get(path)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

// joinFields renders custom fields as "name: value" lines.
func joinFields(record domain.Record) string {
	fields, ok := record["fields"].([]domain.CustomField)
	if !ok {
		return ""
	}
	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, field.Name+": "+field.Value)
	}
	return strings.Join(lines, "\n")
}

// joinURIs renders the declared URIs as a comma-separated list.
func joinURIs(record domain.Record) string {
	value, ok := record.Get([]string{"login", "uris"})
	if !ok {
		return ""
	}
	uris, ok := value.([]domain.URIEntry)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(uris))
	for _, entry := range uris {
		parts = append(parts, entry.URI)
	}
	return strings.Join(parts, ",")
}
