// Package jsonfile writes the vault document in the Bitwarden JSON
// import format.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
)

// DefaultPath is where the export lands unless overridden.
const DefaultPath = "bitwarden.json"

// Ensure Writer implements the interface.
var _ driven.VaultWriter = (*Writer)(nil)

// Writer serializes a vault document to a JSON file. The file holds
// live secrets, so it is written with restricted permissions.
type Writer struct {
	path string
}

// New creates a JSON vault writer. An empty path selects DefaultPath.
func New(path string) *Writer {
	if path == "" {
		path = DefaultPath
	}
	return &Writer{path: path}
}

// Write serializes doc and returns the written path. Object keys are
// emitted in sorted order, so identical documents produce identical
// bytes run after run.
func (w *Writer) Write(doc *domain.VaultDocument) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode vault document: %w", err)
	}

	if err := os.WriteFile(w.path, buf.Bytes(), 0600); err != nil {
		return "", fmt.Errorf("write %s: %w", w.path, err)
	}
	// WriteFile applies the mode only when creating the file; a
	// pre-existing export keeps its old bits until restricted.
	if err := os.Chmod(w.path, 0600); err != nil {
		return "", fmt.Errorf("restrict %s: %w", w.path, err)
	}
	return w.path, nil
}
