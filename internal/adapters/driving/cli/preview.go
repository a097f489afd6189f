package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driving"
)

var previewJSON bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show what an export would contain without writing it",
	Long: `Assembles every opted-in account exactly like an export run, but
prints the result instead of writing a file. Declaration problems
surface the same way they would during a real export.

The table lists one row per record. Pass --json to print the full vault
document, resolved secrets included, to standard output.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&previewJSON, "json", false,
		"print the vault document as JSON")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	// Preview never writes, so no writer is bound.
	exporter, _, err := buildPipeline(nil)
	if err != nil {
		return err
	}

	preview, err := exporter.Preview(cmd.Context())
	if err != nil {
		return err
	}

	if previewJSON {
		return outputPreviewJSON(cmd, preview.Document)
	}
	outputPreviewTable(cmd, preview)
	return nil
}

func outputPreviewJSON(cmd *cobra.Command, doc *domain.VaultDocument) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode vault document: %w", err)
	}
	return nil
}

func outputPreviewTable(cmd *cobra.Command, preview *driving.ExportPreview) {
	if preview.Folder != "" {
		cmd.Printf("Folder: %s\n", preview.Folder)
	}
	if len(preview.Document.Items) == 0 {
		cmd.Println("No accounts opted in to export.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(terminalWidth())
	t.AppendHeader(table.Row{"Name", "Type", "Fields", "URIs", "Notes"})
	for _, record := range preview.Document.Items {
		t.AppendRow(table.Row{
			previewString(record, "name"),
			previewTypeLabel(record),
			previewFieldCount(record),
			previewURICount(record),
			previewNotesMarker(record),
		})
	}
	t.Render()

	cmd.Printf("%d records, %d accounts skipped\n",
		len(preview.Document.Items), preview.Skipped)
}

// terminalWidth returns the stdout width, or 80 when stdout is not a
// terminal.
func terminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

func previewString(record domain.Record, key string) string {
	s, _ := record[key].(string)
	return s
}

func previewTypeLabel(record domain.Record) string {
	id, ok := record["type"].(int)
	if !ok {
		return "?"
	}
	entryType, ok := domain.EntryTypeByID(id)
	if !ok {
		return "?"
	}
	return entryType.Name
}

func previewFieldCount(record domain.Record) int {
	fields, _ := record["fields"].([]domain.CustomField)
	return len(fields)
}

func previewURICount(record domain.Record) int {
	value, ok := record.Get([]string{"login", "uris"})
	if !ok {
		return 0
	}
	uris, _ := value.([]domain.URIEntry)
	return len(uris)
}

func previewNotesMarker(record domain.Record) string {
	if previewString(record, "notes") != "" {
		return "yes"
	}
	return ""
}
