// Package cli implements the bw-export command set.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	configfile "github.com/kenkundert/bw-export/internal/adapters/driven/config/file"
	"github.com/kenkundert/bw-export/internal/adapters/driven/parser/yamlblock"
	sourcefile "github.com/kenkundert/bw-export/internal/adapters/driven/source/file"
	"github.com/kenkundert/bw-export/internal/adapters/driven/vault/jsonfile"
	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
	"github.com/kenkundert/bw-export/internal/core/ports/driving"
	"github.com/kenkundert/bw-export/internal/core/services"
	"github.com/kenkundert/bw-export/internal/logger"
)

// version is set via ldflags during build.
var version = "dev"

// Persistent flags shared by every command.
var (
	accountsDir  string
	settingsPath string
	verbose      bool
)

// Root command flags.
var (
	exportOutput string
	exportWatch  bool
)

var rootCmd = &cobra.Command{
	Use:   "bw-export",
	Short: "Export Avendesora accounts to Bitwarden",
	Long: `bw-export assembles the accounts that carry a bitwarden declaration
into a Bitwarden import file.

Accounts opt in by declaring a bitwarden mapping in their account file.
Declared values may reference other account attributes with {attribute}
expressions, which are resolved at export time. Records and folders
carry deterministic identifiers derived from a per-user seed, so
re-importing a fresh export updates earlier records instead of
duplicating them.

Run without arguments to write the JSON import file.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runExport,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&accountsDir, "accounts", "",
		"accounts directory (default <config>/bw-export/accounts)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "",
		"settings file (default <config>/bw-export/settings.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print debug output")
	rootCmd.Flags().StringVarP(&exportOutput, "output", "o", jsonfile.DefaultPath,
		"output file")
	rootCmd.Flags().BoolVar(&exportWatch, "watch", false,
		"keep running and re-export when accounts change")
}

// buildPipeline wires the file-backed account source, field-block
// parser and settings store into an export service bound to writer.
// Tests replace it to run commands against mocks.
var buildPipeline = func(writer driven.VaultWriter) (driving.Exporter, driven.AccountWatcher, error) {
	store, err := configfile.NewSettingsStore(settingsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open settings: %w", err)
	}
	source := sourcefile.New(resolveAccountsDir())
	exporter := services.NewExportService(source, yamlblock.New(), store, writer)
	return exporter, source, nil
}

// resolveAccountsDir applies the --accounts override, falling back to
// the per-user config directory.
func resolveAccountsDir() string {
	if accountsDir != "" {
		return accountsDir
	}
	return filepath.Join(xdg.ConfigHome, "bw-export", "accounts")
}

func runExport(cmd *cobra.Command, _ []string) error {
	return runExportSession(cmd, jsonfile.New(exportOutput), exportWatch)
}

// runExportSession performs one export, then keeps re-exporting on
// account changes when watch is set. SIGINT and SIGTERM cancel the
// session: a one-shot export cut short fails, a watch session ends
// cleanly.
func runExportSession(cmd *cobra.Command, writer driven.VaultWriter, watch bool) error {
	exporter, watcher, err := buildPipeline(writer)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := exporter.Export(ctx)
	switch {
	case err == nil:
		reportSummary(cmd, summary)
	case !watch:
		return exportFailure(cmd, err)
	default:
		// A watch session survives a failed export; the next change
		// gets another chance.
		cmd.PrintErrf("Export failed: %v\n", err)
	}

	if !watch {
		return nil
	}
	return watchAccounts(ctx, cmd, exporter, watcher)
}

// reportSummary prints the outcome of a successful export run.
func reportSummary(cmd *cobra.Command, summary *driving.ExportSummary) {
	if summary.Folder != "" {
		cmd.Printf("Exported %d records to %s in folder %s\n",
			summary.Exported, summary.Path, summary.Folder)
	} else {
		cmd.Printf("Exported %d records to %s\n", summary.Exported, summary.Path)
	}
	if summary.Skipped > 0 {
		cmd.Printf("Skipped %d accounts without export instructions\n", summary.Skipped)
	}
}

// exportFailure maps an export error to what a one-shot run reports.
// Interruption is named as such, and a failure inside an account's
// declaration names the account before the error itself surfaces.
func exportFailure(cmd *cobra.Command, err error) error {
	if errors.Is(err, context.Canceled) {
		return errors.New("interrupted")
	}
	var exportErr *domain.ExportError
	if errors.As(err, &exportErr) {
		cmd.PrintErrf("Account %s did not export; nothing was written.\n", exportErr.Account)
	}
	return err
}
