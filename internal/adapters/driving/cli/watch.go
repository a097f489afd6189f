package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kenkundert/bw-export/internal/core/ports/driven"
	"github.com/kenkundert/bw-export/internal/core/ports/driving"
	"github.com/kenkundert/bw-export/internal/logger"
)

// watchDebounce coalesces a burst of filesystem events, such as an
// editor's write-then-rename save, into a single re-export.
const watchDebounce = 500 * time.Millisecond

// watchAccounts re-runs the export whenever the accounts directory
// changes, until ctx is cancelled. Export failures are reported and the
// session keeps watching; a cancelled session ends without error.
func watchAccounts(
	ctx context.Context,
	cmd *cobra.Command,
	exporter driving.Exporter,
	watcher driven.AccountWatcher,
) error {
	changes, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch accounts: %w", err)
	}
	cmd.Println("Watching for account changes, Ctrl-C stops")

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Debug("Changed: %s", path)
			debounce.Reset(watchDebounce)
		case <-debounce.C:
			logger.Section("re-export")
			logger.Info("Accounts changed, re-exporting")
			summary, err := exporter.Export(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				cmd.PrintErrf("Export failed: %v\n", err)
				continue
			}
			reportSummary(cmd, summary)
		}
	}
}
