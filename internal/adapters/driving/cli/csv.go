package cli

import (
	"github.com/spf13/cobra"

	"github.com/kenkundert/bw-export/internal/adapters/driven/vault/csvfile"
)

var (
	csvOutput string
	csvWatch  bool
)

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export accounts to Bitwarden CSV",
	Long: `Writes the export in Bitwarden's CSV import layout instead of JSON.

Only login and secure note records fit the CSV columns; card and
identity records are skipped with a warning. CSV rows carry no
identifiers, so re-importing a CSV export creates new records rather
than updating earlier ones.`,
	RunE: runCSV,
}

func init() {
	csvCmd.Flags().StringVarP(&csvOutput, "output", "o", csvfile.DefaultPath,
		"output file")
	csvCmd.Flags().BoolVar(&csvWatch, "watch", false,
		"keep running and re-export when accounts change")
	rootCmd.AddCommand(csvCmd)
}

func runCSV(cmd *cobra.Command, _ []string) error {
	return runExportSession(cmd, csvfile.New(csvOutput), csvWatch)
}
