package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/kenkundert/bw-export/internal/adapters/driven/config/file"
	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driving"
	"github.com/kenkundert/bw-export/internal/core/services"
)

// buildSettingsService opens the settings store for the settings
// commands. Tests replace it to inject mocks.
var buildSettingsService = func() (driving.SettingsService, error) {
	store, err := configfile.NewSettingsStore(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	return services.NewSettingsService(store), nil
}

var resetSeedForce bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage export settings",
	Long: `View and configure the persisted export settings.

The settings file holds the identity seed, from which every exported
identifier is derived, and the template that names the export folder.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsFolderCmd = &cobra.Command{
	Use:   "folder <template>",
	Short: "Set the folder name template",
	Long: `Set the template used to name the export folder.

Text between square brackets is kept literally; outside brackets the
tokens YYYY, YY, MM, DD, HH, mm and ss expand against the export date.
An empty template disables the folder entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsFolder,
}

var settingsResetSeedCmd = &cobra.Command{
	Use:   "reset-seed",
	Short: "Replace the identity seed",
	Long: `Replace the identity seed with a fresh random one.

Record and folder identifiers are derived from the seed. After a reset,
re-importing an export no longer updates previously imported records;
it creates duplicates instead. Requires --force.`,
	RunE: runSettingsResetSeed,
}

func init() {
	settingsResetSeedCmd.Flags().BoolVar(&resetSeedForce, "force", false,
		"confirm replacing the seed")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsFolderCmd)
	settingsCmd.AddCommand(settingsResetSeedCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	service, err := buildSettingsService()
	if err != nil {
		return err
	}

	settings, err := service.Get()
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Settings file: %s\n", service.Path())
	cmd.Printf("  Identity seed: %s\n", settings.Seed)
	if settings.FolderEnabled() {
		cmd.Printf("  Folder template: %s\n", settings.FolderTemplate)
		cmd.Printf("  Folder today: %s\n",
			domain.RenderFolderName(settings.FolderTemplate, time.Now()))
	} else {
		cmd.Println("  Folder: disabled")
	}
	return nil
}

func runSettingsFolder(cmd *cobra.Command, args []string) error {
	service, err := buildSettingsService()
	if err != nil {
		return err
	}

	template := args[0]
	if err := service.SetFolderTemplate(template); err != nil {
		return fmt.Errorf("set folder template: %w", err)
	}

	if template == "" {
		cmd.Println("Export folder disabled.")
		return nil
	}
	cmd.Printf("Folder template set to %s\n", template)
	cmd.Printf("Today that names the folder %s\n",
		domain.RenderFolderName(template, time.Now()))
	return nil
}

func runSettingsResetSeed(cmd *cobra.Command, _ []string) error {
	if !resetSeedForce {
		return errors.New("reset-seed orphans every previously exported record; pass --force to confirm")
	}

	service, err := buildSettingsService()
	if err != nil {
		return err
	}

	settings, err := service.ResetSeed()
	if err != nil {
		return fmt.Errorf("reset seed: %w", err)
	}

	cmd.Printf("Identity seed replaced: %s\n", settings.Seed)
	cmd.Println("Previously exported records will no longer be recognised on import.")
	return nil
}
