// ABOUTME: CLI command for migrating from the legacy Badger store to SQLite.
// ABOUTME: One-time migration tool for users upgrading from older versions.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/storage"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate from Badger to SQLite",
	Long: `Migrate the program from the legacy Badger storage to SQLite.

This is a one-time migration tool for users upgrading from older versions
of planner that stored the program in Badger.

IMPORTANT:

  - The legacy data must exist under <data-dir>/badger
  - Any existing SQLite program is replaced by the migrated one
  - Run with --dry-run first to preview the migration

USAGE:

  planner migrate --dry-run   # Preview what would be migrated
  planner migrate             # Perform the migration

AFTER MIGRATION:

  Once migration is complete you can delete the old data:
    rm -rf ~/.local/share/planner/badger/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir := cfg.GetDataDir()
		legacyDir := filepath.Join(dataDir, "badger")

		hasLegacy, err := storage.IsDirNonEmpty(legacyDir)
		if err != nil {
			return err
		}
		if !hasLegacy {
			return fmt.Errorf("no legacy data found at %s", legacyDir)
		}

		src, err := storage.OpenLegacy(legacyDir)
		if err != nil {
			return fmt.Errorf("open legacy store: %w", err)
		}
		defer src.Close()

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			state, err := src.LoadState()
			if err != nil {
				return err
			}
			if state == nil {
				return fmt.Errorf("legacy store holds no program")
			}
			days := 0
			for _, week := range state.Weeks {
				days += len(week.Days)
			}
			fmt.Printf("Would migrate %q: %d weeks, %d days\n",
				state.ProgramName, len(state.Weeks), days)
			return nil
		}

		dst, err := storage.Open(filepath.Join(dataDir, "planner.db"))
		if err != nil {
			return fmt.Errorf("open destination: %w", err)
		}
		defer dst.Close()

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return err
		}

		color.Green("✓ Migration complete")
		fmt.Printf("  %d weeks, %d days, %d exercises\n",
			summary.Weeks, summary.Days, summary.Exercises)
		fmt.Printf("\nThe old data can now be removed:\n  rm -rf %s\n", legacyDir)
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
