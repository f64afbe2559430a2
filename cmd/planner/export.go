// ABOUTME: CLI commands for exporting and importing the program.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the program",
	Long: `Export the full program in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown report (for documentation/sharing)

EXAMPLES:

  planner export json                 # Export to stdout
  planner export json -o backup.json  # Save to file
  planner export markdown             # Readable report`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireState(); err != nil {
			return err
		}

		var data []byte
		var err error
		switch args[0] {
		case "json":
			data, err = storage.ExportJSON(repo)
		case "yaml":
			data, err = storage.ExportYAML(repo)
		case "markdown":
			var md string
			md, err = storage.ExportMarkdown(repo)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return err
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("write %s: %w", exportOutput, err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}
		fmt.Print(string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a program from a JSON export",
	Long: `Import a program from a JSON export file, replacing the current
program entirely.

EXAMPLE:

  planner import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		if err := storage.ImportJSON(repo, data); err != nil {
			return err
		}

		state, err := repo.LoadState()
		if err != nil {
			return err
		}
		appState = state
		color.Green("✓ Imported %q", state.ProgramName)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
