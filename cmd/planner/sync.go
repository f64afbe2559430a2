// ABOUTME: CLI commands for Charm Cloud sync of the program.
// ABOUTME: Push uploads logged days; pull merges remote logs into the tree.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/charm"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the program with Charm Cloud",
	Long: `Sync the program across devices using Charm Cloud.

Data is E2E encrypted with your SSH key. Only days that have been started
or completed are uploaded; untouched planned days carry no information.

COMMANDS:

  planner sync push     # Upload logged days and program meta
  planner sync pull     # Merge remote logged days into the local tree
  planner sync status   # Show remote day count and account ID
  planner sync wipe     # Reset local Charm data from the cloud`,
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload logged days to Charm Cloud",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}
		client, err := charm.GetClient()
		if err != nil {
			return fmt.Errorf("connect to Charm: %w", err)
		}
		defer client.Close()

		pushed, err := client.PushState(state)
		if err != nil {
			return err
		}
		color.Green("✓ Pushed %d days", pushed)
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Merge remote logged days into the local program",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}
		client, err := charm.GetClient()
		if err != nil {
			return fmt.Errorf("connect to Charm: %w", err)
		}
		defer client.Close()

		merged := state.Clone()
		updated, err := client.PullInto(merged)
		if err != nil {
			return err
		}
		if updated == 0 {
			fmt.Println("Already up to date")
			return nil
		}
		if err := saveState(merged); err != nil {
			return err
		}
		color.Green("✓ Merged %d remote days", updated)
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.GetClient()
		if err != nil {
			return fmt.Errorf("connect to Charm: %w", err)
		}
		defer client.Close()

		id, err := client.ID()
		if err != nil {
			return err
		}
		count, err := client.Status()
		if err != nil {
			return err
		}
		fmt.Printf("Account: %s\n", id)
		fmt.Printf("Remote days: %d\n", count)
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Reset local Charm data from the cloud",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.GetClient()
		if err != nil {
			return fmt.Errorf("connect to Charm: %w", err)
		}
		defer client.Close()

		if err := client.Reset(); err != nil {
			return err
		}
		color.Green("✓ Local Charm data rebuilt from cloud")
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncWipeCmd)
	rootCmd.AddCommand(syncCmd)
}
