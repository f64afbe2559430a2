// ABOUTME: Root Cobra command for planner CLI.
// ABOUTME: Handles storage lifecycle and day-status rollover via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/config"
	"github.com/harperreed/planner/internal/engine"
	"github.com/harperreed/planner/internal/models"
	"github.com/harperreed/planner/internal/storage"
)

var (
	cfg      *config.Config
	repo     storage.Repository
	appState *models.PlannerState
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "12-week RPE-based training planner",
	Long: `Planner is a CLI for running a 12-week training program with
RPE-driven load progression.

HOW IT WORKS:

  Pick a framework at init. Every day carries prescribed exercises; you log
  the RPE you actually hit. Completing a day adapts the next sessions for
  each movement pattern: easy sessions add load, clear overshoots pull it
  back, and a streak of slightly-too-hard sessions triggers a small cut.

FRAMEWORKS:

  STRENGTH_LINEAR         5x5 style linear progression (target RPE 8)
  POWERLIFTING            heavy singles and triples (target RPE 9)
  HYPERTROPHY             8-12 reps, percentage-based load steps
  STRENGTH_CONDITIONING   10-15 reps, general conditioning

QUICK START:

  $ planner init STRENGTH_LINEAR        # Build a 12-week program
  $ planner day                         # Show today's session
  $ planner log squat 8.5 --load 100    # Log an exercise
  $ planner complete                    # Finish the day, adapt the plan
  $ planner plan                        # See the current week

MORE:

  $ planner rpe 100 5 2                 # Estimate 1RM from a logged set
  $ planner coach                       # AI feedback on a logged day
  $ planner export json                 # Backup the whole program
  $ planner sync push                   # Push logged days to Charm Cloud

MCP INTEGRATION:

  Run 'planner mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "planner": { "command": "planner", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  The program lives in SQLite at ~/.local/share/planner/planner.db.
  Set PLANNER_DATA_DIR or PLANNER_BACKEND to override.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}

		appState, err = repo.LoadState()
		if err != nil {
			return fmt.Errorf("load program: %w", err)
		}
		if appState == nil {
			return nil
		}

		// Day statuses move with the calendar on every invocation.
		rolled := engine.Rollover(appState, time.Now())
		if !statusesEqual(appState, rolled) {
			if err := repo.SaveState(rolled); err != nil {
				return fmt.Errorf("save rollover: %w", err)
			}
		}
		appState = rolled
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireState errors when no program has been initialized yet.
func requireState() (*models.PlannerState, error) {
	if appState == nil {
		return nil, fmt.Errorf("no program initialized; run `planner init <framework>` first")
	}
	return appState, nil
}

// saveState persists and replaces the in-memory tree.
func saveState(state *models.PlannerState) error {
	state.LastSavedAt = time.Now()
	if err := repo.SaveState(state); err != nil {
		return fmt.Errorf("save program: %w", err)
	}
	appState = state
	return nil
}

// statusesEqual reports whether two trees carry identical day statuses.
func statusesEqual(a, b *models.PlannerState) bool {
	for w := range a.Weeks {
		for d := range a.Weeks[w].Days {
			if a.Weeks[w].Days[d].Status != b.Weeks[w].Days[d].Status {
				return false
			}
		}
	}
	return true
}
