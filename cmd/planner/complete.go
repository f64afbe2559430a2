// ABOUTME: CLI command for completing a training day.
// ABOUTME: One atomic step: mark completed, adapt future sessions, advance cursor.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/charm"
	"github.com/harperreed/planner/internal/engine"
	"github.com/harperreed/planner/internal/models"
)

var completeAdvanceReps bool

var completeCmd = &cobra.Command{
	Use:     "complete [week] [day]",
	Aliases: []string{"done", "finish"},
	Short:   "Complete a training day",
	Long: `Complete a training day. The day is marked COMPLETED, the next two
eligible sessions are adapted per movement pattern from what you logged,
and the program cursor advances.

Completing an already completed or locked day changes nothing.

EXAMPLES:

  planner complete                # The cursor day
  planner complete 2 3            # Week 2, day 3
  planner complete --advance-reps # Also step reps up inside the rep range`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}

		wi, di := state.Cursor.WeekIndex, state.Cursor.DayIndex
		if len(args) >= 1 {
			w, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid week number: %s", args[0])
			}
			wi = w - 1
		}
		if len(args) >= 2 {
			d, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day number: %s", args[1])
			}
			di = d - 1
		}
		day := state.Day(wi, di)
		if day == nil {
			return fmt.Errorf("no day at week %d day %d", wi+1, di+1)
		}
		if day.Status == models.StatusCompleted || day.Status == models.StatusLocked {
			fmt.Printf("Week %d day %d is already %s\n", wi+1, di+1, day.Status)
			return nil
		}

		before := loadsByPattern(state)
		updated := engine.CompleteDay(state, wi, di, engine.Strategy{AdvanceReps: completeAdvanceReps})
		if err := saveState(updated); err != nil {
			return err
		}

		// Push the completed day to Charm Cloud if configured
		if cfg != nil && cfg.AutoSync {
			if err := pushCompletedDay(updated, wi, di); err != nil {
				color.Yellow("⚠ Sync push failed: %v", err)
			}
		}

		color.Green("✓ Completed week %d day %d", wi+1, di+1)
		fmt.Printf("  Cursor now at week %d, day %d\n",
			updated.Cursor.WeekIndex+1, updated.Cursor.DayIndex+1)

		after := loadsByPattern(updated)
		for pattern, next := range after {
			prev, ok := before[pattern]
			if !ok || next == prev {
				continue
			}
			arrow := "up to"
			if next < prev {
				arrow = "down to"
			}
			fmt.Printf("  %s: %.1f kg %s %.1f kg next session\n", pattern, prev, arrow, next)
		}
		return nil
	},
}

// loadsByPattern snapshots the next upcoming prescription per pattern, used
// to report what completion changed.
func loadsByPattern(state *models.PlannerState) map[models.MovementPattern]float64 {
	loads := make(map[models.MovementPattern]float64)
	for w := range state.Weeks {
		for d := range state.Weeks[w].Days {
			day := &state.Weeks[w].Days[d]
			if day.Status == models.StatusCompleted || day.Status == models.StatusLocked {
				continue
			}
			for _, ex := range day.Training {
				if _, seen := loads[ex.MovementPattern]; !seen {
					loads[ex.MovementPattern] = ex.LoadKg
				}
			}
		}
	}
	return loads
}

// pushCompletedDay pushes one day to Charm Cloud. Local state is already
// saved by the time this runs, so failures only cost remote freshness.
func pushCompletedDay(state *models.PlannerState, weekIdx, dayIdx int) error {
	client, err := charm.GetClient()
	if err != nil {
		return err
	}
	day := state.Day(weekIdx, dayIdx)
	if day == nil {
		return fmt.Errorf("no day at week %d day %d", weekIdx+1, dayIdx+1)
	}
	return client.PushDay(weekIdx, dayIdx, day)
}

func init() {
	completeCmd.Flags().BoolVar(&completeAdvanceReps, "advance-reps", false, "advance reps within the rep range when load holds")
	rootCmd.AddCommand(completeCmd)
}
