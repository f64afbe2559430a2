// ABOUTME: CLI command for logging performed work and daily wellness.
// ABOUTME: Exercise logs carry RPE; day-level flags record session context.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/engine"
	"github.com/harperreed/planner/internal/models"
)

var (
	logWeek   int
	logDay    int
	logReps   int
	logLoad   float64
	logNotes  string
	logSleep  float64
	logWater  float64
	logStress int
	logHabits []string
)

var logCmd = &cobra.Command{
	Use:     "log <exercise> <rpe>",
	Aliases: []string{"l"},
	Short:   "Log an exercise or session RPE",
	Long: `Log the RPE you actually hit for an exercise, or for the whole session.

The exercise is matched by movement pattern (SQUAT, HINGE, HORIZONTAL_PUSH,
VERTICAL_PUSH, PULL, CARRY_ACCESSORY) or by name substring. Use "session"
to record a day-level RPE instead.

Without --week/--day the cursor day is targeted. Locked days reject writes.

EXAMPLES:

  planner log squat 8.5                    # RPE only
  planner log squat 8.5 --load 100 --reps 5
  planner log session 8                    # Day-level RPE
  planner log squat 9 --week 2 --day 3
  planner log session 7 --sleep 7.5 --habit sleep,nutrition`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}

		rpe, err := strconv.ParseFloat(args[1], 64)
		if err != nil || rpe < 1 || rpe > 10 {
			return fmt.Errorf("invalid RPE: %s (use 1-10)", args[1])
		}

		wi, di, err := resolveLogTarget(state)
		if err != nil {
			return err
		}
		day := state.Day(wi, di)
		if !day.Mutable() {
			return fmt.Errorf("week %d day %d is locked history", wi+1, di+1)
		}

		if strings.EqualFold(args[0], "session") {
			updated := engine.UpdateDay(state, wi, di, func(d *models.DayEntry) {
				d.SessionRPE = &rpe
				applyWellness(d)
			})
			if err := saveState(updated); err != nil {
				return err
			}
			color.Green("✓ Logged session RPE %.1f for week %d day %d", rpe, wi+1, di+1)
			return nil
		}

		idx := matchExercise(day.Training, args[0])
		if idx < 0 {
			return fmt.Errorf("no exercise matching %q on week %d day %d", args[0], wi+1, di+1)
		}

		updated := engine.UpdateExercise(state, wi, di, idx, func(ex *models.Exercise) {
			ex.ActualRPE = &rpe
			if logReps > 0 {
				reps := logReps
				ex.ActualReps = &reps
			}
			if logLoad > 0 {
				ex.LoadKg = logLoad
			}
			if logNotes != "" {
				notes := logNotes
				ex.Notes = &notes
			}
		})
		if hasWellnessFlags() {
			updated = engine.UpdateDay(updated, wi, di, applyWellness)
		}
		if err := saveState(updated); err != nil {
			return err
		}

		ex := updated.Day(wi, di).Training[idx]
		color.Green("✓ Logged %s", ex.Name)
		fmt.Printf("  RPE %.1f at %.1f kg (target %.1f)\n", rpe, ex.LoadKg, ex.TargetRPE)
		return nil
	},
}

func resolveLogTarget(state *models.PlannerState) (int, int, error) {
	wi, di := state.Cursor.WeekIndex, state.Cursor.DayIndex
	if logWeek > 0 {
		wi = logWeek - 1
	}
	if logDay > 0 {
		di = logDay - 1
	}
	if state.Day(wi, di) == nil {
		return 0, 0, fmt.Errorf("no day at week %d day %d", wi+1, di+1)
	}
	return wi, di, nil
}

func hasWellnessFlags() bool {
	return logSleep > 0 || logWater > 0 || logStress > 0 || len(logHabits) > 0
}

func applyWellness(d *models.DayEntry) {
	if logSleep > 0 {
		d.SleepHours = logSleep
	}
	if logWater > 0 {
		d.WaterIntake = logWater
	}
	if logStress > 0 {
		d.StressLevel = logStress
	}
	for _, h := range logHabits {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "sleep":
			d.Habits.Sleep = true
		case "nutrition":
			d.Habits.Nutrition = true
		case "hydration":
			d.Habits.Hydration = true
		case "mobility":
			d.Habits.Mobility = true
		case "mindfulness":
			d.Habits.Mindfulness = true
		case "recovery":
			d.Habits.Recovery = true
		}
	}
}

// matchExercise matches by movement pattern first, then case-insensitive
// name substring.
func matchExercise(training []models.Exercise, query string) int {
	upper := strings.ToUpper(query)
	for i := range training {
		if string(training[i].MovementPattern) == upper {
			return i
		}
	}
	lower := strings.ToLower(query)
	for i := range training {
		if strings.Contains(strings.ToLower(training[i].Name), lower) {
			return i
		}
	}
	return -1
}

func init() {
	logCmd.Flags().IntVar(&logWeek, "week", 0, "week number (defaults to cursor)")
	logCmd.Flags().IntVar(&logDay, "day", 0, "day number (defaults to cursor)")
	logCmd.Flags().IntVar(&logReps, "reps", 0, "reps actually performed")
	logCmd.Flags().Float64Var(&logLoad, "load", 0, "load actually used in kg")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "notes on the set")
	logCmd.Flags().Float64Var(&logSleep, "sleep", 0, "hours slept")
	logCmd.Flags().Float64Var(&logWater, "water", 0, "liters of water")
	logCmd.Flags().IntVar(&logStress, "stress", 0, "stress level 1-10")
	logCmd.Flags().StringSliceVar(&logHabits, "habit", nil, "habits kept (sleep,nutrition,hydration,mobility,mindfulness,recovery)")
	rootCmd.AddCommand(logCmd)
}
