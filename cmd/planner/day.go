// ABOUTME: CLI command for showing a single training day.
// ABOUTME: Defaults to the cursor day; accepts explicit week/day numbers.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/models"
)

var dayCmd = &cobra.Command{
	Use:     "day [week] [day]",
	Aliases: []string{"d", "today"},
	Short:   "Show a training day",
	Long: `Show one training day with its prescribed and logged work.

Without arguments the day the program cursor points at is shown.

EXAMPLES:

  planner day          # The next actionable session
  planner day 3 2      # Week 3, day 2`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}

		wi, di, err := resolveDayRef(state, args)
		if err != nil {
			return err
		}
		printDay(state, wi, di)
		return nil
	},
}

// resolveDayRef turns optional [week] [day] args into zero-based indexes,
// defaulting to the cursor.
func resolveDayRef(state *models.PlannerState, args []string) (int, int, error) {
	wi, di := state.Cursor.WeekIndex, state.Cursor.DayIndex
	if len(args) >= 1 {
		w, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid week number: %s", args[0])
		}
		wi = w - 1
		di = 0
	}
	if len(args) >= 2 {
		d, err := strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid day number: %s", args[1])
		}
		di = d - 1
	}
	if state.Day(wi, di) == nil {
		return 0, 0, fmt.Errorf("no day at week %d day %d (weeks run 1-%d, days 1-%d)",
			wi+1, di+1, models.ProgramWeeks, models.DaysPerWeek)
	}
	return wi, di, nil
}

func printDay(state *models.PlannerState, wi, di int) {
	day := state.Day(wi, di)

	header := fmt.Sprintf("Week %d, day %d - %s", wi+1, di+1, day.Date.Format("Mon 2006-01-02"))
	fmt.Printf("%s  %s\n\n", color.New(color.Bold).Sprint(header), statusBadge(day.Status))

	for _, ex := range day.Training {
		line := fmt.Sprintf("  %-22s %dx%-3d %6.1f kg  @%.1f", ex.Name, ex.Sets, ex.Reps, ex.LoadKg, ex.TargetRPE)
		if ex.Logged() {
			line += color.New(color.Faint).Sprintf("  logged RPE %.1f", *ex.ActualRPE)
		}
		fmt.Println(line)
	}

	if day.SessionRPE != nil {
		fmt.Printf("\n  Session RPE: %.1f\n", *day.SessionRPE)
	}
	if day.SleepHours > 0 || day.WaterIntake > 0 {
		fmt.Printf("  Sleep %.1f h, water %.1f l, stress %d/10\n",
			day.SleepHours, day.WaterIntake, day.StressLevel)
	}
	if day.Notes != nil && *day.Notes != "" {
		fmt.Printf("  Notes: %s\n", *day.Notes)
	}
}

func statusBadge(s models.DayStatus) string {
	switch s {
	case models.StatusActive:
		return color.New(color.FgGreen).Sprint("ACTIVE")
	case models.StatusCompleted:
		return color.New(color.FgCyan).Sprint("COMPLETED")
	case models.StatusLocked:
		return color.New(color.Faint).Sprint("LOCKED")
	default:
		return string(s)
	}
}

func init() {
	rootCmd.AddCommand(dayCmd)
}
