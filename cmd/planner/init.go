// ABOUTME: CLI command for creating a new 12-week program.
// ABOUTME: Builds the full week/day tree with framework default movements.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/models"
)

var (
	initStart string
	initName  string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init <framework>",
	Short: "Create a new 12-week program",
	Long: `Create a new 12-week program for the given training framework.

FRAMEWORKS:

  STRENGTH_LINEAR         squat/bench/deadlift/press, 5x5, target RPE 8
  POWERLIFTING            competition lifts, 1-3 reps, target RPE 9
  HYPERTROPHY             machine and accessory work, 8-12 reps
  STRENGTH_CONDITIONING   bodyweight and kettlebell, 10-15 reps

EXAMPLES:

  planner init STRENGTH_LINEAR
  planner init powerlifting --start 2026-09-07
  planner init HYPERTROPHY --name "Summer Block"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		framework, err := models.ParseFramework(strings.ToUpper(args[0]))
		if err != nil {
			return fmt.Errorf("%w\nValid frameworks: STRENGTH_LINEAR, POWERLIFTING, HYPERTROPHY, STRENGTH_CONDITIONING", err)
		}

		if appState != nil && !initForce {
			return fmt.Errorf("a program already exists (%q); use --force to replace it", appState.ProgramName)
		}

		start := time.Now()
		if initStart != "" {
			start, err = time.Parse("2006-01-02", initStart)
			if err != nil {
				return fmt.Errorf("invalid start date: %s (use YYYY-MM-DD)", initStart)
			}
		}

		state := models.NewPlannerState(framework, start)
		if initName != "" {
			state.ProgramName = initName
		}
		if err := saveState(state); err != nil {
			return err
		}

		color.Green("✓ Created %q", state.ProgramName)
		fmt.Printf("  %s, %d weeks starting %s\n",
			framework, models.ProgramWeeks, state.Weeks[0].StartDate.Format("2006-01-02"))
		rules := framework.Rules()
		fmt.Printf("  Target RPE %.0f, %d-%d reps\n",
			rules.TargetRPE, rules.RepRange.Min, rules.RepRange.Max)
		for _, mv := range rules.DefaultMovements {
			fmt.Printf("    %s (%s)\n", mv.Name, mv.Pattern)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initStart, "start", "", "program start date (YYYY-MM-DD, defaults to today)")
	initCmd.Flags().StringVar(&initName, "name", "", "program name")
	initCmd.Flags().BoolVar(&initForce, "force", false, "replace an existing program")
	rootCmd.AddCommand(initCmd)
}
