// ABOUTME: CLI commands for week objectives and retrospectives.
// ABOUTME: Free-text context stored on the week, outside the progression engine.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/models"
)

var (
	reviewWins        string
	reviewChallenges  string
	reviewAdjustments string
	reviewNextWeek    string
)

var objectiveCmd = &cobra.Command{
	Use:   "objective <text> [--week N]",
	Short: "Set a week's objective",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}
		wi, err := resolveWeekFlag(state, cmd)
		if err != nil {
			return err
		}

		updated := state.Clone()
		updated.Weeks[wi].Objective = strings.Join(args, " ")
		if err := saveState(updated); err != nil {
			return err
		}
		color.Green("✓ Set objective for week %d", wi+1)
		return nil
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review [--week N]",
	Short: "Record a week retrospective",
	Long: `Record a retrospective on a week. Only the provided fields change;
run it again to fill in the rest.

EXAMPLE:

  planner review --week 3 --wins "All sessions done" --adjustments "Deload squat"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}
		wi, err := resolveWeekFlag(state, cmd)
		if err != nil {
			return err
		}
		if reviewWins == "" && reviewChallenges == "" && reviewAdjustments == "" && reviewNextWeek == "" {
			return fmt.Errorf("nothing to record; pass --wins, --challenges, --adjustments, or --next")
		}

		updated := state.Clone()
		week := &updated.Weeks[wi]
		if week.Review == nil {
			week.Review = &models.WeekReview{}
		}
		if reviewWins != "" {
			week.Review.Wins = reviewWins
		}
		if reviewChallenges != "" {
			week.Review.Challenges = reviewChallenges
		}
		if reviewAdjustments != "" {
			week.Review.Adjustments = reviewAdjustments
		}
		if reviewNextWeek != "" {
			week.Review.NextWeek = reviewNextWeek
		}
		if err := saveState(updated); err != nil {
			return err
		}
		color.Green("✓ Recorded review for week %d", wi+1)
		return nil
	},
}

func resolveWeekFlag(state *models.PlannerState, cmd *cobra.Command) (int, error) {
	raw, _ := cmd.Flags().GetString("week")
	if raw == "" {
		return state.Cursor.WeekIndex, nil
	}
	w, err := strconv.Atoi(raw)
	if err != nil || w < 1 || w > len(state.Weeks) {
		return 0, fmt.Errorf("invalid week: %s (1-%d)", raw, len(state.Weeks))
	}
	return w - 1, nil
}

func init() {
	objectiveCmd.Flags().String("week", "", "week number (defaults to cursor week)")
	reviewCmd.Flags().String("week", "", "week number (defaults to cursor week)")
	reviewCmd.Flags().StringVar(&reviewWins, "wins", "", "what went well")
	reviewCmd.Flags().StringVar(&reviewChallenges, "challenges", "", "what was hard")
	reviewCmd.Flags().StringVar(&reviewAdjustments, "adjustments", "", "what to change")
	reviewCmd.Flags().StringVar(&reviewNextWeek, "next", "", "focus for next week")
	rootCmd.AddCommand(objectiveCmd)
	rootCmd.AddCommand(reviewCmd)
}
