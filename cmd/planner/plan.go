// ABOUTME: CLI commands for the week overview and overall program status.
// ABOUTME: Covers `planner plan` and `planner status`.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/models"
)

var planCmd = &cobra.Command{
	Use:     "plan [week]",
	Aliases: []string{"week", "w"},
	Short:   "Show a week of the program",
	Long: `Show one week of the program, defaulting to the cursor week.

EXAMPLES:

  planner plan       # Current week
  planner plan 5     # Week 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}

		wi := state.Cursor.WeekIndex
		if len(args) == 1 {
			w, err := strconv.Atoi(args[0])
			if err != nil || w < 1 || w > len(state.Weeks) {
				return fmt.Errorf("invalid week: %s (1-%d)", args[0], len(state.Weeks))
			}
			wi = w - 1
		}
		week := state.Weeks[wi]

		fmt.Printf("%s\n", color.New(color.Bold).Sprintf("Week %d of %d - starts %s",
			wi+1, len(state.Weeks), week.StartDate.Format("2006-01-02")))
		if week.Objective != "" {
			fmt.Printf("Objective: %s\n", week.Objective)
		}
		fmt.Println()

		for di, day := range week.Days {
			marker := "  "
			if wi == state.Cursor.WeekIndex && di == state.Cursor.DayIndex {
				marker = color.New(color.FgGreen).Sprint("> ")
			}
			line := fmt.Sprintf("%sDay %d  %s  %-9s", marker, di+1,
				day.Date.Format("Mon 01-02"), day.Status)
			for i, ex := range day.Training {
				if i > 0 {
					line += ","
				}
				line += fmt.Sprintf(" %s %.1fkg", ex.Name, ex.LoadKg)
			}
			fmt.Println(line)
		}

		if week.Review != nil {
			fmt.Println()
			if week.Review.Wins != "" {
				fmt.Printf("Wins: %s\n", week.Review.Wins)
			}
			if week.Review.Challenges != "" {
				fmt.Printf("Challenges: %s\n", week.Review.Challenges)
			}
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show program progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}

		completed, total := 0, 0
		for _, week := range state.Weeks {
			for _, day := range week.Days {
				total++
				if day.Status == models.StatusCompleted || day.Status == models.StatusLocked {
					completed++
				}
			}
		}

		fmt.Printf("%s (%s)\n", color.New(color.Bold).Sprint(state.ProgramName), state.Framework)
		fmt.Printf("Cursor: week %d, day %d\n", state.Cursor.WeekIndex+1, state.Cursor.DayIndex+1)
		fmt.Printf("Completed: %d of %d days\n", completed, total)
		if !state.LastSavedAt.IsZero() {
			fmt.Printf("Last saved: %s\n", state.LastSavedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statusCmd)
}
