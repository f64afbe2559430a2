// ABOUTME: CLI command for AI coach feedback on a logged day.
// ABOUTME: Responses cache by prompt hash under the data directory.
package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/coach"
)

var coachNoCache bool

var coachCmd = &cobra.Command{
	Use:   "coach [week] [day]",
	Short: "Get coach feedback on a logged day",
	Long: `Get AI coach feedback on a logged training day.

Requires a Groq API key in GROQ_API_KEY or the config file. Responses are
cached by content, so re-running on an unchanged day costs nothing.

EXAMPLES:

  planner coach          # The cursor day
  planner coach 2 3      # Week 2, day 3
  planner coach --no-cache`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}
		if cfg.GroqAPIKey == "" {
			return fmt.Errorf("no API key; set GROQ_API_KEY or groq_api_key in the config file")
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

		var cache coach.Cache
		if !coachNoCache {
			cache, err = coach.NewFileCache(filepath.Join(cfg.GetDataDir(), "coach-cache"))
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
		}

		c := coach.New(coach.NewClient(cfg.GroqAPIKey, cfg.CoachModel), cache)
		reply, err := c.Feedback(cmd.Context(), state, wi, di)
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	},
}

func init() {
	coachCmd.Flags().BoolVar(&coachNoCache, "no-cache", false, "skip the response cache")
	rootCmd.AddCommand(coachCmd)
}
