// ABOUTME: CLI commands for core metrics, vision board, and progress photos.
// ABOUTME: Program-level context that lives outside the week/day tree.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harperreed/planner/internal/models"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage core metrics, vision board, and photos",
	Long: `Manage the profile attached to the program: core body measurements,
the vision board, and progress photos.

EXAMPLES:

  planner profile show
  planner profile set weight 82.5
  planner profile vision "Deadlift 200 kg" --content "By week 12"
  planner profile photo front.jpg --week 4`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}

		fmt.Println(color.New(color.Bold).Sprint("Core metrics"))
		m := state.CoreMetrics
		printMetric("height", m.HeightCm, "cm")
		printMetric("weight", m.WeightKg, "kg")
		printMetric("body_fat", m.BodyFat, "%")
		printMetric("chest", m.Chest, "cm")
		printMetric("waist", m.Waist, "cm")
		printMetric("arms", m.Arms, "cm")
		printMetric("legs", m.Legs, "cm")

		if len(state.VisionBoard) > 0 {
			fmt.Printf("\n%s\n", color.New(color.Bold).Sprint("Vision board"))
			for _, item := range state.VisionBoard {
				fmt.Printf("  %s", item.Title)
				if item.Content != "" {
					fmt.Printf(": %s", item.Content)
				}
				fmt.Println()
			}
		}

		if len(state.ProgressPhotos) > 0 {
			fmt.Printf("\n%s\n", color.New(color.Bold).Sprint("Progress photos"))
			for _, photo := range state.ProgressPhotos {
				fmt.Printf("  week %d  %s  %s\n", photo.Week, photo.Date.Format("2006-01-02"), photo.URL)
			}
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set <metric> <value>",
	Short: "Set a core metric",
	Long: `Set a core body measurement.

METRICS: height (cm), weight (kg), body_fat (%), chest, waist, arms, legs (cm)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		updated := state.Clone()
		switch args[0] {
		case "height":
			updated.CoreMetrics.HeightCm = &value
		case "weight":
			updated.CoreMetrics.WeightKg = &value
		case "body_fat":
			updated.CoreMetrics.BodyFat = &value
		case "chest":
			updated.CoreMetrics.Chest = &value
		case "waist":
			updated.CoreMetrics.Waist = &value
		case "arms":
			updated.CoreMetrics.Arms = &value
		case "legs":
			updated.CoreMetrics.Legs = &value
		default:
			return fmt.Errorf("unknown metric: %s (use height, weight, body_fat, chest, waist, arms, legs)", args[0])
		}
		if err := saveState(updated); err != nil {
			return err
		}
		color.Green("✓ Set %s to %.1f", args[0], value)
		return nil
	},
}

var visionContent string

var profileVisionCmd = &cobra.Command{
	Use:   "vision <title>",
	Short: "Add a vision board item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}

		updated := state.Clone()
		updated.VisionBoard = append(updated.VisionBoard, models.VisionBoardItem{
			ID:      uuid.New(),
			Title:   args[0],
			Content: visionContent,
		})
		if err := saveState(updated); err != nil {
			return err
		}
		color.Green("✓ Added to vision board: %s", args[0])
		return nil
	},
}

var (
	photoWeek  int
	photoNotes string
)

var profilePhotoCmd = &cobra.Command{
	Use:   "photo <url-or-path>",
	Short: "Record a progress photo reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requireState()
		if err != nil {
			return err
		}

		week := photoWeek
		if week == 0 {
			week = state.Cursor.WeekIndex + 1
		}
		updated := state.Clone()
		updated.ProgressPhotos = append(updated.ProgressPhotos, models.ProgressPhoto{
			ID:    uuid.New(),
			Date:  time.Now(),
			Week:  week,
			URL:   args[0],
			Notes: photoNotes,
		})
		if err := saveState(updated); err != nil {
			return err
		}
		color.Green("✓ Recorded progress photo for week %d", week)
		return nil
	},
}

func printMetric(name string, value *float64, unit string) {
	if value == nil {
		fmt.Printf("  %-10s -\n", name)
		return
	}
	fmt.Printf("  %-10s %.1f %s\n", name, *value, unit)
}

func init() {
	profileVisionCmd.Flags().StringVar(&visionContent, "content", "", "item description")
	profilePhotoCmd.Flags().IntVar(&photoWeek, "week", 0, "program week (defaults to cursor week)")
	profilePhotoCmd.Flags().StringVar(&photoNotes, "notes", "", "photo notes")
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileVisionCmd)
	profileCmd.AddCommand(profilePhotoCmd)
	rootCmd.AddCommand(profileCmd)
}
