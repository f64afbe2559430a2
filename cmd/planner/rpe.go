// ABOUTME: CLI command for estimating 1RM from a logged set.
// ABOUTME: Epley formula with RPE converted to reps in reserve.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// epleyFactor converts total effective reps into the Epley 1RM multiplier.
const epleyFactor = 0.0333

var rpeCmd = &cobra.Command{
	Use:   "rpe <weight> <reps> [rpe]",
	Short: "Estimate 1RM from a set",
	Long: `Estimate a one-rep max from a logged set using the Epley formula,
with RPE converted to reps in reserve.

Omitting the RPE treats the set as maximal (RPE 10).

EXAMPLES:

  planner rpe 100 5        # 100 kg x 5 at max effort
  planner rpe 100 5 8      # Same set at RPE 8 (2 reps in reserve)`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil || weight <= 0 {
			return fmt.Errorf("invalid weight: %s", args[0])
		}
		reps, err := strconv.Atoi(args[1])
		if err != nil || reps < 1 {
			return fmt.Errorf("invalid reps: %s", args[1])
		}
		rpe := 10.0
		if len(args) == 3 {
			rpe, err = strconv.ParseFloat(args[2], 64)
			if err != nil || rpe < 1 || rpe > 10 {
				return fmt.Errorf("invalid RPE: %s (use 1-10)", args[2])
			}
		}

		oneRM := estimateOneRM(weight, reps, rpe)
		color.New(color.Bold).Printf("Estimated 1RM: %.1f kg\n\n", oneRM)

		fmt.Println("Rep maxes:")
		for r := 1; r <= 10; r++ {
			fmt.Printf("  %2d reps  %6.1f kg\n", r, repMax(oneRM, r))
		}
		return nil
	},
}

// estimateOneRM applies Epley with RPE folded in as reps in reserve:
// a 5-rep set at RPE 8 counts as 7 effective reps.
func estimateOneRM(weight float64, reps int, rpe float64) float64 {
	rir := 10 - rpe
	effective := float64(reps) + rir
	return weight * (1 + effective*epleyFactor)
}

// repMax inverts Epley: the load for r reps at max effort.
func repMax(oneRM float64, reps int) float64 {
	return oneRM / (1 + float64(reps)*epleyFactor)
}

func init() {
	rootCmd.AddCommand(rpeCmd)
}
