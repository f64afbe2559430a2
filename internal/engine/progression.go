// ABOUTME: Load progression calculator driven by RPE zones and session history.
// ABOUTME: Total and deterministic; every undefined input degrades to "hold".
package engine

import (
	"math"
	"time"

	"github.com/harperreed/planner/internal/models"
)

// ProgressionModel selects how aggressively load moves between sessions.
type ProgressionModel string

const (
	ModelPowerlifting ProgressionModel = "powerlifting"
	ModelHypertrophy  ProgressionModel = "hypertrophy"
	ModelDefault      ProgressionModel = "default"
)

// ModelForFramework maps a training framework onto its progression model.
func ModelForFramework(f models.TrainingFramework) ProgressionModel {
	switch f {
	case models.FrameworkPowerlifting:
		return ModelPowerlifting
	case models.FrameworkHypertrophy:
		return ModelHypertrophy
	default:
		return ModelDefault
	}
}

// RecentSession is one prior completed session for a movement pattern,
// reduced to the only signal the calculator needs.
type RecentSession struct {
	Date time.Time
	RPE  float64
}

const (
	maxLoadKg = 500

	// Fixed kilogram step for powerlifting and the default model.
	flatStepKg = 2.5

	// Hypertrophy percentage steps: +2.5% is the midpoint of the 2-3%
	// band, -4% the midpoint of the 3-5% band.
	pctStepUp   = 0.025
	pctStepDown = 0.04

	// Reduction applied after two consecutive slight overshoots.
	overshootCut = 0.025
)

// RPE zone boundaries. Zones are contiguous and non-overlapping; the first
// match wins when evaluated top to bottom.
type rpeZone int

const (
	zoneEasy       rpeZone = iota // rpe <= 7
	zoneOptimal                   // 7 < rpe <= 8.5
	zoneSlightOver                // 8.5 < rpe < 9.5
	zoneClearOver                 // rpe >= 9.5
)

func zoneFor(rpe float64) rpeZone {
	switch {
	case rpe <= 7:
		return zoneEasy
	case rpe <= 8.5:
		return zoneOptimal
	case rpe < 9.5:
		return zoneSlightOver
	default:
		return zoneClearOver
	}
}

// NextWeight computes the next prescribed load for a movement pattern.
//
// history holds the prior completed sessions for the same pattern in
// chronological order, newest last. The achieved session being evaluated is
// described by achievedReps and actualRPE; it is not part of history.
//
// The function never errors: a missing RPE, an empty history, or a
// non-positive current weight all return currentKg unchanged.
func NextWeight(currentKg float64, achievedReps int, repRange models.RepRange, actualRPE float64, model ProgressionModel, history []RecentSession) float64 {
	if actualRPE <= 0 {
		return currentKg
	}
	if len(history) == 0 {
		return currentKg
	}
	if currentKg <= 0 {
		return currentKg
	}

	switch zoneFor(actualRPE) {
	case zoneEasy:
		return clampRound(increase(currentKg, model))

	case zoneOptimal:
		// Topping out the rep range at moderate effort is itself
		// evidence of sub-maximal difficulty.
		if achievedReps >= repRange.Max && actualRPE <= 8 {
			return clampRound(increase(currentKg, model))
		}
		return currentKg

	case zoneSlightOver:
		// A single high reading is noise; two prior sessions in the
		// same band plus this one is a trend.
		if overshootStreak(history) {
			return clampRound(currentKg * (1 - overshootCut))
		}
		return currentKg

	default: // zoneClearOver
		return clampRound(decrease(currentKg, model))
	}
}

func increase(kg float64, model ProgressionModel) float64 {
	if model == ModelHypertrophy {
		return kg * (1 + pctStepUp)
	}
	return kg + flatStepKg
}

func decrease(kg float64, model ProgressionModel) float64 {
	if model == ModelHypertrophy {
		return kg * (1 - pctStepDown)
	}
	return kg - flatStepKg
}

// overshootStreak reports whether the two most recent history entries both
// fall in the slight-overshoot band. Fewer than two entries can never
// form a streak.
func overshootStreak(history []RecentSession) bool {
	if len(history) < 2 {
		return false
	}
	last := history[len(history)-1]
	prev := history[len(history)-2]
	return zoneFor(last.RPE) == zoneSlightOver && zoneFor(prev.RPE) == zoneSlightOver
}

func clampRound(kg float64) float64 {
	if kg < 0 {
		kg = 0
	}
	if kg > maxLoadKg {
		kg = maxLoadKg
	}
	return math.Round(kg*100) / 100
}

// Prescription is the adapted output for a future exercise.
type Prescription struct {
	LoadKg float64
	Reps   int
}

// Strategy tunes optional adaptation behavior.
type Strategy struct {
	// AdvanceReps advances reps within the rep range when the load itself
	// holds in the optimal zone. Load-only adaptation is the default.
	AdvanceReps bool
}

// NextPrescription wraps NextWeight with the optional rep-advancement
// strategy. currentReps is the future session's prescribed rep count.
func NextPrescription(currentKg float64, currentReps, achievedReps int, repRange models.RepRange, actualRPE float64, model ProgressionModel, history []RecentSession, strategy Strategy) Prescription {
	next := NextWeight(currentKg, achievedReps, repRange, actualRPE, model, history)
	p := Prescription{LoadKg: next, Reps: currentReps}

	if strategy.AdvanceReps && next == currentKg && actualRPE > 0 && len(history) > 0 &&
		zoneFor(actualRPE) == zoneOptimal && currentReps < repRange.Max {
		p.Reps = currentReps + 1
	}
	return p
}
