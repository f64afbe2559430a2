// ABOUTME: TrainingFramework enum and per-framework progression rules.
// ABOUTME: Rules are fixed lookup tables, selected once at onboarding.
package models

import "fmt"

// TrainingFramework selects the progression rule set for a program.
type TrainingFramework string

const (
	FrameworkStrengthLinear       TrainingFramework = "STRENGTH_LINEAR"
	FrameworkPowerlifting         TrainingFramework = "POWERLIFTING"
	FrameworkHypertrophy          TrainingFramework = "HYPERTROPHY"
	FrameworkStrengthConditioning TrainingFramework = "STRENGTH_CONDITIONING"
)

// AllFrameworks returns all valid training frameworks.
var AllFrameworks = []TrainingFramework{
	FrameworkStrengthLinear,
	FrameworkPowerlifting,
	FrameworkHypertrophy,
	FrameworkStrengthConditioning,
}

// ParseFramework validates a string as a TrainingFramework.
func ParseFramework(s string) (TrainingFramework, error) {
	for _, f := range AllFrameworks {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown framework: %q", s)
}

// RepRange is an inclusive prescription rep window.
type RepRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Movement is a named exercise template tied to a movement pattern.
type Movement struct {
	Name    string          `json:"name" yaml:"name"`
	Pattern MovementPattern `json:"pattern" yaml:"pattern"`
}

// FrameworkRules describes how a framework prescribes and progresses load.
type FrameworkRules struct {
	TargetRPE        float64    `json:"target_rpe" yaml:"target_rpe"`
	LoadIncrementKg  float64    `json:"load_increment_kg" yaml:"load_increment_kg"`
	RepRange         RepRange   `json:"rep_range" yaml:"rep_range"`
	DefaultMovements []Movement `json:"default_movements" yaml:"default_movements"`
}

// FrameworkConfigs maps each framework to its rules.
var FrameworkConfigs = map[TrainingFramework]FrameworkRules{
	FrameworkStrengthLinear: {
		TargetRPE:       8,
		LoadIncrementKg: 2.5,
		RepRange:        RepRange{Min: 5, Max: 5},
		DefaultMovements: []Movement{
			{Name: "Squat", Pattern: PatternSquat},
			{Name: "Bench Press", Pattern: PatternHorizontalPush},
			{Name: "Deadlift", Pattern: PatternHinge},
			{Name: "Overhead Press", Pattern: PatternVerticalPush},
		},
	},
	FrameworkPowerlifting: {
		TargetRPE:       9,
		LoadIncrementKg: 1,
		RepRange:        RepRange{Min: 1, Max: 3},
		DefaultMovements: []Movement{
			{Name: "Competition Squat", Pattern: PatternSquat},
			{Name: "Competition Bench", Pattern: PatternHorizontalPush},
			{Name: "Competition Deadlift", Pattern: PatternHinge},
			{Name: "Pause Squat", Pattern: PatternSquat},
		},
	},
	FrameworkHypertrophy: {
		TargetRPE:       8,
		LoadIncrementKg: 1,
		RepRange:        RepRange{Min: 8, Max: 12},
		DefaultMovements: []Movement{
			{Name: "Hack Squat", Pattern: PatternSquat},
			{Name: "Incline Press", Pattern: PatternHorizontalPush},
			{Name: "RDL", Pattern: PatternHinge},
			{Name: "Lat Pulldown", Pattern: PatternPull},
		},
	},
	FrameworkStrengthConditioning: {
		TargetRPE:       7,
		LoadIncrementKg: 2,
		RepRange:        RepRange{Min: 10, Max: 15},
		DefaultMovements: []Movement{
			{Name: "Goblet Squat", Pattern: PatternSquat},
			{Name: "Push Ups", Pattern: PatternHorizontalPush},
			{Name: "Kettlebell Swing", Pattern: PatternHinge},
			{Name: "Pull Ups", Pattern: PatternPull},
		},
	},
}

// Rules returns the progression rules for a framework.
func (f TrainingFramework) Rules() FrameworkRules {
	return FrameworkConfigs[f]
}
