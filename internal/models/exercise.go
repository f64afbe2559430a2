// ABOUTME: Exercise model and MovementPattern enum for prescribed work.
// ABOUTME: Actual* fields stay nil until the containing day is logged.
package models

import (
	"github.com/google/uuid"
)

// MovementPattern is the biomechanical category used to match equivalent
// exercises across sessions. Matching is always by pattern, never by name.
type MovementPattern string

const (
	PatternSquat          MovementPattern = "SQUAT"
	PatternHinge          MovementPattern = "HINGE"
	PatternHorizontalPush MovementPattern = "HORIZONTAL_PUSH"
	PatternVerticalPush   MovementPattern = "VERTICAL_PUSH"
	PatternPull           MovementPattern = "PULL"
	PatternCarryAccessory MovementPattern = "CARRY_ACCESSORY"
)

// AllMovementPatterns returns all valid movement patterns.
var AllMovementPatterns = []MovementPattern{
	PatternSquat, PatternHinge, PatternHorizontalPush,
	PatternVerticalPush, PatternPull, PatternCarryAccessory,
}

// IsValidMovementPattern checks if a string is a valid movement pattern.
func IsValidMovementPattern(s string) bool {
	for _, p := range AllMovementPatterns {
		if string(p) == s {
			return true
		}
	}
	return false
}

// Exercise is one prescribed unit of work within a day.
type Exercise struct {
	ID              uuid.UUID       `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	MovementPattern MovementPattern `json:"movement_pattern" yaml:"movement_pattern"`
	Sets            int             `json:"sets" yaml:"sets"`
	Reps            int             `json:"reps" yaml:"reps"`
	LoadKg          float64         `json:"load_kg" yaml:"load_kg"`
	TargetRPE       float64         `json:"target_rpe" yaml:"target_rpe"`
	ActualRPE       *float64        `json:"actual_rpe,omitempty" yaml:"actual_rpe,omitempty"`
	ActualReps      *int            `json:"actual_reps,omitempty" yaml:"actual_reps,omitempty"`
	ActualSets      *int            `json:"actual_sets,omitempty" yaml:"actual_sets,omitempty"`
	Notes           *string         `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewExercise creates a prescribed exercise with a generated UUID.
func NewExercise(name string, pattern MovementPattern, sets, reps int) *Exercise {
	return &Exercise{
		ID:              uuid.New(),
		Name:            name,
		MovementPattern: pattern,
		Sets:            sets,
		Reps:            reps,
	}
}

// WithLoad sets the prescribed load in kilograms.
func (e *Exercise) WithLoad(kg float64) *Exercise {
	e.LoadKg = kg
	return e
}

// WithTargetRPE sets the prescribed target RPE.
func (e *Exercise) WithTargetRPE(rpe float64) *Exercise {
	e.TargetRPE = rpe
	return e
}

// Logged reports whether this exercise has a performance log.
func (e *Exercise) Logged() bool {
	return e.ActualRPE != nil
}

// Clone returns a deep copy of the exercise.
func (e Exercise) Clone() Exercise {
	c := e
	if e.ActualRPE != nil {
		v := *e.ActualRPE
		c.ActualRPE = &v
	}
	if e.ActualReps != nil {
		v := *e.ActualReps
		c.ActualReps = &v
	}
	if e.ActualSets != nil {
		v := *e.ActualSets
		c.ActualSets = &v
	}
	if e.Notes != nil {
		v := *e.Notes
		c.Notes = &v
	}
	return c
}
