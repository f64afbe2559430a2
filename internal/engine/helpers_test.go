// ABOUTME: Shared test fixtures for engine tests.
// ABOUTME: Builds deterministic program trees and logs sessions into them.
package engine

import (
	"testing"
	"time"

	"github.com/harperreed/planner/internal/models"
)

// programStart is a fixed Monday so rollover tests are reproducible.
var programStart = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func newTestState(t *testing.T, framework models.TrainingFramework) *models.PlannerState {
	t.Helper()
	return models.NewPlannerState(framework, programStart)
}

// logExercise records a performance against the first exercise matching the
// pattern on the given day, bypassing the engine's guards.
func logExercise(t *testing.T, state *models.PlannerState, w, d int, pattern models.MovementPattern, loadKg, rpe float64) {
	t.Helper()
	day := state.Day(w, d)
	if day == nil {
		t.Fatalf("no day at (%d,%d)", w, d)
	}
	for i := range day.Training {
		if day.Training[i].MovementPattern == pattern {
			day.Training[i].LoadKg = loadKg
			r := rpe
			day.Training[i].ActualRPE = &r
			return
		}
	}
	t.Fatalf("no %s exercise on day (%d,%d)", pattern, w, d)
}

// completePrior marks a day COMPLETED with a logged pattern performance,
// simulating history that predates the session under test.
func completePrior(t *testing.T, state *models.PlannerState, w, d int, pattern models.MovementPattern, loadKg, rpe float64) {
	t.Helper()
	logExercise(t, state, w, d, pattern, loadKg, rpe)
	state.Day(w, d).Status = models.StatusCompleted
}

func loadOf(t *testing.T, state *models.PlannerState, w, d int, pattern models.MovementPattern) float64 {
	t.Helper()
	day := state.Day(w, d)
	if day == nil {
		t.Fatalf("no day at (%d,%d)", w, d)
	}
	for i := range day.Training {
		if day.Training[i].MovementPattern == pattern {
			return day.Training[i].LoadKg
		}
	}
	t.Fatalf("no %s exercise on day (%d,%d)", pattern, w, d)
	return 0
}
