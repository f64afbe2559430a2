// ABOUTME: Future-session projector: rewrites upcoming prescriptions after a
// ABOUTME: completed session, matching exercises by movement pattern only.
package engine

import (
	"github.com/harperreed/planner/internal/models"
)

// ProjectionHorizon is the fixed number of future days adapted per
// completion event. Recomputing the whole remaining program would cascade
// stale projections before those sessions are ever performed.
const ProjectionHorizon = 2

// ProjectFutureSessions recomputes prescribed loads in the next eligible
// future days after the completed day at (weekIndex, dayIndex).
//
// The walk is chronological, skips COMPLETED and LOCKED days, matches
// exercises by movement pattern, and stops once ProjectionHorizon days have
// been updated or the program ends. Reps and sets of future prescriptions
// are untouched unless strategy.AdvanceReps is set. Returns a new tree; the
// input is not modified.
func ProjectFutureSessions(state *models.PlannerState, weekIndex, dayIndex int, strategy Strategy) *models.PlannerState {
	completed := state.Day(weekIndex, dayIndex)
	if completed == nil || len(completed.Training) == 0 {
		return state
	}

	model := ModelForFramework(state.Framework)
	repRange := state.Framework.Rules().RepRange

	out := state.Clone()
	updated := 0
	for w := weekIndex; w < len(out.Weeks) && updated < ProjectionHorizon; w++ {
		startDay := 0
		if w == weekIndex {
			startDay = dayIndex + 1
		}
		for d := startDay; d < len(out.Weeks[w].Days) && updated < ProjectionHorizon; d++ {
			day := &out.Weeks[w].Days[d]
			if day.Status == models.StatusCompleted || day.Status == models.StatusLocked {
				continue
			}

			for i := range day.Training {
				future := &day.Training[i]
				source := findByPattern(completed.Training, future.MovementPattern)
				if source == nil {
					continue
				}
				rpe := achievedRPE(source, completed)
				if rpe <= 0 || source.LoadKg <= 0 {
					// No signal from the completed session; the
					// future prescription stands as written.
					continue
				}

				history := PatternHistory(state, future.MovementPattern, weekIndex, dayIndex)
				p := NextPrescription(
					source.LoadKg,
					future.Reps,
					achievedReps(source),
					repRange,
					rpe,
					model,
					history,
					strategy,
				)
				future.LoadKg = p.LoadKg
				future.Reps = p.Reps
			}
			updated++
		}
	}
	return out
}

// PatternHistory collects every logged session for a movement pattern up to
// and including the day at (weekIndex, dayIndex), in chronological order.
// Days that were completed and later locked still count as history.
func PatternHistory(state *models.PlannerState, pattern models.MovementPattern, weekIndex, dayIndex int) []RecentSession {
	var history []RecentSession
	for w := 0; w <= weekIndex && w < len(state.Weeks); w++ {
		lastDay := len(state.Weeks[w].Days) - 1
		if w == weekIndex {
			lastDay = dayIndex
		}
		for d := 0; d <= lastDay && d < len(state.Weeks[w].Days); d++ {
			day := &state.Weeks[w].Days[d]
			if day.Status != models.StatusCompleted && day.Status != models.StatusLocked {
				continue
			}
			ex := findByPattern(day.Training, pattern)
			if ex == nil {
				continue
			}
			rpe := achievedRPE(ex, day)
			if rpe <= 0 {
				continue
			}
			history = append(history, RecentSession{Date: day.Date, RPE: rpe})
		}
	}
	return history
}

// findByPattern returns the first exercise matching the pattern, or nil.
// Multiple future exercises may share a pattern; each is recalculated
// against the same completed-day source.
func findByPattern(training []models.Exercise, pattern models.MovementPattern) *models.Exercise {
	for i := range training {
		if training[i].MovementPattern == pattern {
			return &training[i]
		}
	}
	return nil
}

// achievedRPE prefers the exercise-level log and falls back to the
// session-level RPE when the exercise was not logged individually.
func achievedRPE(ex *models.Exercise, day *models.DayEntry) float64 {
	if ex.ActualRPE != nil {
		return *ex.ActualRPE
	}
	if day.SessionRPE != nil {
		return *day.SessionRPE
	}
	return 0
}

// achievedReps falls back to the prescription when reps were not logged.
func achievedReps(ex *models.Exercise) int {
	if ex.ActualReps != nil {
		return *ex.ActualReps
	}
	return ex.Reps
}
