// ABOUTME: Program cursor advancement and the atomic complete-session op.
// ABOUTME: The cursor moves forward exactly once per completion event.
package engine

import (
	"github.com/harperreed/planner/internal/models"
)

// AdvanceCursor moves the cursor forward one day, wrapping into the next
// week. At the end of the program the cursor stays on the last valid day.
func AdvanceCursor(c models.ProgramCursor) models.ProgramCursor {
	next := c
	next.DayIndex++
	if next.DayIndex >= models.DaysPerWeek {
		next.DayIndex = 0
		next.WeekIndex++
	}
	if next.WeekIndex >= models.ProgramWeeks {
		return c
	}
	return next
}

// CompleteDay finalizes the session at (weekIndex, dayIndex): it marks the
// day COMPLETED, projects the adaptation into future sessions, and advances
// the cursor. The three steps form one logical transition and are never
// invoked separately.
//
// A day that is already COMPLETED or LOCKED is left alone: re-saving
// finished work must not advance the cursor or re-project. Returns a new
// tree; the input is not modified.
func CompleteDay(state *models.PlannerState, weekIndex, dayIndex int, strategy Strategy) *models.PlannerState {
	day := state.Day(weekIndex, dayIndex)
	if day == nil {
		return state
	}
	if day.Status == models.StatusCompleted || day.Status == models.StatusLocked {
		return state
	}

	out := state.Clone()
	out.Day(weekIndex, dayIndex).Status = models.StatusCompleted
	out = ProjectFutureSessions(out, weekIndex, dayIndex, strategy)
	out.Cursor = AdvanceCursor(out.Cursor)
	return out
}
