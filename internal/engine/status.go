// ABOUTME: Day status rollover and the LOCKED-day mutation guard.
// ABOUTME: Pure state transforms; LOCKED days silently absorb all writes.
package engine

import (
	"time"

	"github.com/harperreed/planner/internal/models"
)

// Rollover applies the day-status transition table against today's date and
// returns the updated tree. It is invoked on every state load:
//
//	PLANNED   + date == today  -> ACTIVE
//	COMPLETED + date <  today  -> LOCKED  (a later day has superseded it)
//	ACTIVE    + date <  today  -> PLANNED (stale session, never completed)
//
// The input state is not modified.
func Rollover(state *models.PlannerState, today time.Time) *models.PlannerState {
	out := state.Clone()
	for w := range out.Weeks {
		for d := range out.Weeks[w].Days {
			day := &out.Weeks[w].Days[d]
			switch day.Status {
			case models.StatusPlanned:
				if sameDay(day.Date, today) {
					day.Status = models.StatusActive
				}
			case models.StatusCompleted:
				if dayBefore(day.Date, today) {
					day.Status = models.StatusLocked
				}
			case models.StatusActive:
				if dayBefore(day.Date, today) {
					day.Status = models.StatusPlanned
				}
			}
		}
	}
	return out
}

// UpdateDay applies fn to a copy of the addressed day and returns the new
// tree. Out-of-range indexes and LOCKED days return the state unchanged;
// neither is an error.
func UpdateDay(state *models.PlannerState, weekIndex, dayIndex int, fn func(*models.DayEntry)) *models.PlannerState {
	day := state.Day(weekIndex, dayIndex)
	if day == nil || !day.Mutable() {
		return state
	}
	out := state.Clone()
	fn(out.Day(weekIndex, dayIndex))
	return out
}

// UpdateExercise applies fn to a copy of one exercise within a day, under the
// same LOCKED guard as UpdateDay.
func UpdateExercise(state *models.PlannerState, weekIndex, dayIndex, exerciseIndex int, fn func(*models.Exercise)) *models.PlannerState {
	day := state.Day(weekIndex, dayIndex)
	if day == nil || !day.Mutable() {
		return state
	}
	if exerciseIndex < 0 || exerciseIndex >= len(day.Training) {
		return state
	}
	out := state.Clone()
	fn(&out.Day(weekIndex, dayIndex).Training[exerciseIndex])
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
