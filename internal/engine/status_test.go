// ABOUTME: Tests for day status rollover and the LOCKED mutation guard.
// ABOUTME: Locked days must absorb writes silently with no tree change.
package engine

import (
	"reflect"
	"testing"

	"github.com/harperreed/planner/internal/models"
)

func TestRolloverTransitions(t *testing.T) {
	tests := []struct {
		name  string
		from  models.DayStatus
		week  int
		day   int
		today int // days after program start
		want  models.DayStatus
	}{
		{"planned becomes active on its date", models.StatusPlanned, 0, 3, 3, models.StatusActive},
		{"planned stays planned before its date", models.StatusPlanned, 0, 3, 2, models.StatusPlanned},
		{"planned stays planned after its date", models.StatusPlanned, 0, 3, 4, models.StatusPlanned},
		{"completed locks when superseded", models.StatusCompleted, 0, 2, 3, models.StatusLocked},
		{"completed stays completed on its date", models.StatusCompleted, 0, 3, 3, models.StatusCompleted},
		{"stale active reverts to planned", models.StatusActive, 0, 1, 3, models.StatusPlanned},
		{"active stays active on its date", models.StatusActive, 0, 3, 3, models.StatusActive},
		{"locked stays locked", models.StatusLocked, 0, 0, 3, models.StatusLocked},
		{"second week rollover", models.StatusPlanned, 1, 0, 7, models.StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newTestState(t, models.FrameworkStrengthLinear)
			state.Day(tt.week, tt.day).Status = tt.from

			today := programStart.AddDate(0, 0, tt.today)
			got := Rollover(state, today)

			if status := got.Day(tt.week, tt.day).Status; status != tt.want {
				t.Errorf("status = %s, want %s", status, tt.want)
			}
			// Input tree is never modified.
			if state.Day(tt.week, tt.day).Status != tt.from {
				t.Error("Rollover mutated its input")
			}
		})
	}
}

func TestUpdateDay(t *testing.T) {
	state := newTestState(t, models.FrameworkStrengthLinear)

	got := UpdateDay(state, 0, 0, func(d *models.DayEntry) {
		d.SleepHours = 7.5
		d.Habits.Sleep = true
	})

	if got.Day(0, 0).SleepHours != 7.5 {
		t.Errorf("SleepHours = %v, want 7.5", got.Day(0, 0).SleepHours)
	}
	if state.Day(0, 0).SleepHours != 0 {
		t.Error("UpdateDay mutated its input")
	}
}

func TestUpdateDayLockedIsNoop(t *testing.T) {
	state := newTestState(t, models.FrameworkStrengthLinear)
	state.Day(0, 0).Status = models.StatusLocked

	got := UpdateDay(state, 0, 0, func(d *models.DayEntry) {
		d.SleepHours = 7.5
	})

	if got != state {
		t.Error("expected the identical state back for a locked day")
	}
	if !reflect.DeepEqual(got, state) {
		t.Error("locked-day update changed the tree")
	}
}

func TestUpdateExerciseLockedIsNoop(t *testing.T) {
	state := newTestState(t, models.FrameworkStrengthLinear)
	state.Day(0, 0).Status = models.StatusLocked

	got := UpdateExercise(state, 0, 0, 0, func(ex *models.Exercise) {
		ex.LoadKg = 999
	})

	if !reflect.DeepEqual(got, state) {
		t.Error("locked-day exercise update changed the tree")
	}
}

func TestUpdateExercise(t *testing.T) {
	state := newTestState(t, models.FrameworkStrengthLinear)

	got := UpdateExercise(state, 0, 0, 0, func(ex *models.Exercise) {
		ex.LoadKg = 100
		rpe := 8.0
		ex.ActualRPE = &rpe
	})

	if got.Day(0, 0).Training[0].LoadKg != 100 {
		t.Error("exercise update not applied")
	}
	if state.Day(0, 0).Training[0].LoadKg != 0 {
		t.Error("UpdateExercise mutated its input")
	}
}

func TestUpdateOutOfRangeIsNoop(t *testing.T) {
	state := newTestState(t, models.FrameworkStrengthLinear)

	if got := UpdateDay(state, 20, 0, func(d *models.DayEntry) { d.SleepHours = 1 }); got != state {
		t.Error("out-of-range week should return the state unchanged")
	}
	if got := UpdateDay(state, 0, 9, func(d *models.DayEntry) { d.SleepHours = 1 }); got != state {
		t.Error("out-of-range day should return the state unchanged")
	}
	if got := UpdateExercise(state, 0, 0, 99, func(ex *models.Exercise) { ex.LoadKg = 1 }); got != state {
		t.Error("out-of-range exercise should return the state unchanged")
	}
}
