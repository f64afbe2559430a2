// ABOUTME: Tests for cursor advancement and the complete-session operation.
// ABOUTME: The cursor advances once per completion and never overflows.
package engine

import (
	"testing"

	"github.com/harperreed/planner/internal/models"
)

func TestAdvanceCursor(t *testing.T) {
	tests := []struct {
		name string
		in   models.ProgramCursor
		want models.ProgramCursor
	}{
		{"mid week", models.ProgramCursor{WeekIndex: 0, DayIndex: 2}, models.ProgramCursor{WeekIndex: 0, DayIndex: 3}},
		{"week wrap", models.ProgramCursor{WeekIndex: 0, DayIndex: 6}, models.ProgramCursor{WeekIndex: 1, DayIndex: 0}},
		{"last day stays put", models.ProgramCursor{WeekIndex: 11, DayIndex: 6}, models.ProgramCursor{WeekIndex: 11, DayIndex: 6}},
		{"last week mid", models.ProgramCursor{WeekIndex: 11, DayIndex: 5}, models.ProgramCursor{WeekIndex: 11, DayIndex: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdvanceCursor(tt.in); got != tt.want {
				t.Errorf("AdvanceCursor(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompleteDayAdvancesCursor(t *testing.T) {
	state := newTestState(t, models.FrameworkStrengthLinear)
	logExercise(t, state, 0, 0, models.PatternSquat, 100, 8)

	got := CompleteDay(state, 0, 0, Strategy{})

	if got.Day(0, 0).Status != models.StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", got.Day(0, 0).Status)
	}
	want := models.ProgramCursor{WeekIndex: 0, DayIndex: 1}
	if got.Cursor != want {
		t.Errorf("cursor = %+v, want %+v", got.Cursor, want)
	}
	if state.Day(0, 0).Status != models.StatusPlanned {
		t.Error("CompleteDay mutated its input")
	}
}

func TestCompleteDayIdempotent(t *testing.T) {
	state := newTestState(t, models.FrameworkStrengthLinear)
	logExercise(t, state, 0, 0, models.PatternSquat, 100, 8)

	once := CompleteDay(state, 0, 0, Strategy{})
	twice := CompleteDay(once, 0, 0, Strategy{})

	// Re-saving an already-completed day must not advance the cursor again.
	if twice != once {
		t.Error("completing a completed day should return the state unchanged")
	}
}

func TestCompleteDayLastDayOfProgram(t *testing.T) {
	state := newTestState(t, models.FrameworkStrengthLinear)
	state.Cursor = models.ProgramCursor{WeekIndex: 11, DayIndex: 6}
	logExercise(t, state, 11, 6, models.PatternSquat, 100, 8)

	got := CompleteDay(state, 11, 6, Strategy{})

	want := models.ProgramCursor{WeekIndex: 11, DayIndex: 6}
	if got.Cursor != want {
		t.Errorf("cursor = %+v, want clamped at %+v", got.Cursor, want)
	}
	if got.Day(11, 6).Status != models.StatusCompleted {
		t.Error("last day should still complete")
	}
}

func TestCompleteDayLockedIsNoop(t *testing.T) {
	state := newTestState(t, models.FrameworkStrengthLinear)
	state.Day(0, 0).Status = models.StatusLocked

	if got := CompleteDay(state, 0, 0, Strategy{}); got != state {
		t.Error("completing a locked day should return the state unchanged")
	}
}

func TestCompleteDayOutOfRangeIsNoop(t *testing.T) {
	state := newTestState(t, models.FrameworkStrengthLinear)

	if got := CompleteDay(state, 12, 0, Strategy{}); got != state {
		t.Error("out-of-range completion should return the state unchanged")
	}
}
