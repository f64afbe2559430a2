// ABOUTME: Tests for SQLite persistence of the planner state tree.
// ABOUTME: Covers round-trips, empty-database loads, and overwrite semantics.
package storage

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/harperreed/planner/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testState(t *testing.T) *models.PlannerState {
	t.Helper()
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	state := models.NewPlannerState(models.FrameworkStrengthLinear, start)
	state.LastSavedAt = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	return state
}

func TestLoadStateEmpty(t *testing.T) {
	db := openTestDB(t)

	state, err := db.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if state != nil {
		t.Errorf("LoadState() on empty database = %+v, want nil", state)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	state := testState(t)

	// Populate optional fields so the round-trip exercises every column.
	rpe := 8.5
	reps := 5
	notes := "felt strong"
	day := state.Day(0, 0)
	day.Status = models.StatusCompleted
	day.SessionRPE = &rpe
	day.SleepHours = 7.5
	day.WaterIntake = 2.5
	day.StressLevel = 3
	day.Notes = &notes
	day.Habits = models.Habits{Sleep: true, Hydration: true}
	day.Training[0].ActualRPE = &rpe
	day.Training[0].ActualReps = &reps
	day.Training[0].Notes = &notes
	day.Training[0].LoadKg = 102.5

	state.Weeks[0].Objective = "rebuild base"
	state.Weeks[0].Review = &models.WeekReview{Wins: "consistency", NextWeek: "add volume"}
	state.Cursor = models.ProgramCursor{WeekIndex: 0, DayIndex: 1}
	weight := 82.0
	state.CoreMetrics.WeightKg = &weight
	state.ProgressPhotos = []models.ProgressPhoto{
		{ID: state.Weeks[0].ID, Date: state.Weeks[0].StartDate, Week: 1, URL: "file://p.jpg"},
	}

	if err := db.SaveState(state); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	loaded, err := db.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadState() = nil after save")
	}
	if !reflect.DeepEqual(state, loaded) {
		t.Errorf("round-trip mismatch\n got: %+v\nwant: %+v", loaded, state)
	}
}

func TestSaveStateOverwrites(t *testing.T) {
	db := openTestDB(t)
	state := testState(t)

	if err := db.SaveState(state); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	state.ProgramName = "Comeback Block"
	state.Cursor.WeekIndex = 3
	state.Day(1, 2).Training[0].LoadKg = 60
	if err := db.SaveState(state); err != nil {
		t.Fatalf("SaveState() second error = %v", err)
	}

	loaded, err := db.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if loaded.ProgramName != "Comeback Block" {
		t.Errorf("ProgramName = %q, want %q", loaded.ProgramName, "Comeback Block")
	}
	if loaded.Cursor.WeekIndex != 3 {
		t.Errorf("Cursor.WeekIndex = %d, want 3", loaded.Cursor.WeekIndex)
	}
	if got := loaded.Day(1, 2).Training[0].LoadKg; got != 60 {
		t.Errorf("exercise load = %v, want 60", got)
	}
	if len(loaded.Weeks) != models.ProgramWeeks {
		t.Errorf("weeks = %d, want %d", len(loaded.Weeks), models.ProgramWeeks)
	}
}

func TestSaveStatePreservesShape(t *testing.T) {
	db := openTestDB(t)
	state := testState(t)

	if err := db.SaveState(state); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}
	loaded, err := db.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}

	if len(loaded.Weeks) != models.ProgramWeeks {
		t.Fatalf("weeks = %d, want %d", len(loaded.Weeks), models.ProgramWeeks)
	}
	for wi, week := range loaded.Weeks {
		if len(week.Days) != models.DaysPerWeek {
			t.Fatalf("week %d days = %d, want %d", wi, len(week.Days), models.DaysPerWeek)
		}
		for di, day := range week.Days {
			if day.Status != models.StatusPlanned {
				t.Errorf("day %d/%d status = %s, want PLANNED", wi, di, day.Status)
			}
			if len(day.Training) == 0 {
				t.Errorf("day %d/%d has no prescribed training", wi, di)
			}
		}
	}
}
