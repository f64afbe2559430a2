// ABOUTME: Tests for backend migration and the legacy Badger store.
// ABOUTME: Verifies Badger round-trips and full Badger-to-SQLite migration.
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/planner/internal/models"
)

func openTestLegacy(t *testing.T) *LegacyStore {
	t.Helper()
	store, err := OpenLegacy(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("OpenLegacy() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLegacyStoreRoundTrip(t *testing.T) {
	store := openTestLegacy(t)

	state, err := store.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if state != nil {
		t.Errorf("LoadState() on empty store = %+v, want nil", state)
	}

	saved := testState(t)
	saved.ProgramName = "Legacy Program"
	if err := store.SaveState(saved); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	loaded, err := store.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if loaded == nil || loaded.ProgramName != "Legacy Program" {
		t.Errorf("loaded = %+v, want Legacy Program", loaded)
	}
	if len(loaded.Weeks) != models.ProgramWeeks {
		t.Errorf("weeks = %d, want %d", len(loaded.Weeks), models.ProgramWeeks)
	}
}

func TestMigrateData(t *testing.T) {
	src := openTestLegacy(t)
	dst := openTestDB(t)

	state := testState(t)
	state.ProgramName = "Migrated"
	if err := src.SaveState(state); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	summary, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("MigrateData() error = %v", err)
	}
	if summary.Weeks != models.ProgramWeeks {
		t.Errorf("summary.Weeks = %d, want %d", summary.Weeks, models.ProgramWeeks)
	}
	if summary.Days != models.ProgramWeeks*models.DaysPerWeek {
		t.Errorf("summary.Days = %d, want %d", summary.Days, models.ProgramWeeks*models.DaysPerWeek)
	}
	if summary.Exercises == 0 {
		t.Error("summary.Exercises = 0, want default prescriptions counted")
	}

	loaded, err := dst.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if loaded == nil || loaded.ProgramName != "Migrated" {
		t.Errorf("destination program = %+v, want Migrated", loaded)
	}
}

func TestMigrateDataEmptySource(t *testing.T) {
	src := openTestLegacy(t)
	dst := openTestDB(t)

	if _, err := MigrateData(src, dst); err == nil {
		t.Error("MigrateData() with empty source should error")
	}
}

func TestIsDirNonEmpty(t *testing.T) {
	dir := t.TempDir()

	nonEmpty, err := IsDirNonEmpty(dir)
	if err != nil {
		t.Fatalf("IsDirNonEmpty() error = %v", err)
	}
	if nonEmpty {
		t.Error("empty directory reported non-empty")
	}

	nonEmpty, err = IsDirNonEmpty(filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatalf("IsDirNonEmpty() missing dir error = %v", err)
	}
	if nonEmpty {
		t.Error("missing directory reported non-empty")
	}

	if err := os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	nonEmpty, err = IsDirNonEmpty(dir)
	if err != nil {
		t.Fatalf("IsDirNonEmpty() error = %v", err)
	}
	if !nonEmpty {
		t.Error("directory with file reported empty")
	}
}
