// ABOUTME: Tests for day key encoding and the remote merge rule.
// ABOUTME: Network-backed client paths are exercised manually, not here.
package charm

import (
	"testing"
	"time"

	"github.com/harperreed/planner/internal/models"
)

func TestDayKeyRoundTrip(t *testing.T) {
	tests := []struct {
		week, day int
		key       string
	}{
		{0, 0, "day:0:0"},
		{3, 6, "day:3:6"},
		{11, 6, "day:11:6"},
	}
	for _, tt := range tests {
		if got := DayKey(tt.week, tt.day); got != tt.key {
			t.Errorf("DayKey(%d, %d) = %q, want %q", tt.week, tt.day, got, tt.key)
		}
		w, d, err := ParseDayKey(tt.key)
		if err != nil {
			t.Errorf("ParseDayKey(%q) error = %v", tt.key, err)
		}
		if w != tt.week || d != tt.day {
			t.Errorf("ParseDayKey(%q) = (%d, %d), want (%d, %d)", tt.key, w, d, tt.week, tt.day)
		}
	}
}

func TestParseDayKeyMalformed(t *testing.T) {
	for _, key := range []string{"day:", "meta", "day:x:y", ""} {
		if _, _, err := ParseDayKey(key); err == nil {
			t.Errorf("ParseDayKey(%q) should error", key)
		}
	}
}

func TestMergeDay(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	rpe := 8.0

	newDay := func(status models.DayStatus) *models.DayEntry {
		d := models.NewDayEntry(date, nil)
		d.Status = status
		return d
	}

	tests := []struct {
		name        string
		local       models.DayStatus
		remote      models.DayStatus
		wantChanged bool
	}{
		{"remote completed over planned", models.StatusPlanned, models.StatusCompleted, true},
		{"remote locked over active", models.StatusActive, models.StatusLocked, true},
		{"remote planned ignored", models.StatusPlanned, models.StatusPlanned, false},
		{"local completed kept", models.StatusCompleted, models.StatusCompleted, false},
		{"local locked never changes", models.StatusLocked, models.StatusCompleted, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := newDay(tt.local)
			remote := newDay(tt.remote)
			remote.SessionRPE = &rpe

			changed := MergeDay(local, remote)
			if changed != tt.wantChanged {
				t.Fatalf("MergeDay() = %v, want %v", changed, tt.wantChanged)
			}
			if tt.wantChanged {
				if local.SessionRPE == nil || *local.SessionRPE != rpe {
					t.Error("merge should copy remote session RPE")
				}
				if local.Status != tt.remote {
					t.Errorf("merged status = %s, want %s", local.Status, tt.remote)
				}
			} else if local.Status != tt.local {
				t.Errorf("status changed to %s, want %s untouched", local.Status, tt.local)
			}
		})
	}
}
