// ABOUTME: Database schema definitions and initialization.
// ABOUTME: Creates the program, weeks, days, and exercises tables on first open.
package storage

import "fmt"

// initSchema creates all tables if they don't exist.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS program (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		program_name TEXT NOT NULL,
		framework TEXT NOT NULL,
		cursor_week INTEGER NOT NULL DEFAULT 0,
		cursor_day INTEGER NOT NULL DEFAULT 0,
		height_cm REAL,
		weight_kg REAL,
		body_fat REAL,
		chest REAL,
		waist REAL,
		arms REAL,
		legs REAL,
		last_saved_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS weeks (
		idx INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		start_date TEXT NOT NULL,
		objective TEXT NOT NULL DEFAULT '',
		review_wins TEXT,
		review_challenges TEXT,
		review_adjustments TEXT,
		review_next_week TEXT
	);

	CREATE TABLE IF NOT EXISTS days (
		week_idx INTEGER NOT NULL,
		day_idx INTEGER NOT NULL,
		id TEXT NOT NULL,
		date TEXT NOT NULL,
		status TEXT NOT NULL,
		session_rpe REAL,
		sleep_hours REAL NOT NULL DEFAULT 0,
		water_intake REAL NOT NULL DEFAULT 0,
		stress_level INTEGER NOT NULL DEFAULT 5,
		notes TEXT,
		habit_sleep INTEGER NOT NULL DEFAULT 0,
		habit_nutrition INTEGER NOT NULL DEFAULT 0,
		habit_hydration INTEGER NOT NULL DEFAULT 0,
		habit_mobility INTEGER NOT NULL DEFAULT 0,
		habit_mindfulness INTEGER NOT NULL DEFAULT 0,
		habit_recovery INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (week_idx, day_idx),
		FOREIGN KEY (week_idx) REFERENCES weeks(idx) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		week_idx INTEGER NOT NULL,
		day_idx INTEGER NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		movement_pattern TEXT NOT NULL,
		sets INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		load_kg REAL NOT NULL,
		target_rpe REAL NOT NULL,
		actual_rpe REAL,
		actual_reps INTEGER,
		actual_sets INTEGER,
		notes TEXT,
		FOREIGN KEY (week_idx, day_idx) REFERENCES days(week_idx, day_idx) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_exercises_day ON exercises(week_idx, day_idx, position);

	CREATE TABLE IF NOT EXISTS vision_board (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS progress_photos (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		week INTEGER NOT NULL,
		url TEXT,
		notes TEXT
	);
	`

	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
