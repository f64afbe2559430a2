// ABOUTME: SaveState and LoadState map the PlannerState tree to SQLite rows.
// ABOUTME: Saves are full rewrites inside one transaction; the tree is small.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/planner/internal/models"
)

const timeLayout = time.RFC3339

// SaveState persists the full state tree, replacing any previous snapshot.
func (d *DB) SaveState(state *models.PlannerState) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"exercises", "days", "weeks", "program", "vision_board", "progress_photos"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	m := state.CoreMetrics
	_, err = tx.Exec(`
		INSERT INTO program (id, program_name, framework, cursor_week, cursor_day,
			height_cm, weight_kg, body_fat, chest, waist, arms, legs, last_saved_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		state.ProgramName, string(state.Framework),
		state.Cursor.WeekIndex, state.Cursor.DayIndex,
		m.HeightCm, m.WeightKg, m.BodyFat, m.Chest, m.Waist, m.Arms, m.Legs,
		state.LastSavedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("insert program: %w", err)
	}

	for wi, week := range state.Weeks {
		if err := insertWeek(tx, wi, week); err != nil {
			return err
		}
		for di, day := range week.Days {
			if err := insertDay(tx, wi, di, day); err != nil {
				return err
			}
		}
	}

	for pos, item := range state.VisionBoard {
		_, err := tx.Exec(`INSERT INTO vision_board (position, id, title, content) VALUES (?, ?, ?, ?)`,
			pos, item.ID.String(), item.Title, item.Content)
		if err != nil {
			return fmt.Errorf("insert vision board item: %w", err)
		}
	}

	for _, photo := range state.ProgressPhotos {
		_, err := tx.Exec(`INSERT INTO progress_photos (id, date, week, url, notes) VALUES (?, ?, ?, ?, ?)`,
			photo.ID.String(), photo.Date.Format(timeLayout), photo.Week,
			nullString(photo.URL), nullString(photo.Notes))
		if err != nil {
			return fmt.Errorf("insert progress photo: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertWeek(tx *sql.Tx, idx int, week models.Week) error {
	var wins, challenges, adjustments, nextWeek *string
	if week.Review != nil {
		wins = &week.Review.Wins
		challenges = &week.Review.Challenges
		adjustments = &week.Review.Adjustments
		nextWeek = &week.Review.NextWeek
	}
	_, err := tx.Exec(`
		INSERT INTO weeks (idx, id, start_date, objective,
			review_wins, review_challenges, review_adjustments, review_next_week)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		idx, week.ID.String(), week.StartDate.Format(timeLayout), week.Objective,
		wins, challenges, adjustments, nextWeek)
	if err != nil {
		return fmt.Errorf("insert week %d: %w", idx, err)
	}
	return nil
}

func insertDay(tx *sql.Tx, weekIdx, dayIdx int, day models.DayEntry) error {
	_, err := tx.Exec(`
		INSERT INTO days (week_idx, day_idx, id, date, status, session_rpe,
			sleep_hours, water_intake, stress_level, notes,
			habit_sleep, habit_nutrition, habit_hydration,
			habit_mobility, habit_mindfulness, habit_recovery)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		weekIdx, dayIdx, day.ID.String(), day.Date.Format(timeLayout),
		string(day.Status), day.SessionRPE,
		day.SleepHours, day.WaterIntake, day.StressLevel, day.Notes,
		boolToInt(day.Habits.Sleep), boolToInt(day.Habits.Nutrition),
		boolToInt(day.Habits.Hydration), boolToInt(day.Habits.Mobility),
		boolToInt(day.Habits.Mindfulness), boolToInt(day.Habits.Recovery))
	if err != nil {
		return fmt.Errorf("insert day %d/%d: %w", weekIdx, dayIdx, err)
	}

	for pos, ex := range day.Training {
		_, err := tx.Exec(`
			INSERT INTO exercises (id, week_idx, day_idx, position, name, movement_pattern,
				sets, reps, load_kg, target_rpe, actual_rpe, actual_reps, actual_sets, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ex.ID.String(), weekIdx, dayIdx, pos, ex.Name, string(ex.MovementPattern),
			ex.Sets, ex.Reps, ex.LoadKg, ex.TargetRPE,
			ex.ActualRPE, ex.ActualReps, ex.ActualSets, ex.Notes)
		if err != nil {
			return fmt.Errorf("insert exercise %s: %w", ex.Name, err)
		}
	}
	return nil
}

// LoadState reads the full state tree. Returns (nil, nil) when no program
// has been initialized yet.
func (d *DB) LoadState() (*models.PlannerState, error) {
	state := &models.PlannerState{}
	var framework, savedAt string
	m := &state.CoreMetrics
	err := d.db.QueryRow(`
		SELECT program_name, framework, cursor_week, cursor_day,
			height_cm, weight_kg, body_fat, chest, waist, arms, legs, last_saved_at
		FROM program WHERE id = 1`).Scan(
		&state.ProgramName, &framework,
		&state.Cursor.WeekIndex, &state.Cursor.DayIndex,
		&m.HeightCm, &m.WeightKg, &m.BodyFat, &m.Chest, &m.Waist, &m.Arms, &m.Legs,
		&savedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load program: %w", err)
	}
	state.Framework = models.TrainingFramework(framework)
	if state.LastSavedAt, err = time.Parse(timeLayout, savedAt); err != nil {
		return nil, fmt.Errorf("parse last_saved_at: %w", err)
	}

	if state.Weeks, err = d.loadWeeks(); err != nil {
		return nil, err
	}
	if state.VisionBoard, err = d.loadVisionBoard(); err != nil {
		return nil, err
	}
	if state.ProgressPhotos, err = d.loadProgressPhotos(); err != nil {
		return nil, err
	}
	return state, nil
}

func (d *DB) loadWeeks() ([]models.Week, error) {
	rows, err := d.db.Query(`
		SELECT idx, id, start_date, objective,
			review_wins, review_challenges, review_adjustments, review_next_week
		FROM weeks ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("query weeks: %w", err)
	}
	defer rows.Close()

	var weeks []models.Week
	for rows.Next() {
		var idx int
		var id, startDate string
		var wins, challenges, adjustments, nextWeek *string
		week := models.Week{}
		if err := rows.Scan(&idx, &id, &startDate, &week.Objective,
			&wins, &challenges, &adjustments, &nextWeek); err != nil {
			return nil, fmt.Errorf("scan week: %w", err)
		}
		if week.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse week id: %w", err)
		}
		if week.StartDate, err = time.Parse(timeLayout, startDate); err != nil {
			return nil, fmt.Errorf("parse week start date: %w", err)
		}
		if wins != nil || challenges != nil || adjustments != nil || nextWeek != nil {
			week.Review = &models.WeekReview{
				Wins:        deref(wins),
				Challenges:  deref(challenges),
				Adjustments: deref(adjustments),
				NextWeek:    deref(nextWeek),
			}
		}
		days, err := d.loadDays(idx)
		if err != nil {
			return nil, err
		}
		week.Days = days
		weeks = append(weeks, week)
	}
	return weeks, rows.Err()
}

func (d *DB) loadDays(weekIdx int) ([]models.DayEntry, error) {
	rows, err := d.db.Query(`
		SELECT day_idx, id, date, status, session_rpe,
			sleep_hours, water_intake, stress_level, notes,
			habit_sleep, habit_nutrition, habit_hydration,
			habit_mobility, habit_mindfulness, habit_recovery
		FROM days WHERE week_idx = ? ORDER BY day_idx`, weekIdx)
	if err != nil {
		return nil, fmt.Errorf("query days: %w", err)
	}
	defer rows.Close()

	var days []models.DayEntry
	for rows.Next() {
		var dayIdx int
		var id, date, status string
		var hSleep, hNutrition, hHydration, hMobility, hMindfulness, hRecovery int
		day := models.DayEntry{}
		if err := rows.Scan(&dayIdx, &id, &date, &status, &day.SessionRPE,
			&day.SleepHours, &day.WaterIntake, &day.StressLevel, &day.Notes,
			&hSleep, &hNutrition, &hHydration, &hMobility, &hMindfulness, &hRecovery); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		if day.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse day id: %w", err)
		}
		if day.Date, err = time.Parse(timeLayout, date); err != nil {
			return nil, fmt.Errorf("parse day date: %w", err)
		}
		day.Status = models.DayStatus(status)
		day.Habits = models.Habits{
			Sleep:       hSleep != 0,
			Nutrition:   hNutrition != 0,
			Hydration:   hHydration != 0,
			Mobility:    hMobility != 0,
			Mindfulness: hMindfulness != 0,
			Recovery:    hRecovery != 0,
		}
		training, err := d.loadExercises(weekIdx, dayIdx)
		if err != nil {
			return nil, err
		}
		day.Training = training
		days = append(days, day)
	}
	return days, rows.Err()
}

func (d *DB) loadExercises(weekIdx, dayIdx int) ([]models.Exercise, error) {
	rows, err := d.db.Query(`
		SELECT id, name, movement_pattern, sets, reps, load_kg, target_rpe,
			actual_rpe, actual_reps, actual_sets, notes
		FROM exercises WHERE week_idx = ? AND day_idx = ? ORDER BY position`,
		weekIdx, dayIdx)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	training := []models.Exercise{}
	for rows.Next() {
		var id, pattern string
		ex := models.Exercise{}
		if err := rows.Scan(&id, &ex.Name, &pattern, &ex.Sets, &ex.Reps,
			&ex.LoadKg, &ex.TargetRPE,
			&ex.ActualRPE, &ex.ActualReps, &ex.ActualSets, &ex.Notes); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		if ex.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse exercise id: %w", err)
		}
		ex.MovementPattern = models.MovementPattern(pattern)
		training = append(training, ex)
	}
	return training, rows.Err()
}

func (d *DB) loadVisionBoard() ([]models.VisionBoardItem, error) {
	rows, err := d.db.Query(`SELECT id, title, content FROM vision_board ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query vision board: %w", err)
	}
	defer rows.Close()

	var items []models.VisionBoardItem
	for rows.Next() {
		var id string
		item := models.VisionBoardItem{}
		if err := rows.Scan(&id, &item.Title, &item.Content); err != nil {
			return nil, fmt.Errorf("scan vision board item: %w", err)
		}
		if item.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse vision board id: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (d *DB) loadProgressPhotos() ([]models.ProgressPhoto, error) {
	rows, err := d.db.Query(`SELECT id, date, week, url, notes FROM progress_photos ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("query progress photos: %w", err)
	}
	defer rows.Close()

	var photos []models.ProgressPhoto
	for rows.Next() {
		var id, date string
		var url, notes *string
		photo := models.ProgressPhoto{}
		if err := rows.Scan(&id, &date, &photo.Week, &url, &notes); err != nil {
			return nil, fmt.Errorf("scan progress photo: %w", err)
		}
		if photo.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse progress photo id: %w", err)
		}
		if photo.Date, err = time.Parse(timeLayout, date); err != nil {
			return nil, fmt.Errorf("parse progress photo date: %w", err)
		}
		photo.URL = deref(url)
		photo.Notes = deref(notes)
		photos = append(photos, photo)
	}
	return photos, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
