// ABOUTME: Week, ProgramCursor, and PlannerState aggregate models.
// ABOUTME: A program is a fixed 12-week by 7-day tree built at onboarding.
package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ProgramWeeks is the fixed program length. The tree is never resized.
	ProgramWeeks = 12
	// DaysPerWeek is the fixed week length.
	DaysPerWeek = 7
)

// WeekReview holds the free-text weekly retrospective.
type WeekReview struct {
	Wins        string `json:"wins,omitempty" yaml:"wins,omitempty"`
	Challenges  string `json:"challenges,omitempty" yaml:"challenges,omitempty"`
	Adjustments string `json:"adjustments,omitempty" yaml:"adjustments,omitempty"`
	NextWeek    string `json:"next_week,omitempty" yaml:"next_week,omitempty"`
}

// Week is one calendar week of a program.
type Week struct {
	ID        uuid.UUID   `json:"id" yaml:"id"`
	StartDate time.Time   `json:"start_date" yaml:"start_date"`
	Objective string      `json:"objective,omitempty" yaml:"objective,omitempty"`
	Days      []DayEntry  `json:"days" yaml:"days"`
	Review    *WeekReview `json:"review,omitempty" yaml:"review,omitempty"`
}

// Clone returns a deep copy of the week.
func (w Week) Clone() Week {
	c := w
	if w.Review != nil {
		r := *w.Review
		c.Review = &r
	}
	c.Days = make([]DayEntry, len(w.Days))
	for i, d := range w.Days {
		c.Days[i] = d.Clone()
	}
	return c
}

// ProgramCursor points at the next actionable session. It only ever moves
// forward through the week/day grid.
type ProgramCursor struct {
	WeekIndex int `json:"week_index" yaml:"week_index"`
	DayIndex  int `json:"day_index" yaml:"day_index"`
}

// CoreMetrics holds baseline body measurements.
type CoreMetrics struct {
	HeightCm *float64 `json:"height_cm,omitempty" yaml:"height_cm,omitempty"`
	WeightKg *float64 `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
	BodyFat  *float64 `json:"body_fat,omitempty" yaml:"body_fat,omitempty"`
	Chest    *float64 `json:"chest,omitempty" yaml:"chest,omitempty"`
	Waist    *float64 `json:"waist,omitempty" yaml:"waist,omitempty"`
	Arms     *float64 `json:"arms,omitempty" yaml:"arms,omitempty"`
	Legs     *float64 `json:"legs,omitempty" yaml:"legs,omitempty"`
}

// VisionBoardItem is a free-text motivation card.
type VisionBoardItem struct {
	ID      uuid.UUID `json:"id" yaml:"id"`
	Title   string    `json:"title" yaml:"title"`
	Content string    `json:"content" yaml:"content"`
}

// ProgressPhoto references an external progress photo.
type ProgressPhoto struct {
	ID    uuid.UUID `json:"id" yaml:"id"`
	Date  time.Time `json:"date" yaml:"date"`
	Week  int       `json:"week" yaml:"week"`
	URL   string    `json:"url,omitempty" yaml:"url,omitempty"`
	Notes string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// PlannerState is the aggregate root for a program.
type PlannerState struct {
	ProgramName    string            `json:"program_name" yaml:"program_name"`
	Framework      TrainingFramework `json:"framework" yaml:"framework"`
	Cursor         ProgramCursor     `json:"cursor" yaml:"cursor"`
	Weeks          []Week            `json:"weeks" yaml:"weeks"`
	CoreMetrics    CoreMetrics       `json:"core_metrics" yaml:"core_metrics"`
	VisionBoard    []VisionBoardItem `json:"vision_board" yaml:"vision_board"`
	ProgressPhotos []ProgressPhoto   `json:"progress_photos" yaml:"progress_photos"`
	LastSavedAt    time.Time         `json:"last_saved_at" yaml:"last_saved_at"`
}

// NewPlannerState builds the full 12x7 program tree for a framework.
// Every day starts PLANNED with the framework's default movements prescribed
// at its target RPE. start is normalized to the beginning of the day.
func NewPlannerState(framework TrainingFramework, start time.Time) *PlannerState {
	rules := framework.Rules()
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	weeks := make([]Week, ProgramWeeks)
	for w := 0; w < ProgramWeeks; w++ {
		weekStart := start.AddDate(0, 0, w*DaysPerWeek)
		days := make([]DayEntry, DaysPerWeek)
		for d := 0; d < DaysPerWeek; d++ {
			training := make([]Exercise, 0, len(rules.DefaultMovements))
			for _, mv := range rules.DefaultMovements {
				ex := NewExercise(mv.Name, mv.Pattern, 4, rules.RepRange.Min).
					WithTargetRPE(rules.TargetRPE)
				training = append(training, *ex)
			}
			days[d] = *NewDayEntry(weekStart.AddDate(0, 0, d), training)
		}
		weeks[w] = Week{
			ID:        uuid.New(),
			StartDate: weekStart,
			Days:      days,
		}
	}

	return &PlannerState{
		ProgramName: "Return to Form",
		Framework:   framework,
		Cursor:      ProgramCursor{},
		Weeks:       weeks,
		VisionBoard: []VisionBoardItem{
			{ID: uuid.New(), Title: "Primary Goal"},
			{ID: uuid.New(), Title: "Key Motivation"},
		},
		LastSavedAt: time.Now(),
	}
}

// Day returns a pointer into the tree, or nil when indexes are out of range.
func (s *PlannerState) Day(weekIndex, dayIndex int) *DayEntry {
	if weekIndex < 0 || weekIndex >= len(s.Weeks) {
		return nil
	}
	week := &s.Weeks[weekIndex]
	if dayIndex < 0 || dayIndex >= len(week.Days) {
		return nil
	}
	return &week.Days[dayIndex]
}

// Clone returns a deep copy of the whole state tree.
func (s *PlannerState) Clone() *PlannerState {
	c := *s
	c.Weeks = make([]Week, len(s.Weeks))
	for i, w := range s.Weeks {
		c.Weeks[i] = w.Clone()
	}
	c.VisionBoard = append([]VisionBoardItem(nil), s.VisionBoard...)
	c.ProgressPhotos = append([]ProgressPhoto(nil), s.ProgressPhotos...)
	if s.CoreMetrics.HeightCm != nil {
		v := *s.CoreMetrics.HeightCm
		c.CoreMetrics.HeightCm = &v
	}
	if s.CoreMetrics.WeightKg != nil {
		v := *s.CoreMetrics.WeightKg
		c.CoreMetrics.WeightKg = &v
	}
	if s.CoreMetrics.BodyFat != nil {
		v := *s.CoreMetrics.BodyFat
		c.CoreMetrics.BodyFat = &v
	}
	if s.CoreMetrics.Chest != nil {
		v := *s.CoreMetrics.Chest
		c.CoreMetrics.Chest = &v
	}
	if s.CoreMetrics.Waist != nil {
		v := *s.CoreMetrics.Waist
		c.CoreMetrics.Waist = &v
	}
	if s.CoreMetrics.Arms != nil {
		v := *s.CoreMetrics.Arms
		c.CoreMetrics.Arms = &v
	}
	if s.CoreMetrics.Legs != nil {
		v := *s.CoreMetrics.Legs
		c.CoreMetrics.Legs = &v
	}
	return &c
}
