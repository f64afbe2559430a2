// ABOUTME: DayEntry model and DayStatus lifecycle enum.
// ABOUTME: A LOCKED day is frozen history and must never be written.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DayStatus is the lifecycle state of a single day's session.
type DayStatus string

const (
	StatusPlanned   DayStatus = "PLANNED"
	StatusActive    DayStatus = "ACTIVE"
	StatusCompleted DayStatus = "COMPLETED"
	StatusLocked    DayStatus = "LOCKED"
)

// IsValidDayStatus checks if a string is a valid day status.
func IsValidDayStatus(s string) bool {
	switch DayStatus(s) {
	case StatusPlanned, StatusActive, StatusCompleted, StatusLocked:
		return true
	}
	return false
}

// Habits tracks the daily recovery checklist.
type Habits struct {
	Sleep       bool `json:"sleep" yaml:"sleep"`
	Nutrition   bool `json:"nutrition" yaml:"nutrition"`
	Hydration   bool `json:"hydration" yaml:"hydration"`
	Mobility    bool `json:"mobility" yaml:"mobility"`
	Mindfulness bool `json:"mindfulness" yaml:"mindfulness"`
	Recovery    bool `json:"recovery" yaml:"recovery"`
}

// DayEntry is one calendar day of a program.
type DayEntry struct {
	ID          uuid.UUID  `json:"id" yaml:"id"`
	Date        time.Time  `json:"date" yaml:"date"`
	Status      DayStatus  `json:"status" yaml:"status"`
	SessionRPE  *float64   `json:"session_rpe,omitempty" yaml:"session_rpe,omitempty"`
	Training    []Exercise `json:"training" yaml:"training"`
	Habits      Habits     `json:"habits" yaml:"habits"`
	SleepHours  float64    `json:"sleep_hours" yaml:"sleep_hours"`
	WaterIntake float64    `json:"water_intake" yaml:"water_intake"`
	StressLevel int        `json:"stress_level" yaml:"stress_level"`
	Notes       *string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewDayEntry creates a PLANNED day for the given date.
func NewDayEntry(date time.Time, training []Exercise) *DayEntry {
	return &DayEntry{
		ID:          uuid.New(),
		Date:        date,
		Status:      StatusPlanned,
		Training:    training,
		StressLevel: 5,
	}
}

// Mutable reports whether the day accepts writes. LOCKED days are frozen.
func (d *DayEntry) Mutable() bool {
	return d.Status != StatusLocked
}

// Clone returns a deep copy of the day.
func (d DayEntry) Clone() DayEntry {
	c := d
	if d.SessionRPE != nil {
		v := *d.SessionRPE
		c.SessionRPE = &v
	}
	if d.Notes != nil {
		v := *d.Notes
		c.Notes = &v
	}
	c.Training = make([]Exercise, len(d.Training))
	for i, ex := range d.Training {
		c.Training[i] = ex.Clone()
	}
	return c
}
