// ABOUTME: MCP tool implementations for the training planner.
// ABOUTME: Exposes day reads, exercise logging, completion, and projections.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/planner/internal/engine"
	"github.com/harperreed/planner/internal/models"
)

func (s *Server) registerTools() {
	// get_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get one training day with its prescribed and logged exercises",
	}, s.handleGetDay)

	// log_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_exercise",
		Description: "Record actual RPE, reps, and load for an exercise on a day",
	}, s.handleLogExercise)

	// complete_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_day",
		Description: "Complete a training day: lock in the log, adapt upcoming sessions, advance the program cursor",
	}, s.handleCompleteDay)

	// next_weight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "next_weight",
		Description: "Recommend the next load for a movement pattern based on a completed day",
	}, s.handleNextWeight)

	// program_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "program_status",
		Description: "Get the program cursor, framework, and completion counts",
	}, s.handleProgramStatus)
}

// Tool input/output types

type dayRefInput struct {
	Week int `json:"week" jsonschema:"Week number (1-12)"`
	Day  int `json:"day" jsonschema:"Day number within the week (1-7)"`
}

type logExerciseInput struct {
	Week       int     `json:"week" jsonschema:"Week number (1-12)"`
	Day        int     `json:"day" jsonschema:"Day number within the week (1-7)"`
	Exercise   string  `json:"exercise" jsonschema:"Exercise name or movement pattern (SQUAT, HINGE, ...)"`
	ActualRPE  float64 `json:"actual_rpe" jsonschema:"Session RPE for the exercise (1-10)"`
	ActualReps int     `json:"actual_reps,omitempty" jsonschema:"Reps actually performed"`
	LoadKg     float64 `json:"load_kg,omitempty" jsonschema:"Load actually used in kilograms"`
	Notes      string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type nextWeightInput struct {
	Week    int    `json:"week" jsonschema:"Week number of the completed day (1-12)"`
	Day     int    `json:"day" jsonschema:"Day number of the completed day (1-7)"`
	Pattern string `json:"pattern" jsonschema:"Movement pattern (SQUAT, HINGE, HORIZONTAL_PUSH, VERTICAL_PUSH, PULL, CARRY_ACCESSORY)"`
}

type nextWeightOutput struct {
	Pattern       string  `json:"pattern"`
	CurrentLoadKg float64 `json:"current_load_kg"`
	NextLoadKg    float64 `json:"next_load_kg"`
	Message       string  `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type programStatusOutput struct {
	ProgramName   string `json:"program_name"`
	Framework     string `json:"framework"`
	CursorWeek    int    `json:"cursor_week"`
	CursorDay     int    `json:"cursor_day"`
	CompletedDays int    `json:"completed_days"`
	TotalDays     int    `json:"total_days"`
}

// Tool handlers

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input dayRefInput) (*mcp.CallToolResult, any, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, nil, err
	}

	day := state.Day(input.Week-1, input.Day-1)
	if day == nil {
		return nil, nil, fmt.Errorf("no day at week %d day %d", input.Week, input.Day)
	}
	return nil, day, nil
}

func (s *Server) handleLogExercise(ctx context.Context, req *mcp.CallToolRequest, input logExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, simpleOutput{}, err
	}

	wi, di := input.Week-1, input.Day-1
	day := state.Day(wi, di)
	if day == nil {
		return nil, simpleOutput{}, fmt.Errorf("no day at week %d day %d", input.Week, input.Day)
	}
	if !day.Mutable() {
		return nil, simpleOutput{}, fmt.Errorf("week %d day %d is locked history", input.Week, input.Day)
	}

	idx := findExercise(day.Training, input.Exercise)
	if idx < 0 {
		return nil, simpleOutput{}, fmt.Errorf("no exercise matching %q on week %d day %d", input.Exercise, input.Week, input.Day)
	}

	updated := engine.UpdateExercise(state, wi, di, idx, func(ex *models.Exercise) {
		rpe := input.ActualRPE
		ex.ActualRPE = &rpe
		if input.ActualReps > 0 {
			reps := input.ActualReps
			ex.ActualReps = &reps
		}
		if input.LoadKg > 0 {
			ex.LoadKg = input.LoadKg
		}
		if input.Notes != "" {
			notes := input.Notes
			ex.Notes = &notes
		}
	})
	if err := s.repo.SaveState(updated); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("save program: %w", err)
	}

	name := updated.Day(wi, di).Training[idx].Name
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s at RPE %.1f on week %d day %d", name, input.ActualRPE, input.Week, input.Day),
	}, nil
}

func (s *Server) handleCompleteDay(ctx context.Context, req *mcp.CallToolRequest, input dayRefInput) (*mcp.CallToolResult, simpleOutput, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, simpleOutput{}, err
	}

	wi, di := input.Week-1, input.Day-1
	if state.Day(wi, di) == nil {
		return nil, simpleOutput{}, fmt.Errorf("no day at week %d day %d", input.Week, input.Day)
	}

	updated := engine.CompleteDay(state, wi, di, s.strategy)
	if updated == state {
		return nil, simpleOutput{
			Message: fmt.Sprintf("Week %d day %d was already completed", input.Week, input.Day),
		}, nil
	}
	if err := s.repo.SaveState(updated); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("save program: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Completed week %d day %d; cursor now at week %d day %d",
			input.Week, input.Day, updated.Cursor.WeekIndex+1, updated.Cursor.DayIndex+1),
	}, nil
}

func (s *Server) handleNextWeight(ctx context.Context, req *mcp.CallToolRequest, input nextWeightInput) (*mcp.CallToolResult, nextWeightOutput, error) {
	if !models.IsValidMovementPattern(input.Pattern) {
		return nil, nextWeightOutput{}, fmt.Errorf("unknown movement pattern: %s", input.Pattern)
	}
	state, err := s.loadState()
	if err != nil {
		return nil, nextWeightOutput{}, err
	}

	wi, di := input.Week-1, input.Day-1
	day := state.Day(wi, di)
	if day == nil {
		return nil, nextWeightOutput{}, fmt.Errorf("no day at week %d day %d", input.Week, input.Day)
	}

	pattern := models.MovementPattern(input.Pattern)
	var source *models.Exercise
	for i := range day.Training {
		if day.Training[i].MovementPattern == pattern {
			source = &day.Training[i]
			break
		}
	}
	if source == nil {
		return nil, nextWeightOutput{}, fmt.Errorf("no %s exercise on week %d day %d", input.Pattern, input.Week, input.Day)
	}
	if source.ActualRPE == nil && day.SessionRPE == nil {
		return nil, nextWeightOutput{}, fmt.Errorf("week %d day %d has no logged RPE for %s", input.Week, input.Day, input.Pattern)
	}

	var rpe float64
	if source.ActualRPE != nil {
		rpe = *source.ActualRPE
	} else {
		rpe = *day.SessionRPE
	}
	reps := source.Reps
	if source.ActualReps != nil {
		reps = *source.ActualReps
	}

	history := engine.PatternHistory(state, pattern, wi, di)
	next := engine.NextWeight(
		source.LoadKg, reps, state.Framework.Rules().RepRange,
		rpe, engine.ModelForFramework(state.Framework), history,
	)

	msg := fmt.Sprintf("Hold %s at %.1f kg", input.Pattern, source.LoadKg)
	if next > source.LoadKg {
		msg = fmt.Sprintf("Increase %s to %.1f kg", input.Pattern, next)
	} else if next < source.LoadKg {
		msg = fmt.Sprintf("Reduce %s to %.1f kg", input.Pattern, next)
	}
	return nil, nextWeightOutput{
		Pattern:       input.Pattern,
		CurrentLoadKg: source.LoadKg,
		NextLoadKg:    next,
		Message:       msg,
	}, nil
}

func (s *Server) handleProgramStatus(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, programStatusOutput, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, programStatusOutput{}, err
	}

	completed, total := 0, 0
	for _, week := range state.Weeks {
		for _, day := range week.Days {
			total++
			if day.Status == models.StatusCompleted || day.Status == models.StatusLocked {
				completed++
			}
		}
	}

	return nil, programStatusOutput{
		ProgramName:   state.ProgramName,
		Framework:     string(state.Framework),
		CursorWeek:    state.Cursor.WeekIndex + 1,
		CursorDay:     state.Cursor.DayIndex + 1,
		CompletedDays: completed,
		TotalDays:     total,
	}, nil
}

// findExercise matches by exact pattern first, then by case-insensitive
// name substring.
func findExercise(training []models.Exercise, query string) int {
	for i := range training {
		if string(training[i].MovementPattern) == query {
			return i
		}
	}
	q := strings.ToLower(query)
	for i := range training {
		if strings.Contains(strings.ToLower(training[i].Name), q) {
			return i
		}
	}
	return -1
}
