// ABOUTME: MCP resource implementations for the training planner.
// ABOUTME: Provides planner://program and planner://week resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/planner/internal/models"
)

func (s *Server) registerResources() {
	// planner://program - Program overview with per-week completion
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "planner://program",
		Name:        "Training Program Overview",
		Description: "Program name, framework, cursor position, and per-week completion",
		MIMEType:    "application/json",
	}, s.handleProgramResource)

	// planner://week - The cursor week in full detail
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "planner://week",
		Name:        "Current Training Week",
		Description: "Every day of the week the program cursor points at",
		MIMEType:    "application/json",
	}, s.handleWeekResource)
}

// Resource handlers

func (s *Server) handleProgramResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, err
	}

	type weekSummary struct {
		Week      int    `json:"week"`
		StartDate string `json:"start_date"`
		Objective string `json:"objective,omitempty"`
		Completed int    `json:"completed"`
		Days      int    `json:"days"`
	}

	summaries := make([]weekSummary, 0, len(state.Weeks))
	for wi, week := range state.Weeks {
		ws := weekSummary{
			Week:      wi + 1,
			StartDate: week.StartDate.Format("2006-01-02"),
			Objective: week.Objective,
			Days:      len(week.Days),
		}
		for _, day := range week.Days {
			if day.Status == models.StatusCompleted || day.Status == models.StatusLocked {
				ws.Completed++
			}
		}
		summaries = append(summaries, ws)
	}

	result := map[string]interface{}{
		"program_name": state.ProgramName,
		"framework":    state.Framework,
		"cursor": map[string]int{
			"week": state.Cursor.WeekIndex + 1,
			"day":  state.Cursor.DayIndex + 1,
		},
		"weeks":        summaries,
		"generated_at": time.Now().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "planner://program",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, err
	}

	wi := state.Cursor.WeekIndex
	if wi < 0 || wi >= len(state.Weeks) {
		return nil, fmt.Errorf("cursor week %d out of range", wi+1)
	}

	result := map[string]interface{}{
		"week":      wi + 1,
		"framework": state.Framework,
		"detail":    state.Weeks[wi],
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "planner://week",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
