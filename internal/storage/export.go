// ABOUTME: Export and import functionality for planner programs.
// ABOUTME: Supports JSON, YAML, and Markdown export formats over any backend.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/planner/internal/models"
)

// ExportData represents the full export format for a planner program.
type ExportData struct {
	Version    string               `json:"version" yaml:"version"`
	ExportedAt time.Time            `json:"exported_at" yaml:"exported_at"`
	Tool       string               `json:"tool" yaml:"tool"`
	Program    *models.PlannerState `json:"program" yaml:"program"`
}

// GetAllData retrieves the current program for export.
func GetAllData(repo Repository) (*ExportData, error) {
	state, err := repo.LoadState()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if state == nil {
		return nil, fmt.Errorf("no program initialized")
	}
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "planner",
		Program:    state,
	}, nil
}

// ExportJSON exports the program as JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports the program as YAML.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ExportMarkdown renders the program as a human-readable Markdown report.
// Only weeks up to and including the cursor week are expanded in full;
// future weeks are summarized.
func ExportMarkdown(repo Repository) (string, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return "", err
	}
	state := data.Program

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", state.ProgramName))
	sb.WriteString(fmt.Sprintf("Framework: %s\n\n", state.Framework))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", data.ExportedAt.Format(time.RFC3339)))

	for wi, week := range state.Weeks {
		sb.WriteString(fmt.Sprintf("## Week %d (%s)\n\n", wi+1, week.StartDate.Format("2006-01-02")))
		if week.Objective != "" {
			sb.WriteString(fmt.Sprintf("Objective: %s\n\n", week.Objective))
		}

		if wi > state.Cursor.WeekIndex {
			sb.WriteString(fmt.Sprintf("%d planned days\n\n", len(week.Days)))
			continue
		}

		for di, day := range week.Days {
			if len(day.Training) == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("### Day %d - %s (%s)\n\n",
				di+1, day.Date.Format("2006-01-02"), day.Status))
			sb.WriteString("| Exercise | Pattern | Sets x Reps | Load | Target RPE | Actual RPE |\n")
			sb.WriteString("|----------|---------|-------------|------|------------|------------|\n")
			for _, ex := range day.Training {
				actual := "-"
				if ex.ActualRPE != nil {
					actual = fmt.Sprintf("%.1f", *ex.ActualRPE)
				}
				sb.WriteString(fmt.Sprintf("| %s | %s | %dx%d | %.1f kg | %.1f | %s |\n",
					ex.Name, ex.MovementPattern, ex.Sets, ex.Reps,
					ex.LoadKg, ex.TargetRPE, actual))
			}
			sb.WriteString("\n")
		}

		if week.Review != nil {
			sb.WriteString("### Review\n\n")
			if week.Review.Wins != "" {
				sb.WriteString(fmt.Sprintf("- Wins: %s\n", week.Review.Wins))
			}
			if week.Review.Challenges != "" {
				sb.WriteString(fmt.Sprintf("- Challenges: %s\n", week.Review.Challenges))
			}
			if week.Review.Adjustments != "" {
				sb.WriteString(fmt.Sprintf("- Adjustments: %s\n", week.Review.Adjustments))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// ImportJSON replaces the stored program with one from JSON export bytes.
func ImportJSON(repo Repository, data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	if exportData.Program == nil {
		return fmt.Errorf("export contains no program")
	}
	return repo.SaveState(exportData.Program)
}
