// ABOUTME: Integration tests for planner CLI.
// ABOUTME: Builds the binary and drives a full init/log/complete workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	plannerBinary := filepath.Join(projectRoot, "planner-test-bin")

	buildCmd := exec.Command("go", "build", "-o", plannerBinary, "./cmd/planner")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(plannerBinary)

	// Isolate data and config under a temp dir
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(plannerBinary, args...)
		cmd.Env = append(os.Environ(),
			"PLANNER_DATA_DIR="+filepath.Join(tmpDir, "data"),
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
			"PLANNER_BACKEND=sqlite",
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Commands before init should fail cleanly
	output, err := run("day")
	if err == nil {
		t.Errorf("day before init should fail, got: %s", output)
	}

	// Init a program
	output, err = run("init", "STRENGTH_LINEAR", "--start", "2026-01-05")
	if err != nil {
		t.Fatalf("Failed to init: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Created") {
		t.Errorf("Expected 'Created' in output, got: %s", output)
	}

	// Re-init without --force must refuse
	output, err = run("init", "POWERLIFTING")
	if err == nil {
		t.Errorf("re-init without --force should fail, got: %s", output)
	}

	// Show the first day
	output, err = run("day", "1", "1")
	if err != nil {
		t.Fatalf("Failed to show day: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Squat") {
		t.Errorf("Expected 'Squat' in day output, got: %s", output)
	}

	// Log a squat on week 1 day 1
	output, err = run("log", "squat", "6", "--load", "100", "--reps", "5", "--week", "1", "--day", "1")
	if err != nil {
		t.Fatalf("Failed to log: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged Squat") {
		t.Errorf("Expected 'Logged Squat' in output, got: %s", output)
	}

	// Complete the day
	output, err = run("complete", "1", "1")
	if err != nil {
		t.Fatalf("Failed to complete: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Completed week 1 day 1") {
		t.Errorf("Expected completion message, got: %s", output)
	}
	if !strings.Contains(output, "Cursor now at week 1, day 2") {
		t.Errorf("Expected cursor advance, got: %s", output)
	}

	// The easy squat should have projected more load into the next session
	output, err = run("day", "1", "2")
	if err != nil {
		t.Fatalf("Failed to show day 2: %v\n%s", err, output)
	}
	if !strings.Contains(output, "102.5") {
		t.Errorf("Expected projected squat load 102.5, got: %s", output)
	}

	// Status reflects one completed day
	output, err = run("status")
	if err != nil {
		t.Fatalf("Failed to get status: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Completed: 1 of 84 days") {
		t.Errorf("Expected completion count, got: %s", output)
	}

	// 1RM estimate works without a program
	output, err = run("rpe", "100", "5", "8")
	if err != nil {
		t.Fatalf("Failed to estimate 1RM: %v\n%s", err, output)
	}
	if !strings.Contains(output, "123.3") {
		t.Errorf("Expected 1RM near 123.3, got: %s", output)
	}

	// Export and re-import round trip
	backup := filepath.Join(tmpDir, "backup.json")
	output, err = run("export", "json", "-o", backup)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	output, err = run("import", backup)
	if err != nil {
		t.Fatalf("Failed to import: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Imported") {
		t.Errorf("Expected 'Imported' in output, got: %s", output)
	}

	// Markdown export mentions the program
	output, err = run("export", "markdown")
	if err != nil {
		t.Fatalf("Failed to export markdown: %v\n%s", err, output)
	}
	if !strings.Contains(output, "# Return to Form") {
		t.Errorf("Expected program title in markdown, got: %s", output)
	}
}
