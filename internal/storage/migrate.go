// ABOUTME: Data migration between planner storage backends.
// ABOUTME: Copies the program tree from a source repository to a destination.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Weeks     int
	Days      int
	Exercises int
}

// MigrateData copies the program from src to dst storage. The destination
// is overwritten with the source program.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	state, err := src.LoadState()
	if err != nil {
		return nil, fmt.Errorf("load source state: %w", err)
	}
	if state == nil {
		return nil, fmt.Errorf("source has no program to migrate")
	}

	if err := dst.SaveState(state); err != nil {
		return nil, fmt.Errorf("save destination state: %w", err)
	}

	summary := &MigrateSummary{Weeks: len(state.Weeks)}
	for _, week := range state.Weeks {
		summary.Days += len(week.Days)
		for _, day := range week.Days {
			summary.Exercises += len(day.Training)
		}
	}
	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or
// subdirectories. Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
