// ABOUTME: Repository interface for planner state persistence.
// ABOUTME: Allows swapping SQLite and legacy Badger backends behind one API.
package storage

import "github.com/harperreed/planner/internal/models"

// Repository abstracts planner state persistence.
type Repository interface {
	LoadState() (*models.PlannerState, error)
	SaveState(state *models.PlannerState) error
	Close() error
}

var (
	_ Repository = (*DB)(nil)
	_ Repository = (*LegacyStore)(nil)
)
