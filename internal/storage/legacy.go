// ABOUTME: Legacy Badger-backed store kept for migrating old installs.
// ABOUTME: Stores the whole program as one JSON blob under planner:state.
package storage

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/harperreed/planner/internal/models"
)

const legacyStateKey = "planner:state"

// LegacyStore reads and writes planner state in the Badger format used
// by releases before the SQLite backend.
type LegacyStore struct {
	db *badger.DB
}

// OpenLegacy opens a Badger database directory.
func OpenLegacy(dir string) (*LegacyStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &LegacyStore{db: db}, nil
}

// LoadState reads the stored program. Returns (nil, nil) when no program
// has been saved.
func (s *LegacyStore) LoadState() (*models.PlannerState, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(legacyStateKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	state := &models.PlannerState{}
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return state, nil
}

// SaveState writes the full program as one JSON value.
func (s *LegacyStore) SaveState(state *models.PlannerState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(legacyStateKey), raw)
	})
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Close closes the underlying Badger database.
func (s *LegacyStore) Close() error {
	return s.db.Close()
}
