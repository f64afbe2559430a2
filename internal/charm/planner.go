// ABOUTME: Planner-specific Charm KV records: program meta and per-day entries.
// ABOUTME: Days are keyed day:<week>:<day>; merge prefers logged remote days.
package charm

import (
	"fmt"
	"time"

	"github.com/harperreed/planner/internal/models"
)

// ProgramMeta is the program-level sync record.
type ProgramMeta struct {
	ProgramName string                   `json:"program_name"`
	Framework   models.TrainingFramework `json:"framework"`
	Cursor      models.ProgramCursor     `json:"cursor"`
	PushedAt    time.Time                `json:"pushed_at"`
}

// DayKey builds the KV key for a day record.
func DayKey(weekIdx, dayIdx int) string {
	return fmt.Sprintf("%s%d:%d", DayPrefix, weekIdx, dayIdx)
}

// ParseDayKey extracts the week and day indexes from a day record key.
func ParseDayKey(key string) (weekIdx, dayIdx int, err error) {
	if _, err = fmt.Sscanf(key, DayPrefix+"%d:%d", &weekIdx, &dayIdx); err != nil {
		return 0, 0, fmt.Errorf("malformed day key %q: %w", key, err)
	}
	return weekIdx, dayIdx, nil
}

// PushDay uploads one day record.
func (c *Client) PushDay(weekIdx, dayIdx int, day *models.DayEntry) error {
	data, err := marshalJSON(day)
	if err != nil {
		return fmt.Errorf("marshal day: %w", err)
	}
	return c.set(DayKey(weekIdx, dayIdx), data)
}

// GetDay downloads one day record.
func (c *Client) GetDay(weekIdx, dayIdx int) (*models.DayEntry, error) {
	data, err := c.get(DayKey(weekIdx, dayIdx))
	if err != nil {
		return nil, err
	}
	return unmarshalJSON[models.DayEntry](data)
}

// PushState uploads the program meta plus every day that has moved past
// PLANNED. Untouched days carry no information the other side lacks.
func (c *Client) PushState(state *models.PlannerState) (int, error) {
	meta := ProgramMeta{
		ProgramName: state.ProgramName,
		Framework:   state.Framework,
		Cursor:      state.Cursor,
		PushedAt:    time.Now(),
	}
	data, err := marshalJSON(meta)
	if err != nil {
		return 0, fmt.Errorf("marshal meta: %w", err)
	}
	if err := c.set(MetaKey, data); err != nil {
		return 0, fmt.Errorf("push meta: %w", err)
	}

	pushed := 0
	for wi, week := range state.Weeks {
		for di, day := range week.Days {
			if day.Status == models.StatusPlanned {
				continue
			}
			if err := c.PushDay(wi, di, &week.Days[di]); err != nil {
				return pushed, fmt.Errorf("push day %d/%d: %w", wi, di, err)
			}
			pushed++
		}
	}
	return pushed, nil
}

// PullInto merges remote day records into the local state tree and returns
// the number of days updated. Local LOCKED days never change. Day keys that
// do not address a day in the program grid are pruned from the remote store.
func (c *Client) PullInto(state *models.PlannerState) (int, error) {
	if err := c.Sync(); err != nil {
		return 0, fmt.Errorf("sync: %w", err)
	}

	keys, err := c.keysByPrefix(DayPrefix)
	if err != nil {
		return 0, fmt.Errorf("list day keys: %w", err)
	}

	updated := 0
	for _, key := range keys {
		wi, di, err := ParseDayKey(key)
		if err != nil {
			// Stray key under the day prefix; prune it remotely.
			_ = c.delete(key)
			continue
		}
		local := state.Day(wi, di)
		if local == nil {
			// Addresses a day outside the 12x7 grid; same treatment.
			_ = c.delete(key)
			continue
		}
		data, err := c.get(key)
		if err != nil {
			return updated, fmt.Errorf("get %s: %w", key, err)
		}
		remote, err := unmarshalJSON[models.DayEntry](data)
		if err != nil {
			return updated, fmt.Errorf("unmarshal %s: %w", key, err)
		}
		if MergeDay(local, remote) {
			updated++
		}
	}
	return updated, nil
}

// MergeDay applies a remote day over a local one when the remote carries a
// performance log the local side lacks. Reports whether local was changed.
func MergeDay(local *models.DayEntry, remote *models.DayEntry) bool {
	if local.Status == models.StatusLocked {
		return false
	}
	remoteLogged := remote.Status == models.StatusCompleted || remote.Status == models.StatusLocked
	localLogged := local.Status == models.StatusCompleted || local.Status == models.StatusLocked
	if !remoteLogged || localLogged {
		return false
	}
	*local = remote.Clone()
	return true
}

// Status reports how many day records exist remotely.
func (c *Client) Status() (int, error) {
	keys, err := c.keysByPrefix(DayPrefix)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}
