// Package state persists the durable view-state subset as a single JSON
// record on disk, the terminal equivalent of the dashboard's local-storage
// key. Anything malformed or missing falls back to defaults without
// surfacing an error to the user.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/ruinscape/opsgrid/internal/presence"
	"github.com/ruinscape/opsgrid/internal/view"
)

// record is the on-disk shape. Transient view state (toasts, help flag,
// selection timestamp) is deliberately absent.
type record struct {
	SelectedID     string     `json:"selectedId"`
	Filter         string     `json:"filter"`
	Search         string     `json:"search"`
	SortByLoad     bool       `json:"sortByLoad"`
	PausedIDs      []string   `json:"pausedIds"`
	IdleThresholds thresholds `json:"idleThresholds"`
}

type thresholds struct {
	SoftMinutes int `json:"softMinutes"`
	HardMinutes int `json:"hardMinutes"`
}

// Storage reads and writes the view-state record at Path.
type Storage struct {
	Path string
}

// Load reads the record and merges it over the default view state. A
// missing or corrupt file yields the defaults.
func (s Storage) Load() view.State {
	st := view.DefaultState()

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return st
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Warn("discarding malformed state record", "path", s.Path, "err", err)
		return st
	}

	if rec.SelectedID != "" {
		st.SelectedID = rec.SelectedID
	}
	st.Filter = view.ParseFilter(rec.Filter)
	st.Search = rec.Search
	st.SortByLoad = rec.SortByLoad
	st.PausedIDs = map[string]bool{}
	for _, id := range rec.PausedIDs {
		st.PausedIDs[id] = true
	}
	if rec.IdleThresholds.SoftMinutes >= presence.MinSoftMinutes {
		st.Thresholds.SoftMinutes = rec.IdleThresholds.SoftMinutes
	}
	if rec.IdleThresholds.HardMinutes >= presence.MinHardMinutes {
		st.Thresholds.HardMinutes = rec.IdleThresholds.HardMinutes
	}
	// Re-apply the cross-adjustment invariant in case the record was edited
	// by hand.
	if st.Thresholds.HardMinutes <= st.Thresholds.SoftMinutes {
		st.Thresholds.SetHard(st.Thresholds.SoftMinutes + 1)
	}

	return st
}

// Save writes the durable subset of st. Persistence failures are logged
// and otherwise ignored; the dashboard keeps running on in-memory state.
func (s Storage) Save(st view.State) {
	ids := make([]string, 0, len(st.PausedIDs))
	for id := range st.PausedIDs {
		ids = append(ids, id)
	}

	rec := record{
		SelectedID: st.SelectedID,
		Filter:     st.Filter.String(),
		Search:     st.Search,
		SortByLoad: st.SortByLoad,
		PausedIDs:  ids,
		IdleThresholds: thresholds{
			SoftMinutes: st.Thresholds.SoftMinutes,
			HardMinutes: st.Thresholds.HardMinutes,
		},
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Warn("encoding state record", "err", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		log.Warn("creating state dir", "path", s.Path, "err", err)
		return
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		log.Warn("writing state record", "path", s.Path, "err", err)
	}
}
