// Package view holds the user-facing view state and the reconciler that
// turns roster + view state + derived presence into the snapshot the panes
// render. Reconciliation is synchronous and re-derived in full every render.
package view

import (
	"time"

	"github.com/ruinscape/opsgrid/internal/presence"
	"github.com/ruinscape/opsgrid/internal/roster"
)

// Filter restricts the agent list to one status, or shows all.
type Filter int

const (
	FilterAll Filter = iota
	FilterOnline
	FilterBusy
	FilterError
	FilterOffline
)

// Cycle advances circularly: all → online → busy → error → offline → all.
func (f Filter) Cycle() Filter {
	return (f + 1) % 5
}

// Matches reports whether an agent with the given status passes the filter.
func (f Filter) Matches(s roster.Status) bool {
	switch f {
	case FilterAll:
		return true
	case FilterOnline:
		return s == roster.StatusOnline
	case FilterBusy:
		return s == roster.StatusBusy
	case FilterError:
		return s == roster.StatusError
	case FilterOffline:
		return s == roster.StatusOffline
	default:
		return true
	}
}

func (f Filter) String() string {
	switch f {
	case FilterOnline:
		return "online"
	case FilterBusy:
		return "busy"
	case FilterError:
		return "error"
	case FilterOffline:
		return "offline"
	default:
		return "all"
	}
}

// ParseFilter maps a stored filter name back to its enum value. Unknown
// names fall back to FilterAll, matching the silent-recover storage contract.
func ParseFilter(s string) Filter {
	switch s {
	case "online":
		return FilterOnline
	case "busy":
		return FilterBusy
	case "error":
		return FilterError
	case "offline":
		return FilterOffline
	default:
		return FilterAll
	}
}

// State is the mutable view state: what is selected, how the list is
// narrowed and ordered, which agents are paused, and the idle cutoffs.
// The durable subset is persisted by internal/state after every mutation.
type State struct {
	SelectedID      string
	Filter          Filter
	Search          string
	SortByLoad      bool
	PausedIDs       map[string]bool
	Thresholds      presence.Thresholds
	LastSelectionAt time.Time
}

// DefaultState returns the stock view state used when no durable record
// exists: atlas selected, no narrowing, 5/15 minute idle cutoffs.
func DefaultState() State {
	return State{
		SelectedID:      "atlas",
		Filter:          FilterAll,
		Search:          "",
		SortByLoad:      false,
		PausedIDs:       map[string]bool{},
		Thresholds:      presence.DefaultThresholds(),
		LastSelectionAt: time.Now(),
	}
}

// TogglePause flips the paused-set membership for id and reports the new
// membership state.
func (s *State) TogglePause(id string) bool {
	if s.PausedIDs[id] {
		delete(s.PausedIDs, id)
		return false
	}
	s.PausedIDs[id] = true
	return true
}
