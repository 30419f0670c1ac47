package pane

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruinscape/opsgrid/internal/presence"
	"github.com/ruinscape/opsgrid/internal/view"
)

func TestNewAgentsPane(t *testing.T) {
	p := NewAgentsPane()
	if p.ID() != PaneAgents {
		t.Errorf("ID() = %d, want %d", p.ID(), PaneAgents)
	}
	if p.Title() != "Agents" {
		t.Errorf("Title() = %q, want %q", p.Title(), "Agents")
	}
	if p.Badge() != 0 {
		t.Errorf("Badge() = %d, want 0 for empty pane", p.Badge())
	}
}

func TestAgentsPaneBadgeCountsIdle(t *testing.T) {
	p := NewAgentsPane()
	snap := testSnapshot(t, func(st *view.State) {
		st.Thresholds = presence.Thresholds{SoftMinutes: 1, HardMinutes: 2}
	})
	updated, _ := p.Update(SnapshotMsg{Snapshot: snap})
	p = updated.(*AgentsPane)

	if p.Badge() != snap.Idle.Count {
		t.Errorf("Badge() = %d, want idle count %d", p.Badge(), snap.Idle.Count)
	}
	if p.Badge() == 0 {
		t.Error("tight cutoffs should flag at least one idle agent")
	}
}

func TestAgentsPaneViewRendersRoster(t *testing.T) {
	p := NewAgentsPane()
	p.SetSize(120, 40)

	updated, _ := p.Update(SnapshotMsg{Snapshot: testSnapshot(t, nil)})
	p = updated.(*AgentsPane)

	out := p.View()
	for _, want := range []string{"AGENTS (8/8 shown)", "Agent Atlas", "Agent Nova", "Ops log"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAgentsPaneViewEmptyList(t *testing.T) {
	p := NewAgentsPane()
	p.SetSize(120, 40)

	updated, _ := p.Update(SnapshotMsg{Snapshot: testSnapshot(t, func(st *view.State) {
		st.Search = "zzzz"
	})})
	p = updated.(*AgentsPane)

	if out := p.View(); !strings.Contains(out, "No agents match") {
		t.Error("empty list placeholder missing")
	}
}

func TestAgentsPaneMoveSelection(t *testing.T) {
	p := NewAgentsPane()
	updated, _ := p.Update(SnapshotMsg{Snapshot: testSnapshot(t, nil)})
	p = updated.(*AgentsPane)

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if cmd == nil {
		t.Fatal("j on a populated list should emit a select command")
	}
	msg := cmd()
	sel, ok := msg.(SelectAgentMsg)
	if !ok {
		t.Fatalf("emitted %T, want SelectAgentMsg", msg)
	}
	if sel.ID != p.snap.AgentList[1].Agent.ID {
		t.Errorf("selected %q, want list neighbor %q", sel.ID, p.snap.AgentList[1].Agent.ID)
	}
}

func TestAgentsPaneMoveSelectionClampsAtEdges(t *testing.T) {
	p := NewAgentsPane()
	updated, _ := p.Update(SnapshotMsg{Snapshot: testSnapshot(t, nil)})
	p = updated.(*AgentsPane)

	// Default selection is the list head; moving up has nowhere to go.
	if cmd := p.moveSelection(-1); cmd != nil {
		t.Error("move above list head should be a no-op")
	}
	if cmd := p.moveSelection(len(p.snap.AgentList)); cmd != nil {
		t.Error("move past list tail should be a no-op")
	}
}

func TestAgentsPaneSearchFocusFlow(t *testing.T) {
	p := NewAgentsPane()
	updated, _ := p.Update(SnapshotMsg{Snapshot: testSnapshot(t, nil)})
	p = updated.(*AgentsPane)

	if p.SearchFocused() {
		t.Fatal("search should start blurred")
	}

	updated, _ = p.Update(FocusSearchMsg{})
	p = updated.(*AgentsPane)
	if !p.SearchFocused() {
		t.Fatal("FocusSearchMsg should focus the input")
	}

	// Typing emits the live search text as a command message.
	updated, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	p = updated.(*AgentsPane)
	if cmd == nil {
		t.Fatal("typing should emit a search command")
	}
	found := false
	collectSearchMsgs(cmd(), &found)
	if !found {
		t.Error("no SetSearchMsg emitted while typing")
	}

	updated, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	p = updated.(*AgentsPane)
	if p.SearchFocused() {
		t.Error("esc should blur the input")
	}
}

// collectSearchMsgs walks a possibly batched command result looking for
// SetSearchMsg.
func collectSearchMsgs(msg tea.Msg, found *bool) {
	switch m := msg.(type) {
	case SetSearchMsg:
		*found = true
	case tea.BatchMsg:
		for _, c := range m {
			if c != nil {
				collectSearchMsgs(c(), found)
			}
		}
	}
}

func TestAgentsPaneSnapshotSyncsSearchInput(t *testing.T) {
	p := NewAgentsPane()
	updated, _ := p.Update(SnapshotMsg{Snapshot: testSnapshot(t, func(st *view.State) {
		st.Search = "nova"
	})})
	p = updated.(*AgentsPane)
	if p.search.Value() != "nova" {
		t.Errorf("search input = %q, want synced %q", p.search.Value(), "nova")
	}
}

func TestAgentsPaneDetailShowsLatestSample(t *testing.T) {
	p := NewAgentsPane()
	p.SetSize(140, 40)
	updated, _ := p.Update(SnapshotMsg{Snapshot: testSnapshot(t, nil)})
	p = updated.(*AgentsPane)

	// The trend line ends with the newest window sample (42ms for the
	// default selection).
	if out := p.View(); !strings.Contains(out, "now 42ms") {
		t.Error("latency trend missing newest sample")
	}
}

func TestAgentsPaneDetailShowsPaused(t *testing.T) {
	p := NewAgentsPane()
	p.SetSize(140, 40)
	updated, _ := p.Update(SnapshotMsg{Snapshot: testSnapshot(t, func(st *view.State) {
		st.PausedIDs["atlas"] = true
	})})
	p = updated.(*AgentsPane)

	if out := p.View(); !strings.Contains(out, "(paused)") {
		t.Error("detail card missing paused marker")
	}
}
