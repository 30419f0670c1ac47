// Package app wires the roster store, view state, presence derivation, and
// reconciliation into the root bubbletea model. Every mutation — key press,
// pane command, toast expiry — flows through the single Update loop, then
// the full view model is re-derived and pushed to the panes.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ruinscape/opsgrid/internal/config"
	"github.com/ruinscape/opsgrid/internal/pane"
	"github.com/ruinscape/opsgrid/internal/presence"
	"github.com/ruinscape/opsgrid/internal/roster"
	storage "github.com/ruinscape/opsgrid/internal/state"
	"github.com/ruinscape/opsgrid/internal/theme"
	"github.com/ruinscape/opsgrid/internal/view"
)

// renderTickMsg drives the pull-based render cycle: presence ages advance
// with the wall clock even when nothing else happens.
type renderTickMsg time.Time

// Model is the root bubbletea Model that owns the store and view state and
// orchestrates the panes.
type Model struct {
	panes      []pane.Pane
	activePane int
	width      int
	height     int
	keys       KeyMap
	help       help.Model
	showHelp   bool

	cfg    *config.Config
	store  *roster.Store
	state  view.State
	saver  storage.Storage
	toasts []Toast
}

// New creates a root Model with the given config. View state is merged
// from the durable record (or defaults) before the first render.
func New(cfg config.Config) Model {
	saver := storage.Storage{Path: cfg.StatePath}

	h := help.New()
	h.ShowAll = true

	return Model{
		panes: []pane.Pane{
			pane.NewOverviewPane(),
			pane.NewAgentsPane(),
			pane.NewIncidentsPane(),
			pane.NewTimelinePane(),
		},
		keys:  DefaultKeyMap(),
		help:  h,
		cfg:   &cfg,
		store: roster.NewStore(),
		state: saver.Load(),
		saver: saver,
	}
}

// Init emits the first render tick immediately; the handler schedules the
// recurring ticks.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return renderTickMsg(time.Now()) }
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentH := ContentHeight(msg.Height)
		for i, p := range m.panes {
			p.SetSize(msg.Width, contentH)
			m.panes[i] = p
		}
		return m, m.syncPanes()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case renderTickMsg:
		return m, tea.Batch(m.syncPanes(), m.scheduleTick())

	case toastExpiredMsg:
		m.removeToast(msg.ID)
		return m, nil

	case pane.SelectAgentMsg:
		if msg.ID == m.state.SelectedID {
			return m, nil
		}
		m.state.SelectedID = msg.ID
		m.state.LastSelectionAt = time.Now()
		return m, m.commit()

	case pane.SetFilterMsg:
		m.state.Filter = msg.Filter
		return m, m.commit()

	case pane.SetSearchMsg:
		m.state.Search = msg.Text
		return m, m.commit()
	}

	return m, nil
}

// handleKey processes global key bindings, forwarding unhandled keys to the
// active pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// When the search box is capturing input, only ctrl+c stays global.
	if ap, ok := m.panes[m.activePane].(*pane.AgentsPane); ok && ap.SearchFocused() {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateActivePane(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.activePane = (m.activePane + 1) % len(m.panes)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.activePane = (m.activePane - 1 + len(m.panes)) % len(m.panes)
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.activePane = m.paneIndex(pane.PaneAgents)
		newModel, cmd := m.panes[m.activePane].Update(pane.FocusSearchMsg{})
		if p, ok := newModel.(pane.Pane); ok {
			m.panes[m.activePane] = p
		}
		return m, cmd

	case key.Matches(msg, m.keys.Filter):
		m.state.Filter = m.state.Filter.Cycle()
		return m, m.commit()

	case key.Matches(msg, m.keys.Back):
		// With no overlay open, esc clears the narrowing back to the full
		// roster. Both resets flow through the command surface.
		if m.state.Filter == view.FilterAll && m.state.Search == "" {
			return m, nil
		}
		return m, tea.Batch(
			func() tea.Msg { return pane.SetFilterMsg{Filter: view.FilterAll} },
			func() tea.Msg { return pane.SetSearchMsg{Text: ""} },
		)

	case key.Matches(msg, m.keys.Sort):
		m.state.SortByLoad = !m.state.SortByLoad
		note := "Sorting by status priority"
		if m.state.SortByLoad {
			note = "Sorting by load, heaviest first"
		}
		return m, tea.Batch(m.pushToast(note), m.commit())

	case key.Matches(msg, m.keys.SoftDown):
		return m.adjustThreshold(false, -1)
	case key.Matches(msg, m.keys.SoftUp):
		return m.adjustThreshold(false, +1)
	case key.Matches(msg, m.keys.HardDown):
		return m.adjustThreshold(true, -1)
	case key.Matches(msg, m.keys.HardUp):
		return m.adjustThreshold(true, +1)

	case key.Matches(msg, m.keys.Pause):
		sel := m.selectedAgent()
		now := time.Now()
		var note string
		if m.state.TogglePause(sel.ID) {
			note = m.store.Pause(sel, now)
		} else {
			note = m.store.Resume(sel, now)
		}
		return m, tea.Batch(m.pushToast(note), m.commit())

	case key.Matches(msg, m.keys.Assign):
		note := m.store.AssignTask(m.selectedAgent(), time.Now())
		return m, tea.Batch(m.pushToast(note), m.commit())

	case key.Matches(msg, m.keys.Nudge):
		note := m.store.Nudge(m.selectedAgent(), time.Now())
		return m, tea.Batch(m.pushToast(note), m.commit())

	case key.Matches(msg, m.keys.Restart):
		note := m.store.Restart(m.selectedAgent(), time.Now())
		return m, tea.Batch(m.pushToast(note), m.commit())

	case key.Matches(msg, m.keys.Escalate):
		note := m.store.Escalate(m.selectedAgent(), time.Now())
		return m, tea.Batch(m.pushToast(note), m.commit())
	}

	// Number keys for direct pane switching.
	if idx, ok := m.paneKeyIndex(msg); ok {
		m.activePane = idx
		return m, nil
	}

	// Forward to active pane (selection movement, viewport scrolling).
	return m.updateActivePane(msg)
}

// adjustThreshold nudges one idle cutoff by delta minutes. The setters
// clamp to the floors and cross-adjust the other cutoff.
func (m Model) adjustThreshold(hard bool, delta int) (tea.Model, tea.Cmd) {
	t := &m.state.Thresholds
	if hard {
		t.SetHard(t.HardMinutes + delta)
	} else {
		t.SetSoft(t.SoftMinutes + delta)
	}
	note := fmt.Sprintf("Idle thresholds: soft %dm / hard %dm", t.SoftMinutes, t.HardMinutes)
	return m, tea.Batch(m.pushToast(note), m.commit())
}

// selectedAgent resolves the current selection against the roster. The
// reconciler repairs dangling selections every render, so a miss can only
// happen before the first sync; fall back to the roster head.
func (m *Model) selectedAgent() *roster.Agent {
	if a := m.store.Agent(m.state.SelectedID); a != nil {
		return a
	}
	return m.store.First()
}

// commit persists the durable view-state subset and pushes a fresh
// snapshot to every pane.
func (m *Model) commit() tea.Cmd {
	m.saver.Save(m.state)
	return m.syncPanes()
}

// syncPanes re-derives presence for the whole roster, reconciles the view
// model, and forwards it to all panes.
func (m *Model) syncPanes() tea.Cmd {
	now := time.Now()
	views := presence.DeriveAll(m.store.Agents, m.state.Thresholds, now)
	snap := view.Reconcile(m.store, &m.state, views, now)
	cmds := m.forwardToAllPanes(pane.SnapshotMsg{Snapshot: snap})
	return tea.Batch(cmds...)
}

func (m Model) scheduleTick() tea.Cmd {
	interval := time.Duration(m.cfg.TickSeconds) * time.Second
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return renderTickMsg(t)
	})
}

// paneIndex returns the index of the pane with the given id.
func (m Model) paneIndex(id pane.PaneID) int {
	for i, p := range m.panes {
		if p.ID() == id {
			return i
		}
	}
	return 0
}

// paneKeyIndex returns the pane index if msg matches a pane number key.
func (m Model) paneKeyIndex(msg tea.KeyMsg) (int, bool) {
	paneKeys := []key.Binding{m.keys.Pane1, m.keys.Pane2, m.keys.Pane3, m.keys.Pane4}
	for i, k := range paneKeys {
		if key.Matches(msg, k) && i < len(m.panes) {
			return i, true
		}
	}
	return 0, false
}

// updateActivePane sends a message to the active pane and stores the result.
func (m Model) updateActivePane(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.activePane >= len(m.panes) {
		return m, nil
	}
	newModel, cmd := m.panes[m.activePane].Update(msg)
	if newPane, ok := newModel.(pane.Pane); ok {
		m.panes[m.activePane] = newPane
	}
	return m, cmd
}

// forwardToAllPanes sends a message to every pane and collects commands.
func (m *Model) forwardToAllPanes(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for i, p := range m.panes {
		newModel, cmd := p.Update(msg)
		if newPane, ok := newModel.(pane.Pane); ok {
			m.panes[i] = newPane
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// View renders the full UI: tab bar, active pane content (or the help
// overlay), the toast line, and the status bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	toastLine := m.renderToastLine()

	var content string
	if m.showHelp {
		content = m.renderHelp()
	} else if m.activePane < len(m.panes) {
		content = m.panes[m.activePane].View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, toastLine, statusBar)
}

// renderTabBar renders the tab bar across the top of the screen. Narrow
// terminals get icons, medium ones full titles, wide ones titles with
// separators.
func (m Model) renderTabBar() string {
	mode := GetLayoutMode(m.width)

	var parts []string
	for i, p := range m.panes {
		label := p.Title()
		if mode == LayoutNarrow {
			label = p.ShortTitle()
		}
		if badge := p.Badge(); badge > 0 {
			label += fmt.Sprintf("(%d)", badge)
		}
		style := theme.TabInactiveStyle
		if i == m.activePane {
			style = theme.TabActiveStyle.Underline(true)
		}
		parts = append(parts, style.Render(label))
	}

	if mode == LayoutWide {
		sep := theme.MutedStyle.Render("|")
		return strings.Join(parts, " "+sep+" ")
	}
	return strings.Join(parts, " ")
}

// renderToastLine joins the live toast stack onto the reserved notice row.
func (m Model) renderToastLine() string {
	if len(m.toasts) == 0 {
		return ""
	}
	var parts []string
	for _, t := range m.toasts {
		parts = append(parts, "◈ "+t.Text)
	}
	line := theme.ToastStyle.Render(strings.Join(parts, "  ·  "))
	return pane.TruncateWithEllipsis(line, m.width)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	age := pane.FormatAge(time.Since(m.state.LastSelectionAt))
	sel := theme.AccentStyle.Render("▸ "+m.state.SelectedID) +
		theme.MutedStyle.Render("  selected "+age)

	sortLabel := "status"
	if m.state.SortByLoad {
		sortLabel = "load"
	}
	mode := theme.MutedStyle.Render(fmt.Sprintf("filter: %s  sort: %s", m.state.Filter, sortLabel))

	keys := theme.MutedStyle.Render("?=help  q=quit")

	bar := strings.Join([]string{sel, mode, keys}, "  |  ")
	return theme.StatusBarStyle.Width(m.width).Render(bar)
}

// renderHelp draws the keyboard shortcut overlay.
func (m Model) renderHelp() string {
	intro := wordwrap.String(
		"Commands act on the selected agent. Idle thresholds drive the presence "+
			"bars: soft idle flags an agent for monitoring, hard idle drains its "+
			"presence to zero and escalates the banner.", m.width-8)

	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.HelpTitleStyle.Render("Keyboard Shortcuts"),
		"",
		theme.MutedStyle.Render(intro),
		"",
		m.help.View(m.keys),
	)
	return theme.HelpBoxStyle.Render(body)
}

// Ensure KeyMap satisfies help.KeyMap at compile time.
var _ help.KeyMap = KeyMap{}
