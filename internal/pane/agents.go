package pane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ruinscape/opsgrid/internal/presence"
	"github.com/ruinscape/opsgrid/internal/theme"
	"github.com/ruinscape/opsgrid/internal/view"
)

// AgentsPane shows the filtered agent list with live presence bars on the
// left and the selected agent's detail card on the right.
type AgentsPane struct {
	snap   view.Snapshot
	search textinput.Model
	width  int
	height int
	keys   agentKeys
}

type agentKeys struct {
	Up   key.Binding
	Down key.Binding
}

// NewAgentsPane creates a new Agents pane.
func NewAgentsPane() *AgentsPane {
	ti := textinput.New()
	ti.Placeholder = "Search agent name... (/)"
	ti.CharLimit = 40
	ti.Prompt = "⌕ "

	return &AgentsPane{
		search: ti,
		keys: agentKeys{
			Up: key.NewBinding(
				key.WithKeys("k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("j", "down"),
			),
		},
	}
}

func (p *AgentsPane) ID() PaneID         { return PaneAgents }
func (p *AgentsPane) Title() string      { return "Agents" }
func (p *AgentsPane) ShortTitle() string { return "🤖" }

// Badge returns the count of agents beyond the soft idle threshold.
func (p *AgentsPane) Badge() int { return p.snap.Idle.Count }

func (p *AgentsPane) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// SearchFocused reports whether the search box is capturing keystrokes, in
// which case global key bindings must stand down.
func (p *AgentsPane) SearchFocused() bool { return p.search.Focused() }

func (p *AgentsPane) Init() tea.Cmd {
	return nil
}

func (p *AgentsPane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		p.snap = msg.Snapshot
		// Keep the input in sync with reconciled state unless the user is
		// mid-edit.
		if !p.search.Focused() && p.search.Value() != p.snap.Search {
			p.search.SetValue(p.snap.Search)
		}
		return p, nil

	case FocusSearchMsg:
		p.search.Focus()
		return p, textinput.Blink

	case tea.KeyMsg:
		if p.search.Focused() {
			switch msg.String() {
			case "esc", "enter":
				p.search.Blur()
				return p, nil
			}
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			text := p.search.Value()
			return p, tea.Batch(cmd, func() tea.Msg { return SetSearchMsg{Text: text} })
		}

		switch {
		case key.Matches(msg, p.keys.Up):
			return p, p.moveSelection(-1)
		case key.Matches(msg, p.keys.Down):
			return p, p.moveSelection(1)
		}
	}
	return p, nil
}

// moveSelection emits a select command for the list neighbor of the current
// selection. Selection repair guarantees the selection is in the list
// whenever the list is non-empty.
func (p *AgentsPane) moveSelection(delta int) tea.Cmd {
	list := p.snap.AgentList
	if len(list) == 0 {
		return nil
	}
	idx := 0
	for i, v := range list {
		if v.Agent.ID == p.snap.Selected.Agent.ID {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 || idx >= len(list) {
		return nil
	}
	id := list[idx].Agent.ID
	return func() tea.Msg { return SelectAgentMsg{ID: id} }
}

func (p *AgentsPane) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	listWidth := p.width * 5 / 9
	if listWidth < 30 {
		listWidth = p.width
	}
	detailWidth := p.width - listWidth - 2

	left := p.renderList(listWidth)
	if detailWidth < 24 {
		return left
	}
	right := p.renderDetail(detailWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderList builds the sidebar: controls header plus one block per agent.
func (p *AgentsPane) renderList(width int) string {
	var b strings.Builder

	header := fmt.Sprintf("─── AGENTS (%d/%d shown) ───", len(p.snap.AgentList), len(p.snap.AllAgents))
	b.WriteString(theme.PaneHeaderStyle.Render(TruncateWithEllipsis(header, width)))
	b.WriteString("\n")

	b.WriteString(p.renderControls(width))
	b.WriteString("\n")
	b.WriteString(p.search.View())
	b.WriteString("\n\n")

	if len(p.snap.AgentList) == 0 {
		b.WriteString(theme.MutedStyle.Render("  No agents match the current filter"))
		return b.String()
	}

	for _, v := range p.snap.AgentList {
		p.renderAgentRow(&b, v, width)
	}

	footer := theme.MutedStyle.Render("j/k select  p pause  a assign  n nudge  r restart  e escalate")
	b.WriteString(TruncateWithEllipsis(footer, width))
	return b.String()
}

// renderControls shows the filter chips, sort flag, and idle thresholds.
func (p *AgentsPane) renderControls(width int) string {
	var chips []string
	for f := view.FilterAll; f <= view.FilterOffline; f++ {
		label := f.String()
		if f == p.snap.Filter {
			chips = append(chips, theme.AccentStyle.Bold(true).Render("["+label+"]"))
		} else {
			chips = append(chips, theme.MutedStyle.Render(label))
		}
	}

	sortLabel := theme.MutedStyle.Render("sort: status")
	if p.snap.SortByLoad {
		sortLabel = theme.AccentStyle.Render("sort: load ↓")
	}

	t := p.snap.Thresholds
	thresholds := theme.MutedStyle.Render(
		fmt.Sprintf("idle soft %dm / hard %dm", t.SoftMinutes, t.HardMinutes))

	line1 := strings.Join(chips, " ")
	line2 := sortLabel + "  " + thresholds
	return TruncateWithEllipsis(line1, width) + "\n" + TruncateWithEllipsis(line2, width)
}

func (p *AgentsPane) renderAgentRow(b *strings.Builder, v presence.View, width int) {
	a := v.Agent
	selected := a.ID == p.snap.Selected.Agent.ID

	nameCol := 14
	roleCol := 20
	name := padOrTruncate(a.Name, nameCol)
	role := padOrTruncate(a.Role, roleCol)
	load := fmt.Sprintf("%2d%%", a.Load)

	line := fmt.Sprintf("  %s %s %s %s %s", StatusIcon(a.Status), name, role, a.Status, load)
	if selected {
		line = theme.AccentStyle.Bold(true).Render("▸" + line[1:])
	}
	b.WriteString(TruncateWithEllipsis(line, width))
	b.WriteString("\n")

	meta := fmt.Sprintf("      %s last %s  hb %s  next %s",
		IdleIcon(v.IdleState), v.IdleAgeLabel, v.HeartbeatAgeLabel, v.NextPingLabel)
	b.WriteString(theme.MutedStyle.Render(TruncateWithEllipsis(meta, width-12)))
	b.WriteString(" ")
	b.WriteString(PresenceBar(v.PresencePct, 10))
	b.WriteString("\n")
}

// renderDetail builds the selected agent's card: metrics, presence, latency
// trend, and ops log.
func (p *AgentsPane) renderDetail(width int) string {
	v := p.snap.Selected
	a := v.Agent
	if a == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.PaneHeaderStyle.Render(TruncateWithEllipsis("─── "+a.Name+" ───", width)))
	b.WriteString("\n")
	b.WriteString(theme.MutedStyle.Render(TruncateWithEllipsis(a.Role, width)))
	b.WriteString("\n")

	status := fmt.Sprintf("%s %s", StatusIcon(a.Status), a.Status)
	if p.snap.SelectedPaused {
		status += theme.WarnStyle.Render("  (paused)")
	}
	b.WriteString(status)
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Current task", a.Task},
		{"Latency", MetricLabel(a.Latency, "ms")},
		{"Queue depth", fmt.Sprintf("%d", a.QueueDepth)},
		{"Success rate", fmt.Sprintf("%.1f%%", a.SuccessRate)},
	}
	for _, r := range rows {
		line := fmt.Sprintf("  %s %s", padOrTruncate(r[0], 14), r[1])
		b.WriteString(TruncateWithEllipsis(line, width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.PaneHeaderStyle.Render("Presence"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s  ", IdleIcon(v.IdleState), v.IdleState))
	b.WriteString(PresenceBar(v.PresencePct, 16))
	b.WriteString(fmt.Sprintf(" %3.0f%%\n", v.PresencePct*100))
	b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("  last activity %s UTC (%s ago)", v.LastActivityLabel, v.IdleAgeLabel)))
	b.WriteString("\n")
	b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("  heartbeat %s ago · phase %s · next ping %s",
		v.HeartbeatAgeLabel, a.HeartbeatPhase, v.NextPingLabel)))
	b.WriteString("\n\n")

	b.WriteString(theme.PaneHeaderStyle.Render("Latency trend"))
	b.WriteString("\n  ")
	b.WriteString(theme.AccentStyle.Render(Sparkline(a.LatencyHistory.Values(), width-12)))
	b.WriteString(theme.MutedStyle.Render("  now " + MetricLabel(a.LatencyHistory.Last(), "ms")))
	b.WriteString("\n\n")

	b.WriteString(theme.PaneHeaderStyle.Render("Ops log"))
	b.WriteString("\n")
	for _, entry := range a.Logs {
		b.WriteString(theme.MutedStyle.Render(TruncateWithEllipsis("  · "+entry, width)))
		b.WriteString("\n")
	}

	return b.String()
}

// Ensure AgentsPane implements Pane at compile time.
var _ Pane = (*AgentsPane)(nil)

// Ensure SnapshotMsg implements tea.Msg.
var _ tea.Msg = SnapshotMsg{}
