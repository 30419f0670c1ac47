package pane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruinscape/opsgrid/internal/presence"
	"github.com/ruinscape/opsgrid/internal/roster"
	"github.com/ruinscape/opsgrid/internal/theme"
	"github.com/ruinscape/opsgrid/internal/view"
)

// TimelinePane shows the incident/event timeline and the fleet heartbeat
// timeline.
type TimelinePane struct {
	snap     view.Snapshot
	width    int
	height   int
	viewport viewport.Model
}

// NewTimelinePane creates a new Timeline pane.
func NewTimelinePane() *TimelinePane {
	return &TimelinePane{viewport: viewport.New(0, 0)}
}

func (p *TimelinePane) ID() PaneID         { return PaneTimeline }
func (p *TimelinePane) Title() string      { return "Timeline" }
func (p *TimelinePane) ShortTitle() string { return "🕒" }
func (p *TimelinePane) Badge() int         { return 0 }

func (p *TimelinePane) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.viewport.Width = w
	p.viewport.Height = h
	p.viewport.SetContent(p.renderContent())
}

func (p *TimelinePane) Init() tea.Cmd {
	return nil
}

func (p *TimelinePane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		p.snap = msg.Snapshot
		p.viewport.SetContent(p.renderContent())
		return p, nil
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *TimelinePane) View() string {
	return p.viewport.View()
}

func (p *TimelinePane) renderContent() string {
	if p.width == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.PaneHeaderStyle.Render(TruncateWithEllipsis("─── INCIDENT / EVENT TIMELINE ───", p.width)))
	b.WriteString("\n")
	for _, ev := range p.snap.Timeline {
		line := fmt.Sprintf("  %s  %s  %s", ev.TS, eventTag(ev.Type), ev.Text)
		b.WriteString(TruncateWithEllipsis(line, p.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.PaneHeaderStyle.Render(TruncateWithEllipsis("─── HEARTBEAT TIMELINE ───", p.width)))
	b.WriteString("\n")
	for _, hb := range p.snap.Heartbeats {
		line := fmt.Sprintf("  %s  %s  %s • heartbeat age %s",
			hb.TS, heartbeatTag(hb), hb.Agent, hb.AgeLabel)
		b.WriteString(TruncateWithEllipsis(line, p.width))
		b.WriteString("\n")
	}

	return b.String()
}

func eventTag(t roster.EventType) string {
	label := padOrTruncate(t.String(), 8)
	switch t {
	case roster.EventIncident:
		return theme.FailStyle.Render(label)
	case roster.EventDeploy:
		return theme.AccentStyle.Render(label)
	case roster.EventReview:
		return theme.WarnStyle.Render(label)
	default:
		return theme.MutedStyle.Render(label)
	}
}

// heartbeatTag colors the phase label by idle state, mirroring the event
// tag palette: hard idle reads as an incident, soft as a review.
func heartbeatTag(hb view.HeartbeatEntry) string {
	label := padOrTruncate(hb.Phase, 10)
	switch hb.IdleState {
	case presence.IdleHard:
		return theme.FailStyle.Render(label)
	case presence.IdleSoft:
		return theme.WarnStyle.Render(label)
	default:
		return theme.MutedStyle.Render(label)
	}
}

// Ensure TimelinePane implements Pane at compile time.
var _ Pane = (*TimelinePane)(nil)
