package pane

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/ruinscape/opsgrid/internal/presence"
	"github.com/ruinscape/opsgrid/internal/theme"
	"github.com/ruinscape/opsgrid/internal/view"
)

// OverviewPane is the home screen: KPI strip, idle banner, alerts ticker,
// throughput sparkline, and the office sector grid.
type OverviewPane struct {
	snap     view.Snapshot
	width    int
	height   int
	viewport viewport.Model
}

// NewOverviewPane creates a new Overview pane.
func NewOverviewPane() *OverviewPane {
	return &OverviewPane{viewport: viewport.New(0, 0)}
}

func (p *OverviewPane) ID() PaneID         { return PaneOverview }
func (p *OverviewPane) Title() string      { return "Overview" }
func (p *OverviewPane) ShortTitle() string { return "🏠" }

// Badge surfaces the hard-idle count.
func (p *OverviewPane) Badge() int { return p.snap.Idle.HardCount }

func (p *OverviewPane) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.viewport.Width = w
	p.viewport.Height = h
	p.viewport.SetContent(p.renderContent())
}

func (p *OverviewPane) Init() tea.Cmd {
	return nil
}

func (p *OverviewPane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (p *OverviewPane) View() string {
	return p.viewport.View()
}

func (p *OverviewPane) renderContent() string {
	if p.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.PaneHeaderStyle.Render(centerPad("RUINSCAPE OPERATIONS GRID", p.width)))
	b.WriteString("\n\n")

	p.renderKPIs(&b)
	p.renderIdleBanner(&b)
	p.renderTicker(&b)
	p.renderThroughput(&b)
	p.renderOfficeMap(&b)

	return b.String()
}

// renderKPIs draws the aggregate header strip.
func (p *OverviewPane) renderKPIs(b *strings.Builder) {
	k := p.snap.KPIs

	live := theme.PassStyle.Render("Yes")
	if !k.AllLive {
		live = theme.FailStyle.Render("No")
	}

	blocks := []string{
		kpiBlock("All agents live?", live, k.AllLiveDetail),
		kpiBlock("Uptime", k.Uptime, "stability window"),
		kpiBlock("Active Jobs", fmt.Sprintf("%d", k.ActiveJobs), fmt.Sprintf("%d agents engaged", k.BusyAgents)),
		kpiBlock("Avg Latency", fmt.Sprintf("%dms", k.AvgLatency), "online + busy agents"),
		kpiBlock("Incidents", fmt.Sprintf("%d", k.Incidents), fmt.Sprintf("%d high severity", k.CriticalIncidents)),
	}

	for _, block := range blocks {
		b.WriteString(TruncateWithEllipsis(block, p.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func kpiBlock(label, value, sub string) string {
	line := fmt.Sprintf("  %s %s", padOrTruncate(label, 18), value)
	if sub != "" {
		line += theme.MutedStyle.Render("  — " + sub)
	}
	return line
}

// renderIdleBanner warns when any agent is beyond the soft threshold.
func (p *OverviewPane) renderIdleBanner(b *strings.Builder) {
	idle := p.snap.Idle
	if !idle.HasIdle {
		return
	}
	style := theme.BannerStyle
	if idle.HasHardIdle {
		style = theme.BannerCriticalStyle
	}
	text := fmt.Sprintf("  Idle detected: %d hard idle · %d agents beyond threshold — nudge from the Agents pane",
		idle.HardCount, idle.Count)
	b.WriteString(style.Render(TruncateWithEllipsis(text, p.width)))
	b.WriteString("\n\n")
}

func (p *OverviewPane) renderTicker(b *strings.Builder) {
	b.WriteString(theme.PaneHeaderStyle.Render("Alerts"))
	b.WriteString("\n")
	for _, a := range p.snap.Alerts {
		b.WriteString(theme.MutedStyle.Render(TruncateWithEllipsis("  "+a, p.width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (p *OverviewPane) renderThroughput(b *strings.Builder) {
	b.WriteString(theme.PaneHeaderStyle.Render("Throughput (jobs/min)"))
	b.WriteString("\n  ")
	width := p.width - 10
	if width > len(p.snap.Throughput)*2 {
		width = len(p.snap.Throughput) * 2
	}
	b.WriteString(theme.AccentStyle.Render(Sparkline(p.snap.Throughput, width)))
	if n := len(p.snap.Throughput); n > 0 {
		b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("  now %d", p.snap.Throughput[n-1])))
	}
	b.WriteString("\n\n")
}

// renderOfficeMap lays the stations out in map order: rows by vertical
// position band, columns left-to-right.
func (p *OverviewPane) renderOfficeMap(b *strings.Builder) {
	b.WriteString(theme.PaneHeaderStyle.Render("Ruin Office Sector"))
	b.WriteString("\n")

	stations := make([]presence.View, len(p.snap.AllAgents))
	copy(stations, p.snap.AllAgents)
	sort.SliceStable(stations, func(i, j int) bool {
		pi, pj := stations[i].Agent.Position, stations[j].Agent.Position
		if pi.Y/40 != pj.Y/40 {
			return pi.Y < pj.Y
		}
		return pi.X < pj.X
	})

	band := -1
	var row []string
	flush := func() {
		if len(row) > 0 {
			b.WriteString(TruncateWithEllipsis("  "+strings.Join(row, "   "), p.width))
			b.WriteString("\n")
			row = nil
		}
	}
	for _, v := range stations {
		if v.Agent.Position.Y/40 != band {
			flush()
			band = v.Agent.Position.Y / 40
		}
		name := strings.TrimPrefix(v.Agent.Name, "Agent ")
		cell := fmt.Sprintf("%s %s", StatusIcon(v.Agent.Status), padOrTruncate(name, 7))
		if v.Agent.ID == p.snap.Selected.Agent.ID {
			cell = theme.AccentStyle.Bold(true).Render(cell)
		}
		row = append(row, cell)
	}
	flush()
}

func centerPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}

// Ensure OverviewPane implements Pane at compile time.
var _ Pane = (*OverviewPane)(nil)
