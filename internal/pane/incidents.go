package pane

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/ruinscape/opsgrid/internal/roster"
	"github.com/ruinscape/opsgrid/internal/theme"
	"github.com/ruinscape/opsgrid/internal/view"
)

// IncidentsPane lists active incidents and the job queue.
type IncidentsPane struct {
	snap   view.Snapshot
	width  int
	height int
}

// NewIncidentsPane creates a new Incidents pane.
func NewIncidentsPane() *IncidentsPane {
	return &IncidentsPane{}
}

func (p *IncidentsPane) ID() PaneID         { return PaneIncidents }
func (p *IncidentsPane) Title() string      { return "Incidents" }
func (p *IncidentsPane) ShortTitle() string { return "🚨" }

// Badge returns the count of high-severity incidents.
func (p *IncidentsPane) Badge() int {
	count := 0
	for _, inc := range p.snap.Incidents {
		if inc.Severity == roster.SeverityHigh {
			count++
		}
	}
	return count
}

func (p *IncidentsPane) SetSize(w, h int) {
	p.width = w
	p.height = h
}

func (p *IncidentsPane) Init() tea.Cmd {
	return nil
}

func (p *IncidentsPane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(SnapshotMsg); ok {
		p.snap = msg.Snapshot
	}
	return p, nil
}

func (p *IncidentsPane) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	var b strings.Builder

	header := fmt.Sprintf("─── ACTIVE INCIDENTS (%d) ───", len(p.snap.Incidents))
	b.WriteString(theme.PaneHeaderStyle.Render(TruncateWithEllipsis(header, p.width)))
	b.WriteString("\n")

	if len(p.snap.Incidents) == 0 {
		b.WriteString(theme.MutedStyle.Render("  No active incidents"))
		b.WriteString("\n")
	}
	for _, inc := range p.snap.Incidents {
		p.renderIncident(&b, inc)
	}

	b.WriteString("\n")
	b.WriteString(theme.PaneHeaderStyle.Render(TruncateWithEllipsis("─── JOB QUEUE ───", p.width)))
	b.WriteString("\n")
	b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("  %s%s%s%s%s",
		padOrTruncate("ID", 10), padOrTruncate("AGENT", 10),
		padOrTruncate("TYPE", 26), padOrTruncate("ETA", 7), "P")))
	b.WriteString("\n")
	for _, job := range p.snap.Jobs {
		p.renderJob(&b, job)
	}

	return b.String()
}

func (p *IncidentsPane) renderIncident(b *strings.Builder, inc roster.Incident) {
	age := ""
	if inc.At > 0 {
		age = theme.MutedStyle.Render("  " + humanize.Time(time.Unix(inc.At, 0)))
	}
	line := fmt.Sprintf("  %s %s %s %s",
		SeverityIcon(inc.Severity),
		padOrTruncate(inc.Severity.String(), 7),
		inc.ID,
		inc.Summary)
	b.WriteString(TruncateWithEllipsis(line, p.width))
	b.WriteString(age)
	b.WriteString("\n")
	b.WriteString(theme.MutedStyle.Render(TruncateWithEllipsis("             owner "+inc.Owner, p.width)))
	b.WriteString("\n")
}

func (p *IncidentsPane) renderJob(b *strings.Builder, job roster.Job) {
	agent := strings.TrimPrefix(job.Agent, "Agent ")
	pri := strings.ToUpper(job.Priority.String()[:1])
	line := fmt.Sprintf("  %s%s%s%s%s",
		padOrTruncate(job.ID, 10), padOrTruncate(agent, 10),
		padOrTruncate(job.Type, 26), padOrTruncate(job.ETA, 7), pri)
	if job.Priority == roster.PriorityHigh {
		line = theme.WarnStyle.Render(line)
	}
	b.WriteString(TruncateWithEllipsis(line, p.width))
	b.WriteString("\n")
}

// Ensure IncidentsPane implements Pane at compile time.
var _ Pane = (*IncidentsPane)(nil)
