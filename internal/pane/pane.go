package pane

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruinscape/opsgrid/internal/presence"
	"github.com/ruinscape/opsgrid/internal/roster"
	"github.com/ruinscape/opsgrid/internal/theme"
	"github.com/ruinscape/opsgrid/internal/view"
)

// PaneID identifies each TUI pane.
type PaneID int

const (
	PaneOverview PaneID = iota
	PaneAgents
	PaneIncidents
	PaneTimeline
)

// Pane is the interface that all TUI panes implement.
type Pane interface {
	tea.Model
	ID() PaneID
	Title() string      // full title for wide mode (e.g., "Agents")
	ShortTitle() string // icon for narrow mode
	Badge() int         // notification count (0 = hidden)
	SetSize(w, h int)   // called on resize
}

// SnapshotMsg delivers the freshly reconciled view model to every pane.
// Panes hold the snapshot they last received and render from it; they never
// reach back into the store.
type SnapshotMsg struct {
	Snapshot view.Snapshot
}

// Command messages emitted by panes (or key handling) and executed by the
// root model. Every mutation flows through this single path.
type (
	SelectAgentMsg struct{ ID string }
	SetFilterMsg   struct{ Filter view.Filter }
	SetSearchMsg   struct{ Text string }
	FocusSearchMsg struct{}
)

// TruncateWithEllipsis truncates s to maxLen, appending "…" if truncated.
// If maxLen < 1, returns an empty string.
func TruncateWithEllipsis(s string, maxLen int) string {
	if maxLen < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// FormatAge formats a duration as a human-readable age string.
func FormatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

func padOrTruncate(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

// StatusIcon returns the colored marker for an agent status.
func StatusIcon(s roster.Status) string {
	switch s {
	case roster.StatusOnline:
		return theme.IconOnline
	case roster.StatusBusy:
		return theme.IconBusy
	case roster.StatusError:
		return theme.IconError
	default:
		return theme.IconOffline
	}
}

// SeverityIcon returns the colored marker for an incident severity.
func SeverityIcon(s roster.Severity) string {
	switch s {
	case roster.SeverityHigh:
		return theme.IconSevHigh
	case roster.SeverityMedium:
		return theme.IconSevMedium
	default:
		return theme.IconSevLow
	}
}

// IdleIcon returns the colored marker for an idle state.
func IdleIcon(s presence.IdleState) string {
	switch s {
	case presence.IdleHard:
		return theme.IconHardIdle
	case presence.IdleSoft:
		return theme.IconSoftIdle
	default:
		return theme.IconActive
	}
}

// MetricLabel renders a metric with its suffix; a zero millisecond reading
// means the agent is offline.
func MetricLabel(value int, suffix string) string {
	if value == 0 && suffix == "ms" {
		return "offline"
	}
	return fmt.Sprintf("%d%s", value, suffix)
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders samples as a unicode block sparkline of at most width
// cells (newest samples win when truncating).
func Sparkline(samples []int, width int) string {
	if len(samples) == 0 || width < 1 {
		return ""
	}
	if len(samples) > width {
		samples = samples[len(samples)-width:]
	}

	min, max := samples[0], samples[0]
	for _, v := range samples {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span < 1 {
		span = 1
	}

	var b strings.Builder
	for _, v := range samples {
		idx := (v - min) * (len(sparkRunes) - 1) / span
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// PresenceBar renders a [0,1] ratio as a fixed-width fill bar.
func PresenceBar(pct float64, width int) string {
	if width < 1 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	switch {
	case pct <= 0.25:
		return theme.FailStyle.Render(bar)
	case pct <= 0.6:
		return theme.WarnStyle.Render(bar)
	default:
		return theme.PassStyle.Render(bar)
	}
}
