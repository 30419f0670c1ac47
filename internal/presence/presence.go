// Package presence derives per-agent liveness from raw roster offsets: idle
// classification, heartbeat phase timing, and a normalized presence ratio.
// Derivation is pure; it is re-run for every agent on every render tick.
package presence

import (
	"fmt"
	"time"

	"github.com/ruinscape/opsgrid/internal/roster"
)

// IdleState classifies how long an agent has gone without recorded activity.
type IdleState int

const (
	IdleActive IdleState = iota
	IdleSoft
	IdleHard
)

func (s IdleState) String() string {
	switch s {
	case IdleActive:
		return "active"
	case IdleSoft:
		return "soft"
	case IdleHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Threshold floors. Soft idle can never drop below one minute, hard below two.
const (
	MinSoftMinutes = 1
	MinHardMinutes = 2
)

// Thresholds holds the soft/hard idle cutoffs in minutes. The invariant
// HardMinutes > SoftMinutes is maintained by the setters: the knob being
// edited wins and the other is cross-adjusted.
type Thresholds struct {
	SoftMinutes int
	HardMinutes int
}

// DefaultThresholds returns the stock 5/15 minute cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{SoftMinutes: 5, HardMinutes: 15}
}

// SetSoft clamps v to the soft floor and pushes the hard threshold up if the
// new soft value would reach it. Idempotent when the invariant already holds.
func (t *Thresholds) SetSoft(v int) {
	if v < MinSoftMinutes {
		v = MinSoftMinutes
	}
	t.SoftMinutes = v
	if t.SoftMinutes >= t.HardMinutes {
		t.HardMinutes = t.SoftMinutes + 1
	}
}

// SetHard clamps v to the hard floor and pulls the soft threshold down if the
// new hard value would reach it.
func (t *Thresholds) SetHard(v int) {
	if v < MinHardMinutes {
		v = MinHardMinutes
	}
	t.HardMinutes = v
	if t.HardMinutes <= t.SoftMinutes {
		t.SoftMinutes = t.HardMinutes - 1
	}
}

// Soft and Hard return the cutoffs as durations.
func (t Thresholds) Soft() time.Duration { return time.Duration(t.SoftMinutes) * time.Minute }
func (t Thresholds) Hard() time.Duration { return time.Duration(t.HardMinutes) * time.Minute }

// View is the derived presence record for one agent. It is recomputed fresh
// each render and never stored.
type View struct {
	Agent *roster.Agent

	LastActivityAt    time.Time
	LastActivityLabel string
	IdleAge           time.Duration
	IdleAgeLabel      string
	IdleState         IdleState

	LastHeartbeatAt    time.Time
	LastHeartbeatLabel string
	HeartbeatAge       time.Duration
	HeartbeatAgeLabel  string
	NextPing           time.Duration
	NextPingLabel      string

	PresencePct float64 // [0,1] bar-fill ratio, not a probability
}

// Derive computes the presence view for a single agent at instant now.
func Derive(a *roster.Agent, t Thresholds, now time.Time) View {
	lastActivity := now.Add(-time.Duration(a.LastActivityOffsetMin * float64(time.Minute)))
	lastHeartbeat := now.Add(-time.Duration(a.LastHeartbeatOffsetSec * float64(time.Second)))

	idleAge := now.Sub(lastActivity)
	heartbeatAge := now.Sub(lastHeartbeat)

	// Hard wins ties at the hard boundary.
	state := IdleActive
	switch {
	case idleAge >= t.Hard():
		state = IdleHard
	case idleAge >= t.Soft():
		state = IdleSoft
	}

	pct := 1 - float64(idleAge)/float64(t.Hard())
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	// Time remaining in the current heartbeat period. Interval is validated
	// positive at fixture definition; a zero interval degrades to "no
	// estimate" instead of dividing by zero.
	var nextPing time.Duration
	nextLabel := "—"
	if a.HeartbeatIntervalSec > 0 {
		interval := time.Duration(a.HeartbeatIntervalSec) * time.Second
		nextPing = interval - heartbeatAge%interval
		nextLabel = FormatDuration(nextPing)
	}

	return View{
		Agent:              a,
		LastActivityAt:     lastActivity,
		LastActivityLabel:  lastActivity.UTC().Format("15:04:05"),
		IdleAge:            idleAge,
		IdleAgeLabel:       FormatDuration(idleAge),
		IdleState:          state,
		LastHeartbeatAt:    lastHeartbeat,
		LastHeartbeatLabel: lastHeartbeat.UTC().Format("15:04:05"),
		HeartbeatAge:       heartbeatAge,
		HeartbeatAgeLabel:  FormatDuration(heartbeatAge),
		NextPing:           nextPing,
		NextPingLabel:      nextLabel,
		PresencePct:        pct,
	}
}

// DeriveAll derives presence for the whole roster, in roster order.
func DeriveAll(agents []*roster.Agent, t Thresholds, now time.Time) []View {
	views := make([]View, len(agents))
	for i, a := range agents {
		views[i] = Derive(a, t, now)
	}
	return views
}

// FormatDuration renders a duration in the dashboard's "4m 12s" style.
// Negative durations clamp to zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm %02ds", secs/60, secs%60)
}
