package roster

import (
	"fmt"
	"math/rand"
	"time"
)

// Collection caps. Oldest entries are evicted once a cap is reached.
const (
	MaxLogs      = 6
	MaxTimeline  = 8
	MaxIncidents = 4
)

// Task strings written by the assign and restart handlers.
const (
	AssignedTask = "Assigned: Investigate synthetic workload drift"
	RestartTask  = "Restarting run pipeline"
)

// Store owns the mutable roster and its sibling collections. It is only
// ever touched from the single event loop, so no locking is required.
type Store struct {
	Agents     []*Agent
	Incidents  []Incident
	Jobs       []Job
	Alerts     []string
	Throughput []int
	Timeline   []TimelineEvent

	StartedAt time.Time

	rng *rand.Rand
}

// NewStore builds a store populated with the fixture fleet.
func NewStore() *Store {
	return &Store{
		Agents:     seedAgents(),
		Incidents:  seedIncidents(),
		Jobs:       seedJobs(),
		Alerts:     seedAlerts(),
		Throughput: seedThroughput(),
		Timeline:   seedTimeline(),
		StartedAt:  time.Now(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Agent returns the agent with the given id, or nil.
func (s *Store) Agent(id string) *Agent {
	for _, a := range s.Agents {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// First returns the first roster agent. The roster is never empty.
func (s *Store) First() *Agent {
	return s.Agents[0]
}

// PrependLog pushes entry onto the agent's ops log, evicting beyond MaxLogs.
func (s *Store) PrependLog(a *Agent, entry string) {
	a.Logs = append([]string{entry}, a.Logs...)
	if len(a.Logs) > MaxLogs {
		a.Logs = a.Logs[:MaxLogs]
	}
}

// AppendEvent pushes an event onto the timeline, evicting beyond MaxTimeline.
func (s *Store) AppendEvent(t EventType, text string, now time.Time) {
	ev := TimelineEvent{TS: timeLabel(now), Type: t, Text: text}
	s.Timeline = append([]TimelineEvent{ev}, s.Timeline...)
	if len(s.Timeline) > MaxTimeline {
		s.Timeline = s.Timeline[:MaxTimeline]
	}
}

// Pause marks the agent busy (offline agents stay offline) and records the
// action. Returns the notification text for the toast stack.
func (s *Store) Pause(a *Agent, now time.Time) string {
	if a.Status != StatusOffline {
		a.Status = StatusBusy
	}
	s.PrependLog(a, fmt.Sprintf("Manual pause issued at %s UTC", clockLabel(now)))
	s.AppendEvent(EventSystem, fmt.Sprintf("%s paused from console", a.Name), now)
	return fmt.Sprintf("Paused %s", a.Name)
}

// Resume restores the agent to online (offline agents stay offline).
func (s *Store) Resume(a *Agent, now time.Time) string {
	if a.Status != StatusOffline {
		a.Status = StatusOnline
	}
	s.PrependLog(a, fmt.Sprintf("Manual resume issued at %s UTC", clockLabel(now)))
	s.AppendEvent(EventSystem, fmt.Sprintf("%s resumed from console", a.Name), now)
	return fmt.Sprintf("Resumed %s", a.Name)
}

// AssignTask hands the agent the fixed supervisor assignment: queue depth
// grows by one, load by 6 (clamped to 99), latency by 5 (floored at 10),
// and the new latency sample enters the sliding window.
func (s *Store) AssignTask(a *Agent, now time.Time) string {
	a.Task = AssignedTask
	a.QueueDepth++
	a.Load = clampLoad(a.Load + 6)
	a.Latency = a.Latency + 5
	if a.Latency < 10 {
		a.Latency = 10
	}
	a.LatencyHistory.Push(a.Latency)
	s.PrependLog(a, "Task assigned by supervisor console")
	s.AppendEvent(EventSystem, fmt.Sprintf("New task assigned to %s", a.Name), now)
	return fmt.Sprintf("Task assigned to %s", a.Name)
}

// Nudge simulates a liveness probe: activity and heartbeat offsets shrink
// toward their floors without touching status.
func (s *Store) Nudge(a *Agent, now time.Time) string {
	a.LastActivityOffsetMin -= 2
	if a.LastActivityOffsetMin < 0.6 {
		a.LastActivityOffsetMin = 0.6
	}
	a.LastHeartbeatOffsetSec -= 20
	if a.LastHeartbeatOffsetSec < 12 {
		a.LastHeartbeatOffsetSec = 12
	}
	s.PrependLog(a, "Liveness nudge acknowledged")
	s.AppendEvent(EventSystem, fmt.Sprintf("Nudge sent to %s", a.Name), now)
	return fmt.Sprintf("Nudged %s", a.Name)
}

// Restart forces the agent into a fresh busy run with reset presence offsets.
func (s *Store) Restart(a *Agent, now time.Time) string {
	a.Task = RestartTask
	a.Status = StatusBusy
	a.LastActivityOffsetMin = 0.8
	a.LastHeartbeatOffsetSec = 15
	s.PrependLog(a, "Run restart requested from console")
	s.AppendEvent(EventDeploy, fmt.Sprintf("%s run restarted", a.Name), now)
	return fmt.Sprintf("Restart issued for %s", a.Name)
}

// Escalate opens a high-severity incident owned by the agent. The incident
// collection keeps only the MaxIncidents most recent entries.
func (s *Store) Escalate(a *Agent, now time.Time) string {
	inc := Incident{
		ID:       fmt.Sprintf("INC-%d", s.rng.Intn(200)+900),
		Severity: SeverityHigh,
		Summary:  fmt.Sprintf("%s escalation requested from detail panel", a.Name),
		Owner:    a.Name,
		At:       now.Unix(),
	}
	s.Incidents = append([]Incident{inc}, s.Incidents...)
	if len(s.Incidents) > MaxIncidents {
		s.Incidents = s.Incidents[:MaxIncidents]
	}
	s.PrependLog(a, "Incident escalated to command lane")
	s.AppendEvent(EventIncident, fmt.Sprintf("High severity incident opened for %s", a.Name), now)
	return fmt.Sprintf("Escalated %s", inc.ID)
}

func clampLoad(v int) int {
	if v < 0 {
		return 0
	}
	if v > 99 {
		return 99
	}
	return v
}

func timeLabel(t time.Time) string {
	return t.UTC().Format("15:04")
}

func clockLabel(t time.Time) string {
	return t.UTC().Format("15:04:05")
}
