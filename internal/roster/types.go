// Package roster holds the mutable fleet model: agent records, incident and
// job collections, the event timeline, and the command handlers that mutate
// them. The store is passed explicitly to everything that reads or writes it.
package roster

// Status is the operational state of an agent.
type Status int

const (
	StatusOnline Status = iota
	StatusBusy
	StatusError
	StatusOffline
)

// Rank returns the sort priority for the default status ordering:
// online < busy < error < offline.
func (s Status) Rank() int { return int(s) }

func (s Status) String() string {
	switch s {
	case StatusOnline:
		return "online"
	case StatusBusy:
		return "busy"
	case StatusError:
		return "error"
	case StatusOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// ParseStatus maps a status name to its enum value. Unknown names report ok=false.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "online":
		return StatusOnline, true
	case "busy":
		return StatusBusy, true
	case "error":
		return StatusError, true
	case "offline":
		return StatusOffline, true
	default:
		return StatusOnline, false
	}
}

// Severity classifies an incident.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Priority classifies a queued job.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// EventType classifies a timeline entry.
type EventType int

const (
	EventSystem EventType = iota
	EventReview
	EventIncident
	EventDeploy
)

func (e EventType) String() string {
	switch e {
	case EventSystem:
		return "system"
	case EventReview:
		return "review"
	case EventIncident:
		return "incident"
	case EventDeploy:
		return "deploy"
	default:
		return "unknown"
	}
}

// Position is a 2-D percentage coordinate for map placement.
type Position struct {
	X int
	Y int
}

// Agent is a simulated worker record. Only command handlers on Store
// mutate it.
type Agent struct {
	ID          string
	Name        string
	Role        string
	Status      Status
	Task        string
	Latency     int // ms; 0 renders as "offline"
	QueueDepth  int
	SuccessRate float64 // 0-100
	Load        int     // clamped to [0,99]
	Position    Position
	Logs        []string // most-recent-first, capped at MaxLogs

	LatencyHistory *Ring // fixed-length sliding window of latency samples

	// Presence inputs: offsets relative to "now" at derivation time.
	LastActivityOffsetMin  float64
	LastHeartbeatOffsetSec float64
	HeartbeatIntervalSec   int
	HeartbeatPhase         string
}

// Incident is an entry in the active-incident collection.
type Incident struct {
	ID       string // INC-###
	Severity Severity
	Summary  string
	Owner    string // agent display name
	At       int64  // unix seconds; zero for seed entries without one
}

// Job is a queued unit of work. Static fixture data; never mutated.
type Job struct {
	ID       string
	Agent    string
	Type     string
	ETA      string
	Priority Priority
}

// TimelineEvent is one entry in the incident/event timeline.
type TimelineEvent struct {
	TS   string // time label, e.g. "07:14"
	Type EventType
	Text string
}
