package roster

// Seed data for the operations grid. The roster is a closed fixture set:
// there is no live data source, and the records only change through the
// command handlers on Store.

const latencyWindow = 12

func seedAgents() []*Agent {
	return []*Agent{
		{
			ID:          "atlas",
			Name:        "Agent Atlas",
			Role:        "Routing Orchestrator",
			Status:      StatusOnline,
			Task:        "Balancing inference shards",
			Latency:     42,
			QueueDepth:  5,
			SuccessRate: 98.9,
			Load:        44,
			Position:    Position{X: 12, Y: 20},
			Logs: []string{
				"Heartbeat stable",
				"Rerouted APAC traffic",
				"No failed handoffs in last hour",
			},
			LatencyHistory:         NewRing(latencyWindow, 40, 44, 41, 46, 43, 39, 45, 42, 44, 40, 43, 42),
			LastActivityOffsetMin:  0.4,
			LastHeartbeatOffsetSec: 9,
			HeartbeatIntervalSec:   30,
			HeartbeatPhase:         "steady",
		},
		{
			ID:          "echo",
			Name:        "Agent Echo",
			Role:        "Comms QA Monitor",
			Status:      StatusBusy,
			Task:        "Auditing escalation transcript",
			Latency:     89,
			QueueDepth:  11,
			SuccessRate: 96.4,
			Load:        78,
			Position:    Position{X: 33, Y: 24},
			Logs: []string{
				"Flagged tone mismatch in incident #847",
				"Queued compliance summary",
				"Manual review in progress",
			},
			LatencyHistory:         NewRing(latencyWindow, 78, 82, 85, 80, 88, 91, 86, 84, 90, 87, 92, 89),
			LastActivityOffsetMin:  1.6,
			LastHeartbeatOffsetSec: 21,
			HeartbeatIntervalSec:   30,
			HeartbeatPhase:         "steady",
		},
		{
			ID:          "forge",
			Name:        "Agent Forge",
			Role:        "Build & Infra",
			Status:      StatusOnline,
			Task:        "Canary deploy validation",
			Latency:     53,
			QueueDepth:  7,
			SuccessRate: 97.3,
			Load:        61,
			Position:    Position{X: 55, Y: 22},
			Logs: []string{
				"Rebuilt worker image v2.14",
				"Watching rollback guardrail",
				"CPU saturation nominal",
			},
			LatencyHistory:         NewRing(latencyWindow, 49, 51, 55, 52, 58, 54, 50, 53, 56, 51, 54, 53),
			LastActivityOffsetMin:  2.3,
			LastHeartbeatOffsetSec: 14,
			HeartbeatIntervalSec:   45,
			HeartbeatPhase:         "steady",
		},
		{
			ID:          "nova",
			Name:        "Agent Nova",
			Role:        "Research Analyst",
			Status:      StatusOffline,
			Task:        "Awaiting wake schedule",
			Latency:     0,
			QueueDepth:  0,
			SuccessRate: 99.2,
			Load:        0,
			Position:    Position{X: 74, Y: 20},
			Logs: []string{
				"Last seen 11m ago",
				"Nightly memory archive complete",
				"No active assignments",
			},
			LatencyHistory:         NewRing(latencyWindow, 31, 29, 33, 30, 28, 32, 30, 27, 31, 29, 30, 0),
			LastActivityOffsetMin:  11,
			LastHeartbeatOffsetSec: 540,
			HeartbeatIntervalSec:   120,
			HeartbeatPhase:         "silent",
		},
		{
			ID:          "rift",
			Name:        "Agent Rift",
			Role:        "Threat Sentinel",
			Status:      StatusError,
			Task:        "Packet anomaly triage",
			Latency:     221,
			QueueDepth:  19,
			SuccessRate: 88.7,
			Load:        91,
			Position:    Position{X: 18, Y: 52},
			Logs: []string{
				"Socket timeout on node 4",
				"Retry budget exceeded",
				"Escalation recommended",
			},
			LatencyHistory:         NewRing(latencyWindow, 120, 135, 158, 171, 164, 188, 196, 210, 205, 216, 224, 221),
			LastActivityOffsetMin:  6.5,
			LastHeartbeatOffsetSec: 95,
			HeartbeatIntervalSec:   30,
			HeartbeatPhase:         "staggered",
		},
		{
			ID:          "lumen",
			Name:        "Agent Lumen",
			Role:        "UX Simulation",
			Status:      StatusBusy,
			Task:        "Running conversion heatmap",
			Latency:     71,
			QueueDepth:  9,
			SuccessRate: 95.1,
			Load:        73,
			Position:    Position{X: 38, Y: 56},
			Logs: []string{
				"Generated 3 prototype variants",
				"A/B sweep 62% complete",
				"Insights queued for review",
			},
			LatencyHistory:         NewRing(latencyWindow, 66, 70, 68, 73, 69, 75, 72, 70, 74, 71, 73, 71),
			LastActivityOffsetMin:  0.9,
			LastHeartbeatOffsetSec: 18,
			HeartbeatIntervalSec:   30,
			HeartbeatPhase:         "steady",
		},
		{
			ID:          "quill",
			Name:        "Agent Quill",
			Role:        "Knowledge Scribe",
			Status:      StatusOnline,
			Task:        "Summarizing overnight changes",
			Latency:     34,
			QueueDepth:  3,
			SuccessRate: 99.1,
			Load:        31,
			Position:    Position{X: 58, Y: 54},
			Logs: []string{
				"Generated executive digest",
				"Tagged 14 policy updates",
				"Awaiting publish approval",
			},
			LatencyHistory:         NewRing(latencyWindow, 36, 33, 35, 32, 37, 34, 31, 35, 33, 36, 34, 34),
			LastActivityOffsetMin:  4.2,
			LastHeartbeatOffsetSec: 26,
			HeartbeatIntervalSec:   60,
			HeartbeatPhase:         "drifting",
		},
		{
			ID:          "warden",
			Name:        "Agent Warden",
			Role:        "Access Governor",
			Status:      StatusBusy,
			Task:        "Rotating expiring keys",
			Latency:     64,
			QueueDepth:  8,
			SuccessRate: 97.8,
			Load:        66,
			Position:    Position{X: 78, Y: 53},
			Logs: []string{
				"Revoked stale token set",
				"MFA challenge refresh sent",
				"Privilege drift scan running",
			},
			LatencyHistory:         NewRing(latencyWindow, 60, 63, 61, 66, 62, 68, 65, 63, 67, 64, 66, 64),
			LastActivityOffsetMin:  1.1,
			LastHeartbeatOffsetSec: 12,
			HeartbeatIntervalSec:   30,
			HeartbeatPhase:         "steady",
		},
	}
}

func seedIncidents() []Incident {
	return []Incident{
		{ID: "INC-847", Severity: SeverityHigh, Summary: "Rift packet parser timeout cascade", Owner: "Agent Rift"},
		{ID: "INC-842", Severity: SeverityMedium, Summary: "Echo flagged escalation sentiment mismatch", Owner: "Agent Echo"},
		{ID: "INC-836", Severity: SeverityLow, Summary: "Forge canary metrics drift under load", Owner: "Agent Forge"},
	}
}

func seedJobs() []Job {
	return []Job{
		{ID: "JOB-9012", Agent: "Agent Atlas", Type: "Route rebalance", ETA: "00:38", Priority: PriorityHigh},
		{ID: "JOB-9013", Agent: "Agent Lumen", Type: "UX cohort simulation", ETA: "01:12", Priority: PriorityMedium},
		{ID: "JOB-9014", Agent: "Agent Warden", Type: "Credential rotation", ETA: "00:46", Priority: PriorityHigh},
		{ID: "JOB-9015", Agent: "Agent Quill", Type: "Knowledge digest publish", ETA: "00:18", Priority: PriorityLow},
	}
}

func seedAlerts() []string {
	return []string{
		"07:14 UTC — Rift queue depth exceeded 18 tasks",
		"07:11 UTC — Forge canary checks 94% complete",
		"07:09 UTC — Atlas rerouted EU requests to backup fabric",
		"07:06 UTC — Warden completed key revocation sweep",
		"07:03 UTC — Echo opened manual QA review lane",
	}
}

func seedThroughput() []int {
	return []int{54, 58, 63, 59, 66, 72, 68, 75, 79, 74, 82, 86, 80, 88, 92, 89}
}

func seedTimeline() []TimelineEvent {
	return []TimelineEvent{
		{TS: "07:14", Type: EventIncident, Text: "Rift retry budget exhausted on node 4"},
		{TS: "07:10", Type: EventDeploy, Text: "Forge promoted worker image v2.14 to canary"},
		{TS: "07:08", Type: EventReview, Text: "Echo opened manual QA review lane"},
		{TS: "07:04", Type: EventSystem, Text: "Warden key revocation sweep completed"},
		{TS: "07:01", Type: EventSystem, Text: "Atlas rebalanced APAC inference shards"},
	}
}
