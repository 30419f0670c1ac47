package view

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/ruinscape/opsgrid/internal/presence"
	"github.com/ruinscape/opsgrid/internal/roster"
)

// KPIs are the aggregate header metrics, recomputed over the whole roster
// (not the filtered list) every render.
type KPIs struct {
	AllLive           bool
	AllLiveDetail     string
	Uptime            string
	ActiveJobs        int
	BusyAgents        int // busy or error
	AvgLatency        int // mean over non-offline agents, rounded
	Incidents         int
	CriticalIncidents int
}

// IdleSummary drives the idle warning banner.
type IdleSummary struct {
	Count       int // agents beyond the soft threshold
	HardCount   int
	HasIdle     bool
	HasHardIdle bool
}

// HeartbeatEntry is one row of the heartbeat timeline: the fleet's last
// beats, most recent first.
type HeartbeatEntry struct {
	TS        string
	Agent     string
	Phase     string
	IdleState presence.IdleState
	AgeLabel  string
}

// Snapshot is the read-only view model handed to the presentation layer.
// It is regenerated from scratch on every render; nothing in it is retained
// between renders.
type Snapshot struct {
	AgentList  []presence.View // filtered, searched, sorted
	Selected   presence.View
	AllAgents  []presence.View // roster order, presence-enriched
	Incidents  []roster.Incident
	Jobs       []roster.Job
	Alerts     []string
	Throughput []int
	Timeline   []roster.TimelineEvent
	Heartbeats []HeartbeatEntry
	Idle       IdleSummary
	KPIs       KPIs

	Filter         Filter
	Search         string
	SortByLoad     bool
	SelectedPaused bool
	Thresholds     presence.Thresholds
	Now            time.Time
}

// Reconcile computes the full snapshot from the store, the view state, and
// presence views derived at instant now. Selection repair mutates
// state.SelectedID before anything reads the selection, so the selected
// agent is always a member of the visible list (or the global first agent
// when the list is empty).
func Reconcile(store *roster.Store, state *State, views []presence.View, now time.Time) Snapshot {
	list := filterAndSort(views, state)

	if !contains(list, state.SelectedID) {
		if len(list) > 0 {
			state.SelectedID = list[0].Agent.ID
		} else {
			state.SelectedID = store.First().ID
		}
	}

	selected := views[0]
	for _, v := range views {
		if v.Agent.ID == state.SelectedID {
			selected = v
			break
		}
	}

	return Snapshot{
		AgentList:  list,
		Selected:   selected,
		AllAgents:  views,
		Incidents:  store.Incidents,
		Jobs:       store.Jobs,
		Alerts:     store.Alerts,
		Throughput: store.Throughput,
		Timeline:   store.Timeline,
		Heartbeats: heartbeatTimeline(views),
		Idle:       idleSummary(views),
		KPIs:       computeKPIs(store, views, now),

		Filter:         state.Filter,
		Search:         state.Search,
		SortByLoad:     state.SortByLoad,
		SelectedPaused: state.PausedIDs[state.SelectedID],
		Thresholds:     state.Thresholds,
		Now:            now,
	}
}

// filterAndSort applies the status filter, the case-insensitive name search,
// and either the load ordering or the status-rank ordering. The sort is
// stable so equal keys keep their roster order.
func filterAndSort(views []presence.View, state *State) []presence.View {
	needle := strings.ToLower(strings.TrimSpace(state.Search))

	var list []presence.View
	for _, v := range views {
		if !state.Filter.Matches(v.Agent.Status) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(v.Agent.Name), needle) {
			continue
		}
		list = append(list, v)
	}

	sort.SliceStable(list, func(i, j int) bool {
		if state.SortByLoad {
			return list[i].Agent.Load > list[j].Agent.Load
		}
		return list[i].Agent.Status.Rank() < list[j].Agent.Status.Rank()
	})
	return list
}

func contains(list []presence.View, id string) bool {
	for _, v := range list {
		if v.Agent.ID == id {
			return true
		}
	}
	return false
}

func idleSummary(views []presence.View) IdleSummary {
	var sum IdleSummary
	for _, v := range views {
		if v.IdleState != presence.IdleActive {
			sum.Count++
		}
		if v.IdleState == presence.IdleHard {
			sum.HardCount++
		}
	}
	sum.HasIdle = sum.Count > 0
	sum.HasHardIdle = sum.HardCount > 0
	return sum
}

// heartbeatTimeline lists the fleet's last heartbeats, most recent first,
// capped at the timeline length.
func heartbeatTimeline(views []presence.View) []HeartbeatEntry {
	ordered := make([]presence.View, len(views))
	copy(ordered, views)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].HeartbeatAge < ordered[j].HeartbeatAge
	})

	var entries []HeartbeatEntry
	for _, v := range ordered {
		entries = append(entries, HeartbeatEntry{
			TS:        v.LastHeartbeatLabel,
			Agent:     v.Agent.Name,
			Phase:     v.Agent.HeartbeatPhase,
			IdleState: v.IdleState,
			AgeLabel:  v.HeartbeatAgeLabel,
		})
		if len(entries) == roster.MaxTimeline {
			break
		}
	}
	return entries
}

func computeKPIs(store *roster.Store, views []presence.View, now time.Time) KPIs {
	var busy, offline, idle, hardIdle, critical int
	latencySum, latencyCount := 0, 0

	for _, v := range views {
		a := v.Agent
		switch a.Status {
		case roster.StatusBusy, roster.StatusError:
			busy++
		case roster.StatusOffline:
			offline++
		}
		if a.Status != roster.StatusOffline {
			latencySum += a.Latency
			latencyCount++
		}
		if v.IdleState != presence.IdleActive {
			idle++
		}
		if v.IdleState == presence.IdleHard {
			hardIdle++
		}
	}

	for _, inc := range store.Incidents {
		if inc.Severity == roster.SeverityHigh {
			critical++
		}
	}

	// Floor-1 denominator: an all-offline roster averages to 0 rather than
	// dividing by zero.
	denom := latencyCount
	if denom < 1 {
		denom = 1
	}
	avg := int(math.Round(float64(latencySum) / float64(denom)))

	allLive := idle == 0 && offline == 0
	detail := "all stations reporting"
	if !allLive {
		detail = fmt.Sprintf("%d hard idle · %d idle · %d offline", hardIdle, idle, offline)
	}

	return KPIs{
		AllLive:           allLive,
		AllLiveDetail:     detail,
		Uptime:            presence.FormatDuration(now.Sub(store.StartedAt)),
		ActiveJobs:        len(store.Jobs),
		BusyAgents:        busy,
		AvgLatency:        avg,
		Incidents:         len(store.Incidents),
		CriticalIncidents: critical,
	}
}
