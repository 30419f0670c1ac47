package view

import (
	"strings"
	"testing"
	"time"

	"github.com/ruinscape/opsgrid/internal/presence"
	"github.com/ruinscape/opsgrid/internal/roster"
)

var testNow = time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC)

func seededSnapshot(t *testing.T, mutate func(*State)) (Snapshot, *State) {
	t.Helper()
	s := roster.NewStore()
	st := DefaultState()
	if mutate != nil {
		mutate(&st)
	}
	views := presence.DeriveAll(s.Agents, st.Thresholds, testNow)
	return Reconcile(s, &st, views, testNow), &st
}

func listIDs(snap Snapshot) []string {
	ids := make([]string, len(snap.AgentList))
	for i, v := range snap.AgentList {
		ids[i] = v.Agent.ID
	}
	return ids
}

func TestReconcileDefaultListsWholeRoster(t *testing.T) {
	snap, _ := seededSnapshot(t, nil)
	if len(snap.AgentList) != len(snap.AllAgents) {
		t.Errorf("unfiltered list has %d agents, want %d", len(snap.AgentList), len(snap.AllAgents))
	}
	if snap.Selected.Agent.ID != "atlas" {
		t.Errorf("default selection = %q, want atlas", snap.Selected.Agent.ID)
	}
}

func TestStatusRankOrdering(t *testing.T) {
	snap, _ := seededSnapshot(t, nil)
	prev := -1
	for _, v := range snap.AgentList {
		r := v.Agent.Status.Rank()
		if r < prev {
			t.Fatalf("status ranks out of order: %v", listIDs(snap))
		}
		prev = r
	}
	// Equal ranks keep roster order.
	var online []string
	for _, v := range snap.AgentList {
		if v.Agent.Status == roster.StatusOnline {
			online = append(online, v.Agent.ID)
		}
	}
	want := []string{"atlas", "forge", "quill"}
	for i := range want {
		if online[i] != want[i] {
			t.Fatalf("online block = %v, want %v", online, want)
		}
	}
}

func TestLoadOrderingWins(t *testing.T) {
	// Under load ordering an online agent with higher load sorts ahead of a
	// busy one, even though busy outranks online in the status ordering.
	s := &roster.Store{
		Agents: []*roster.Agent{
			{ID: "a", Name: "Agent A", Status: roster.StatusBusy, Load: 40, HeartbeatIntervalSec: 30},
			{ID: "b", Name: "Agent B", Status: roster.StatusOnline, Load: 90, HeartbeatIntervalSec: 30},
		},
		StartedAt: testNow,
	}
	st := DefaultState()
	st.SelectedID = "a"
	views := presence.DeriveAll(s.Agents, st.Thresholds, testNow)

	snap := Reconcile(s, &st, views, testNow)
	if got := listIDs(snap); got[0] != "a" {
		t.Errorf("status ordering head = %q, want a", got[0])
	}

	st.SortByLoad = true
	snap = Reconcile(s, &st, views, testNow)
	if got := listIDs(snap); got[0] != "b" || got[1] != "a" {
		t.Errorf("load ordering = %v, want [b a]", got)
	}
}

func TestLoadSortStable(t *testing.T) {
	s := &roster.Store{
		Agents: []*roster.Agent{
			{ID: "a", Name: "Agent A", Status: roster.StatusOnline, Load: 50, HeartbeatIntervalSec: 30},
			{ID: "b", Name: "Agent B", Status: roster.StatusOnline, Load: 50, HeartbeatIntervalSec: 30},
			{ID: "c", Name: "Agent C", Status: roster.StatusOnline, Load: 50, HeartbeatIntervalSec: 30},
		},
		StartedAt: testNow,
	}
	st := DefaultState()
	st.SelectedID = "a"
	st.SortByLoad = true
	views := presence.DeriveAll(s.Agents, st.Thresholds, testNow)
	snap := Reconcile(s, &st, views, testNow)
	got := listIDs(snap)
	if got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("equal loads reordered: %v", got)
	}
}

func TestFilterNarrowsList(t *testing.T) {
	snap, _ := seededSnapshot(t, func(st *State) {
		st.Filter = FilterBusy
	})
	if len(snap.AgentList) != 3 {
		t.Fatalf("busy filter kept %d agents, want 3", len(snap.AgentList))
	}
	for _, v := range snap.AgentList {
		if v.Agent.Status != roster.StatusBusy {
			t.Errorf("busy filter leaked %q (%v)", v.Agent.ID, v.Agent.Status)
		}
	}
}

func TestSearchCaseInsensitiveTrimmed(t *testing.T) {
	snap, _ := seededSnapshot(t, func(st *State) {
		st.Search = "  NOVA "
	})
	ids := listIDs(snap)
	if len(ids) != 1 || ids[0] != "nova" {
		t.Errorf("search NOVA matched %v, want [nova]", ids)
	}

	snap, _ = seededSnapshot(t, func(st *State) {
		st.Search = "agent"
	})
	if len(snap.AgentList) != 8 {
		t.Errorf("substring search matched %d, want whole roster", len(snap.AgentList))
	}
}

func TestSelectionRepairToListHead(t *testing.T) {
	snap, st := seededSnapshot(t, func(st *State) {
		st.SelectedID = "nova"
		st.Filter = FilterOnline
	})
	if st.SelectedID != snap.AgentList[0].Agent.ID {
		t.Errorf("repaired selection = %q, want list head %q", st.SelectedID, snap.AgentList[0].Agent.ID)
	}
	if snap.Selected.Agent.ID != st.SelectedID {
		t.Errorf("snapshot selection %q disagrees with state %q", snap.Selected.Agent.ID, st.SelectedID)
	}
}

func TestSelectionRepairEmptyList(t *testing.T) {
	snap, st := seededSnapshot(t, func(st *State) {
		st.SelectedID = "rift"
		st.Search = "zzzz"
	})
	if len(snap.AgentList) != 0 {
		t.Fatalf("expected empty list, got %v", listIDs(snap))
	}
	if st.SelectedID != "atlas" {
		t.Errorf("empty-list fallback selection = %q, want atlas", st.SelectedID)
	}
	if snap.Selected.Agent.ID != "atlas" {
		t.Errorf("snapshot selection = %q, want atlas", snap.Selected.Agent.ID)
	}
}

func TestSelectionSurvivesWhenVisible(t *testing.T) {
	snap, st := seededSnapshot(t, func(st *State) {
		st.SelectedID = "lumen"
		st.Filter = FilterBusy
	})
	if st.SelectedID != "lumen" {
		t.Errorf("visible selection was repaired away to %q", st.SelectedID)
	}
	if snap.Selected.Agent.ID != "lumen" {
		t.Errorf("snapshot selection = %q, want lumen", snap.Selected.Agent.ID)
	}
}

func TestKPIsOverWholeRoster(t *testing.T) {
	// KPIs read the full roster even when the visible list is narrowed to
	// nothing.
	snap, _ := seededSnapshot(t, func(st *State) {
		st.Search = "zzzz"
	})
	if snap.KPIs.BusyAgents != 4 {
		t.Errorf("busy+error count = %d, want 4", snap.KPIs.BusyAgents)
	}
	if snap.KPIs.ActiveJobs != 4 {
		t.Errorf("active jobs = %d, want 4", snap.KPIs.ActiveJobs)
	}
	if snap.KPIs.Incidents != 3 || snap.KPIs.CriticalIncidents != 1 {
		t.Errorf("incidents = %d/%d critical, want 3/1", snap.KPIs.Incidents, snap.KPIs.CriticalIncidents)
	}
}

func TestAvgLatencySkipsOffline(t *testing.T) {
	s := &roster.Store{
		Agents: []*roster.Agent{
			{ID: "a", Name: "Agent A", Status: roster.StatusOnline, Latency: 100, HeartbeatIntervalSec: 30},
			{ID: "b", Name: "Agent B", Status: roster.StatusBusy, Latency: 50, HeartbeatIntervalSec: 30},
			{ID: "c", Name: "Agent C", Status: roster.StatusOffline, Latency: 900, HeartbeatIntervalSec: 30},
		},
		StartedAt: testNow,
	}
	st := DefaultState()
	st.SelectedID = "a"
	views := presence.DeriveAll(s.Agents, st.Thresholds, testNow)
	snap := Reconcile(s, &st, views, testNow)
	if snap.KPIs.AvgLatency != 75 {
		t.Errorf("avg latency = %d, want 75", snap.KPIs.AvgLatency)
	}
}

func TestAvgLatencyAllOffline(t *testing.T) {
	s := &roster.Store{
		Agents: []*roster.Agent{
			{ID: "a", Name: "Agent A", Status: roster.StatusOffline, Latency: 400, HeartbeatIntervalSec: 30},
		},
		StartedAt: testNow,
	}
	st := DefaultState()
	st.SelectedID = "a"
	views := presence.DeriveAll(s.Agents, st.Thresholds, testNow)
	snap := Reconcile(s, &st, views, testNow)
	if snap.KPIs.AvgLatency != 0 {
		t.Errorf("all-offline avg latency = %d, want 0", snap.KPIs.AvgLatency)
	}
}

func TestAllLiveDetail(t *testing.T) {
	snap, _ := seededSnapshot(t, nil)
	// The seeded roster has nova offline.
	if snap.KPIs.AllLive {
		t.Error("seeded roster reported all live despite offline agent")
	}
	if !strings.Contains(snap.KPIs.AllLiveDetail, "offline") {
		t.Errorf("detail %q missing offline count", snap.KPIs.AllLiveDetail)
	}

	s := &roster.Store{
		Agents: []*roster.Agent{
			{ID: "a", Name: "Agent A", Status: roster.StatusOnline, HeartbeatIntervalSec: 30},
		},
		StartedAt: testNow,
	}
	st := DefaultState()
	st.SelectedID = "a"
	views := presence.DeriveAll(s.Agents, st.Thresholds, testNow)
	live := Reconcile(s, &st, views, testNow)
	if !live.KPIs.AllLive || live.KPIs.AllLiveDetail != "all stations reporting" {
		t.Errorf("healthy roster KPIs = %v %q", live.KPIs.AllLive, live.KPIs.AllLiveDetail)
	}
}

func TestUptimeFromStoreStart(t *testing.T) {
	s := roster.NewStore()
	s.StartedAt = testNow.Add(-42 * time.Second)
	st := DefaultState()
	views := presence.DeriveAll(s.Agents, st.Thresholds, testNow)
	snap := Reconcile(s, &st, views, testNow)
	if snap.KPIs.Uptime != "42s" {
		t.Errorf("uptime = %q, want 42s", snap.KPIs.Uptime)
	}
}

func TestIdleSummaryCounts(t *testing.T) {
	// 1/2 minute cutoffs push most of the seeded roster past soft.
	s := roster.NewStore()
	st := DefaultState()
	st.Thresholds = presence.Thresholds{SoftMinutes: 1, HardMinutes: 2}
	views := presence.DeriveAll(s.Agents, st.Thresholds, testNow)
	snap := Reconcile(s, &st, views, testNow)

	if !snap.Idle.HasIdle || snap.Idle.Count == 0 {
		t.Error("tight cutoffs produced no idle agents")
	}
	if snap.Idle.HardCount > snap.Idle.Count {
		t.Errorf("hard count %d exceeds idle count %d", snap.Idle.HardCount, snap.Idle.Count)
	}
	if snap.Idle.HasHardIdle != (snap.Idle.HardCount > 0) {
		t.Error("HasHardIdle disagrees with HardCount")
	}
}

func TestHeartbeatTimelineOrderedAndCapped(t *testing.T) {
	snap, _ := seededSnapshot(t, nil)
	if len(snap.Heartbeats) != roster.MaxTimeline {
		t.Fatalf("heartbeat timeline has %d rows, want %d", len(snap.Heartbeats), roster.MaxTimeline)
	}
	// Most recent first means ages ascend down the list. Labels are either
	// "Ns" or "Nm NNs"; compare via the derived views instead.
	views := presence.DeriveAll(roster.NewStore().Agents, DefaultState().Thresholds, testNow)
	ages := map[string]time.Duration{}
	for _, v := range views {
		ages[v.Agent.Name] = v.HeartbeatAge
	}
	prev := time.Duration(-1)
	for _, hb := range snap.Heartbeats {
		if ages[hb.Agent] < prev {
			t.Fatalf("heartbeat timeline out of order at %q", hb.Agent)
		}
		prev = ages[hb.Agent]
	}
}

func TestFilterCycle(t *testing.T) {
	f := FilterAll
	want := []Filter{FilterOnline, FilterBusy, FilterError, FilterOffline, FilterAll}
	for _, w := range want {
		f = f.Cycle()
		if f != w {
			t.Fatalf("cycle reached %v, want %v", f, w)
		}
	}
}

func TestParseFilterRoundTrip(t *testing.T) {
	for _, f := range []Filter{FilterAll, FilterOnline, FilterBusy, FilterError, FilterOffline} {
		if got := ParseFilter(f.String()); got != f {
			t.Errorf("ParseFilter(%q) = %v, want %v", f.String(), got, f)
		}
	}
	if ParseFilter("bogus") != FilterAll {
		t.Errorf("unknown filter name parsed to %v, want all", ParseFilter("bogus"))
	}
}

func TestTogglePause(t *testing.T) {
	st := DefaultState()
	if !st.TogglePause("echo") {
		t.Error("first toggle should report paused")
	}
	if !st.PausedIDs["echo"] {
		t.Error("echo missing from paused set")
	}
	if st.TogglePause("echo") {
		t.Error("second toggle should report unpaused")
	}
	if st.PausedIDs["echo"] {
		t.Error("echo still in paused set after unpause")
	}
}

func TestSnapshotSelectedPaused(t *testing.T) {
	snap, _ := seededSnapshot(t, func(st *State) {
		st.PausedIDs["atlas"] = true
	})
	if !snap.SelectedPaused {
		t.Error("snapshot missed paused flag for selected agent")
	}
}
