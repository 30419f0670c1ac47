package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruinscape/opsgrid/internal/presence"
	"github.com/ruinscape/opsgrid/internal/view"
)

func tempStorage(t *testing.T) Storage {
	t.Helper()
	return Storage{Path: filepath.Join(t.TempDir(), "state.json")}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s := tempStorage(t)
	st := s.Load()
	def := view.DefaultState()
	if st.SelectedID != def.SelectedID || st.Filter != def.Filter || st.SortByLoad {
		t.Errorf("missing file state = %+v, want defaults", st)
	}
	if st.Thresholds != presence.DefaultThresholds() {
		t.Errorf("missing file thresholds = %+v, want defaults", st.Thresholds)
	}
}

func TestLoadMalformedYieldsDefaults(t *testing.T) {
	s := tempStorage(t)
	if err := os.WriteFile(s.Path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	st := s.Load()
	if st.SelectedID != "atlas" || st.Filter != view.FilterAll {
		t.Errorf("malformed file state = %+v, want defaults", st)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStorage(t)

	st := view.DefaultState()
	st.SelectedID = "rift"
	st.Filter = view.FilterError
	st.Search = "Rift"
	st.SortByLoad = true
	st.PausedIDs = map[string]bool{"echo": true, "warden": true}
	st.Thresholds = presence.Thresholds{SoftMinutes: 3, HardMinutes: 9}

	s.Save(st)
	got := s.Load()

	if got.SelectedID != "rift" {
		t.Errorf("selected = %q, want rift", got.SelectedID)
	}
	if got.Filter != view.FilterError {
		t.Errorf("filter = %v, want error", got.Filter)
	}
	if got.Search != "Rift" {
		t.Errorf("search = %q, want Rift", got.Search)
	}
	if !got.SortByLoad {
		t.Error("sortByLoad lost in round trip")
	}
	if len(got.PausedIDs) != 2 || !got.PausedIDs["echo"] || !got.PausedIDs["warden"] {
		t.Errorf("paused set = %v, want echo+warden", got.PausedIDs)
	}
	if got.Thresholds.SoftMinutes != 3 || got.Thresholds.HardMinutes != 9 {
		t.Errorf("thresholds = %+v, want 3/9", got.Thresholds)
	}
}

func TestLoadEmptySelectionKeepsDefault(t *testing.T) {
	s := tempStorage(t)
	if err := os.WriteFile(s.Path, []byte(`{"selectedId":"","filter":"busy"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	st := s.Load()
	if st.SelectedID != "atlas" {
		t.Errorf("empty stored selection = %q, want default atlas", st.SelectedID)
	}
	if st.Filter != view.FilterBusy {
		t.Errorf("filter = %v, want busy", st.Filter)
	}
}

func TestLoadUnknownFilterFallsBack(t *testing.T) {
	s := tempStorage(t)
	if err := os.WriteFile(s.Path, []byte(`{"selectedId":"echo","filter":"frozen"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	st := s.Load()
	if st.Filter != view.FilterAll {
		t.Errorf("unknown filter = %v, want all", st.Filter)
	}
}

func TestLoadRepairsHandEditedThresholds(t *testing.T) {
	s := tempStorage(t)
	body := `{"selectedId":"atlas","filter":"all","idleThresholds":{"softMinutes":20,"hardMinutes":10}}`
	if err := os.WriteFile(s.Path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	st := s.Load()
	if st.Thresholds.HardMinutes <= st.Thresholds.SoftMinutes {
		t.Errorf("thresholds %+v violate soft < hard after load", st.Thresholds)
	}
	if st.Thresholds.SoftMinutes != 20 || st.Thresholds.HardMinutes != 21 {
		t.Errorf("repaired thresholds = %+v, want 20/21", st.Thresholds)
	}
}

func TestLoadSubFloorThresholdsIgnored(t *testing.T) {
	s := tempStorage(t)
	body := `{"idleThresholds":{"softMinutes":0,"hardMinutes":-4}}`
	if err := os.WriteFile(s.Path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	st := s.Load()
	if st.Thresholds != presence.DefaultThresholds() {
		t.Errorf("sub-floor thresholds = %+v, want defaults kept", st.Thresholds)
	}
}

func TestSaveCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	s := Storage{Path: filepath.Join(dir, "nested", "deeper", "state.json")}
	s.Save(view.DefaultState())
	if _, err := os.Stat(s.Path); err != nil {
		t.Fatalf("state record not written: %v", err)
	}
}
