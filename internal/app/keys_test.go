package app

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"Quit", km.Quit, []string{"q", "ctrl+c"}},
		{"Tab", km.Tab, []string{"tab"}},
		{"ShiftTab", km.ShiftTab, []string{"shift+tab"}},
		{"Pane1", km.Pane1, []string{"1"}},
		{"Pane2", km.Pane2, []string{"2"}},
		{"Pane3", km.Pane3, []string{"3"}},
		{"Pane4", km.Pane4, []string{"4"}},
		{"Search", km.Search, []string{"/"}},
		{"Filter", km.Filter, []string{"f"}},
		{"Sort", km.Sort, []string{"s"}},
		{"Help", km.Help, []string{"?"}},
		{"Back", km.Back, []string{"esc"}},
		{"Pause", km.Pause, []string{"p"}},
		{"Assign", km.Assign, []string{"a"}},
		{"Nudge", km.Nudge, []string{"n"}},
		{"Restart", km.Restart, []string{"r"}},
		{"Escalate", km.Escalate, []string{"e"}},
		{"SoftDown", km.SoftDown, []string{"-"}},
		{"SoftUp", km.SoftUp, []string{"="}},
		{"HardDown", km.HardDown, []string{"["}},
		{"HardUp", km.HardUp, []string{"]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotKeys := tt.binding.Keys()
			if len(gotKeys) != len(tt.keys) {
				t.Fatalf("%s: got %d keys, want %d", tt.name, len(gotKeys), len(tt.keys))
			}
			for i, k := range tt.keys {
				if gotKeys[i] != k {
					t.Errorf("%s: key[%d] = %q, want %q", tt.name, i, gotKeys[i], k)
				}
			}
		})
	}
}

func TestFullHelpCoversCommandKeys(t *testing.T) {
	km := DefaultKeyMap()
	rows := km.FullHelp()
	if len(rows) == 0 {
		t.Fatal("FullHelp returned no rows")
	}
	found := map[string]bool{}
	for _, row := range rows {
		for _, b := range row {
			for _, k := range b.Keys() {
				found[k] = true
			}
		}
	}
	for _, k := range []string{"p", "a", "n", "r", "e", "/", "f", "s"} {
		if !found[k] {
			t.Errorf("FullHelp missing %q binding", k)
		}
	}
}
