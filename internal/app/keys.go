package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the dashboard. Number keys jump
// between panes; single letters drive the agent commands from any pane.
type KeyMap struct {
	Quit     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Pane1    key.Binding
	Pane2    key.Binding
	Pane3    key.Binding
	Pane4    key.Binding

	Search key.Binding
	Filter key.Binding
	Sort   key.Binding
	Help   key.Binding
	Back   key.Binding

	Pause    key.Binding
	Assign   key.Binding
	Nudge    key.Binding
	Restart  key.Binding
	Escalate key.Binding

	SoftDown key.Binding
	SoftUp   key.Binding
	HardDown key.Binding
	HardUp   key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		Pane1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "overview"),
		),
		Pane2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "agents"),
		),
		Pane3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "incidents"),
		),
		Pane4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "timeline"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "focus search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sort by load"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close help / clear narrowing"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume agent"),
		),
		Assign: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "assign task"),
		),
		Nudge: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "nudge agent"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart run"),
		),
		Escalate: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "escalate incident"),
		),
		SoftDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "soft idle -1m"),
		),
		SoftUp: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("=", "soft idle +1m"),
		),
		HardDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "hard idle -1m"),
		),
		HardUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "hard idle +1m"),
		),
	}
}

// ShortHelp implements help.KeyMap for the application key bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Tab, k.Help}
}

// FullHelp implements help.KeyMap for the application key bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Tab, k.ShiftTab, k.Help},
		{k.Pane1, k.Pane2, k.Pane3, k.Pane4},
		{k.Search, k.Filter, k.Sort},
		{k.Pause, k.Assign, k.Nudge, k.Restart, k.Escalate},
		{k.SoftDown, k.SoftUp, k.HardDown, k.HardUp},
	}
}
