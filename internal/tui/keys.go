package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active.
type GlobalKeys struct {
	Quit    key.Binding
	Help    key.Binding
	Tab     key.Binding
	Dismiss key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q", "q"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "ctrl+h"),
		key.WithHelp("?", "help"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch panel"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dismiss banner"),
	),
}

// InsightKeys are active when the insight panel is focused.
type InsightKeys struct {
	Up          key.Binding
	Down        key.Binding
	Expand      key.Binding
	Approve     key.Binding
	CycleFilter key.Binding
	FilterAll   key.Binding
	FilterLeaky key.Binding
	FilterGem   key.Binding
	FilterAuct  key.Binding
}

var insightKeys = InsightKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Expand: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "expand/collapse"),
	),
	Approve: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "approve/revoke"),
	),
	CycleFilter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "cycle filter"),
	),
	FilterAll: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "all"),
	),
	FilterLeaky: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "leaky buckets"),
	),
	FilterGem: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "hidden gems"),
	),
	FilterAuct: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "auctions"),
	),
}

// LogKeys are active when the log panel is focused.
type LogKeys struct {
	Live     key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevCol  key.Binding
	NextCol  key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var logKeys = LogKeys{
	Live: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("Space", "live/pause"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "scroll"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "scroll"),
	),
	PrevCol: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/l", "switch column"),
	),
	NextCol: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("h/l", "switch column"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "page down"),
	),
}
