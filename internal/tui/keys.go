package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the board's key bindings.
type KeyMap struct {
	PrevPage     key.Binding
	NextPage     key.Binding
	ToggleTheme  key.Binding
	ToggleDrawer key.Binding
	DismissToast key.Binding
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
	Quit         key.Binding
}

// boardKeys is the single binding set; there is no rebinding UI.
var boardKeys = KeyMap{
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next page"),
	),
	ToggleTheme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle theme"),
	),
	ToggleDrawer: key.NewBinding(
		key.WithKeys("tab", "m"),
		key.WithHelp("tab/m", "menu"),
	),
	DismissToast: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "dismiss notice"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open section"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
