package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
)

type keymap struct {
	play     key.Binding
	add      key.Binding
	rename   key.Binding
	sessions key.Binding
	remove   key.Binding
	reload   key.Binding
	help     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
}

var defaultKeymap = keymap{
	play: key.NewBinding(
		key.WithKeys("enter", "p"),
		key.WithHelp("enter/p", "play"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add game"),
	),
	rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	sessions: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sessions"),
	),
	remove: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	reload: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reload"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.play, k.add, k.sessions, k.remove, k.help, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.play, k.add, k.rename},
		{k.sessions, k.remove, k.reload},
		{k.help, k.quit},
	}
}

// tableKeymap frees the letters used by the game actions.
func tableKeymap() table.KeyMap {
	km := table.DefaultKeyMap()

	km.PageDown = key.NewBinding(
		key.WithKeys("pgdown", "f"),
		key.WithHelp("pgdn", "page down"),
	)
	km.HalfPageDown = key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "½ page down"),
	)

	return km
}
