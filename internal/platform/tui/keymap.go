package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-goldmine/internal/game"
)

// KeyMap defines the key bindings for a game session. It centralizes the
// key table and feeds the help footer.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Buy          key.Binding
	Mine         key.Binding
	Passive      key.Binding
	Click        key.Binding
	Achievements key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the collapsed help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mine, k.Buy, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mine, k.Up, k.Down, k.Buy},
		{k.Passive, k.Click, k.Achievements},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "select up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "select down"),
		),
		Buy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "buy"),
		),
		Mine: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mine gold"),
		),
		Passive: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "passive"),
		),
		Click: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "click"),
		),
		Achievements: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "achievements"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message into a logical game action. Terminal
// input reports press transitions only, so every message here is a single
// press; unbound keys map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) game.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return game.ActionQuit
	case key.Matches(msg, k.Up):
		return game.ActionMoveUp
	case key.Matches(msg, k.Down):
		return game.ActionMoveDown
	case key.Matches(msg, k.Buy):
		return game.ActionBuy
	case key.Matches(msg, k.Mine):
		return game.ActionClick
	case key.Matches(msg, k.Passive):
		return game.ActionViewPassive
	case key.Matches(msg, k.Click):
		return game.ActionViewClick
	case key.Matches(msg, k.Achievements):
		return game.ActionViewAchievements
	case key.Matches(msg, k.Help):
		return game.ActionToggleHelp
	}
	return game.ActionNone
}
