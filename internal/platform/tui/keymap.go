package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// KeyMap holds the host-level bindings. Steering keys are not listed here:
// they come from each player's config and are passed through untouched.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Scores  key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Scores},
		{k.Restart, k.Back, k.Quit},
	}
}

// GameHelp is the help shown under the playfield.
type GameHelp struct{ KeyMap }

// ShortHelp returns the in-game bindings.
func (k GameHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Back, k.Quit}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev mode"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next mode"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyFromMsg converts a terminal key to the symbol the simulation sees.
// Names match the ones used in config files ("up", "w", "space").
func KeyFromMsg(msg tea.KeyMsg) core.Key {
	s := msg.String()
	if s == " " {
		return "space"
	}
	return core.Key(s)
}
