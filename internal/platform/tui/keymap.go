package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Pause key.Binding
	Mute  key.Binding
	Debug key.Binding
	Shot  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Debug: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "outlines"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// GameKey translates a key message to a game key.
// Returns false for keys the game does not use.
func (k KeyMap) GameKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft, true
	case key.Matches(msg, k.Right):
		return core.KeyRight, true
	case key.Matches(msg, k.Fire):
		return core.KeyFire, true
	case key.Matches(msg, k.Pause):
		return core.KeyPause, true
	}
	return core.KeyNone, false
}

// stateHelp is the help.KeyMap shown for one game state.
type stateHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h stateHelp) ShortHelp() []key.Binding  { return h.short }
func (h stateHelp) FullHelp() [][]key.Binding { return h.full }

// helpFor returns the bindings worth showing while kind is active.
func (k KeyMap) helpFor(kind invaders.StateKind) stateHelp {
	switch kind {
	case invaders.KindWelcome:
		k.Fire.SetHelp("space", "start")
		return stateHelp{
			short: []key.Binding{k.Fire, k.Mute, k.Quit},
			full:  [][]key.Binding{{k.Fire}, {k.Mute, k.Help, k.Quit}},
		}
	case invaders.KindLevelIntro:
		return stateHelp{
			short: []key.Binding{k.Mute, k.Quit},
			full:  [][]key.Binding{{k.Mute, k.Help, k.Quit}},
		}
	case invaders.KindPlay:
		return stateHelp{
			short: []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Quit},
			full: [][]key.Binding{
				{k.Left, k.Right, k.Fire},
				{k.Pause, k.Mute, k.Debug},
				{k.Shot, k.Help, k.Quit},
			},
		}
	case invaders.KindPause:
		k.Pause.SetHelp("p/space", "resume")
		return stateHelp{
			short: []key.Binding{k.Pause, k.Mute, k.Quit},
			full:  [][]key.Binding{{k.Pause}, {k.Mute, k.Help, k.Quit}},
		}
	case invaders.KindGameOver:
		k.Fire.SetHelp("space", "play again")
		return stateHelp{
			short: []key.Binding{k.Fire, k.Quit},
			full:  [][]key.Binding{{k.Fire}, {k.Mute, k.Help, k.Quit}},
		}
	}
	return stateHelp{short: []key.Binding{k.Quit}, full: [][]key.Binding{{k.Quit}}}
}
