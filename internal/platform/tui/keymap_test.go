package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
		ok   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{"a", runeKey('a'), core.KeyLeft, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true},
		{"d", runeKey('d'), core.KeyRight, true},
		{"space", runeKey(' '), core.KeyFire, true},
		{"p", runeKey('p'), core.KeyPause, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyPause, true},
		{"m is not a game key", runeKey('m'), core.KeyNone, false},
		{"x", runeKey('x'), core.KeyNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.GameKey(tt.msg)
			if got != tt.want || ok != tt.ok {
				t.Errorf("GameKey() = %v, %v, expected %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHelpForEveryState(t *testing.T) {
	km := DefaultKeyMap()
	kinds := []invaders.StateKind{
		invaders.KindWelcome, invaders.KindLevelIntro, invaders.KindPlay,
		invaders.KindPause, invaders.KindGameOver,
	}
	for _, kind := range kinds {
		h := km.helpFor(kind)
		if len(h.ShortHelp()) == 0 || len(h.FullHelp()) == 0 {
			t.Errorf("helpFor(%v) has no bindings", kind)
		}
	}
}

func TestHelpForDoesNotMutateKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	km.helpFor(invaders.KindGameOver)
	if got := km.Fire.Help().Desc; got != "fire" {
		t.Errorf("Fire help = %q, expected %q", got, "fire")
	}
}
