package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// StateKind identifies one of the closed set of game states.
type StateKind int

const (
	KindWelcome StateKind = iota
	KindLevelIntro
	KindPlay
	KindPause
	KindGameOver
)

// String returns a human-readable name for the state kind.
func (k StateKind) String() string {
	switch k {
	case KindWelcome:
		return "Welcome"
	case KindLevelIntro:
		return "LevelIntro"
	case KindPlay:
		return "Play"
	case KindPause:
		return "Pause"
	case KindGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// State is one entry of the game's state stack.
// Every state implements every hook; unused hooks are no-ops.
type State interface {
	Kind() StateKind
	// Enter is called when the state is placed on the stack.
	Enter(g *Game)
	// Leave is called when the state is removed from the stack.
	Leave(g *Game)
	// Update advances the state by dt seconds.
	Update(g *Game, dt float64)
	// Draw renders the state.
	Draw(g *Game, dt float64, s core.Surface)
	// KeyDown handles a key press.
	KeyDown(g *Game, k core.Key)
	// KeyUp handles a key release.
	KeyUp(g *Game, k core.Key)
}
