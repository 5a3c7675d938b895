package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// GameOverState shows the final score and waits for a restart.
type GameOverState struct{}

// NewGameOverState creates the game over screen.
func NewGameOverState() *GameOverState {
	return &GameOverState{}
}

func (s *GameOverState) Kind() StateKind            { return KindGameOver }
func (s *GameOverState) Enter(g *Game)              {}
func (s *GameOverState) Leave(g *Game)              {}
func (s *GameOverState) Update(g *Game, dt float64) {}
func (s *GameOverState) KeyUp(g *Game, k core.Key)  {}

func (s *GameOverState) Draw(g *Game, dt float64, surf core.Surface) {
	clearAll(g, surf)
	drawTitle(surf, "Game over!", g.width/2, g.height/2-40, core.ColorRed)
	drawBody(surf, fmt.Sprintf("You scored %d and got to level %d", g.score, g.level), g.width/2, g.height/2)
	drawBody(surf, "Press 'Space' to play again", g.width/2, g.height/2+40)
	drawDebug(g, surf)
}

// KeyDown starts a new game on fire.
func (s *GameOverState) KeyDown(g *Game, k core.Key) {
	if k != core.KeyFire {
		return
	}
	g.newSession()
	g.replaceTop(NewLevelIntroState(1))
}
