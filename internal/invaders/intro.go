package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// LevelIntroState counts down before a level starts.
type LevelIntroState struct {
	level     int
	countdown float64 // Seconds remaining
}

// NewLevelIntroState creates the countdown for level.
func NewLevelIntroState(level int) *LevelIntroState {
	return &LevelIntroState{level: level}
}

func (s *LevelIntroState) Kind() StateKind { return KindLevelIntro }

// Level returns the level being introduced.
func (s *LevelIntroState) Level() int { return s.level }

// Remaining returns the seconds left on the countdown.
func (s *LevelIntroState) Remaining() float64 { return s.countdown }

func (s *LevelIntroState) Enter(g *Game) {
	s.countdown = g.cfg.Gameplay.LevelIntroSeconds
}

func (s *LevelIntroState) Leave(g *Game)               {}
func (s *LevelIntroState) KeyDown(g *Game, k core.Key) {}
func (s *LevelIntroState) KeyUp(g *Game, k core.Key)   {}

// Update runs the countdown and starts play when it elapses.
func (s *LevelIntroState) Update(g *Game, dt float64) {
	s.countdown -= dt
	if s.countdown <= 0 {
		g.replaceTop(NewPlayState(s.level))
	}
}

func (s *LevelIntroState) Draw(g *Game, dt float64, surf core.Surface) {
	clearAll(g, surf)
	drawTitle(surf, fmt.Sprintf("Level %d", s.level), g.width/2, g.height/2-40, core.ColorYellow)
	drawBody(surf, fmt.Sprintf("Ready in %d", int(math.Ceil(s.countdown))), g.width/2, g.height/2)
	drawDebug(g, surf)
}
