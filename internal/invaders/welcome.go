package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// WelcomeState is the title screen.
type WelcomeState struct{}

// NewWelcomeState creates the title screen state.
func NewWelcomeState() *WelcomeState {
	return &WelcomeState{}
}

func (s *WelcomeState) Kind() StateKind { return KindWelcome }

// Enter prepares audio so cues are ready by the time play starts.
func (s *WelcomeState) Enter(g *Game) {
	g.initAudio()
}

func (s *WelcomeState) Leave(g *Game)              {}
func (s *WelcomeState) Update(g *Game, dt float64) {}
func (s *WelcomeState) KeyUp(g *Game, k core.Key)  {}

func (s *WelcomeState) Draw(g *Game, dt float64, surf core.Surface) {
	clearAll(g, surf)
	drawTitle(surf, "Space Invaders", g.width/2, g.height/2-40, core.ColorWhite)
	drawBody(surf, "Press 'Space' or touch to start", g.width/2, g.height/2)
	drawDebug(g, surf)
}

// KeyDown starts a new game on fire.
func (s *WelcomeState) KeyDown(g *Game, k core.Key) {
	if k != core.KeyFire {
		return
	}
	g.newSession()
	g.replaceTop(NewLevelIntroState(g.level))
}
