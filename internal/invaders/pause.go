package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// PauseState suspends the state beneath it. The suspended state is not left,
// so popping resumes it unchanged.
type PauseState struct{}

// NewPauseState creates the pause overlay.
func NewPauseState() *PauseState {
	return &PauseState{}
}

func (s *PauseState) Kind() StateKind            { return KindPause }
func (s *PauseState) Enter(g *Game)              {}
func (s *PauseState) Leave(g *Game)              {}
func (s *PauseState) Update(g *Game, dt float64) {}
func (s *PauseState) KeyUp(g *Game, k core.Key)  {}

// Draw shows the suspended state with a banner over it.
func (s *PauseState) Draw(g *Game, dt float64, surf core.Surface) {
	if below := g.below(); below != nil {
		below.Draw(g, dt, surf)
	} else {
		clearAll(g, surf)
	}

	banner := core.BoxAt(g.width/2, g.height/2-10, 260, 70)
	surf.ClearRect(banner)
	surf.StrokeRect(banner, core.ColorWhite)
	drawTitle(surf, "Paused", g.width/2, g.height/2-25, core.ColorWhite)
	drawBody(surf, "Press 'P' or 'Space' to resume", g.width/2, g.height/2+5)
}

// KeyDown resumes on pause or fire.
func (s *PauseState) KeyDown(g *Game, k core.Key) {
	if k == core.KeyPause || k == core.KeyFire {
		g.PopState()
	}
}
