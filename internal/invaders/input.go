package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// KeyDown records k as held and forwards it to the active state.
func (g *Game) KeyDown(k core.Key) {
	g.held.Press(k)
	if top := g.Current(); top != nil {
		top.KeyDown(g, k)
	}
}

// KeyUp releases k and forwards it to the active state.
func (g *Game) KeyUp(k core.Key) {
	g.held.Release(k)
	if top := g.Current(); top != nil {
		top.KeyUp(g, k)
	}
}

// TouchStart treats a tap as a fire press delivered to the active state.
// The fire key is not held by a tap.
func (g *Game) TouchStart() {
	if top := g.Current(); top != nil {
		top.KeyDown(g, core.KeyFire)
	}
}

// TouchMove holds left or right depending on the drag direction since the
// previous move of the same gesture.
func (g *Game) TouchMove(x float64) {
	if g.touching {
		if x > g.previousX {
			g.held.Release(core.KeyLeft)
			g.held.Press(core.KeyRight)
		} else if x < g.previousX {
			g.held.Release(core.KeyRight)
			g.held.Press(core.KeyLeft)
		}
	}
	g.previousX = x
	g.touching = true
}

// TouchEnd releases any direction held by the gesture.
func (g *Game) TouchEnd() {
	g.held.Release(core.KeyLeft)
	g.held.Release(core.KeyRight)
	g.touching = false
	g.previousX = 0
}

// Held reports whether k is currently held.
func (g *Game) Held(k core.Key) bool {
	return g.held.Held(k)
}
