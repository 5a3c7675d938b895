package invaders

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// launcher enforces the rocket fire-rate cap on the simulation clock.
type launcher struct {
	cooldown  float64 // Seconds between rockets
	lastFired float64
	fired     bool
}

// ready reports whether a rocket may be fired at clock.
func (l *launcher) ready(clock float64) bool {
	return !l.fired || clock-l.lastFired > l.cooldown
}

// mark records a rocket fired at clock.
func (l *launcher) mark(clock float64) {
	l.lastFired = clock
	l.fired = true
}

// moveRockets advances rockets upward.
func moveRockets(rockets []Rocket, dt float64) {
	for i := range rockets {
		rockets[i].Y -= rockets[i].Velocity * dt
	}
}

// moveBombs advances bombs downward.
func moveBombs(bombs []Bomb, dt float64) {
	for i := range bombs {
		bombs[i].Y += bombs[i].Velocity * dt
	}
}

// pruneRockets drops rockets whose centre has left the play area.
func pruneRockets(rockets []Rocket, bounds core.Bounds) []Rocket {
	return slices.DeleteFunc(rockets, func(r Rocket) bool {
		return !bounds.Contains(r.X, r.Y)
	})
}

// pruneBombs drops bombs whose centre has left the play area.
func pruneBombs(bombs []Bomb, bounds core.Bounds) []Bomb {
	return slices.DeleteFunc(bombs, func(b Bomb) bool {
		return !bounds.Contains(b.X, b.Y)
	})
}

// dropBombs gives every front-rank invader one Bernoulli trial with
// probability rate*dt and appends a bomb for each success.
func dropBombs(bombs []Bomb, front []*Invader, rate, minV, maxV, dt float64, rng *rand.Rand) []Bomb {
	chance := rate * dt
	for _, inv := range front {
		if rng.Float64() >= chance {
			continue
		}
		bombs = append(bombs, Bomb{
			X:        inv.X,
			Y:        inv.Y + InvaderHeight/2,
			Velocity: minV + rng.Float64()*(maxV-minV),
		})
	}
	return bombs
}
