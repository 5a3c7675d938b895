// Package invaders implements the game-state machine and the play simulation:
// the ship, the invader formation, rockets and bombs, collision resolution and
// the controller that drives states from a fixed-rate scheduler.
package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Entity sizes in surface units.
const (
	ShipWidth     = 20
	ShipHeight    = 16
	InvaderWidth  = 18
	InvaderHeight = 14
	RocketWidth   = 2
	RocketHeight  = 4
	BombWidth     = 4
	BombHeight    = 4
)

// RocketSpawnOffset is how far above the ship's centre a rocket appears.
const RocketSpawnOffset = 12

// Kind tags an invader type. There is only one for now.
type Kind int

const (
	KindInvader Kind = iota
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvader:
		return "Invader"
	default:
		return "Unknown"
	}
}

// Ship is the player's defender. X and Y are its centre.
type Ship struct {
	X, Y float64
}

// Bounds returns the ship's bounding box.
func (s Ship) Bounds() core.Bounds {
	return core.BoxAt(s.X, s.Y, ShipWidth, ShipHeight)
}

// Invader is one member of the formation.
// Rank is the row (0 is furthest from the ship), File is the column.
type Invader struct {
	X, Y float64
	Rank int
	File int
	Kind Kind
}

// Bounds returns the invader's bounding box.
func (inv *Invader) Bounds() core.Bounds {
	return core.BoxAt(inv.X, inv.Y, InvaderWidth, InvaderHeight)
}

// Rocket is fired upward by the ship.
type Rocket struct {
	X, Y     float64
	Velocity float64 // px/s, positive is up
}

// Bounds returns the rocket's bounding box.
func (r Rocket) Bounds() core.Bounds {
	return core.BoxAt(r.X, r.Y, RocketWidth, RocketHeight)
}

// Bomb is dropped by a front-rank invader.
type Bomb struct {
	X, Y     float64
	Velocity float64 // px/s, positive is down
}

// Bounds returns the bomb's bounding box.
func (b Bomb) Bounds() core.Bounds {
	return core.BoxAt(b.X, b.Y, BombWidth, BombHeight)
}
