package invaders

import (
	"maps"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Edges reports which play-area bounds the formation would cross on a step.
// The three flags are evaluated independently.
type Edges struct {
	Left   bool
	Right  bool
	Bottom bool
}

// Formation owns the invaders and moves them as one rigid body.
type Formation struct {
	invaders []*Invader

	velocity     core.Vec // Shared by every invader
	nextVelocity core.Vec // Applied when the current drop completes
	speed        float64
	acceleration float64
	dropDistance float64
	dropped      float64
	dropping     bool
}

// NewFormation lays out a grid of params.Ranks × params.Files invaders centred
// horizontally on the play area, rank 0 at the top. The formation starts moving left.
func NewFormation(params config.LevelParams, bounds core.Bounds, cfg config.FormationConfig) *Formation {
	f := &Formation{
		speed:        params.InvaderVelocity,
		acceleration: cfg.Acceleration,
		dropDistance: cfg.DropDistance,
		velocity:     core.Vec{X: -params.InvaderVelocity},
	}

	if params.Ranks <= 0 || params.Files <= 0 {
		return f
	}

	pitch := cfg.Span / float64(params.Files)
	cx := bounds.CenterX()
	f.invaders = make([]*Invader, 0, params.Ranks*params.Files)
	for rank := 0; rank < params.Ranks; rank++ {
		for file := 0; file < params.Files; file++ {
			f.invaders = append(f.invaders, &Invader{
				X:    cx + (float64(file)-float64(params.Files-1)/2)*pitch,
				Y:    bounds.Top + InvaderHeight/2 + float64(rank)*cfg.RankSpacing,
				Rank: rank,
				File: file,
				Kind: KindInvader,
			})
		}
	}
	return f
}

// NewFormationFrom builds a formation around explicit invaders moving at velocity.
// Mostly useful for setting up a specific board.
func NewFormationFrom(invaders []*Invader, velocity core.Vec, cfg config.FormationConfig) *Formation {
	speed := velocity.X
	if speed < 0 {
		speed = -speed
	}
	if velocity.Y > speed {
		speed = velocity.Y
	}
	return &Formation{
		invaders:     invaders,
		velocity:     velocity,
		speed:        speed,
		acceleration: cfg.Acceleration,
		dropDistance: cfg.DropDistance,
	}
}

// Step advances the formation by dt seconds.
func (f *Formation) Step(dt float64, bounds core.Bounds) Edges {
	// Check next positions
	var e Edges
	delta := f.velocity.Scale(dt)
	for _, inv := range f.invaders {
		next := core.Vec{X: inv.X, Y: inv.Y}.Add(delta)
		if next.X < bounds.Left {
			e.Left = true
		}
		if next.X > bounds.Right {
			e.Right = true
		}
		if next.Y > bounds.Bottom {
			e.Bottom = true
		}
	}

	// A side hit starts a drop, then the formation heads away from that side
	if (e.Left || e.Right) && !f.dropping {
		f.speed += f.acceleration
		f.velocity = core.Vec{Y: f.speed}
		f.dropping = true
		f.dropped = 0
		if e.Left {
			f.nextVelocity = core.Vec{X: f.speed}
		} else {
			f.nextVelocity = core.Vec{X: -f.speed}
		}
	}

	// Rigid body move
	delta = f.velocity.Scale(dt)
	for _, inv := range f.invaders {
		inv.X += delta.X
		inv.Y += delta.Y
	}

	if f.dropping {
		f.dropped += delta.Y
		if f.dropped >= f.dropDistance {
			f.velocity = f.nextVelocity
			f.dropped = 0
			f.dropping = false
		}
	}

	return e
}

// FrontRank returns, for each occupied file in ascending file order, the
// invader with the greatest rank.
func (f *Formation) FrontRank() []*Invader {
	front := make(map[int]*Invader)
	for _, inv := range f.invaders {
		if cur, ok := front[inv.File]; !ok || inv.Rank > cur.Rank {
			front[inv.File] = inv
		}
	}

	out := make([]*Invader, 0, len(front))
	for _, file := range slices.Sorted(maps.Keys(front)) {
		out = append(out, front[file])
	}
	return out
}

// removeIf drops every invader for which hit returns true, keeping order.
// hit is called exactly once per invader.
func (f *Formation) removeIf(hit func(*Invader) bool) int {
	before := len(f.invaders)
	f.invaders = slices.DeleteFunc(f.invaders, hit)
	return before - len(f.invaders)
}

// Invaders returns the live invaders. The slice must not be modified.
func (f *Formation) Invaders() []*Invader {
	return f.invaders
}

// Len returns the number of live invaders.
func (f *Formation) Len() int {
	return len(f.invaders)
}

// Velocity returns the current shared velocity.
func (f *Formation) Velocity() core.Vec {
	return f.velocity
}

// Dropping reports whether the formation is in the middle of a drop.
func (f *Formation) Dropping() bool {
	return f.dropping
}

// Speed returns the scalar formation speed.
func (f *Formation) Speed() float64 {
	return f.speed
}
