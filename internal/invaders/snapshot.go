package invaders

// Snapshot contains the observable game state.
// Uses primitive types only so two snapshots can be compared directly.
type Snapshot struct {
	Tick  uint64
	State string
	Depth int
	Lives int
	Score int
	Level int

	// Play state, zero outside of play
	Clock     float64
	ShipX     float64
	ShipY     float64
	VelocityX float64
	VelocityY float64
	Dropping  bool

	// Entity positions (each entity is 2 floats: X, Y)
	InvaderCount int
	InvaderData  []float64
	RocketCount  int
	RocketData   []float64
	BombCount    int
	BombData     []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.ticks,
		Depth: len(g.stack),
		Lives: g.lives,
		Score: g.score,
		Level: g.level,
	}

	top := g.Current()
	if top == nil {
		return snap
	}
	snap.State = top.Kind().String()

	// Pause keeps the play state beneath it
	play, ok := top.(*PlayState)
	if !ok {
		play, ok = g.below().(*PlayState)
	}
	if !ok || play.formation == nil {
		return snap
	}

	snap.Clock = play.clock
	snap.ShipX = play.ship.X
	snap.ShipY = play.ship.Y
	v := play.formation.Velocity()
	snap.VelocityX = v.X
	snap.VelocityY = v.Y
	snap.Dropping = play.formation.Dropping()

	invaders := play.formation.Invaders()
	snap.InvaderCount = len(invaders)
	snap.InvaderData = make([]float64, 0, len(invaders)*2)
	for _, inv := range invaders {
		snap.InvaderData = append(snap.InvaderData, inv.X, inv.Y)
	}

	snap.RocketCount = len(play.rockets)
	snap.RocketData = make([]float64, 0, len(play.rockets)*2)
	for _, r := range play.rockets {
		snap.RocketData = append(snap.RocketData, r.X, r.Y)
	}

	snap.BombCount = len(play.bombs)
	snap.BombData = make([]float64, 0, len(play.bombs)*2)
	for _, b := range play.bombs {
		snap.BombData = append(snap.BombData, b.X, b.Y)
	}

	return snap
}
