package invaders

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// PlayState runs the simulation for one level.
type PlayState struct {
	level  int
	params config.LevelParams

	// Entities, built on Enter and dropped on Leave
	ship      Ship
	formation *Formation
	rockets   []Rocket
	bombs     []Bomb

	launcher launcher
	clock    float64 // Simulation seconds since Enter
}

// NewPlayState creates the play state for level.
func NewPlayState(level int) *PlayState {
	return &PlayState{level: level}
}

func (p *PlayState) Kind() StateKind { return KindPlay }

// Level returns the level being played.
func (p *PlayState) Level() int { return p.level }

// Params returns the level-scaled parameters computed on Enter.
func (p *PlayState) Params() config.LevelParams { return p.params }

// Enter builds the ship and the formation from the level-scaled parameters.
func (p *PlayState) Enter(g *Game) {
	p.params = g.cfg.ForLevel(p.level)
	p.ship = Ship{X: g.width / 2, Y: g.bounds.Bottom}
	p.formation = NewFormation(p.params, g.bounds, g.cfg.Formation)
	p.rockets = nil
	p.bombs = nil
	p.launcher = launcher{cooldown: p.params.FireCooldown()}
	p.clock = 0

	g.logger.Info("level started", "level", p.level, "invaders", p.formation.Len(),
		"velocity", p.params.InvaderVelocity, "bomb_rate", p.params.BombRate)
}

// Leave drops the level's entities.
func (p *PlayState) Leave(g *Game) {
	p.formation = nil
	p.rockets = nil
	p.bombs = nil
}

func (p *PlayState) KeyUp(g *Game, k core.Key) {}

// KeyDown fires on fire and pauses on pause.
func (p *PlayState) KeyDown(g *Game, k core.Key) {
	switch k {
	case core.KeyFire:
		p.fireRocket(g)
	case core.KeyPause:
		g.push(NewPauseState())
	}
}

// fireRocket launches a rocket from the ship unless the launcher is cooling down.
func (p *PlayState) fireRocket(g *Game) {
	if !p.launcher.ready(p.clock) {
		return
	}
	p.rockets = append(p.rockets, Rocket{
		X:        p.ship.X,
		Y:        p.ship.Y - RocketSpawnOffset,
		Velocity: g.cfg.Weapons.RocketVelocity,
	})
	p.launcher.mark(p.clock)
	g.play(core.CueShoot)
}

// Update runs one simulation tick.
func (p *PlayState) Update(g *Game, dt float64) {
	if p.formation == nil {
		return
	}
	p.clock += dt
	bounds := g.bounds

	// Ship movement
	speed := g.cfg.Ship.Speed
	if g.held.Held(core.KeyLeft) {
		p.ship.X -= speed * dt
	}
	if g.held.Held(core.KeyRight) {
		p.ship.X += speed * dt
	}
	p.ship.X = core.ClampF(p.ship.X, bounds.Left, bounds.Right)

	if g.held.Held(core.KeyFire) {
		p.fireRocket(g)
	}

	// Projectiles
	moveRockets(p.rockets, dt)
	moveBombs(p.bombs, dt)

	// Formation
	if edges := p.formation.Step(dt, bounds); edges.Bottom {
		g.lives = 0
	}

	p.resolve(g, dt)
}

// resolve applies collisions, then settles loss or level clear.
func (p *PlayState) resolve(g *Game, dt float64) {
	// Rocket × invader
	points := g.cfg.Gameplay.PointsPerInvader
	p.formation.removeIf(func(inv *Invader) bool {
		b := inv.Bounds()
		for i := range p.rockets {
			if b.Overlaps(p.rockets[i].Bounds()) {
				p.rockets = slices.Delete(p.rockets, i, i+1)
				g.addScore(points)
				g.play(core.CueBang)
				return true
			}
		}
		return false
	})

	// Front rank drops bombs
	p.bombs = dropBombs(p.bombs, p.formation.FrontRank(),
		p.params.BombRate, p.params.BombMinVelocity, p.params.BombMaxVelocity, dt, g.rng)

	// Bomb × ship
	shipBounds := p.ship.Bounds()
	p.bombs = slices.DeleteFunc(p.bombs, func(b Bomb) bool {
		if !b.Bounds().Overlaps(shipBounds) {
			return false
		}
		g.loseLife()
		g.play(core.CueExplosion)
		return true
	})

	// Invader × ship
	for _, inv := range p.formation.Invaders() {
		if inv.Bounds().Overlaps(shipBounds) {
			g.lives = 0
			g.play(core.CueExplosion)
			break
		}
	}

	// Off-area projectiles are dropped after every hit test
	p.rockets = pruneRockets(p.rockets, g.bounds)
	p.bombs = pruneBombs(p.bombs, g.bounds)

	// Loss takes precedence over a clear
	if g.lives <= 0 {
		g.lives = 0
		g.logger.Info("game over", "score", g.score, "level", g.level)
		g.resetTo(NewGameOverState())
		return
	}

	if p.formation.Len() == 0 {
		bonus := p.level * g.cfg.Gameplay.LevelBonus
		g.addScore(bonus)
		g.level++
		g.logger.Info("level cleared", "level", p.level, "bonus", bonus, "score", g.score)
		g.replaceTop(NewLevelIntroState(g.level))
	}
}

// Draw renders the play area and the HUD.
func (p *PlayState) Draw(g *Game, dt float64, surf core.Surface) {
	clearAll(g, surf)
	if p.formation == nil {
		return
	}

	// Draw entities
	surf.FillRect(p.ship.Bounds(), shipPaint)
	for _, inv := range p.formation.Invaders() {
		surf.FillRect(inv.Bounds(), invaderPaint)
	}
	for _, r := range p.rockets {
		surf.FillRect(r.Bounds(), rocketPaint)
	}
	for _, b := range p.bombs {
		surf.FillRect(b.Bounds(), bombPaint)
	}

	// Draw HUD below the play area
	y := g.bounds.Bottom + (g.height-g.bounds.Bottom)/2 + hudSize/2
	hud := core.TextStyle{Size: hudSize, Align: core.AlignLeft, Color: core.ColorWhite}
	surf.FillText(fmt.Sprintf("Lives: %d", g.lives), g.bounds.Left, y, hud)
	hud.Align = core.AlignRight
	surf.FillText(fmt.Sprintf("Score: %d, Level: %d", g.score, g.level), g.bounds.Right, y, hud)

	drawDebug(g, surf)
}
