package invaders

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Controller errors.
var (
	ErrNotInitialised = errors.New("invaders: game not initialised with a surface")
	ErrInvalidSurface = errors.New("invaders: surface cannot hold the play area")
	ErrNilState       = errors.New("invaders: nil state")
)

// MuteMode selects how Mute changes the audio output.
type MuteMode int

const (
	MuteToggle MuteMode = iota
	MuteOn
	MuteOff
)

// Game is the controller: it owns lives, score, level, the held-key set and
// the state stack, and forwards ticks and input to the state on top.
// All methods must be called from the goroutine that runs the scheduler.
type Game struct {
	cfg    config.Config
	logger *log.Logger
	audio  core.Audio
	sched  Scheduler
	rng    *rand.Rand
	seed   int64
	debug  bool

	// Surface
	surface     core.Surface
	width       float64
	height      float64
	bounds      core.Bounds
	initialised bool

	// Session
	lives int
	score int
	level int
	held  core.KeySet
	stack []State
	ticks uint64

	// Touch gesture
	previousX float64
	touching  bool

	running bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithAudio sets the audio backend. The default is silent.
func WithAudio(a core.Audio) Option {
	return func(g *Game) { g.audio = a }
}

// WithScheduler sets the tick scheduler. The default is a ManualScheduler.
func WithScheduler(s Scheduler) Option {
	return func(g *Game) { g.sched = s }
}

// WithSeed seeds the random source used for bombs.
// Zero means seed from the current time.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithDebug enables play-area outlines.
func WithDebug(debug bool) Option {
	return func(g *Game) { g.debug = debug }
}

// New creates a game controller. The configuration is validated here so the
// simulation never runs with non-positive rates or sizes.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invaders: %w", err)
	}

	g := &Game{
		cfg:   cfg,
		lives: cfg.Gameplay.Lives,
		level: 1,
		held:  core.NewKeySet(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.audio == nil {
		g.audio = &core.SilentAudio{}
	}
	if g.sched == nil {
		g.sched = &ManualScheduler{}
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(g.seed))

	return g, nil
}

// Initialise records the surface dimensions and centres the play area in it.
func (g *Game) Initialise(s core.Surface) error {
	if s == nil {
		return fmt.Errorf("%w: nil surface", ErrInvalidSurface)
	}
	w, h := s.Width(), s.Height()
	if w <= 0 || h <= 0 || w < g.cfg.Arena.Width || h < g.cfg.Arena.Height {
		return fmt.Errorf("%w: %vx%v for play area %vx%v",
			ErrInvalidSurface, w, h, g.cfg.Arena.Width, g.cfg.Arena.Height)
	}

	g.surface = s
	g.width = w
	g.height = h
	g.bounds = core.CenteredBounds(w, h, g.cfg.Arena.Width, g.cfg.Arena.Height)
	g.initialised = true
	return nil
}

// Start resets the session, enters the Welcome state and starts ticking.
// Calling Start on a running game restarts it.
func (g *Game) Start() error {
	if !g.initialised {
		return ErrNotInitialised
	}
	g.Stop()

	g.newSession()
	g.held.Clear()
	g.resetTo(NewWelcomeState())

	interval := time.Second / time.Duration(g.cfg.Arena.TickRate)
	g.sched.Start(interval, g.Tick)
	g.running = true
	g.logger.Debug("game started", "interval", interval, "seed", g.seed)
	return nil
}

// Stop halts the scheduler. The last computed state is kept.
func (g *Game) Stop() {
	if !g.running {
		return
	}
	g.sched.Stop()
	g.running = false
	g.logger.Debug("game stopped", "ticks", g.ticks)
}

// Running reports whether the scheduler is ticking the game.
func (g *Game) Running() bool {
	return g.running
}

// Tick runs one fixed-timestep update on the top state, then draws whatever
// state is on top afterwards.
func (g *Game) Tick() {
	dt := g.dt()
	if top := g.Current(); top != nil {
		top.Update(g, dt)
	}
	if top := g.Current(); top != nil && g.surface != nil {
		top.Draw(g, dt, g.surface)
	}
	g.ticks++
}

// dt returns the fixed timestep in seconds.
func (g *Game) dt() float64 {
	return 1 / float64(g.cfg.Arena.TickRate)
}

// newSession resets lives, score and level for a fresh game.
func (g *Game) newSession() {
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.level = 1
}

// Mute sets or toggles audio output.
func (g *Game) Mute(mode MuteMode) {
	switch mode {
	case MuteOn:
		g.audio.SetMuted(true)
	case MuteOff:
		g.audio.SetMuted(false)
	default:
		g.audio.SetMuted(!g.audio.Muted())
	}
	g.logger.Debug("audio", "muted", g.audio.Muted())
}

// Muted reports whether audio output is disabled.
func (g *Game) Muted() bool {
	return g.audio.Muted()
}

// play triggers a sound cue.
func (g *Game) play(cue string) {
	g.audio.Play(cue)
}

// initAudio prepares the audio backend and loads the configured cues.
// Failures are logged and the affected cues stay silent.
func (g *Game) initAudio() {
	if !g.cfg.Audio.Enabled {
		return
	}
	if err := g.audio.Init(); err != nil {
		g.logger.Warn("audio unavailable", "err", err)
		return
	}
	for name, source := range g.cfg.Audio.Sounds {
		if err := g.audio.Load(name, source); err != nil {
			g.logger.Warn("sound not loaded", "name", name, "source", source, "err", err)
		}
	}
}

// loseLife removes one life, never going below zero.
func (g *Game) loseLife() {
	g.lives = max(g.lives-1, 0)
}

// addScore adds points, never letting the score go below zero.
func (g *Game) addScore(points int) {
	g.score = max(g.score+points, 0)
}

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Level returns the current level.
func (g *Game) Level() int { return g.level }

// Bounds returns the play area.
func (g *Game) Bounds() core.Bounds { return g.bounds }

// Width returns the surface width recorded by Initialise.
func (g *Game) Width() float64 { return g.width }

// Height returns the surface height recorded by Initialise.
func (g *Game) Height() float64 { return g.height }

// Debug reports whether play-area outlines are drawn.
func (g *Game) Debug() bool { return g.debug }

// SetDebug toggles play-area outlines.
func (g *Game) SetDebug(debug bool) { g.debug = debug }

// Config returns the game configuration.
func (g *Game) Config() config.Config { return g.cfg }

// Ticks returns the number of ticks run since creation.
func (g *Game) Ticks() uint64 { return g.ticks }
