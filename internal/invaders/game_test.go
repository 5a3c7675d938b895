package invaders

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// traceState records lifecycle calls.
type traceState struct {
	name string
	log  *[]string
}

func (s *traceState) Kind() StateKind                           { return KindPlay }
func (s *traceState) Enter(g *Game)                             { *s.log = append(*s.log, "enter:"+s.name) }
func (s *traceState) Leave(g *Game)                             { *s.log = append(*s.log, "leave:"+s.name) }
func (s *traceState) Update(g *Game, dt float64)                { *s.log = append(*s.log, "update:"+s.name) }
func (s *traceState) Draw(g *Game, dt float64, su core.Surface) { *s.log = append(*s.log, "draw:"+s.name) }
func (s *traceState) KeyDown(g *Game, k core.Key)               { *s.log = append(*s.log, "down:"+s.name) }
func (s *traceState) KeyUp(g *Game, k core.Key)                 { *s.log = append(*s.log, "up:"+s.name) }

func equalLog(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Arena.TickRate = 0

	_, err := New(cfg)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestInitialise(t *testing.T) {
	g, err := New(config.DefaultConfig(), WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		surf core.Surface
	}{
		{"nil surface", nil},
		{"zero size", &recordingSurface{}},
		{"smaller than play area", &recordingSurface{w: 300, h: 400}},
	}
	for _, tc := range tests {
		if err := g.Initialise(tc.surf); !errors.Is(err, ErrInvalidSurface) {
			t.Errorf("%s: Initialise() = %v, expected ErrInvalidSurface", tc.name, err)
		}
	}

	if err := g.Initialise(newRecordingSurface()); err != nil {
		t.Fatalf("Initialise() error = %v", err)
	}
	expected := core.Bounds{Left: 20, Top: 50, Right: 420, Bottom: 350}
	if g.Bounds() != expected {
		t.Errorf("Bounds() = %+v, expected %+v", g.Bounds(), expected)
	}
	if g.Width() != 440 || g.Height() != 400 {
		t.Errorf("size = %vx%v, expected 440x400", g.Width(), g.Height())
	}
}

func TestMethodsBeforeInitialise(t *testing.T) {
	g, err := New(config.DefaultConfig(), WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}

	if err := g.Start(); !errors.Is(err, ErrNotInitialised) {
		t.Errorf("Start() = %v, expected ErrNotInitialised", err)
	}
	if err := g.MoveToState(NewWelcomeState()); !errors.Is(err, ErrNotInitialised) {
		t.Errorf("MoveToState() = %v, expected ErrNotInitialised", err)
	}
	if err := g.PushState(NewPauseState()); !errors.Is(err, ErrNotInitialised) {
		t.Errorf("PushState() = %v, expected ErrNotInitialised", err)
	}

	// Safe no-ops
	g.Stop()
	g.PopState()
	g.Tick()
	g.KeyDown(core.KeyFire)
}

func TestStartEntersWelcomeAndSchedules(t *testing.T) {
	r := newTestGame(t)

	if kindOf(r.g) != KindWelcome || r.g.Depth() != 1 {
		t.Errorf("state = %v depth %d, expected Welcome depth 1", kindOf(r.g), r.g.Depth())
	}
	if r.g.Lives() != 3 || r.g.Score() != 0 || r.g.Level() != 1 {
		t.Errorf("session = %d/%d/%d, expected 3/0/1", r.g.Lives(), r.g.Score(), r.g.Level())
	}
	if !r.sched.Running() {
		t.Error("Start() should start the scheduler")
	}

	// Welcome loads the configured cues
	if r.audio.inits != 1 || len(r.audio.loaded) != 3 {
		t.Errorf("audio inits=%d loaded=%d, expected 1 and 3", r.audio.inits, len(r.audio.loaded))
	}
	if r.audio.loaded[core.CueShoot] != "synth:shoot" {
		t.Errorf("shoot source = %q", r.audio.loaded[core.CueShoot])
	}

	r.sched.Advance(3)
	if r.g.Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", r.g.Ticks())
	}
	if !r.surf.drew("Space Invaders") {
		t.Error("Welcome should draw the title")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	r := newTestGame(t)

	r.g.Stop()
	r.g.Stop()
	if r.g.Running() || r.sched.Running() {
		t.Error("game should be stopped")
	}
	if n := r.sched.Advance(5); n != 0 {
		t.Errorf("Advance after Stop fired %d ticks", n)
	}

	// Restart resets the session
	r.g.lives = 0
	r.g.score = 99
	if err := r.g.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if r.g.Lives() != 3 || r.g.Score() != 0 || kindOf(r.g) != KindWelcome {
		t.Errorf("restart left lives=%d score=%d state=%v", r.g.Lives(), r.g.Score(), kindOf(r.g))
	}
}

func TestStackTransitions(t *testing.T) {
	r := newTestGame(t)
	var log []string
	a := &traceState{name: "a", log: &log}
	b := &traceState{name: "b", log: &log}
	c := &traceState{name: "c", log: &log}

	// Replace Welcome with a
	if err := r.g.MoveToState(a); err != nil {
		t.Fatal(err)
	}
	if !equalLog(log, []string{"enter:a"}) {
		t.Errorf("move: log = %v", log)
	}

	// Push does not leave the state beneath
	log = nil
	if err := r.g.PushState(b); err != nil {
		t.Fatal(err)
	}
	if !equalLog(log, []string{"enter:b"}) || r.g.Depth() != 2 {
		t.Errorf("push: log = %v depth = %d", log, r.g.Depth())
	}

	// Input goes to the top only
	log = nil
	r.g.KeyDown(core.KeyLeft)
	r.g.KeyUp(core.KeyLeft)
	if !equalLog(log, []string{"down:b", "up:b"}) {
		t.Errorf("input: log = %v", log)
	}

	// Pop leaves only the popped state
	log = nil
	r.g.PopState()
	if !equalLog(log, []string{"leave:b"}) || r.g.Current() != a {
		t.Errorf("pop: log = %v current = %v", log, r.g.Current())
	}

	// Replace leaves before entering
	log = nil
	if err := r.g.MoveToState(c); err != nil {
		t.Fatal(err)
	}
	if !equalLog(log, []string{"leave:a", "enter:c"}) || r.g.Depth() != 1 {
		t.Errorf("replace: log = %v depth = %d", log, r.g.Depth())
	}

	// Popping an empty stack is a no-op
	r.g.PopState()
	r.g.PopState()
	r.g.PopState()
	if r.g.Depth() != 0 || r.g.Current() != nil {
		t.Errorf("Depth() = %d, expected 0", r.g.Depth())
	}
	r.g.Tick()

	if err := r.g.MoveToState(nil); !errors.Is(err, ErrNilState) {
		t.Errorf("MoveToState(nil) = %v, expected ErrNilState", err)
	}
}

func TestTickUpdatesThenDrawsNewTop(t *testing.T) {
	r := newTestGame(t)
	var log []string
	a := &traceState{name: "a", log: &log}
	if err := r.g.MoveToState(a); err != nil {
		t.Fatal(err)
	}

	log = nil
	r.g.Tick()
	if !equalLog(log, []string{"update:a", "draw:a"}) {
		t.Errorf("log = %v, expected update then draw", log)
	}

	// A transition during update draws the incoming state
	intro := NewLevelIntroState(4)
	if err := r.g.MoveToState(intro); err != nil {
		t.Fatal(err)
	}
	intro.countdown = 0.001
	r.surf.reset()
	r.g.Tick()

	if kindOf(r.g) != KindPlay {
		t.Fatalf("state = %v, expected Play", kindOf(r.g))
	}
	if !r.surf.drew("Lives: 3") {
		t.Errorf("texts = %v, expected the play HUD", r.surf.texts)
	}
}

func TestKeysAreTracked(t *testing.T) {
	r := newTestGame(t)

	r.g.KeyDown(core.KeyLeft)
	r.g.KeyDown(core.KeyLeft)
	if !r.g.Held(core.KeyLeft) {
		t.Error("KeyLeft should be held")
	}
	r.g.KeyUp(core.KeyLeft)
	if r.g.Held(core.KeyLeft) {
		t.Error("KeyLeft should be released")
	}
}

func TestTouch(t *testing.T) {
	r := newTestGame(t)

	// Tap fires on the active state
	r.g.TouchStart()
	if kindOf(r.g) != KindLevelIntro {
		t.Fatalf("state = %v, expected LevelIntro after tap", kindOf(r.g))
	}
	if r.g.Held(core.KeyFire) {
		t.Error("a tap should not hold fire")
	}

	// First move only records the position
	r.g.TouchMove(100)
	if r.g.Held(core.KeyLeft) || r.g.Held(core.KeyRight) {
		t.Error("first move should not hold a direction")
	}

	r.g.TouchMove(120)
	if !r.g.Held(core.KeyRight) || r.g.Held(core.KeyLeft) {
		t.Error("drag right should hold only right")
	}

	r.g.TouchMove(110)
	if !r.g.Held(core.KeyLeft) || r.g.Held(core.KeyRight) {
		t.Error("drag left should hold only left")
	}

	r.g.TouchEnd()
	if r.g.Held(core.KeyLeft) || r.g.Held(core.KeyRight) {
		t.Error("TouchEnd should release both directions")
	}

	// New gesture starts fresh
	r.g.TouchMove(5)
	if r.g.Held(core.KeyLeft) || r.g.Held(core.KeyRight) {
		t.Error("first move of a new gesture should not hold a direction")
	}
}

func TestMute(t *testing.T) {
	r := newTestGame(t)

	tests := []struct {
		mode     MuteMode
		expected bool
	}{
		{MuteToggle, true},
		{MuteToggle, false},
		{MuteOn, true},
		{MuteOn, true},
		{MuteOff, false},
		{MuteOff, false},
	}
	for i, tc := range tests {
		r.g.Mute(tc.mode)
		if r.g.Muted() != tc.expected {
			t.Errorf("step %d: Muted() = %v, expected %v", i, r.g.Muted(), tc.expected)
		}
	}
}

func TestAudioFailuresAreNotFatal(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Audio.Sounds[core.CueBang] = ""

	r := newTestGameWithConfig(t, cfg)
	if len(r.audio.loaded) != 2 {
		t.Errorf("loaded %d cues, expected 2", len(r.audio.loaded))
	}

	broken := newRecordingAudio()
	broken.initErr = errors.New("no device")
	g, err := New(config.DefaultConfig(), WithSeed(1), WithAudio(broken))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Initialise(newRecordingSurface()); err != nil {
		t.Fatal(err)
	}
	if err := g.Start(); err != nil {
		t.Fatalf("Start() = %v with broken audio, expected nil", err)
	}
	if len(broken.loaded) != 0 {
		t.Error("no cues should load when Init fails")
	}

	press(g, core.KeyFire)
	if kindOf(g) != KindLevelIntro {
		t.Errorf("state = %v, expected LevelIntro", kindOf(g))
	}
}

func TestAudioDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Audio.Enabled = false

	r := newTestGameWithConfig(t, cfg)
	if r.audio.inits != 0 {
		t.Errorf("Init called %d times with audio disabled", r.audio.inits)
	}
}

func TestSessionValuesNeverNegative(t *testing.T) {
	r := newTestGame(t)

	r.g.lives = 0
	r.g.loseLife()
	if r.g.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", r.g.Lives())
	}

	r.g.addScore(-100)
	if r.g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", r.g.Score())
	}
}

func TestStateKindString(t *testing.T) {
	tests := []struct {
		kind     StateKind
		expected string
	}{
		{KindWelcome, "Welcome"},
		{KindLevelIntro, "LevelIntro"},
		{KindPlay, "Play"},
		{KindPause, "Pause"},
		{KindGameOver, "GameOver"},
		{StateKind(42), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
