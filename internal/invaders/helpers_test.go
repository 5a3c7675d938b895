package invaders

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// recordingSurface counts draw calls and keeps every text and outline drawn.
type recordingSurface struct {
	w, h    float64
	clears  int
	fills   int
	strokes []core.Color
	texts   []string
	colors  map[string]core.Color
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{w: 440, h: 400}
}

func (s *recordingSurface) Width() float64                   { return s.w }
func (s *recordingSurface) Height() float64                  { return s.h }
func (s *recordingSurface) ClearRect(b core.Bounds)          { s.clears++ }
func (s *recordingSurface) FillRect(core.Bounds, core.Paint) { s.fills++ }
func (s *recordingSurface) StrokeRect(b core.Bounds, c core.Color) {
	s.strokes = append(s.strokes, c)
}
func (s *recordingSurface) FillText(text string, x, y float64, style core.TextStyle) {
	s.texts = append(s.texts, text)
	if s.colors == nil {
		s.colors = make(map[string]core.Color)
	}
	s.colors[text] = style.Color
}

func (s *recordingSurface) reset() {
	s.clears, s.fills = 0, 0
	s.strokes, s.texts, s.colors = nil, nil, nil
}

func (s *recordingSurface) drew(text string) bool {
	for _, t := range s.texts {
		if t == text {
			return true
		}
	}
	return false
}

// recordingAudio remembers loads and plays.
type recordingAudio struct {
	initErr error
	inits   int
	loaded  map[string]string
	played  []string
	muted   bool
}

func newRecordingAudio() *recordingAudio {
	return &recordingAudio{loaded: make(map[string]string)}
}

func (a *recordingAudio) Init() error {
	a.inits++
	return a.initErr
}

func (a *recordingAudio) Load(name, source string) error {
	if source == "" {
		return errors.New("empty source")
	}
	a.loaded[name] = source
	return nil
}

func (a *recordingAudio) Play(name string) {
	if a.muted {
		return
	}
	a.played = append(a.played, name)
}

func (a *recordingAudio) SetMuted(muted bool) { a.muted = muted }
func (a *recordingAudio) Muted() bool         { return a.muted }

func (a *recordingAudio) count(name string) int {
	n := 0
	for _, p := range a.played {
		if p == name {
			n++
		}
	}
	return n
}

// testRig bundles a started game with its collaborators.
type testRig struct {
	g     *Game
	sched *ManualScheduler
	surf  *recordingSurface
	audio *recordingAudio
}

// newTestGame creates, initialises and starts a game on the default config.
func newTestGame(t *testing.T, opts ...Option) testRig {
	t.Helper()
	return newTestGameWithConfig(t, config.DefaultConfig(), opts...)
}

func newTestGameWithConfig(t *testing.T, cfg config.Config, opts ...Option) testRig {
	t.Helper()
	r := testRig{
		sched: &ManualScheduler{},
		surf:  newRecordingSurface(),
		audio: newRecordingAudio(),
	}
	base := []Option{WithSeed(1), WithScheduler(r.sched), WithAudio(r.audio)}
	g, err := New(cfg, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := g.Initialise(r.surf); err != nil {
		t.Fatalf("Initialise() error = %v", err)
	}
	if err := g.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	r.g = g
	return r
}

// enterPlay moves the game straight into play at level.
func enterPlay(t *testing.T, g *Game, level int) *PlayState {
	t.Helper()
	p := NewPlayState(level)
	if err := g.MoveToState(p); err != nil {
		t.Fatalf("MoveToState(Play) error = %v", err)
	}
	return p
}

// press taps a key: down then up before the next tick.
func press(g *Game, k core.Key) {
	g.KeyDown(k)
	g.KeyUp(k)
}

// kindOf returns the kind of the active state.
func kindOf(g *Game) StateKind {
	if s := g.Current(); s != nil {
		return s.Kind()
	}
	return StateKind(-1)
}
