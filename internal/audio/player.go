// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var (
	// ErrUnknownSound is returned for a synth source naming no built-in effect.
	ErrUnknownSound = errors.New("audio: unknown sound")
	// ErrUnknownSource is returned for a source that is neither a synth name nor a .wav file.
	ErrUnknownSource = errors.New("audio: unsupported sound source")
)

// Player implements core.Audio on top of beep.
// All cues are mixed into a single speaker stream.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      *effects.Volume
	sounds      map[string]*beep.Buffer
	logger      *log.Logger
	initialised bool
	muted       bool
	silent      bool // Configured volume is zero

	// start opens the output device and attaches the stream. Replaced in tests.
	start func(rate beep.SampleRate, s beep.Streamer) error
}

// NewPlayer creates a player for cfg. No device is opened until Init.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	mixer := &beep.Mixer{}
	return &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  mixer,
		volume: newVolume(mixer, cfg.Volume),
		silent: cfg.Volume <= 0,
		sounds: make(map[string]*beep.Buffer),
		logger: logger,
		start:  startSpeaker,
	}
}

func startSpeaker(rate beep.SampleRate, s beep.Streamer) error {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// newVolume wraps s at a linear volume in [0, 1].
// math.Log2(0) is -Inf, so zero volume is expressed as silence.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Init opens the speaker. Later calls do nothing.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialised {
		return nil
	}
	if err := p.start(p.rate, p.volume); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	p.initialised = true
	p.logger.Debug("speaker ready", "rate", int(p.rate))
	return nil
}

// Load registers a sound under name. The source is either "synth:<effect>"
// or the path of a .wav file, which is resampled to the player rate.
func (p *Player) Load(name, source string) error {
	var (
		buf *beep.Buffer
		err error
	)
	switch {
	case strings.HasPrefix(source, SynthPrefix):
		buf, err = synthesize(strings.TrimPrefix(source, SynthPrefix), p.rate)
	case strings.EqualFold(filepath.Ext(source), ".wav"):
		buf, err = p.loadWAV(source)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.sounds[name] = buf
	p.mu.Unlock()
	return nil
}

func (p *Player) loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != p.rate {
		s = beep.Resample(4, format.SampleRate, p.rate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}

// Play starts a registered sound. It does nothing while muted, before Init
// or for unknown names.
func (p *Player) Play(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || !p.initialised {
		return
	}
	buf, ok := p.sounds[name]
	if !ok {
		return
	}

	speaker.Lock()
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// SetMuted silences or restores output, including sounds already playing.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	speaker.Lock()
	p.volume.Silent = muted || p.silent
	if muted {
		p.mixer.Clear()
	}
	speaker.Unlock()
}

// Muted reports whether output is silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Loaded reports whether a sound is registered under name.
func (p *Player) Loaded(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.sounds[name]
	return ok
}
