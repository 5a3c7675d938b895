package core

// Sound cue names triggered by the simulation.
const (
	CueShoot     = "shoot"
	CueBang      = "bang"
	CueExplosion = "explosion"
)

// Audio is the sound capability set used by the game.
// Cues are fire-and-forget: Play never blocks and never reports failure.
type Audio interface {
	// Init prepares the output device. Safe to call more than once.
	Init() error
	// Load registers a named sound from a source description.
	Load(name, source string) error
	// Play triggers a named sound. Unknown names are ignored.
	Play(name string)
	// SetMuted enables or disables output.
	SetMuted(muted bool)
	// Muted reports whether output is disabled.
	Muted() bool
}

// SilentAudio is an Audio that plays nothing. It still tracks the mute flag.
type SilentAudio struct {
	muted bool
}

func (a *SilentAudio) Init() error                    { return nil }
func (a *SilentAudio) Load(name, source string) error { return nil }
func (a *SilentAudio) Play(name string)               {}
func (a *SilentAudio) SetMuted(muted bool)            { a.muted = muted }
func (a *SilentAudio) Muted() bool                    { return a.muted }
