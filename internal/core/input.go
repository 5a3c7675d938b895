package core

// Key is an input code understood by the game, abstracted from physical key presses.
// Platforms translate keyboard and touch input into these codes.
type Key int

const (
	KeyNone  Key = iota
	KeyLeft      // Left arrow, A - move ship left
	KeyRight     // Right arrow, D - move ship right
	KeyFire      // Space, tap - fire / start / restart / resume
	KeyPause     // P, Escape - pause and resume
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	case KeyPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// KeySet is the set of currently held keys.
// Press and Release are idempotent membership toggles, so they are safe to
// apply between ticks in any order.
type KeySet struct {
	held map[Key]bool
}

// NewKeySet creates an empty key set.
func NewKeySet() KeySet {
	return KeySet{held: make(map[Key]bool)}
}

// Press marks a key as held.
func (s *KeySet) Press(k Key) {
	if s.held == nil {
		s.held = make(map[Key]bool)
	}
	s.held[k] = true
}

// Release removes a key from the set.
func (s *KeySet) Release(k Key) {
	delete(s.held, k)
}

// Held returns true if the key is currently held.
func (s KeySet) Held(k Key) bool {
	if s.held == nil {
		return false
	}
	return s.held[k]
}

// Clear releases every key.
func (s *KeySet) Clear() {
	clear(s.held)
}
