package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// autorepeatDelay covers the pause terminals make before key repeat starts.
const autorepeatDelay = 500 * time.Millisecond

// HoldTracker emulates key releases for terminals, which only report presses.
// A key stays held while presses keep arriving: the first press holds it for
// the autorepeat delay, every repeat extends the hold by the release window.
type HoldTracker struct {
	window time.Duration
	until  map[core.Key]time.Time
}

// NewHoldTracker creates a tracker that releases keys window after their last repeat.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		until:  make(map[core.Key]time.Time),
	}
}

// Press records a press at now. Returns true if the key was not already held.
func (h *HoldTracker) Press(k core.Key, now time.Time) bool {
	_, held := h.until[k]
	if held {
		h.until[k] = now.Add(h.window)
	} else {
		h.until[k] = now.Add(max(h.window, autorepeatDelay))
	}
	return !held
}

// Release forgets a key immediately.
func (h *HoldTracker) Release(k core.Key) bool {
	_, held := h.until[k]
	delete(h.until, k)
	return held
}

// Held reports whether k is tracked as held.
func (h *HoldTracker) Held(k core.Key) bool {
	_, held := h.until[k]
	return held
}

// Expire releases every key whose hold ran out by now and returns them in key order.
func (h *HoldTracker) Expire(now time.Time) []core.Key {
	var out []core.Key
	for k, until := range h.until {
		if !now.Before(until) {
			out = append(out, k)
		}
	}
	for _, k := range out {
		delete(h.until, k)
	}
	slices.Sort(out)
	return out
}
