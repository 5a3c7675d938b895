// Package tui runs the invaders game in a terminal with Bubble Tea.
// It maps keys and mouse events to game input, draws through a cell surface
// and drives the game's ticks from tea.Tick messages.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	gen  int
}

// TeaScheduler is an invaders.Scheduler driven by Bubble Tea tick commands.
// The Bubble Tea update loop is the only caller, so no locking is needed.
type TeaScheduler struct {
	interval time.Duration
	tick     func()
	running  bool
	gen      int // Bumped on Start so stale tick loops die out
}

// NewTeaScheduler creates a stopped scheduler.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{}
}

// Start records the tick function. Ticks begin with the command from Next.
func (s *TeaScheduler) Start(interval time.Duration, tick func()) {
	s.interval = interval
	s.tick = tick
	s.running = true
	s.gen++
}

// Stop halts ticking. Pending tick messages are ignored.
func (s *TeaScheduler) Stop() {
	s.running = false
}

// Running reports whether the scheduler is started.
func (s *TeaScheduler) Running() bool {
	return s.running
}

// Next returns a command that delivers the next TickMsg, or nil when stopped.
func (s *TeaScheduler) Next() tea.Cmd {
	if !s.running {
		return nil
	}
	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, gen: gen}
	})
}

// Fire runs one tick for msg and schedules the following one.
// Messages from before the latest Start are dropped.
func (s *TeaScheduler) Fire(msg TickMsg) tea.Cmd {
	if !s.running || msg.gen != s.gen {
		return nil
	}
	s.tick()
	return s.Next()
}
