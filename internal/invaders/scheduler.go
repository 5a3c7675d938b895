package invaders

import "time"

// Scheduler invokes tick at a fixed interval between Start and Stop.
// Implementations must call tick from a single goroutine.
type Scheduler interface {
	Start(interval time.Duration, tick func())
	Stop()
}

// ManualScheduler is a Scheduler driven explicitly by Advance.
// It is the default and is used by tests in place of a wall-clock timer.
type ManualScheduler struct {
	tick    func()
	running bool
}

// Start records the tick function and marks the scheduler as running.
func (s *ManualScheduler) Start(interval time.Duration, tick func()) {
	s.tick = tick
	s.running = true
}

// Stop halts ticking. Safe to call more than once.
func (s *ManualScheduler) Stop() {
	s.running = false
}

// Running reports whether the scheduler is started.
func (s *ManualScheduler) Running() bool {
	return s.running
}

// Advance fires up to n ticks, stopping early if the scheduler is stopped.
// Returns the number of ticks fired.
func (s *ManualScheduler) Advance(n int) int {
	fired := 0
	for i := 0; i < n && s.running; i++ {
		s.tick()
		fired++
	}
	return fired
}
