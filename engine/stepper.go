package engine

import (
	"time"

	"github.com/lixenwraith/footbag/parameter"
)

// Stepper turns elapsed time into a whole number of fixed-length ticks
// Leftover time carries into the next call so the tick rate does not drift
type Stepper struct {
	clock    TimeProvider
	interval time.Duration
	last     time.Time
	backlog  time.Duration
	dropped  uint64
}

// NewStepper creates a stepper ticking every interval, starting now
func NewStepper(clock TimeProvider, interval time.Duration) *Stepper {
	if interval <= 0 {
		interval = parameter.FrameInterval(parameter.DefaultFPS)
	}
	return &Stepper{
		clock:    clock,
		interval: interval,
		last:     clock.Now(),
	}
}

// Due returns how many ticks to run now, capped at parameter.MaxCatchUpTicks
// Ticks beyond the cap are discarded and counted in Dropped
func (s *Stepper) Due() int {
	now := s.clock.Now()
	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed > 0 {
		s.backlog += elapsed
	}

	n := int(s.backlog / s.interval)
	s.backlog -= time.Duration(n) * s.interval

	if n > parameter.MaxCatchUpTicks {
		s.dropped += uint64(n - parameter.MaxCatchUpTicks)
		n = parameter.MaxCatchUpTicks
	}
	return n
}

// Reset discards any backlog and restarts timing from now
func (s *Stepper) Reset() {
	s.last = s.clock.Now()
	s.backlog = 0
}

// Interval returns the tick length
func (s *Stepper) Interval() time.Duration {
	return s.interval
}

// Dropped returns the total number of ticks discarded by the catch-up cap
func (s *Stepper) Dropped() uint64 {
	return s.dropped
}
