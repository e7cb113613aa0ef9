package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/footbag/parameter"
)

var clockStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMonotonicTimeProviderNeverGoesBack(t *testing.T) {
	var clock TimeProvider = NewMonotonicTimeProvider()

	prev := clock.Now()
	for i := 0; i < 1000; i++ {
		now := clock.Now()
		if now.Before(prev) {
			t.Fatalf("Expected non-decreasing time, got %v after %v", now, prev)
		}
		prev = now
	}
}

func TestMockTimeProviderJumps(t *testing.T) {
	mock := NewMockTimeProvider(clockStart)

	mock.Advance(-3 * time.Second)
	if want := clockStart.Add(-3 * time.Second); !mock.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, mock.Now())
	}

	jump := clockStart.Add(time.Hour)
	mock.SetTime(jump)
	if !mock.Now().Equal(jump) {
		t.Errorf("Expected %v, got %v", jump, mock.Now())
	}
}

// TestStepperClockJumps drives a stepper through a clock that jumps both ways
// and checks the backlog never goes negative while dropped ticks add up
func TestStepperClockJumps(t *testing.T) {
	const interval = 10 * time.Millisecond
	mock := NewMockTimeProvider(clockStart)
	s := NewStepper(mock, interval)

	steps := []struct {
		name        string
		move        func()
		wantTicks   int
		wantDropped uint64
	}{
		{"partial tick", func() { mock.Advance(7 * time.Millisecond) }, 0, 0},
		{"clock steps back", func() { mock.Advance(-50 * time.Millisecond) }, 0, 0},
		{"carried backlog completes a tick", func() { mock.Advance(3 * time.Millisecond) }, 1, 0},
		{"set far back", func() { mock.SetTime(clockStart.Add(-time.Hour)) }, 0, 0},
		{"set forward by a stall", func() { mock.SetTime(clockStart.Add(-time.Hour + 80*time.Millisecond)) }, parameter.MaxCatchUpTicks, 3},
		{"exact tick", func() { mock.Advance(interval) }, 1, 3},
		{"long stall", func() { mock.Advance(20 * interval) }, parameter.MaxCatchUpTicks, 18},
	}

	for _, st := range steps {
		st.move()
		if n := s.Due(); n != st.wantTicks {
			t.Errorf("%s: expected %d ticks, got %d", st.name, st.wantTicks, n)
		}
		if s.backlog < 0 || s.backlog >= interval {
			t.Errorf("%s: expected backlog in [0,%v), got %v", st.name, interval, s.backlog)
		}
		if s.Dropped() != st.wantDropped {
			t.Errorf("%s: expected %d dropped, got %d", st.name, st.wantDropped, s.Dropped())
		}
	}
}
