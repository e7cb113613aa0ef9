package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Fatal("Expected same pointer for repeated Get")
	}
	if !m.Has("x") || m.Has("y") {
		t.Error("Has reports wrong membership")
	}
	if m.Count() != 1 {
		t.Errorf("Expected count 1, got %d", m.Count())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Ints.Get(KeyTicks).Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Ints.Get(KeyTicks).Load(); got != 8000 {
		t.Errorf("Expected 8000, got %d", got)
	}
}

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyWallHits).Store(3)
	r.Ints.Get(KeyFootKicks).Store(7)
	r.Floats.Get(KeyFPS).Set(59.5)

	lines := r.Lines()
	want := []string{
		"engine.kicks.foot: 7",
		"engine.wall_hits: 3",
		"loop.fps: 59.50",
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestAtomicFloatSmooth(t *testing.T) {
	var f AtomicFloat
	if got := f.Smooth(60, 0.1); got != 60 {
		t.Errorf("Expected first sample to seed value, got %v", got)
	}
	if got := f.Smooth(50, 0.1); got != 59 {
		t.Errorf("Expected 59, got %v", got)
	}
	f.Set(2.5)
	if f.Get() != 2.5 {
		t.Errorf("Expected 2.5, got %v", f.Get())
	}
}
