// Package status collects live session metrics for the debug overlay.
// Producers cache metric pointers once and write atomics on the hot path.
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the engine and the front end
const (
	KeyTicks      = "engine.ticks"
	KeyScore      = "engine.score"
	KeyFootKicks  = "engine.kicks.foot"
	KeyCalfKicks  = "engine.kicks.calf"
	KeyWallHits   = "engine.wall_hits"
	KeyGames      = "engine.games"
	KeyBagSpeed   = "physics.speed"
	KeyBagHeight  = "physics.height"
	KeyFPS        = "loop.fps"
	KeyDropped    = "loop.dropped_ticks"
	KeySoundsSent = "audio.played"
)

// Registry groups integer and float metrics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns the number of metrics across both maps
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Lines formats every metric as "key: value", integers first, each group sorted
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.2f", key, v.Get()))
	})
	return lines
}
