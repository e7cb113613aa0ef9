package parameter

import "time"

// Game Loop Timing
const (
	// DefaultFPS is the fixed simulation and render rate; one physics tick per frame
	DefaultFPS = 60

	// MinFPS and MaxFPS bound the configured rate
	MinFPS = 10
	MaxFPS = 240

	// MaxCatchUpTicks caps ticks run in one frame after a stall so the loop never spirals
	MaxCatchUpTicks = 5
)

// Events
const (
	// EventQueueSize is the session event ring capacity; the oldest event is overwritten when full
	EventQueueSize = 32
)

// FrameInterval converts a rate into a tick duration
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
