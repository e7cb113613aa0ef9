package audio

import (
	"errors"

	"github.com/lixenwraith/footbag/engine"
	"github.com/lixenwraith/footbag/physics"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundKick     SoundType = iota // Foot strike
	SoundThump                     // Calf strike
	SoundWall                      // Wall or ceiling bounce
	SoundGameOver                  // Footbag hit the floor
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"kick", "thump", "wall", "game_over"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ErrNotInitialized is returned when playing before Initialize succeeds
var ErrNotInitialized = errors.New("audio not initialized")

// SoundForEvent maps a game event to its sound effect
// Reset events and unknown types are silent
func SoundForEvent(ev engine.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case engine.EventKick:
		if ev.Limb == physics.LimbCalf {
			return SoundThump, true
		}
		return SoundKick, true
	case engine.EventWallBounce:
		return SoundWall, true
	case engine.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}
