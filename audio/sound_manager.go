// Package audio synthesizes the footbag sound effects and plays them through
// the system speaker. A missing audio device leaves the game silent.
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/footbag/config"
	"github.com/lixenwraith/footbag/engine"
	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/status"
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	played *atomic.Int64
}

// NewSoundManager creates a sound manager; registry may be nil
// A config with Enabled=false starts muted
func NewSoundManager(cfg config.AudioConfig, registry *status.Registry) *SoundManager {
	if registry == nil {
		registry = status.NewRegistry()
	}
	sm := &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		played: registry.Ints.Get(status.KeySoundsSent),
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize sets up the speaker; safe to call more than once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Play queues one sound effect on the mixer
// Returns ErrNotInitialized before Initialize succeeds; muted playback is a silent no-op
func (sm *SoundManager) Play(t SoundType) error {
	_, err := sm.play(t)
	return err
}

func (sm *SoundManager) play(t SoundType) (bool, error) {
	if sm.muted.Load() {
		return false, nil
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false, ErrNotInitialized
	}

	s := GetSoundEffect(t, sm.cfg)
	if s == nil {
		return false, nil
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()

	sm.played.Add(1)
	return true, nil
}

// HandleEvents plays the sound for each game event in order
// Returns the number of sounds queued
func (sm *SoundManager) HandleEvents(events []engine.GameEvent) int {
	n := 0
	for _, ev := range events {
		t, ok := SoundForEvent(ev)
		if !ok {
			continue
		}
		if queued, _ := sm.play(t); queued {
			n++
		}
	}
	return n
}
