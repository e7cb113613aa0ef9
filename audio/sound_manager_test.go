package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/footbag/config"
	"github.com/lixenwraith/footbag/engine"
	"github.com/lixenwraith/footbag/physics"
	"github.com/lixenwraith/footbag/status"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	reg := status.NewRegistry()
	sm := NewSoundManager(config.Default().Audio, reg)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for st := SoundType(0); st < soundTypeCount; st++ {
		if err := sm.Play(st); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("Expected ErrNotInitialized for %s, got %v", st, err)
		}
	}
	if n := sm.HandleEvents([]engine.GameEvent{{Type: engine.EventKick}}); n != 0 {
		t.Errorf("Expected nothing queued, got %d", n)
	}
	if got := reg.Ints.Get(status.KeySoundsSent).Load(); got != 0 {
		t.Errorf("Expected 0 sounds counted, got %d", got)
	}
	sm.Cleanup()
}

// TestSoundManagerMute verifies mute state and that muted playback is silent
func TestSoundManagerMute(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil)

	if !sm.IsMuted() {
		t.Fatal("Expected disabled config to start muted")
	}
	if err := sm.Play(SoundKick); err != nil {
		t.Errorf("Expected muted play to be a no-op, got %v", err)
	}

	if muted := sm.ToggleMute(); muted {
		t.Error("Expected toggle to unmute")
	}
	if sm.IsMuted() {
		t.Error("Expected unmuted after toggle")
	}
	sm.SetMuted(true)
	if !sm.IsMuted() {
		t.Error("Expected muted after SetMuted(true)")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	reg := status.NewRegistry()
	sm := NewSoundManager(config.Default().Audio, reg)

	// Speaker initialization fails on hosts without an audio device
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	events := []engine.GameEvent{
		{Type: engine.EventKick, Limb: physics.LimbFoot},
		{Type: engine.EventReset},
		{Type: engine.EventWallBounce},
	}
	if n := sm.HandleEvents(events); n != 2 {
		t.Errorf("Expected 2 sounds queued, got %d", n)
	}
	if got := reg.Ints.Get(status.KeySoundsSent).Load(); got != 2 {
		t.Errorf("Expected 2 sounds counted, got %d", got)
	}
}
