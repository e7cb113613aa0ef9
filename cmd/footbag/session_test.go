package main

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/footbag/audio"
	"github.com/lixenwraith/footbag/config"
	"github.com/lixenwraith/footbag/engine"
	"github.com/lixenwraith/footbag/input"
	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/status"
	"github.com/lixenwraith/footbag/vmath"
)

// fakeScreen implements the parts of tcell.Screen the session uses
type fakeScreen struct {
	tcell.Screen
	w, h  int
	cells int
	shows int
	syncs int
}

func (f *fakeScreen) Size() (int, int) { return f.w, f.h }
func (f *fakeScreen) SetContent(x, y int, r rune, comb []rune, style tcell.Style) {
	f.cells++
}
func (f *fakeScreen) Show() { f.shows++ }
func (f *fakeScreen) Sync() { f.syncs++ }

func newTestSession(t *testing.T) (*session, *fakeScreen, *engine.MockTimeProvider) {
	t.Helper()
	screen := &fakeScreen{w: 80, h: 30}
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	reg := status.NewRegistry()
	sound := audio.NewSoundManager(config.Default().Audio, reg)
	s := newSession(screen, input.DefaultKeyTable(), sound, reg, sessionOptions{
		Seed:  7,
		FPS:   60,
		Clock: clock,
	})
	return s, screen, clock
}

func dropBag(g *engine.Game) {
	b := g.Footbag()
	shift := vmath.V2(650, 595).Sub(b.Position)
	b.Position = b.Position.Add(shift)
	for i := range b.Points {
		b.Points[i] = b.Points[i].Add(shift)
	}
	b.Velocity = vmath.V2(0, 10)
}

func TestSessionTickStepsAndRenders(t *testing.T) {
	s, screen, clock := newTestSession(t)

	clock.Advance(parameter.FrameInterval(60))
	s.tick()

	if s.game.Tick() != 1 {
		t.Errorf("Expected 1 tick, got %d", s.game.Tick())
	}
	if screen.shows != 1 {
		t.Errorf("Expected 1 frame shown, got %d", screen.shows)
	}
	if screen.cells != 80*30 {
		t.Errorf("Expected %d cells flushed, got %d", 80*30, screen.cells)
	}
	if fps := s.fps.Get(); math.Abs(fps-60) > 0.5 {
		t.Errorf("Expected fps near 60, got %v", fps)
	}

	// No elapsed time: render without stepping
	s.tick()
	if s.game.Tick() != 1 {
		t.Errorf("Expected still 1 tick, got %d", s.game.Tick())
	}
}

func TestSessionCatchUpIsCapped(t *testing.T) {
	s, _, clock := newTestSession(t)

	clock.Advance(parameter.FrameInterval(60) * 20)
	s.tick()

	if got := s.game.Tick(); got != parameter.MaxCatchUpTicks {
		t.Errorf("Expected %d ticks, got %d", parameter.MaxCatchUpTicks, got)
	}
	if got := s.registry.Ints.Get(status.KeyDropped).Load(); got != 15 {
		t.Errorf("Expected 15 dropped ticks, got %d", got)
	}
}

func TestSessionIntents(t *testing.T) {
	s, _, _ := newTestSession(t)

	if !s.apply(input.IntentNone) {
		t.Error("Expected none to keep running")
	}
	if s.apply(input.IntentQuit) {
		t.Error("Expected quit to stop the loop")
	}

	muted := s.sound.IsMuted()
	s.apply(input.IntentToggleMute)
	if s.sound.IsMuted() == muted {
		t.Error("Expected mute to toggle")
	}

	s.apply(input.IntentToggleDebug)
	if !s.debug.IsVisible() {
		t.Error("Expected debug overlay visible")
	}
}

func TestSessionRestartOnlyAfterGameOver(t *testing.T) {
	s, _, clock := newTestSession(t)
	games := s.registry.Ints.Get(status.KeyGames)

	s.apply(input.IntentRestart)
	if games.Load() != 1 {
		t.Errorf("Expected restart ignored mid-round, got %d games", games.Load())
	}

	dropBag(s.game)
	clock.Advance(parameter.FrameInterval(60))
	s.tick()
	if !s.game.IsOver() {
		t.Fatal("Expected round over")
	}

	// Decor keeps moving while the game-over panel is up
	title := s.game.Decor.TitleWaveTime
	clock.Advance(parameter.FrameInterval(60))
	s.tick()
	if s.game.Decor.TitleWaveTime <= title {
		t.Error("Expected decor to advance during game over")
	}

	s.apply(input.IntentRestart)
	if s.game.IsOver() || s.game.Score() != 0 {
		t.Error("Expected a fresh round after restart")
	}
	if games.Load() != 2 {
		t.Errorf("Expected 2 games, got %d", games.Load())
	}
}

func TestSessionMouseAndResize(t *testing.T) {
	s, screen, _ := newTestSession(t)

	s.handle(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if want := s.view.CellToWorld(10, 5); s.pointer.Position() != want {
		t.Errorf("Expected pointer at %v, got %v", want, s.pointer.Position())
	}

	screen.w, screen.h = 120, 40
	if !s.handle(tcell.NewEventResize(120, 40)) {
		t.Fatal("Expected resize to keep running")
	}
	if c, r := s.orchestrator.Buffer().Bounds(); c != 120 || r != 40 {
		t.Errorf("Expected 120x40 buffer, got %dx%d", c, r)
	}
	if s.view.Cols != 120 || s.view.Rows != 40 {
		t.Errorf("Expected viewport 120x40, got %dx%d", s.view.Cols, s.view.Rows)
	}
	if screen.syncs != 1 {
		t.Errorf("Expected one sync, got %d", screen.syncs)
	}

	s.handle(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if want := s.view.CellToWorld(10, 5); s.pointer.Position() != want {
		t.Errorf("Expected pointer remapped to %v, got %v", want, s.pointer.Position())
	}
}
