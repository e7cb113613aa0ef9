package main

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/footbag/audio"
	"github.com/lixenwraith/footbag/engine"
	"github.com/lixenwraith/footbag/input"
	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/render"
	"github.com/lixenwraith/footbag/render/renderers"
	"github.com/lixenwraith/footbag/status"
)

// fpsSmoothing weights each new frame-rate sample
const fpsSmoothing = 0.1

// session ties the game to the terminal: input in, frames out
// Only the main goroutine touches it
type session struct {
	screen   tcell.Screen
	keys     *input.KeyTable
	sound    *audio.SoundManager
	registry *status.Registry

	game         *engine.Game
	view         render.Viewport
	pointer      *input.Pointer
	stepper      *engine.Stepper
	orchestrator *render.RenderOrchestrator
	debug        *renderers.DebugRenderer

	frame     uint64
	lastFrame time.Time
	clock     engine.TimeProvider

	fps     *status.AtomicFloat
	dropped *atomic.Int64
}

// sessionOptions configures newSession
type sessionOptions struct {
	Seed  uint64
	FPS   int
	Debug bool
	Clock engine.TimeProvider
}

func newSession(screen tcell.Screen, keys *input.KeyTable, sound *audio.SoundManager, registry *status.Registry, opts sessionOptions) *session {
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}
	cols, rows := screen.Size()

	game := engine.NewGame(engine.Options{Seed: opts.Seed, Status: registry})
	view := render.NewViewport(cols, rows, game.Field())

	s := &session{
		screen:       screen,
		keys:         keys,
		sound:        sound,
		registry:     registry,
		game:         game,
		view:         view,
		pointer:      input.NewPointer(view, game.Leg().Ankle),
		stepper:      engine.NewStepper(opts.Clock, parameter.FrameInterval(opts.FPS)),
		orchestrator: render.NewRenderOrchestrator(screen, cols, rows),
		debug:        renderers.NewDebugRenderer(registry),
		clock:        opts.Clock,
		lastFrame:    opts.Clock.Now(),
		fps:          registry.Floats.Get(status.KeyFPS),
		dropped:      registry.Ints.Get(status.KeyDropped),
	}
	s.debug.SetVisible(opts.Debug)

	fps := opts.FPS
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}
	s.orchestrator.Register(renderers.NewBackgroundRenderer(), render.PriorityBackground)
	s.orchestrator.Register(renderers.NewTitleRenderer(), render.PriorityTitle)
	s.orchestrator.Register(renderers.NewLegRenderer(), render.PriorityLeg)
	s.orchestrator.Register(renderers.NewFootbagRenderer(), render.PriorityFootbag)
	s.orchestrator.Register(renderers.NewHUDRenderer(fps), render.PriorityUI)
	s.orchestrator.Register(renderers.NewGameOverRenderer(fps), render.PriorityOverlay)
	s.orchestrator.Register(s.debug, render.PriorityDebug)

	return s
}

// handle processes one terminal event and reports whether to keep running
func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.apply(s.keys.Resolve(ev))
	case *tcell.EventMouse:
		s.pointer.HandleMouse(ev)
	case *tcell.EventResize:
		s.resize()
	}
	return true
}

// apply executes an intent and reports whether to keep running
func (s *session) apply(intent input.IntentType) bool {
	switch intent {
	case input.IntentQuit:
		return false
	case input.IntentRestart:
		if s.game.IsOver() {
			log.Printf("restart after score %d", s.game.Score())
			s.game.Reset()
		}
	case input.IntentToggleMute:
		muted := s.sound.ToggleMute()
		log.Printf("muted=%v", muted)
	case input.IntentToggleDebug:
		s.debug.Toggle()
	}
	return true
}

func (s *session) resize() {
	cols, rows := s.screen.Size()
	s.view = render.NewViewport(cols, rows, s.game.Field())
	s.pointer.SetMapper(s.view)
	s.orchestrator.Resize(cols, rows)
}

// tick runs the due simulation steps and renders one frame
func (s *session) tick() {
	for n := s.stepper.Due(); n > 0; n-- {
		if s.game.IsOver() {
			s.game.AdvanceDecor()
			continue
		}
		target, vel := s.pointer.Sample()
		s.game.Step(engine.Input{Target: target, PointerVelocity: vel})
	}

	events := s.game.Events()
	s.sound.HandleEvents(events)
	for _, ev := range events {
		if ev.Type == engine.EventGameOver {
			log.Printf("game over at tick %d, score %d", ev.Tick, ev.Score)
		}
	}

	now := s.clock.Now()
	dt := now.Sub(s.lastFrame).Seconds()
	s.lastFrame = now
	if dt > 0 {
		s.fps.Smooth(1/dt, fpsSmoothing)
	}
	s.dropped.Store(int64(s.stepper.Dropped()))

	s.frame++
	s.orchestrator.RenderFrame(render.RenderContext{
		Game:      s.game,
		View:      s.view,
		Frame:     s.frame,
		DeltaTime: dt,
		Events:    events,
		Muted:     s.sound.IsMuted(),
	})
}
