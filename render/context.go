package render

import (
	"github.com/lixenwraith/footbag/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Game *engine.Game
	View Viewport

	// Frame counts rendered frames; DeltaTime is the frame interval in seconds
	Frame     uint64
	DeltaTime float64

	// Events holds what the game reported since the previous frame
	Events []engine.GameEvent

	Muted bool
}

// HasEvent reports whether an event of type t arrived this frame
func (ctx *RenderContext) HasEvent(t engine.EventType) bool {
	for _, e := range ctx.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
