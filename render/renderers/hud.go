package renderers

import (
	"fmt"

	"github.com/charmbracelet/harmonica"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/footbag/engine"
	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/parameter/visual"
	"github.com/lixenwraith/footbag/render"
	"github.com/lixenwraith/footbag/vmath"
)

// HUDRenderer draws the score and the mute indicator
// Each kick knocks the score colour toward the footbag colour and a spring
// settles it back to white
type HUDRenderer struct {
	spring harmonica.Spring
	pop    float64
	popVel float64
}

// NewHUDRenderer creates a HUD renderer animating at fps
func NewHUDRenderer(fps int) *HUDRenderer {
	return &HUDRenderer{
		spring: harmonica.NewSpring(harmonica.FPS(fps), parameter.ScorePopFrequency, parameter.ScorePopDamping),
	}
}

// Pop returns the current highlight amount
func (h *HUDRenderer) Pop() float64 {
	return h.pop
}

// Render implements SystemRenderer
func (h *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.HasEvent(engine.EventKick) {
		h.pop = parameter.ScorePopKick
	}
	h.pop, h.popVel = h.spring.Update(h.pop, h.popVel, 0)

	color := render.Blend(visual.RgbWhite, ctx.Game.Footbag().Color(), vmath.Clamp(h.pop, 0, 1))
	buf.DrawText(parameter.ScoreX, parameter.ScoreY, fmt.Sprintf(parameter.TextScore, ctx.Game.Score()), color)

	if ctx.Muted {
		cols, _ := buf.Bounds()
		x := cols - runewidth.StringWidth(parameter.TextMuted) - parameter.ScoreX
		buf.DrawText(x, parameter.ScoreY, parameter.TextMuted, visual.RgbWhite)
	}
}
