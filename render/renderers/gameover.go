package renderers

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/parameter/visual"
	"github.com/lixenwraith/footbag/render"
	"github.com/lixenwraith/footbag/vmath"
)

// GameOverRenderer dims the field and slides in the final score panel
type GameOverRenderer struct {
	spring harmonica.Spring
	active bool
	offset float64 // Rows above the resting position
	vel    float64
}

// NewGameOverRenderer creates a game-over renderer animating at fps
func NewGameOverRenderer(fps int) *GameOverRenderer {
	return &GameOverRenderer{
		spring: harmonica.NewSpring(harmonica.FPS(fps), parameter.OverlaySlideFrequency, parameter.OverlaySlideDamping),
	}
}

// Offset returns how far the panel is from resting, in rows
func (g *GameOverRenderer) Offset() float64 {
	return g.offset
}

// Render implements SystemRenderer
func (g *GameOverRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.Game.IsOver() {
		g.active = false
		return
	}
	_, rows := buf.Bounds()
	if !g.active {
		g.active = true
		g.offset = -float64(rows) / 2
		g.vel = 0
	}
	g.offset, g.vel = g.spring.Update(g.offset, g.vel, 0)

	x0, y0, x1, y1 := ctx.View.FieldRect()
	buf.DarkenRect(x0, y0, x1, y1, parameter.GameOverDimAlpha)

	field := ctx.View.Field
	_, center := ctx.View.WorldToCell(vmath.V2(0, field.Height/2))
	spacing := max(1, int(math.Round(ctx.View.Length(parameter.GameOverLineSpacing)/2)))
	base := center + int(math.Round(g.offset))

	buf.DrawTextCentered(base-spacing, parameter.TextGameOver, visual.RgbWhite)
	buf.DrawTextCentered(base, fmt.Sprintf(parameter.TextFinalScore, ctx.Game.Score()), visual.RgbWhite)
	buf.DrawTextCentered(base+spacing, parameter.TextRestart, visual.RgbWhite)
}
