package renderers

import (
	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/render"
)

// FootbagRenderer fills the soft-body outline and its center highlight
type FootbagRenderer struct{}

// NewFootbagRenderer creates a footbag renderer
func NewFootbagRenderer() *FootbagRenderer {
	return &FootbagRenderer{}
}

// Render implements SystemRenderer
func (r *FootbagRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	bag := ctx.Game.Footbag()
	p := render.Painter{Buf: buf, View: ctx.View}

	color := bag.Color()
	p.Polygon(bag.Points, color)
	p.Circle(bag.Position, bag.Radius*parameter.HighlightRadiusRatio, color.Brighten(parameter.HighlightBoost))
}
