package renderers

import (
	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/parameter/visual"
	"github.com/lixenwraith/footbag/physics"
	"github.com/lixenwraith/footbag/render"
)

// LegRenderer draws thigh, calf and foot as thick bars with joint markers
type LegRenderer struct{}

// NewLegRenderer creates a leg renderer
func NewLegRenderer() *LegRenderer {
	return &LegRenderer{}
}

// limbColor returns the fixed palette colour of a limb
func limbColor(l physics.Limb) visual.RGB {
	switch l {
	case physics.LimbThigh:
		return visual.Palette[visual.ThighColorIndex]
	case physics.LimbCalf:
		return visual.Palette[visual.CalfColorIndex]
	default:
		return visual.Palette[visual.FootColorIndex]
	}
}

// Render implements SystemRenderer
func (r *LegRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	leg := ctx.Game.Leg()
	p := render.Painter{Buf: buf, View: ctx.View}

	for _, seg := range leg.Segments() {
		p.ThickLine(seg.Start, seg.End, seg.Width, limbColor(seg.Limb))
	}

	p.Circle(leg.Hip, parameter.HipMarkerRadius, visual.RgbWhite)
	p.Circle(leg.Knee, parameter.KneeMarkerRadius, visual.RgbWhite)
	p.Circle(leg.Ankle, parameter.AnkleMarkerRadius, visual.RgbWhite)
}
