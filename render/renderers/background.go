package renderers

import (
	"math"

	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/render"
	"github.com/lixenwraith/footbag/vmath"
)

// BackgroundRenderer paints the field as a banded vertical gradient between
// the current and next background palette colours
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	top, bottom := ctx.Game.Decor.BackgroundColors()
	x0, y0, x1, y1 := ctx.View.FieldRect()
	height := ctx.View.Field.Height

	for y := y0; y < y1; y++ {
		wy := ctx.View.PixelToWorld(vmath.V2(0, float64(y)+0.5)).Y
		band := math.Floor(wy/parameter.BackgroundBandWorld) * parameter.BackgroundBandWorld
		t := vmath.Clamp(band/height, 0, 1)
		buf.FillRect(x0, y, x1, y+1, render.Blend(top, bottom, t))
	}
}
