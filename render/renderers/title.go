package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/render"
	"github.com/lixenwraith/footbag/vmath"
)

// TitleRenderer draws the waving title over a darkened band
type TitleRenderer struct{}

// NewTitleRenderer creates a title renderer
func NewTitleRenderer() *TitleRenderer {
	return &TitleRenderer{}
}

// Render implements SystemRenderer
func (r *TitleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	view := ctx.View
	decor := &ctx.Game.Decor

	bandTop := view.WorldToPixel(vmath.V2(0, parameter.TitleBandTop))
	bandBottom := view.WorldToPixel(vmath.V2(view.Field.Width, parameter.TitleBandTop+parameter.TitleBandHeight))
	buf.DarkenRect(int(bandTop.X), int(bandTop.Y), int(bandBottom.X), int(bandBottom.Y), parameter.TitleBandAlpha)

	centerCol, _ := view.WorldToCell(vmath.V2(view.Field.Width/2, 0))
	col := centerCol - runewidth.StringWidth(parameter.TitleText)/2

	for i, ch := range []rune(parameter.TitleText) {
		if ch == ' ' {
			col++
			continue
		}
		_, row := view.WorldToCell(vmath.V2(0, parameter.TitleRowWorld+decor.TitleOffset(i)))
		col += buf.DrawText(col, row, string(ch), decor.TitleColor(i))
	}
}
