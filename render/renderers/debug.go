package renderers

import (
	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/parameter/visual"
	"github.com/lixenwraith/footbag/physics"
	"github.com/lixenwraith/footbag/render"
	"github.com/lixenwraith/footbag/status"
	"github.com/lixenwraith/footbag/vmath"
)

// debugTint marks collision volumes
var debugTint = visual.RGB{R: 255, G: 64, B: 64}

// DebugRenderer lists live metrics and tints the foot contact box
// Hidden until toggled
type DebugRenderer struct {
	registry *status.Registry
	visible  bool
}

// NewDebugRenderer creates a hidden debug overlay
func NewDebugRenderer(registry *status.Registry) *DebugRenderer {
	return &DebugRenderer{registry: registry}
}

// Toggle flips visibility
func (d *DebugRenderer) Toggle() {
	d.visible = !d.visible
}

// SetVisible forces visibility
func (d *DebugRenderer) SetVisible(v bool) {
	d.visible = v
}

// IsVisible implements VisibilityToggle
func (d *DebugRenderer) IsVisible() bool {
	return d.visible
}

// Render implements SystemRenderer
func (d *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	box := physics.FootBox(ctx.Game.Leg())
	lo := ctx.View.WorldToPixel(vmath.V2(box.LowerBound.X, box.LowerBound.Y))
	hi := ctx.View.WorldToPixel(vmath.V2(box.UpperBound.X, box.UpperBound.Y))
	for y := int(lo.Y); y <= int(hi.Y); y++ {
		for x := int(lo.X); x <= int(hi.X); x++ {
			buf.BlendPixel(x, y, debugTint, 0.5)
		}
	}

	lines := d.registry.Lines()
	_, rows := buf.Bounds()
	row := rows - parameter.DebugMarginY - len(lines)
	for _, line := range lines {
		buf.DrawText(parameter.DebugMarginX, row, line, visual.RgbWhite)
		row++
	}
}
