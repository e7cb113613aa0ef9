package render

import (
	"math"

	"github.com/lixenwraith/footbag/physics"
	"github.com/lixenwraith/footbag/vmath"
)

// Viewport maps the play field onto the half-block pixel grid
// Each terminal cell holds two vertically stacked pixels, so pixels are
// roughly square and one scale factor serves both axes
type Viewport struct {
	Cols, Rows int
	Field      physics.Field

	// Scale is pixels per world unit
	Scale float64

	// OffsetX and OffsetY place the world origin in pixels, letterboxing the field
	OffsetX, OffsetY float64
}

// NewViewport fits field into a cols×rows terminal, preserving aspect ratio
func NewViewport(cols, rows int, field physics.Field) Viewport {
	v := Viewport{Cols: cols, Rows: rows, Field: field}
	pw, ph := float64(cols), float64(rows*2)
	if pw <= 0 || ph <= 0 || field.Width <= 0 || field.Height <= 0 {
		return v
	}
	v.Scale = math.Min(pw/field.Width, ph/field.Height)
	v.OffsetX = (pw - field.Width*v.Scale) / 2
	v.OffsetY = (ph - field.Height*v.Scale) / 2
	return v
}

// WorldToPixel converts a world point to pixel space
func (v Viewport) WorldToPixel(p vmath.Vec2) vmath.Vec2 {
	return vmath.V2(v.OffsetX+p.X*v.Scale, v.OffsetY+p.Y*v.Scale)
}

// PixelToWorld converts a pixel-space point to world space
func (v Viewport) PixelToWorld(p vmath.Vec2) vmath.Vec2 {
	if v.Scale == 0 {
		return vmath.Vec2{}
	}
	return vmath.V2((p.X-v.OffsetX)/v.Scale, (p.Y-v.OffsetY)/v.Scale)
}

// CellToWorld returns the world point at the center of a terminal cell
func (v Viewport) CellToWorld(x, y int) vmath.Vec2 {
	return v.PixelToWorld(vmath.V2(float64(x)+0.5, float64(y*2)+1))
}

// WorldToCell returns the terminal cell containing a world point
func (v Viewport) WorldToCell(p vmath.Vec2) (int, int) {
	px := v.WorldToPixel(p)
	return int(math.Floor(px.X)), int(math.Floor(px.Y / 2))
}

// Length converts a world distance to pixels
func (v Viewport) Length(world float64) float64 {
	return world * v.Scale
}

// FieldRect returns the field's pixel bounds [x0,x1)×[y0,y1)
func (v Viewport) FieldRect() (x0, y0, x1, y1 int) {
	tl := v.WorldToPixel(vmath.Vec2{})
	br := v.WorldToPixel(vmath.V2(v.Field.Width, v.Field.Height))
	return int(math.Round(tl.X)), int(math.Round(tl.Y)), int(math.Round(br.X)), int(math.Round(br.Y))
}
