package render

import "github.com/lixenwraith/footbag/vmath"

// Painter draws world-space shapes onto a buffer through a viewport
type Painter struct {
	Buf  *RenderBuffer
	View Viewport
}

// Polygon fills a world-space polygon
func (p Painter) Polygon(pts []vmath.Vec2, c RGB) {
	px := make([]vmath.Vec2, len(pts))
	for i, pt := range pts {
		px[i] = p.View.WorldToPixel(pt)
	}
	p.Buf.FillPolygon(px, c)
}

// Circle fills a world-space disc
// Discs smaller than a pixel still cover the pixel under their center
func (p Painter) Circle(center vmath.Vec2, radius float64, c RGB) {
	pc := p.View.WorldToPixel(center)
	r := p.View.Length(radius)
	if r < 0.5 {
		p.Buf.SetPixel(int(pc.X), int(pc.Y), c)
		return
	}
	p.Buf.FillCircle(pc, r, c)
}

// ThickLine fills the rectangle of the given width centered on a-b
func (p Painter) ThickLine(a, b vmath.Vec2, width float64, c RGB) {
	dir, ok := b.Sub(a).Normalize()
	if !ok {
		p.Circle(a, width/2, c)
		return
	}
	n := dir.Perpendicular().Scale(width / 2)
	p.Polygon([]vmath.Vec2{a.Sub(n), a.Add(n), b.Add(n), b.Sub(n)}, c)
}

// TextCell returns the terminal cell for a world point
func (p Painter) TextCell(pt vmath.Vec2) (int, int) {
	return p.View.WorldToCell(pt)
}
