package render

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/footbag/parameter/visual"
	"github.com/lixenwraith/footbag/vmath"
)

// halfBlock draws the upper pixel as foreground and the lower as background
const halfBlock = '▀'

// textCell is a glyph layered over the pixel pair of one terminal cell
type textCell struct {
	r    rune
	fg   RGB
	set  bool
	cont bool // Trailing half of a wide rune
}

// RenderBuffer is a half-block pixel canvas with a text layer
// Pixel coordinates run [0,cols)×[0,rows*2); text uses cell coordinates
type RenderBuffer struct {
	cols, rows int
	pixels     []RGB
	text       []textCell
}

// NewRenderBuffer creates a buffer for a cols×rows terminal
func NewRenderBuffer(cols, rows int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(cols, rows)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *RenderBuffer) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	px := cols * rows * 2
	if cap(b.pixels) < px {
		b.pixels = make([]RGB, px)
		b.text = make([]textCell, cols*rows)
	} else {
		b.pixels = b.pixels[:px]
		b.text = b.text[:cols*rows]
	}
	b.cols, b.rows = cols, rows
	b.Clear(visual.RgbBlack)
}

// Clear fills every pixel with bg and drops all text
func (b *RenderBuffer) Clear(bg RGB) {
	for i := range b.pixels {
		b.pixels[i] = bg
	}
	for i := range b.text {
		b.text[i] = textCell{}
	}
}

// Bounds returns the size in cells
func (b *RenderBuffer) Bounds() (cols, rows int) {
	return b.cols, b.rows
}

// PixelBounds returns the size in pixels
func (b *RenderBuffer) PixelBounds() (w, h int) {
	return b.cols, b.rows * 2
}

func (b *RenderBuffer) inPixelBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows*2
}

// ===== PIXEL API =====

// SetPixel writes one pixel; out-of-bounds writes are ignored
func (b *RenderBuffer) SetPixel(x, y int, c RGB) {
	if !b.inPixelBounds(x, y) {
		return
	}
	b.pixels[y*b.cols+x] = c
}

// Pixel reads one pixel; out-of-bounds reads return black
func (b *RenderBuffer) Pixel(x, y int) RGB {
	if !b.inPixelBounds(x, y) {
		return visual.RgbBlack
	}
	return b.pixels[y*b.cols+x]
}

// BlendPixel mixes c over the existing pixel by alpha
func (b *RenderBuffer) BlendPixel(x, y int, c RGB, alpha float64) {
	if !b.inPixelBounds(x, y) {
		return
	}
	idx := y*b.cols + x
	b.pixels[idx] = Blend(b.pixels[idx], c, alpha)
}

// FillRect fills pixels [x0,x1)×[y0,y1), clipped to the buffer
func (b *RenderBuffer) FillRect(x0, y0, x1, y1 int, c RGB) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.cols), min(y1, b.rows*2)
	for y := y0; y < y1; y++ {
		row := b.pixels[y*b.cols : (y+1)*b.cols]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// DarkenRect blends pixels [x0,x1)×[y0,y1) toward black by alpha
func (b *RenderBuffer) DarkenRect(x0, y0, x1, y1 int, alpha float64) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.cols), min(y1, b.rows*2)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			idx := y*b.cols + x
			b.pixels[idx] = Darken(b.pixels[idx], alpha)
		}
	}
}

// FillCircle fills every pixel whose center lies within radius of center
// Coordinates are in pixel space
func (b *RenderBuffer) FillCircle(center vmath.Vec2, radius float64, c RGB) {
	if radius <= 0 {
		return
	}
	y0 := int(math.Floor(center.Y - radius))
	y1 := int(math.Ceil(center.Y + radius))
	x0 := int(math.Floor(center.X - radius))
	x1 := int(math.Ceil(center.X + radius))
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			if dx*dx+dy*dy <= r2 {
				b.SetPixel(x, y, c)
			}
		}
	}
}

// FillPolygon fills a simple or self-intersecting polygon with the even-odd rule
// Pixels are sampled at their centers; coordinates are in pixel space
func (b *RenderBuffer) FillPolygon(pts []vmath.Vec2, c RGB) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), b.rows*2-1)

	xs := make([]float64, 0, len(pts))
	for y := yStart; y <= yEnd; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, e := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= sy && e.Y > sy) || (e.Y <= sy && a.Y > sy) {
				t := (sy - a.Y) / (e.Y - a.Y)
				xs = append(xs, a.X+t*(e.X-a.X))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xa := max(int(math.Ceil(xs[i]-0.5)), 0)
			xb := min(int(math.Floor(xs[i+1]-0.5)), b.cols-1)
			for x := xa; x <= xb; x++ {
				b.SetPixel(x, y, c)
			}
		}
	}
}

// FillQuad fills the quadrilateral a-b-c-d
func (b *RenderBuffer) FillQuad(p0, p1, p2, p3 vmath.Vec2, c RGB) {
	b.FillPolygon([]vmath.Vec2{p0, p1, p2, p3}, c)
}

// ===== TEXT API =====

// DrawText writes s starting at cell (col,row) and returns the cells advanced
// Wide runes take two cells; text past the right edge is clipped
func (b *RenderBuffer) DrawText(col, row int, s string, fg RGB) int {
	x := col
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if row >= 0 && row < b.rows && x >= 0 && x+w <= b.cols {
			b.text[row*b.cols+x] = textCell{r: r, fg: fg, set: true}
			for i := 1; i < w; i++ {
				b.text[row*b.cols+x+i] = textCell{set: true, cont: true}
			}
		}
		x += w
	}
	return x - col
}

// DrawTextCentered writes s centered on the terminal width
func (b *RenderBuffer) DrawTextCentered(row int, s string, fg RGB) {
	b.DrawText((b.cols-runewidth.StringWidth(s))/2, row, s, fg)
}

// TextAt returns the glyph at a cell, if any
func (b *RenderBuffer) TextAt(col, row int) (rune, RGB, bool) {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return 0, RGB{}, false
	}
	t := b.text[row*b.cols+col]
	return t.r, t.fg, t.set && !t.cont
}

// ===== OUTPUT =====

// Flush writes the buffer to screen: each cell is a half block coloured by
// its two pixels, or a glyph over their average when text is present
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for row := 0; row < b.rows; row++ {
		top := b.pixels[(row*2)*b.cols : (row*2+1)*b.cols]
		bottom := b.pixels[(row*2+1)*b.cols : (row*2+2)*b.cols]
		for col := 0; col < b.cols; col++ {
			t := b.text[row*b.cols+col]
			if t.cont {
				continue
			}
			if t.set {
				bg := Blend(top[col], bottom[col], 0.5)
				style := tcell.StyleDefault.Foreground(TcellColor(t.fg)).Background(TcellColor(bg))
				screen.SetContent(col, row, t.r, nil, style)
				continue
			}
			style := tcell.StyleDefault.Foreground(TcellColor(top[col])).Background(TcellColor(bottom[col]))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}
