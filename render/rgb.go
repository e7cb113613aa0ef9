package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/footbag/parameter/visual"
)

// RGB is the palette colour type
type RGB = visual.RGB

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Blend mixes src over c by alpha in RGB space
// alpha <= 0 returns c, alpha >= 1 returns src
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	return fromColorful(toColorful(c).BlendRgb(toColorful(src), alpha))
}

// Darken blends c toward black by alpha
func Darken(c RGB, alpha float64) RGB {
	return Blend(c, visual.RgbBlack, alpha)
}

// TcellColor converts c to a 24-bit terminal colour
func TcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
