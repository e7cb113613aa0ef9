package visual

// RGB is an 8-bit per channel colour
type RGB struct {
	R, G, B uint8
}

// Palette is the psychedelic cycle shared by the blob, leg, background and title
var Palette = [6]RGB{
	{255, 0, 128}, // Hot pink
	{128, 0, 255}, // Purple
	{0, 255, 255}, // Cyan
	{255, 255, 0}, // Yellow
	{0, 255, 128}, // Turquoise
	{255, 128, 0}, // Orange
}

// Leg segment colours index into Palette
const (
	FootColorIndex  = 2
	CalfColorIndex  = 3
	ThighColorIndex = 4
)

var (
	RgbWhite = RGB{255, 255, 255}
	RgbBlack = RGB{0, 0, 0}
)

// PaletteAt wraps i into the palette
func PaletteAt(i int) RGB {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}

// Brighten adds delta to each channel, saturating at 255
func (c RGB) Brighten(delta int) RGB {
	return RGB{sat(int(c.R) + delta), sat(int(c.G) + delta), sat(int(c.B) + delta)}
}

func sat(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
