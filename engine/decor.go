package engine

import (
	"math"

	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/parameter/visual"
)

// Decor is the cosmetic animation state: background gradient and title wave
// It never influences physics or scoring
type Decor struct {
	BackgroundIndex int
	backgroundTimer float64

	TitleColorIndex int
	titleColorTimer int
	TitleWaveTime   float64
}

// Advance moves every cosmetic timer forward one tick
func (d *Decor) Advance() {
	d.backgroundTimer += parameter.BackgroundColorSpeed
	if d.backgroundTimer >= parameter.BackgroundColorThreshold {
		d.backgroundTimer = 0
		d.BackgroundIndex = (d.BackgroundIndex + 1) % len(visual.Palette)
	}

	d.TitleWaveTime += parameter.TitleWaveSpeed
	d.titleColorTimer++
	if d.titleColorTimer > parameter.TitleColorTicks {
		d.titleColorTimer = 0
		d.TitleColorIndex = (d.TitleColorIndex + 1) % len(visual.Palette)
	}
}

// BackgroundColors returns the gradient's top and bottom colours
func (d *Decor) BackgroundColors() (top, bottom visual.RGB) {
	return visual.PaletteAt(d.BackgroundIndex), visual.PaletteAt(d.BackgroundIndex + 1)
}

// TitleOffset returns the vertical wave offset of title character i
func (d *Decor) TitleOffset(i int) float64 {
	return math.Sin(d.TitleWaveTime+float64(i)*parameter.TitleWaveFrequency) * parameter.TitleWaveAmplitude
}

// TitleColor returns the colour of title character i
// Even characters are brightened
func (d *Decor) TitleColor(i int) visual.RGB {
	c := visual.PaletteAt(d.TitleColorIndex)
	if i%2 == 0 {
		return c.Brighten(parameter.HighlightBoost)
	}
	return c
}
