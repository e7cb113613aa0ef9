package parameter

// Colour Cycling
const (
	// FootbagColorTicks is how many ticks the colour timer must exceed before the blob colour advances
	FootbagColorTicks = 10

	// BackgroundColorSpeed is added to the background timer every tick
	BackgroundColorSpeed = 0.5

	// BackgroundColorThreshold advances the background palette index when reached
	BackgroundColorThreshold = 100.0

	// TitleColorTicks is how many ticks the title colour timer must exceed before advancing
	TitleColorTicks = 15
)

// Title Wave
const (
	TitleText          = "Psychedelic Footbag"
	TitleWaveAmplitude = 10.0
	TitleWaveFrequency = 0.1
	TitleWaveSpeed     = 0.05
)
