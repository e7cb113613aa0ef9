package parameter

// Layout
const (
	// ScoreX and ScoreY place the score HUD in cells
	ScoreX = 2
	ScoreY = 1

	// TitleRowWorld is the title baseline in world units
	TitleRowWorld = 60.0

	// TitleBandTop and TitleBandHeight frame the dark band behind the title, world units
	TitleBandTop    = 20.0
	TitleBandHeight = 100.0

	// TitleBandAlpha is the darkening applied under the title
	TitleBandAlpha = 70.0 / 255.0

	// BackgroundBandWorld is the gradient band height in world units
	BackgroundBandWorld = 4.0
)

// Joint markers, world units
const (
	HipMarkerRadius   = 8.0
	KneeMarkerRadius  = 6.0
	AnkleMarkerRadius = 5.0

	// HighlightRadiusRatio sizes the blob highlight against the body radius
	HighlightRadiusRatio = 0.5

	// HighlightBoost is added to each channel of the blob colour for the highlight
	HighlightBoost = 50
)

// HUD animation springs
const (
	ScorePopKick      = 1.0
	ScorePopFrequency = 8.0
	ScorePopDamping   = 0.35

	OverlaySlideFrequency = 5.0
	OverlaySlideDamping   = 0.8
)

// Game-over screen
const (
	// GameOverLineSpacing separates the game-over lines, world units
	GameOverLineSpacing = 60.0

	// GameOverDimAlpha darkens the field behind the game-over text
	GameOverDimAlpha = 0.4
)

// Debug overlay
const (
	DebugMarginX = 1
	DebugMarginY = 1
)

// Text
const (
	TextScore      = "Score: %d"
	TextFinalScore = "Final Score: %d"
	TextGameOver   = "GAME OVER"
	TextRestart    = "Press SPACE to restart"
	TextMuted      = "muted"
)
