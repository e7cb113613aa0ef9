package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Kick Sound (foot strike)
const (
	KickSoundDuration = 120 * time.Millisecond
	KickSoundAttack   = 2 * time.Millisecond
	KickSoundRelease  = 100 * time.Millisecond
	KickSoundFreq     = 90.0
)

// Thump Sound (calf strike)
const (
	ThumpSoundDuration = 90 * time.Millisecond
	ThumpSoundAttack   = 2 * time.Millisecond
	ThumpSoundRelease  = 70 * time.Millisecond
	ThumpSoundFreq     = 140.0
)

// Wall Sound
const (
	WallSoundDuration = 40 * time.Millisecond
	WallSoundAttack   = 1 * time.Millisecond
	WallSoundRelease  = 30 * time.Millisecond
	WallSoundFreq     = 660.0
)

// Game Over Sound
const (
	GameOverNote1Duration = 180 * time.Millisecond
	GameOverNote2Duration = 180 * time.Millisecond
	GameOverNote3Duration = 420 * time.Millisecond
	GameOverSoundAttack   = 5 * time.Millisecond
	GameOverNoteRelease   = 120 * time.Millisecond
	GameOverFinalRelease  = 380 * time.Millisecond
)

// Game Over Notes, a descending minor triad
const (
	GameOverNote1Freq = 523.25
	GameOverNote2Freq = 392.00
	GameOverNote3Freq = 311.13
)
