package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/footbag/config"
	"github.com/lixenwraith/footbag/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
// A non-zero glide multiplies the frequency by (1-glide) over the duration
type oscillator struct {
	freq     float64
	glide    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newGlideOscillator(freq, 0, duration, wave, rate)
}

func newGlideOscillator(freq, glide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		glide:    glide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.glide != 0 {
			freq *= 1 - o.glide*float64(o.position)/float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// effectVolume returns the per-effect gain multiplied by the master volume
func effectVolume(t SoundType, cfg config.AudioConfig) float64 {
	var v float64
	switch t {
	case SoundKick, SoundThump:
		v = cfg.Volumes.Kick
	case SoundWall:
		v = cfg.Volumes.Wall
	case SoundGameOver:
		v = cfg.Volumes.GameOver
	}
	return v * cfg.MasterVolume
}

// Sound effect generators

// CreateKickSound generates a noise click followed by a low thud with a falling pitch
func CreateKickSound(cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	clickDur := parameter.KickSoundAttack * 4

	click := NewOscillator(0, clickDur, WaveNoise, rate)
	clickShaped := NewEnvelope(click, clickDur, 0, clickDur, rate)

	body := newGlideOscillator(parameter.KickSoundFreq, 0.5, parameter.KickSoundDuration, WaveSine, rate)
	bodyShaped := NewEnvelope(body, parameter.KickSoundDuration, parameter.KickSoundAttack, parameter.KickSoundRelease, rate)

	sequence := beep.Seq(newVolume(clickShaped, 0.25), bodyShaped)
	return newVolume(sequence, effectVolume(SoundKick, cfg))
}

// CreateThumpSound generates a shorter, higher knock for calf strikes
func CreateThumpSound(cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := newGlideOscillator(parameter.ThumpSoundFreq, 0.3, parameter.ThumpSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.ThumpSoundDuration, parameter.ThumpSoundAttack, parameter.ThumpSoundRelease, rate)

	return newVolume(shaped, 0.8*effectVolume(SoundThump, cfg))
}

// CreateWallSound generates a short square tick
func CreateWallSound(cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.WallSoundFreq, parameter.WallSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.WallSoundDuration, parameter.WallSoundAttack, parameter.WallSoundRelease, rate)

	return newVolume(shaped, 0.3*effectVolume(SoundWall, cfg))
}

// tone returns an enveloped sine note, or nil if the generator rejects freq
func tone(rate beep.SampleRate, freq float64, duration, attack, release time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil
	}
	return NewEnvelope(beep.Take(rate.N(duration), sine), duration, attack, release, rate)
}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []beep.Streamer{
		tone(rate, parameter.GameOverNote1Freq, parameter.GameOverNote1Duration, parameter.GameOverSoundAttack, parameter.GameOverNoteRelease),
		tone(rate, parameter.GameOverNote2Freq, parameter.GameOverNote2Duration, parameter.GameOverSoundAttack, parameter.GameOverNoteRelease),
		tone(rate, parameter.GameOverNote3Freq, parameter.GameOverNote3Duration, parameter.GameOverSoundAttack, parameter.GameOverFinalRelease),
	}
	for _, n := range notes {
		if n == nil {
			return nil
		}
	}

	return newVolume(beep.Seq(notes...), 0.5*effectVolume(SoundGameOver, cfg))
}

// GetSoundEffect returns the streamer for the given type, or nil if unknown
func GetSoundEffect(soundType SoundType, cfg config.AudioConfig) beep.Streamer {
	switch soundType {
	case SoundKick:
		return CreateKickSound(cfg)
	case SoundThump:
		return CreateThumpSound(cfg)
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
