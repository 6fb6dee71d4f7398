package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/graphwar/constant"
	"github.com/lixenwraith/graphwar/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// noiseSeed keeps noise cues reproducible across runs
const noiseSeed = 0x9E3779B97F4A7C15

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(noiseSeed),
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
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
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

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume is mapped to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateWhooshSound generates a noise sweep for a fired curve
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constant.WhooshSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constant.WhooshSoundDuration, constant.WhooshSoundAttack, constant.WhooshSoundRelease, rate)

	return newVolume(shaped, cfg.effectVolume(SoundWhoosh)*cfg.MasterVolume)
}

// CreateBellSound generates a ding for a destroyed enemy
func CreateBellSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5)
	fund := NewOscillator(880.0, constant.BellSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constant.BellSoundDuration, constant.BellSoundAttack, constant.BellSoundFundamentalRelease, rate)

	// Harmonic (octave up)
	over := NewOscillator(1760.0, constant.BellSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constant.BellSoundDuration, constant.BellSoundAttack, constant.BellSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.effectVolume(SoundBell)*cfg.MasterVolume)
}

// CreateBuzzSound generates a short harsh buzz for a curve stopped by an obstacle
func CreateBuzzSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	saw := NewOscillator(100.0, constant.BuzzSoundDuration, WaveSaw, rate)
	sawShaped := NewEnvelope(saw, constant.BuzzSoundDuration, constant.BuzzSoundAttack, constant.BuzzSoundRelease, rate)

	// Square sub-octave gives the buzz its body
	sub := NewOscillator(50.0, constant.BuzzSoundDuration, WaveSquare, rate)
	subShaped := NewEnvelope(sub, constant.BuzzSoundDuration, constant.BuzzSoundAttack, constant.BuzzSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(sawShaped, 0.6),
		newVolume(subShaped, 0.4),
	)

	return newVolume(mixed, cfg.effectVolume(SoundBuzz)*cfg.MasterVolume)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	case SoundBell:
		return CreateBellSound(cfg)
	case SoundBuzz:
		return CreateBuzzSound(cfg)
	default:
		return nil
	}
}

// soundDuration is the fixed length of each effect
func soundDuration(st SoundType) time.Duration {
	switch st {
	case SoundWhoosh:
		return constant.WhooshSoundDuration
	case SoundBell:
		return constant.BellSoundDuration
	case SoundBuzz:
		return constant.BuzzSoundDuration
	}
	return 0
}
