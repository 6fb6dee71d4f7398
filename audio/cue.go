package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/graphwar/curve"
)

// soundFor maps a collision kind to its cue
func soundFor(k curve.Kind) SoundType {
	if k == curve.KindObstacle {
		return SoundBuzz
	}
	return SoundBell
}

// ShotCue mixes the sounds of one shot: a whoosh at fire time and one cue per
// visible event, delayed to the frame the reveal animation reaches it.
// Returns nil when audio is disabled.
func ShotCue(res curve.Result, cfg *AudioConfig, frameDuration time.Duration) beep.Streamer {
	if cfg == nil || !cfg.Enabled || cfg.SampleRate <= 0 {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	tracks := []beep.Streamer{CreateWhooshSound(cfg)}
	for _, ev := range res.Visible() {
		delay := rate.N(time.Duration(ev.Frame) * frameDuration)
		tracks = append(tracks, beep.Seq(beep.Silence(delay), GetSoundEffect(soundFor(ev.Kind), cfg)))
	}
	return beep.Mix(tracks...)
}

// CueLength returns the sample count ShotCue will produce for res
func CueLength(res curve.Result, cfg *AudioConfig, frameDuration time.Duration) int {
	if cfg == nil || !cfg.Enabled || cfg.SampleRate <= 0 {
		return 0
	}
	rate := beep.SampleRate(cfg.SampleRate)

	longest := rate.N(soundDuration(SoundWhoosh))
	for _, ev := range res.Visible() {
		end := rate.N(time.Duration(ev.Frame)*frameDuration) + rate.N(soundDuration(soundFor(ev.Kind)))
		if end > longest {
			longest = end
		}
	}
	return longest
}
