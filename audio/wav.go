package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// ErrNoCue is returned when there is nothing to encode
var ErrNoCue = errors.New("no cue to encode")

// Format is the stereo 16-bit PCM layout cues are encoded with
func (cfg *AudioConfig) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
}

// WriteCue drains cue into w as a WAV file; cue is consumed
func WriteCue(w io.WriteSeeker, cue beep.Streamer, cfg *AudioConfig) error {
	if cue == nil || cfg == nil {
		return ErrNoCue
	}
	if err := wav.Encode(w, cue, cfg.Format()); err != nil {
		return fmt.Errorf("encode cue: %w", err)
	}
	return nil
}
