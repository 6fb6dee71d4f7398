package constant

import "time"

// Audio defaults
const (
	// AudioSampleRate is the cue synthesis sample rate
	AudioSampleRate = 44100

	// AudioMasterVolume is the default master volume (0.0-1.0)
	AudioMasterVolume = 0.8
)

// Whoosh Sound Timing (curve fired)
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Bell Sound Timing (enemy destroyed)
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Buzz Sound Timing (curve blocked by obstacle)
const (
	BuzzSoundDuration = 80 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 20 * time.Millisecond
)
