package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/graphwar/constant"
	"github.com/lixenwraith/graphwar/vmath"
)

// AudioConfig controls cue synthesis
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0-1.0
	SampleRate   int     `yaml:"sample_rate"`
	// EffectVolumes is keyed by SoundType name ("whoosh", "bell", "buzz")
	EffectVolumes map[string]float64 `yaml:"effect_volumes"`
}

// DefaultAudioConfig returns the default cue settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constant.AudioMasterVolume,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: map[string]float64{
			SoundWhoosh.String(): 0.6,
			SoundBell.String():   1.0,
			SoundBuzz.String():   0.8,
		},
	}
}

// effectVolume returns the configured volume for st, 1.0 when unset
func (cfg *AudioConfig) effectVolume(st SoundType) float64 {
	if v, ok := cfg.EffectVolumes[st.String()]; ok {
		return v
	}
	return 1.0
}

// ApplyEnv overrides fields from environment variables; unparseable values are ignored
func (cfg *AudioConfig) ApplyEnv() {
	// Check if audio is enabled
	if enabled := os.Getenv("GRAPHWAR_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("GRAPHWAR_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	// Load effect volumes from JSON
	if effectVols := os.Getenv("GRAPHWAR_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if cfg.EffectVolumes == nil {
				cfg.EffectVolumes = make(map[string]float64, len(volumes))
			}
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st.String()] = v
				}
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("GRAPHWAR_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}
