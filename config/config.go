package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/graphwar/arena"
	"github.com/lixenwraith/graphwar/audio"
	"github.com/lixenwraith/graphwar/constant"
	"github.com/lixenwraith/graphwar/curve"
	"github.com/lixenwraith/graphwar/vmath"
)

// ErrInvalid marks a configuration that fails validation
var ErrInvalid = errors.New("invalid configuration")

// Config is the full game configuration
type Config struct {
	Field FieldConfig        `yaml:"field"`
	Curve CurveConfig        `yaml:"curve"`
	Round RoundConfig        `yaml:"round"`
	Audio *audio.AudioConfig `yaml:"audio"`
}

// FieldConfig bounds the logical plot area
type FieldConfig struct {
	HalfExtent float64 `yaml:"half_extent"`
}

// CurveConfig controls sampling
type CurveConfig struct {
	DomainMin    float64 `yaml:"domain_min"`
	DomainMax    float64 `yaml:"domain_max"`
	Resolution   int     `yaml:"resolution"`
	FollowOrigin bool    `yaml:"follow_origin"`
}

// RoundConfig controls entity placement
type RoundConfig struct {
	ObstacleCount  [2]int     `yaml:"obstacle_count,flow"`
	ObstacleRadius [2]float64 `yaml:"obstacle_radius,flow"`
	ObstacleSides  [2]int     `yaml:"obstacle_sides,flow"`
	EnemyCount     [2]int     `yaml:"enemy_count,flow"`
	PlayerRadius   float64    `yaml:"player_radius"`
	EnemyRadius    float64    `yaml:"enemy_radius"`
	EnemyClearance float64    `yaml:"enemy_clearance"`
	MaxAttempts    int        `yaml:"max_attempts"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Field: FieldConfig{HalfExtent: constant.FieldHalfExtent},
		Curve: CurveConfig{
			DomainMin:  constant.CurveDomainMin,
			DomainMax:  constant.CurveDomainMax,
			Resolution: constant.CurveResolution,
		},
		Round: RoundConfig{
			ObstacleCount:  [2]int{constant.ObstacleCountMin, constant.ObstacleCountMax},
			ObstacleRadius: [2]float64{constant.ObstacleRadiusMin, constant.ObstacleRadiusMax},
			ObstacleSides:  [2]int{constant.ObstacleSidesMin, constant.ObstacleSidesMax},
			EnemyCount:     [2]int{constant.EnemyCountMin, constant.EnemyCountMax},
			PlayerRadius:   constant.PlayerRadius,
			EnemyRadius:    constant.EnemyRadius,
			EnemyClearance: constant.EnemyPlayerClearance,
			MaxAttempts:    constant.PlacementMaxAttempts,
		},
		Audio: audio.DefaultAudioConfig(),
	}
}

// Load builds a configuration from defaults, an optional YAML file, then the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.Audio == nil {
			cfg.Audio = audio.DefaultAudioConfig()
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables; unparseable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GRAPHWAR_RESOLUTION"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.Curve.Resolution = val
		}
	}
	if v := os.Getenv("GRAPHWAR_FOLLOW_ORIGIN"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			c.Curve.FollowOrigin = val
		}
	}
	if v := os.Getenv("GRAPHWAR_MAX_ATTEMPTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.Round.MaxAttempts = val
		}
	}
	if c.Audio != nil {
		c.Audio.ApplyEnv()
	}
}

// Validate rejects values the core cannot work with
func (c *Config) Validate() error {
	switch {
	case c.Field.HalfExtent <= 0:
		return fmt.Errorf("%w: field half_extent must be positive", ErrInvalid)
	case c.Curve.Resolution <= 0:
		return fmt.Errorf("%w: curve resolution must be positive", ErrInvalid)
	case !vmath.IsFinite(c.Curve.DomainMin) || !vmath.IsFinite(c.Curve.DomainMax):
		return fmt.Errorf("%w: curve domain must be finite", ErrInvalid)
	case c.Curve.DomainMax < c.Curve.DomainMin:
		return fmt.Errorf("%w: curve domain is inverted", ErrInvalid)
	case c.sampleSpan()*float64(c.Curve.Resolution)+1 > constant.MaxCurveSamples:
		return fmt.Errorf("%w: curve domain times resolution exceeds %d samples", ErrInvalid, constant.MaxCurveSamples)
	case c.Round.ObstacleCount[0] < 0 || c.Round.ObstacleCount[1] < c.Round.ObstacleCount[0]:
		return fmt.Errorf("%w: obstacle_count range", ErrInvalid)
	case c.Round.ObstacleRadius[0] < 0 || c.Round.ObstacleRadius[1] < c.Round.ObstacleRadius[0]:
		return fmt.Errorf("%w: obstacle_radius range", ErrInvalid)
	case c.Round.ObstacleSides[0] < 3 || c.Round.ObstacleSides[1] < c.Round.ObstacleSides[0]:
		return fmt.Errorf("%w: obstacle_sides range", ErrInvalid)
	case c.Round.EnemyCount[0] < 1 || c.Round.EnemyCount[1] < c.Round.EnemyCount[0]:
		return fmt.Errorf("%w: enemy_count range", ErrInvalid)
	case c.Round.PlayerRadius < 0 || c.Round.EnemyRadius < 0 || c.Round.EnemyClearance < 0:
		return fmt.Errorf("%w: radii and clearance must not be negative", ErrInvalid)
	case c.Round.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts must be at least 1", ErrInvalid)
	}
	if c.Audio != nil && (c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1) {
		return fmt.Errorf("%w: audio master_volume must be within [0, 1]", ErrInvalid)
	}
	return nil
}

// sampleSpan is the widest x interval a shot can sample, including the
// widening applied when the domain follows the player
func (c *Config) sampleSpan() float64 {
	span := c.Curve.DomainMax - c.Curve.DomainMin
	if c.Curve.FollowOrigin {
		span += 2 * c.Field.HalfExtent
	}
	return span
}

// Rules converts the round section for arena.PlaceRound
func (c *Config) Rules() arena.Rules {
	return arena.Rules{
		HalfExtent:        c.Field.HalfExtent,
		ObstacleCountMin:  c.Round.ObstacleCount[0],
		ObstacleCountMax:  c.Round.ObstacleCount[1],
		ObstacleRadiusMin: c.Round.ObstacleRadius[0],
		ObstacleRadiusMax: c.Round.ObstacleRadius[1],
		ObstacleSidesMin:  c.Round.ObstacleSides[0],
		ObstacleSidesMax:  c.Round.ObstacleSides[1],
		PlayerRadius:      c.Round.PlayerRadius,
		EnemyCountMin:     c.Round.EnemyCount[0],
		EnemyCountMax:     c.Round.EnemyCount[1],
		EnemyRadius:       c.Round.EnemyRadius,
		EnemyClearance:    c.Round.EnemyClearance,
		MaxAttempts:       c.Round.MaxAttempts,
	}
}

// Domain returns the configured sampling interval
func (c *Config) Domain() curve.Domain {
	return curve.Domain{Min: c.Curve.DomainMin, Max: c.Curve.DomainMax}
}
