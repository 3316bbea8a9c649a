package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv
const EnvPrefix = "LIFE_"

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// SimulationConfig holds the scalar settings of a run.
// Each field can be overridden by the LIFE_* variable named in its env tag.
type SimulationConfig struct {
	Size                int           `json:"size" env:"SIZE"`
	FrameRate           time.Duration `json:"frame_rate" env:"FRAME_RATE"`
	MaxGenerations      int           `json:"max_generations" env:"MAX_GENERATIONS"`
	RandomDensity       float64       `json:"random_density" env:"RANDOM_DENSITY"`
	Seed                int64         `json:"seed" env:"SEED"`
	StagnationThreshold int           `json:"stagnation_threshold" env:"STAGNATION_THRESHOLD"`
	StopOnStagnation    bool          `json:"stop_on_stagnation" env:"STOP_ON_STAGNATION"`
	ClearScreen         bool          `json:"clear_screen" env:"CLEAR_SCREEN"`
	// MetricsAddr serves Prometheus metrics when set, e.g. ":9090"
	MetricsAddr         string        `json:"metrics_addr" env:"METRICS_ADDR"`
}

// Placement stamps a library pattern onto the grid before the first generation.
// Transforms apply in order: rotate, flip vertical, flip horizontal, flip diagonal.
type Placement struct {
	Pattern        string `json:"pattern"`
	Row            int    `json:"row"`
	Col            int    `json:"col"`
	Rotate         int    `json:"rotate"`
	FlipVertical   bool   `json:"flip_vertical"`
	FlipHorizontal bool   `json:"flip_horizontal"`
	FlipDiag       bool   `json:"flip_diag"`
}

// Config holds the configuration for the game
type Config struct {
	Simulation SimulationConfig `json:"simulation"`
	Placements []Placement      `json:"placements"`
}

// DefaultConfig returns sensible defaults: a glider gun firing across a 50x50 board
func DefaultConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			Size:                50,
			FrameRate:           100 * time.Millisecond,
			MaxGenerations:      500,
			RandomDensity:       0,
			Seed:                1,
			StagnationThreshold: 5,
			StopOnStagnation:    true,
			ClearScreen:         true,
		},
		Placements: []Placement{
			{Pattern: "glider_gun", Row: 20, Col: 6},
		},
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overlays LIFE_* environment variables onto the simulation settings.
// Unset variables leave the current values untouched.
func ApplyEnv(config *Config) error {
	if err := env.ParseWithOptions(&config.Simulation, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	s := c.Simulation
	switch {
	case s.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size must be positive, got %d", s.Size)
	case s.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must be non-negative, got %d", s.MaxGenerations)
	case s.RandomDensity < 0 || s.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be within [0, 1], got %v", s.RandomDensity)
	case s.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must be non-negative, got %v", s.FrameRate)
	}
	for i, p := range c.Placements {
		if p.Rotate < 0 {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] placement %d: rotate must be non-negative, got %d", i, p.Rotate)
		}
	}
	return nil
}
