package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	MutationRate        float64       `json:"mutation_rate"`
	Seed                int64         `json:"seed"`
	Pattern             string        `json:"pattern"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Interactive         bool          `json:"interactive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               50,
		Height:              25,
		FrameRate:           200 * time.Millisecond,
		MutationRate:        0.0,
		Seed:                0, // 0 means seed from the current time
		Pattern:             "glider",
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseParallel:         true,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Interactive:         false,
	}
}

// LoadConfig loads configuration from JSON file
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

// Validate rejects configurations the engine or renderer cannot work with.
// The mutation rate bound mirrors the engine's own check so bad values are
// caught before the first frame.
func (c Config) Validate() error {
	if c.MutationRate < 0.0 || c.MutationRate > 1.0 {
		return errors.Errorf("[Validate] mutation_rate must be within [0.0, 1.0], got: %v", c.MutationRate)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] viewport dimensions must be positive, got: %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative, got: %v", c.FrameRate)
	}
	if c.RandomDensity < 0.0 || c.RandomDensity > 1.0 {
		return errors.Errorf("[Validate] random_density must be within [0.0, 1.0], got: %v", c.RandomDensity)
	}
	if c.InjectionCount < 0 {
		return errors.Errorf("[Validate] injection_count must not be negative, got: %d", c.InjectionCount)
	}
	return nil
}
