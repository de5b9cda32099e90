package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// DefaultConfigFile is read from the working directory when present
const DefaultConfigFile = "config.json"

// ErrInvalidConfig is the cause of every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	FrameRate           time.Duration `json:"frame_rate"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	Showcase            bool          `json:"showcase"`
	Color               bool          `json:"color"`
	Interactive         bool          `json:"interactive"`
}

// DefaultConfig returns sensible defaults: a 20x90 board redrawn every
// 50ms, seeded by a fair coin per cell, running until killed
func DefaultConfig() Config {
	return Config{
		Rows:                20,
		Cols:                90,
		FrameRate:           50 * time.Millisecond,
		RandomDensity:       0.5,
		Seed:                0, // 0 seeds from the clock
		MaxGenerations:      0, // 0 runs forever
		AutoRestart:         false,
		StagnationThreshold: 5,
		Showcase:            false,
		Color:               false,
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

// Validate reports the first setting that cannot be run
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate: %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max generations: %d", c.MaxGenerations)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative stagnation threshold: %d", c.StagnationThreshold)
	case c.AutoRestart && c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] auto restart needs a stagnation threshold of at least 1, got %d", c.StagnationThreshold)
	}
	return nil
}
