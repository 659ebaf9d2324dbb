package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// ErrInvalidConfig marks a configuration that failed validation
var ErrInvalidConfig = errors.New("utils: invalid configuration")

// Config holds the configuration for a simulation run
type Config struct {
	LiveGlyph    string `json:"live_glyph"`
	DeadGlyph    string `json:"dead_glyph"`
	Color        bool   `json:"color"`
	UseParallel  bool   `json:"use_parallel"`
	Workers      int    `json:"workers"`
	ShowStats    bool   `json:"show_stats"`
	DetectCycles bool   `json:"detect_cycles"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		LiveGlyph:    "▣",
		DeadGlyph:    "▢",
		Color:        false,
		UseParallel:  false,
		Workers:      0, // one per CPU when parallel
		ShowStats:    false,
		DetectCycles: true,
	}
}

// LoadConfig loads configuration from JSON file, keeping defaults for absent keys
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the glyphs are usable and the worker count is sane
func (c Config) Validate() error {
	switch {
	case c.LiveGlyph == "" || c.DeadGlyph == "":
		return errors.Wrap(ErrInvalidConfig, "glyphs must not be empty")
	case c.LiveGlyph == c.DeadGlyph:
		return errors.Wrapf(ErrInvalidConfig, "live and dead glyphs are both %q", c.LiveGlyph)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	return nil
}
