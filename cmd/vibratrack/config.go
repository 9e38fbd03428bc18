package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tremolab/vibratrack/vibrato"
)

// Config holds the analysis defaults the CLI starts from. Flags override
// whatever the file sets; the analysis core itself never reads files.
type Config struct {
	BlockSize      int     `yaml:"block_size"`
	HopSize        int     `yaml:"hop_size"`
	Filter         bool    `yaml:"filter"`
	Interpolate    bool    `yaml:"interpolate"`
	HopDenominator int     `yaml:"hop_denominator"`
	WindowDuration float64 `yaml:"window_duration"`
}

// DefaultConfig mirrors the library defaults with the block geometry used
// throughout the reference evaluations.
func DefaultConfig() Config {
	return Config{
		BlockSize:      2048,
		HopSize:        1024,
		Filter:         vibrato.DefaultFilter,
		Interpolate:    vibrato.DefaultInterpolate,
		HopDenominator: vibrato.DefaultHopDenominator,
		WindowDuration: vibrato.DefaultWindowDuration,
	}
}

// LoadConfig overlays a YAML file onto the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// params builds the validated parameter object for a clip's sample rate.
func (c Config) params(sampleRate float64) (*vibrato.TrackerParams, error) {
	return vibrato.NewTrackerParamsWithOptions(c.BlockSize, c.HopSize, sampleRate, vibrato.TrackerOptions{
		Filter:         c.Filter,
		Interpolate:    c.Interpolate,
		HopDenominator: c.HopDenominator,
		WindowDuration: c.WindowDuration,
	})
}
