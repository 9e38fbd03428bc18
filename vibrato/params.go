// Package vibrato estimates the rate of vibrato (the quasi-periodic pitch
// modulation of sustained musical notes, typically 4-8 Hz) in monophonic
// audio. It composes block-based autocorrelation pitch tracking, contour
// conditioning, and a second, nested autocorrelation pass over the
// conditioned contour.
package vibrato

import (
	"fmt"
	"math"
)

// Default analysis options.
const (
	DefaultFilter         = true
	DefaultInterpolate    = true
	DefaultHopDenominator = 5
	DefaultWindowDuration = 0.5 // seconds
)

// TrackerOptions holds the optional knobs of an analysis run.
type TrackerOptions struct {
	// Filter enables median + low-pass conditioning of the contour.
	Filter bool `json:"filter"`

	// Interpolate enables quadratic peak refinement in both
	// autocorrelation passes.
	Interpolate bool `json:"interpolate"`

	// HopDenominator sets the window hop as window_size/hop_denominator;
	// the final hop_denominator-1 windows are discarded as padding-corrupted.
	HopDenominator int `json:"hop_denominator"`

	// WindowDuration is the rate-estimation window length in seconds.
	WindowDuration float64 `json:"window_duration"`
}

// DefaultTrackerOptions returns the documented defaults.
func DefaultTrackerOptions() TrackerOptions {
	return TrackerOptions{
		Filter:         DefaultFilter,
		Interpolate:    DefaultInterpolate,
		HopDenominator: DefaultHopDenominator,
		WindowDuration: DefaultWindowDuration,
	}
}

// TrackerParams is the validated, read-only parameter set of one analysis
// run. It is the single source of truth for the derived rates, so every
// stage downstream of the pitch tracker stays time-aligned: the conditioned
// contour's sample rate and the rate-estimation window geometry are computed
// once here and never recomputed.
type TrackerParams struct {
	// Primary inputs.
	BlockSize  int     `json:"block_size"`
	HopSize    int     `json:"hop_size"`
	SampleRate float64 `json:"sample_rate"`

	Filter         bool    `json:"filter"`
	Interpolate    bool    `json:"interpolate"`
	HopDenominator int     `json:"hop_denominator"`
	WindowDuration float64 `json:"window_duration"`

	// Derived at construction.
	ConditionedRate float64 `json:"conditioned_rate"` // SampleRate / HopSize
	WindowSize      int     `json:"window_size"`      // ceil(ConditionedRate * WindowDuration)
	WindowHopSize   int     `json:"window_hop_size"`  // ceil(WindowSize / HopDenominator)
}

// NewTrackerParams constructs parameters with default options.
func NewTrackerParams(blockSize, hopSize int, sampleRate float64) (*TrackerParams, error) {
	return NewTrackerParamsWithOptions(blockSize, hopSize, sampleRate, DefaultTrackerOptions())
}

// NewTrackerParamsWithOptions constructs and validates the full parameter
// set. All validation happens here, eagerly, so the trackers themselves
// never fail on configuration deep inside a loop.
func NewTrackerParamsWithOptions(blockSize, hopSize int, sampleRate float64, opts TrackerOptions) (*TrackerParams, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("block size must be positive: %d", blockSize)
	}
	if hopSize < 1 {
		return nil, fmt.Errorf("hop size must be positive: %d", hopSize)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive: %g", sampleRate)
	}
	if opts.HopDenominator < 1 {
		return nil, fmt.Errorf("hop denominator must be positive: %d", opts.HopDenominator)
	}
	if opts.WindowDuration <= 0 {
		return nil, fmt.Errorf("window duration must be positive: %g s", opts.WindowDuration)
	}

	conditionedRate := sampleRate / float64(hopSize)
	windowSize := int(math.Ceil(conditionedRate * opts.WindowDuration))
	if windowSize < 1 {
		return nil, fmt.Errorf("window duration %g s resolves to an empty window at contour rate %g Hz",
			opts.WindowDuration, conditionedRate)
	}
	windowHopSize := int(math.Ceil(float64(windowSize) / float64(opts.HopDenominator)))

	return &TrackerParams{
		BlockSize:       blockSize,
		HopSize:         hopSize,
		SampleRate:      sampleRate,
		Filter:          opts.Filter,
		Interpolate:     opts.Interpolate,
		HopDenominator:  opts.HopDenominator,
		WindowDuration:  opts.WindowDuration,
		ConditionedRate: conditionedRate,
		WindowSize:      windowSize,
		WindowHopSize:   windowHopSize,
	}, nil
}
