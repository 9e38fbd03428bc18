package tonal

import (
	"github.com/tremolab/vibratrack/algorithms/framing"
	"github.com/tremolab/vibratrack/algorithms/stats"
)

// PitchTracker produces a fundamental-frequency contour from a raw signal:
// one F0 estimate per overlapping analysis block, with no state carried
// between blocks (no smoothing and no continuity constraint).
type PitchTracker struct {
	blockSize   int
	hopSize     int
	sampleRate  float64
	interpolate bool

	autocorr *stats.AutoCorrelation
}

// NewPitchTracker creates a block-based autocorrelation pitch tracker.
//
// interpolate enables quadratic peak refinement for sub-sample period
// resolution.
func NewPitchTracker(blockSize, hopSize int, sampleRate float64, interpolate bool) *PitchTracker {
	return &PitchTracker{
		blockSize:   blockSize,
		hopSize:     hopSize,
		sampleRate:  sampleRate,
		interpolate: interpolate,
		autocorr:    stats.NewAutoCorrelation(),
	}
}

// Track estimates the fundamental frequency of every analysis block.
//
// Returns the F0 contour (Hz, 0 meaning "no discernible pitch") and the
// block start times in seconds. Both slices have length ceil(len(signal)/hop);
// position i always corresponds to block i.
func (pt *PitchTracker) Track(signal []float64) ([]float64, []float64, error) {
	frames, err := framing.Frame(signal, pt.blockSize, pt.hopSize, pt.sampleRate)
	if err != nil {
		return nil, nil, err
	}

	f0 := make([]float64, frames.NumBlocks())

	for n, block := range frames.Blocks {
		acf := pt.autocorr.Compute(block, true)
		f0[n] = FundamentalFromACF(acf, pt.sampleRate, pt.interpolate)
	}

	return f0, frames.Timestamps, nil
}
