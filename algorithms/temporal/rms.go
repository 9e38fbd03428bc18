package temporal

import (
	"math"

	"github.com/tremolab/vibratrack/algorithms/framing"
)

// rmsFloor is the minimum short-term energy ever reported (-100 dB).
// Flooring keeps downstream log and ratio operations well-defined when a
// block is pure silence.
const rmsFloor = 1e-5

// BlockRMS returns the root-mean-square of a block in the same units as the
// input, never less than 1e-5.
func BlockRMS(block []float64) float64 {
	if len(block) == 0 {
		return rmsFloor
	}

	sumSquares := 0.0
	for _, val := range block {
		sumSquares += val * val
	}

	rms := math.Sqrt(sumSquares / float64(len(block)))
	if rms < rmsFloor {
		return rmsFloor
	}

	return rms
}

// RMSTracker produces a short-term energy contour from a raw signal, one RMS
// value per overlapping analysis block. It mirrors the pitch tracker's
// blocking so the two contours stay time-aligned.
type RMSTracker struct {
	blockSize  int
	hopSize    int
	sampleRate float64
}

// NewRMSTracker creates a block-based RMS tracker.
func NewRMSTracker(blockSize, hopSize int, sampleRate float64) *RMSTracker {
	return &RMSTracker{
		blockSize:  blockSize,
		hopSize:    hopSize,
		sampleRate: sampleRate,
	}
}

// Track computes the RMS of every analysis block.
//
// Returns the energy contour and the block start times in seconds, both of
// length ceil(len(signal)/hop).
func (rt *RMSTracker) Track(signal []float64) ([]float64, []float64, error) {
	frames, err := framing.Frame(signal, rt.blockSize, rt.hopSize, rt.sampleRate)
	if err != nil {
		return nil, nil, err
	}

	rms := make([]float64, frames.NumBlocks())
	for n, block := range frames.Blocks {
		rms[n] = BlockRMS(block)
	}

	return rms, frames.Timestamps, nil
}
