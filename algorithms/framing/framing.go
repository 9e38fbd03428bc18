package framing

import (
	"fmt"
	"math"
)

// Frames holds a signal split into overlapping, fixed-length analysis blocks
// together with the start time of every block.
//
// The block matrix is rectangular: every block has exactly BlockSize samples,
// with the tail blocks zero-padded on the right when the signal length is not
// an exact multiple of the hop size. Timestamps follow the start-time
// convention: Timestamps[n] is the index of the block's first sample divided
// by the sample rate.
type Frames struct {
	Blocks     [][]float64 `json:"blocks"`
	Timestamps []float64   `json:"timestamps"`

	BlockSize  int     `json:"block_size"`
	HopSize    int     `json:"hop_size"`
	SampleRate float64 `json:"sample_rate"`
}

// NumBlocks returns the number of analysis blocks.
func (f *Frames) NumBlocks() int {
	return len(f.Blocks)
}

// Frame splits a signal into ceil(len(signal)/hopSize) overlapping blocks.
//
// Block n covers source indices [n*hopSize, n*hopSize+blockSize) against the
// signal conceptually zero-padded on the right by blockSize samples, so the
// final block never reads out of bounds. An empty signal yields zero blocks
// and no error.
func Frame(signal []float64, blockSize, hopSize int, sampleRate float64) (*Frames, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("block size must be positive: %d", blockSize)
	}
	if hopSize < 1 {
		return nil, fmt.Errorf("hop size must be positive: %d", hopSize)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive: %g", sampleRate)
	}

	numBlocks := int(math.Ceil(float64(len(signal)) / float64(hopSize)))

	blocks := make([][]float64, numBlocks)
	timestamps := make([]float64, numBlocks)

	for n := 0; n < numBlocks; n++ {
		start := n * hopSize
		stop := min(start+blockSize, len(signal))

		block := make([]float64, blockSize)
		copy(block, signal[start:stop])

		blocks[n] = block
		timestamps[n] = float64(n*hopSize) / sampleRate
	}

	return &Frames{
		Blocks:     blocks,
		Timestamps: timestamps,
		BlockSize:  blockSize,
		HopSize:    hopSize,
		SampleRate: sampleRate,
	}, nil
}
