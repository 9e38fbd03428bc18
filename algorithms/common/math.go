package common

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Shared numeric helpers used across the analysis stages, backed by gonum
// where it provides the primitive.

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// SubtractMean returns a copy of the signal with its arithmetic mean removed,
// along with the removed mean.
func SubtractMean(data []float64) ([]float64, float64) {
	mean := Mean(data)

	centered := make([]float64, len(data))
	for i, val := range data {
		centered[i] = val - mean
	}

	return centered, mean
}

// RMS calculates root mean square
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	sumSquares := 0.0
	for _, val := range data {
		sumSquares += val * val
	}

	return math.Sqrt(sumSquares / float64(len(data)))
}

// Dot computes the inner product of a signal with itself (lag-0 energy).
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}

// MedianFilter applies a median filter with an odd window width.
//
// Samples beyond the signal boundaries count as zeros, so the output at the
// edges matches the conventional zero-padded median (the behavior of
// scipy-style medfilt rather than a truncated window). Even widths are
// rounded up to the next odd width.
func MedianFilter(data []float64, width int) []float64 {
	if len(data) == 0 || width <= 1 {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}

	if width%2 == 0 {
		width++
	}

	half := width / 2
	result := make([]float64, len(data))
	window := make([]float64, width)

	for i := range data {
		for j := 0; j < width; j++ {
			idx := i - half + j
			if idx >= 0 && idx < len(data) {
				window[j] = data[idx]
			} else {
				window[j] = 0.0
			}
		}

		sorted := make([]float64, width)
		copy(sorted, window)
		sort.Float64s(sorted)

		result[i] = sorted[half]
	}

	return result
}

// Clamp constrains a value to a range
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
