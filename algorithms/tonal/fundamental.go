package tonal

import (
	"github.com/tremolab/vibratrack/algorithms/common"
)

// FundamentalFromACF estimates the fundamental frequency of a signal from
// the non-negative-lag half of its autocorrelation.
//
// The search policy deliberately avoids the trivial lag-0 maximum: the first
// strictly positive first-difference marks the end of the decaying lobe
// around lag 0, and the candidate period is the maximum strictly after that
// point. Periodic signals have a strong secondary lobe there; searching only
// past the first rising edge tolerates noisy near-zero lags.
//
// Returns the estimate in Hz, or 0 when the autocorrelation has no
// discernible peak (monotonically non-increasing, or too short to search).
//
// Reference: Rabiner, L.R. (1977). "On the use of autocorrelation analysis
// for pitch detection"
func FundamentalFromACF(acf []float64, sampleRate float64, interpolate bool) float64 {
	if len(acf) < 2 {
		return 0
	}

	// First index where the ACF starts rising again. No rising edge means
	// no periodicity and no reasonable fundamental to report.
	cutoff := -1
	for i := 0; i+1 < len(acf); i++ {
		if acf[i+1]-acf[i] > 0 {
			cutoff = i
			break
		}
	}
	if cutoff < 0 {
		return 0
	}

	// Never let the search window include lag 0 itself.
	cutoff = max(cutoff, 1)
	if cutoff+1 >= len(acf) {
		return 0
	}

	// Maximum strictly after the rising edge; first occurrence wins ties.
	peak := cutoff + 1
	for i := cutoff + 2; i < len(acf); i++ {
		if acf[i] > acf[peak] {
			peak = i
		}
	}

	lag := float64(peak)

	if interpolate {
		a := acf[peak-1]
		b := acf[peak]

		// Clamp the right neighbor at the final index.
		c := b
		if peak+1 < len(acf) {
			c = acf[peak+1]
		}

		lag += common.QuadraticPeakOffset(a, b, c)
	}

	return sampleRate / lag
}
