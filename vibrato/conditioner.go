package vibrato

import (
	"fmt"

	"github.com/tremolab/vibratrack/algorithms/common"
	"github.com/tremolab/vibratrack/algorithms/filters"
	"github.com/tremolab/vibratrack/logging"
)

// Contour conditioning constants. Vibrato rates are musically bounded well
// under 20 Hz, so everything above the cutoff is treated as tracking noise.
const (
	// ContourCutoffHz is the nominal low-pass cutoff applied to contours.
	ContourCutoffHz = 20.0

	// medianWidth is the median filter window used to reject isolated
	// octave-error spikes without reshaping the genuine oscillation.
	medianWidth = 3

	// The Butterworth design brackets the nominal cutoff: at most 3 dB of
	// loss at 0.9x, at least 100 dB of attenuation at 1.1x.
	passbandRippleDB = 3.0
	stopbandAttenDB  = 100.0
)

// ConditionContour prepares a per-block contour (F0 or RMS) for
// autocorrelation-based rate estimation.
//
// Steps, in order: subtract the arithmetic mean (the rate estimator assumes
// oscillation about zero); if filtering is enabled, apply a width-3 median
// filter and then a causal Butterworth low-pass at ContourCutoffHz, designed
// at the contour's own sample rate. Forward-only filtering introduces group
// delay that is not compensated downstream; the rate estimator reads
// periodicity, not phase, so the shift is harmless.
func ConditionContour(contour []float64, conditionedRate float64, filter bool) ([]float64, error) {
	centered, mean := common.SubtractMean(contour)

	if !filter {
		return centered, nil
	}

	smoothed := common.MedianFilter(centered, medianWidth)

	lowpass, err := filters.DesignLowpass(filters.LowpassSpec{
		PassbandHz:       0.9 * ContourCutoffHz,
		StopbandHz:       1.1 * ContourCutoffHz,
		PassbandRippleDB: passbandRippleDB,
		StopbandAttenDB:  stopbandAttenDB,
		SampleRate:       conditionedRate,
	})
	if err != nil {
		return nil, fmt.Errorf("designing contour low-pass at %g Hz: %w", conditionedRate, err)
	}

	logging.Debug("conditioned contour", logging.Fields{
		"component":     "conditioner",
		"samples":       len(contour),
		"removed_mean":  mean,
		"filter_order":  lowpass.Order(),
		"filter_cutoff": lowpass.CutoffHz(),
	})

	return lowpass.Apply(smoothed), nil
}
