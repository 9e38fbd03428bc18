package vibrato

import (
	"github.com/tremolab/vibratrack/algorithms/common"
	"github.com/tremolab/vibratrack/algorithms/framing"
	"github.com/tremolab/vibratrack/algorithms/stats"
	"github.com/tremolab/vibratrack/algorithms/temporal"
	"github.com/tremolab/vibratrack/algorithms/tonal"
	"github.com/tremolab/vibratrack/logging"
)

// TrackPitch estimates the fundamental frequency of every analysis block.
//
// Returns the F0 contour in Hz (0 meaning "no discernible pitch") and the
// block start times in seconds, both of length ceil(len(signal)/hopSize).
func TrackPitch(signal []float64, blockSize, hopSize int, sampleRate float64, interpolate bool) ([]float64, []float64, error) {
	tracker := tonal.NewPitchTracker(blockSize, hopSize, sampleRate, interpolate)
	return tracker.Track(signal)
}

// ContourRate estimates a single oscillation rate for a contour sampled at
// conditionedRate. The contour is mean-centered first unless the caller
// marks it as already centered.
func ContourRate(contour []float64, conditionedRate float64, centered, interpolate bool) float64 {
	if !centered {
		contour, _ = common.SubtractMean(contour)
	}

	acf := stats.NewAutoCorrelation().Compute(contour, true)
	return tonal.FundamentalFromACF(acf, conditionedRate, interpolate)
}

// windowedRates is the shared rate primitive of both estimation domains:
// it re-frames an already conditioned (zero-mean) contour into overlapping
// windows at the contour's own sample rate and estimates one oscillation
// rate per window from its autocorrelation.
//
// The final HopDenominator-1 windows are dropped unconditionally. They are
// dominated by the framing zero-padding and defined to be unreliable, not
// merely low-confidence; the trim count is a policy constant tied to the
// padding geometry. If the trim leaves nothing, both outputs are empty.
func windowedRates(contour []float64, params *TrackerParams) ([]float64, []float64, error) {
	frames, err := framing.Frame(contour, params.WindowSize, params.WindowHopSize, params.ConditionedRate)
	if err != nil {
		return nil, nil, err
	}

	numWindows := frames.NumBlocks() - (params.HopDenominator - 1)
	if numWindows <= 0 {
		return []float64{}, []float64{}, nil
	}

	autocorr := stats.NewAutoCorrelation()
	rates := make([]float64, numWindows)

	for i := 0; i < numWindows; i++ {
		// The contour is zero-mean as a whole; windows are not re-centered.
		acf := autocorr.Compute(frames.Blocks[i], true)
		rates[i] = tonal.FundamentalFromACF(acf, params.ConditionedRate, params.Interpolate)
	}

	return rates, frames.Timestamps[:numWindows], nil
}

// TrackVibrato estimates the vibrato rate over time from the pitch contour.
//
// The signal is pitch-tracked block by block, the F0 contour is conditioned
// (mean removal, median filter, 20 Hz low-pass), and each surviving analysis
// window yields one rate in Hz. Windows with no discernible oscillation
// report 0. Returns the rates and the window start times in seconds.
func TrackVibrato(signal []float64, params *TrackerParams) ([]float64, []float64, error) {
	f0, _, err := TrackPitch(signal, params.BlockSize, params.HopSize, params.SampleRate, params.Interpolate)
	if err != nil {
		return nil, nil, err
	}

	conditioned, err := ConditionContour(f0, params.ConditionedRate, params.Filter)
	if err != nil {
		return nil, nil, err
	}

	rates, times, err := windowedRates(conditioned, params)
	if err != nil {
		return nil, nil, err
	}

	logging.Debug("tracked vibrato", logging.Fields{
		"component": "vibrato_tracker",
		"domain":    "f0",
		"blocks":    len(f0),
		"windows":   len(rates),
	})

	return rates, times, nil
}

// TrackRMSVibrato estimates the vibrato rate over time from the short-term
// energy contour instead of the pitch contour.
//
// Amplitude modulation caused by vibrato occurs at twice the true vibrato
// rate: the energy responds symmetrically to F0 deviation in both
// directions, so the raw autocorrelation peak locates the second harmonic of
// the rate. Every per-window estimate is therefore halved before it is
// returned.
func TrackRMSVibrato(signal []float64, params *TrackerParams) ([]float64, []float64, error) {
	tracker := temporal.NewRMSTracker(params.BlockSize, params.HopSize, params.SampleRate)
	rms, _, err := tracker.Track(signal)
	if err != nil {
		return nil, nil, err
	}

	conditioned, err := ConditionContour(rms, params.ConditionedRate, params.Filter)
	if err != nil {
		return nil, nil, err
	}

	rates, times, err := windowedRates(conditioned, params)
	if err != nil {
		return nil, nil, err
	}

	for i := range rates {
		rates[i] /= 2
	}

	logging.Debug("tracked vibrato", logging.Fields{
		"component": "vibrato_tracker",
		"domain":    "rms",
		"blocks":    len(rms),
		"windows":   len(rates),
	})

	return rates, times, nil
}
