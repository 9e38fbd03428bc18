package vibrato

import "math"

// GenerateFM synthesizes a frequency-modulated sinusoid (via phase
// modulation):
//
//	x[t] = cos(2*pi*carrier*t + depth*cos(2*pi*modulator*t))
//
// The instantaneous frequency swings by +/- depth*modulator Hz around the
// carrier, which makes the signal a controlled stand-in for a sung or bowed
// note with vibrato.
func GenerateFM(sampleRate, duration, carrier, modulator, depth float64) []float64 {
	n := int(duration * sampleRate)
	signal := make([]float64, n)

	for i := range signal {
		t := float64(i) / sampleRate
		mod := depth * math.Cos(2*math.Pi*modulator*t)
		signal[i] = math.Cos(2*math.Pi*carrier*t + mod)
	}

	return signal
}

// GenerateAMFM synthesizes a sinusoid with both amplitude and frequency
// modulation from the same modulator frequency:
//
//	x[t] = amDepth*cos(2*pi*modulator*t) * cos(2*pi*carrier*t + fmDepth*cos(2*pi*modulator*t))
//
// Useful for exercising the energy-domain rate estimator, whose raw
// autocorrelation peak sits at twice the modulator frequency.
func GenerateAMFM(sampleRate, duration, carrier, modulator, fmDepth, amDepth float64) []float64 {
	n := int(duration * sampleRate)
	signal := make([]float64, n)

	for i := range signal {
		t := float64(i) / sampleRate
		mod := math.Cos(2 * math.Pi * modulator * t)
		signal[i] = amDepth * mod * math.Cos(2*math.Pi*carrier*t+fmDepth*mod)
	}

	return signal
}
