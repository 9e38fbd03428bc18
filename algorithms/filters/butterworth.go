package filters

import (
	"fmt"
	"math"
)

// LowpassSpec describes a Butterworth low-pass design by its passband and
// stopband requirements, the way classical order-estimation routines take
// them: at most PassbandRippleDB of loss up to PassbandHz, at least
// StopbandAttenDB of attenuation from StopbandHz on, at the given sample
// rate.
type LowpassSpec struct {
	PassbandHz       float64 `json:"passband_hz"`
	StopbandHz       float64 `json:"stopband_hz"`
	PassbandRippleDB float64 `json:"passband_ripple_db"`
	StopbandAttenDB  float64 `json:"stopband_atten_db"`
	SampleRate       float64 `json:"sample_rate"`
}

// ButterworthLowpass is a causal IIR low-pass filter realized as a cascade of
// second-order sections (plus one first-order section for odd orders).
//
// The order and the exact cutoff are derived from the analog Butterworth
// magnitude with bilinear pre-warping, matching the passband edge exactly;
// the digital sections come from the cookbook low-pass formulas.
//
// References:
//   - Oppenheim, A.V., Schafer, R.W. (2010). "Discrete-Time Signal Processing",
//     ch. 7 (Butterworth order estimation, bilinear transform)
//   - Robert Bristow-Johnson, "Cookbook formulae for audio EQ biquad filter
//     coefficients", https://webaudio.github.io/Audio-EQ-Cookbook/audio-eq-cookbook.html
type ButterworthLowpass struct {
	order      int
	cutoffHz   float64
	sampleRate float64

	sections []biquadSection
	single   *firstOrderSection // nil for even orders
}

// biquadSection is one direct form II second-order stage.
type biquadSection struct {
	b0, b1, b2 float64
	a1, a2     float64 // a0 normalized to 1

	w1, w2 float64 // delay line
}

// firstOrderSection is the single real-pole stage used for odd orders.
type firstOrderSection struct {
	b0, b1 float64
	a1     float64

	w1 float64
}

// DesignLowpass estimates the minimum Butterworth order meeting the spec and
// builds the corresponding digital filter.
//
// A stopband edge at or above Nyquist is clamped just below it (0.99x) so the
// design stays defined for low contour rates; the passband edge must sit
// strictly inside the clamped transition band.
func DesignLowpass(spec LowpassSpec) (*ButterworthLowpass, error) {
	if spec.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive: %g", spec.SampleRate)
	}
	if spec.PassbandRippleDB <= 0 || spec.StopbandAttenDB <= spec.PassbandRippleDB {
		return nil, fmt.Errorf("need 0 < passband ripple (%g dB) < stopband attenuation (%g dB)",
			spec.PassbandRippleDB, spec.StopbandAttenDB)
	}

	nyquist := spec.SampleRate / 2
	stop := math.Min(spec.StopbandHz, 0.99*nyquist)

	if spec.PassbandHz <= 0 || spec.PassbandHz >= stop {
		return nil, fmt.Errorf("passband edge %g Hz must lie in (0, %g) Hz at fs=%g",
			spec.PassbandHz, stop, spec.SampleRate)
	}

	// Bilinear pre-warp to analog prototype frequencies.
	warpedPass := math.Tan(math.Pi * spec.PassbandHz / spec.SampleRate)
	warpedStop := math.Tan(math.Pi * stop / spec.SampleRate)

	gainPass := math.Pow(10, 0.1*spec.PassbandRippleDB) - 1
	gainStop := math.Pow(10, 0.1*spec.StopbandAttenDB) - 1

	order := int(math.Ceil(math.Log10(gainStop/gainPass) / (2 * math.Log10(warpedStop/warpedPass))))
	if order < 1 {
		order = 1
	}

	// Natural frequency that meets the passband requirement exactly, then
	// unwarped back to the digital axis.
	warpedCutoff := warpedPass * math.Pow(gainPass, -1/(2*float64(order)))
	cutoff := spec.SampleRate / math.Pi * math.Atan(warpedCutoff)

	bw := &ButterworthLowpass{
		order:      order,
		cutoffHz:   cutoff,
		sampleRate: spec.SampleRate,
	}
	bw.buildSections()

	return bw, nil
}

// buildSections places the Butterworth pole pairs. Pair k sits at angle
// pi*(2k+1)/(2N) on the analog prototype circle, giving Q = 1/(2*cos(theta)).
func (bw *ButterworthLowpass) buildSections() {
	numPairs := bw.order / 2
	bw.sections = make([]biquadSection, numPairs)

	for k := 0; k < numPairs; k++ {
		theta := math.Pi * float64(2*k+1) / float64(2*bw.order)
		q := 1 / (2 * math.Cos(theta))
		bw.sections[k] = lowpassBiquad(bw.sampleRate, bw.cutoffHz, q)
	}

	if bw.order%2 == 1 {
		warped := math.Tan(math.Pi * bw.cutoffHz / bw.sampleRate)
		norm := 1 / (1 + warped)
		bw.single = &firstOrderSection{
			b0: warped * norm,
			b1: warped * norm,
			a1: (warped - 1) * norm,
		}
	}
}

// lowpassBiquad computes cookbook low-pass coefficients for one pole pair.
func lowpassBiquad(sampleRate, cutoff, q float64) biquadSection {
	w0 := 2 * math.Pi * cutoff / sampleRate
	if w0 >= math.Pi {
		w0 = math.Pi * 0.99
	}

	cosW0 := math.Cos(w0)
	sinW0 := math.Sin(w0)
	alpha := sinW0 / (2 * q)

	a0 := 1 + alpha
	inv := 1 / a0

	return biquadSection{
		b0: (1 - cosW0) * 0.5 * inv,
		b1: (1 - cosW0) * inv,
		b2: (1 - cosW0) * 0.5 * inv,
		a1: -2 * cosW0 * inv,
		a2: (1 - alpha) * inv,
	}
}

// Order returns the designed filter order.
func (bw *ButterworthLowpass) Order() int {
	return bw.order
}

// CutoffHz returns the exact digital cutoff frequency of the design.
func (bw *ButterworthLowpass) CutoffHz() float64 {
	return bw.cutoffHz
}

// Process applies the filter to a single sample, direct form II per section.
func (bw *ButterworthLowpass) Process(input float64) float64 {
	out := input

	for i := range bw.sections {
		s := &bw.sections[i]
		w := out - s.a1*s.w1 - s.a2*s.w2
		out = s.b0*w + s.b1*s.w1 + s.b2*s.w2
		s.w2 = s.w1
		s.w1 = w
	}

	if bw.single != nil {
		s := bw.single
		w := out - s.a1*s.w1
		out = s.b0*w + s.b1*s.w1
		s.w1 = w
	}

	return out
}

// Apply filters an entire buffer causally (forward only, zero initial state)
// and returns a new slice. The intentional group delay of forward filtering
// is preserved; no zero-phase compensation is applied.
func (bw *ButterworthLowpass) Apply(signal []float64) []float64 {
	bw.Reset()

	output := make([]float64, len(signal))
	for i, sample := range signal {
		output[i] = bw.Process(sample)
	}

	return output
}

// Reset clears the delay lines of every section.
// Call this when processing discontinuous segments.
func (bw *ButterworthLowpass) Reset() {
	for i := range bw.sections {
		bw.sections[i].w1 = 0
		bw.sections[i].w2 = 0
	}
	if bw.single != nil {
		bw.single.w1 = 0
	}
}

// FrequencyResponse computes the magnitude and phase of the cascade at the
// given frequency by multiplying the per-section responses
// H(e^jw) = (b0 + b1*e^-jw + b2*e^-j2w) / (1 + a1*e^-jw + a2*e^-j2w).
func (bw *ButterworthLowpass) FrequencyResponse(frequency float64) (magnitude, phase float64) {
	w := 2 * math.Pi * frequency / bw.sampleRate

	magnitude = 1.0
	phase = 0.0

	cosW := math.Cos(w)
	sinW := math.Sin(w)
	cos2W := math.Cos(2 * w)
	sin2W := math.Sin(2 * w)

	for i := range bw.sections {
		s := &bw.sections[i]

		numReal := s.b0 + s.b1*cosW + s.b2*cos2W
		numImag := -s.b1*sinW - s.b2*sin2W
		denReal := 1 + s.a1*cosW + s.a2*cos2W
		denImag := -s.a1*sinW - s.a2*sin2W

		magnitude *= math.Hypot(numReal, numImag) / math.Hypot(denReal, denImag)
		phase += math.Atan2(numImag, numReal) - math.Atan2(denImag, denReal)
	}

	if bw.single != nil {
		s := bw.single

		numReal := s.b0 + s.b1*cosW
		numImag := -s.b1 * sinW
		denReal := 1 + s.a1*cosW
		denImag := -s.a1 * sinW

		magnitude *= math.Hypot(numReal, numImag) / math.Hypot(denReal, denImag)
		phase += math.Atan2(numImag, numReal) - math.Atan2(denImag, denReal)
	}

	return magnitude, phase
}
