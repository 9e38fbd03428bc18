package stats

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// CorrelationMethod represents different computational approaches
type CorrelationMethod int

const (
	// Direct time-domain calculation
	TimeDomain CorrelationMethod = iota

	// FFT-based frequency domain (faster for large signals)
	FrequencyDomain

	// Pick time-domain below fftThreshold, FFT above it
	Auto
)

// AutoCorrelation computes the non-negative-lag half of the linear
// (non-circular) autocorrelation of a signal.
//
// The full autocorrelation over lags -(N-1)..(N-1) is symmetric, so only
// lags 0..N-1 are returned; no information is lost. With normalization
// enabled every entry is divided by the lag-0 energy dot(x, x), which makes
// the result invariant to signal scale and pins lag 0 at exactly 1 for any
// signal with nonzero energy.
//
// References:
// - Rabiner, L.R. (1977). "On the use of autocorrelation analysis for pitch detection"
// - Oppenheim, A.V., Schafer, R.W. (2010). "Discrete-Time Signal Processing"
type AutoCorrelation struct {
	method       CorrelationMethod
	fftThreshold int
}

// NewAutoCorrelation creates an autocorrelation calculator that switches to
// the FFT path for inputs longer than the default threshold.
func NewAutoCorrelation() *AutoCorrelation {
	return &AutoCorrelation{
		method:       Auto,
		fftThreshold: 1024,
	}
}

// NewAutoCorrelationWithMethod creates a calculator pinned to one
// computational method, mainly useful for cross-checking the two paths.
func NewAutoCorrelationWithMethod(method CorrelationMethod) *AutoCorrelation {
	return &AutoCorrelation{
		method:       method,
		fftThreshold: 1024,
	}
}

// Compute returns the right half of the autocorrelation of the signal,
// one entry per lag 0..len(signal)-1.
//
// A signal with zero energy yields an all-zero vector under both normalize
// settings; downstream peak picking treats that as "no periodicity" rather
// than propagating a division by zero.
func (ac *AutoCorrelation) Compute(signal []float64, normalize bool) []float64 {
	n := len(signal)
	if n == 0 {
		return []float64{}
	}

	var correlation []float64

	switch ac.method {
	case FrequencyDomain:
		correlation = ac.computeFFT(signal)
	case TimeDomain:
		correlation = ac.computeTimeDomain(signal)
	default:
		if n > ac.fftThreshold {
			correlation = ac.computeFFT(signal)
		} else {
			correlation = ac.computeTimeDomain(signal)
		}
	}

	if normalize {
		energy := correlation[0]
		if energy <= 0 {
			return make([]float64, n)
		}
		for i := range correlation {
			correlation[i] /= energy
		}
	}

	return correlation
}

// computeTimeDomain evaluates the sliding inner product directly:
// r[l] = sum_i x[i]*x[i+l].
func (ac *AutoCorrelation) computeTimeDomain(signal []float64) []float64 {
	n := len(signal)
	correlation := make([]float64, n)

	for lag := 0; lag < n; lag++ {
		sum := 0.0
		for i := 0; i < n-lag; i++ {
			sum += signal[i] * signal[i+lag]
		}
		correlation[lag] = sum
	}

	return correlation
}

// computeFFT computes the linear autocorrelation through the Wiener-Khinchin
// relation, zero-padding to at least 2N-1 so the circular convolution of the
// padded signal equals the linear one.
func (ac *AutoCorrelation) computeFFT(signal []float64) []float64 {
	n := len(signal)
	fftSize := nextPowerOf2(2*n - 1)

	padded := make([]float64, fftSize)
	copy(padded, signal)

	// mjibson/go-dsp handles all sizes efficiently, including non-power-of-2
	spectrum := fft.FFTReal(padded)

	power := make([]complex128, fftSize)
	for i, bin := range spectrum {
		power[i] = bin * cmplx.Conj(bin)
	}

	inverse := fft.IFFT(power)

	correlation := make([]float64, n)
	for lag := 0; lag < n; lag++ {
		correlation[lag] = real(inverse[lag])
	}

	return correlation
}

// nextPowerOf2 returns the next power of 2 greater than or equal to n
func nextPowerOf2(n int) int {
	if n <= 0 {
		return 1
	}

	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
