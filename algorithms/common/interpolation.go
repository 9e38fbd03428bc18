package common

// QuadraticPeakOffset refines the location of a discrete extremum by fitting
// a parabola through three samples at relative positions (-1, 0, +1).
//
// The returned offset is the closed-form vertex 0.5*(a-c)/(a-2b+c), a value
// in (-1, 1) when b is a genuine local extremum. A degenerate (flat) triple
// with a-2b+c == 0 yields offset 0 rather than a numeric exception, so
// callers always receive a usable refinement.
//
// Reference: J.O. Smith III, "Quadratic Interpolation of Spectral Peaks",
// https://ccrma.stanford.edu/~jos/sasp/Quadratic_Interpolation_Spectral_Peaks.html
func QuadraticPeakOffset(a, b, c float64) float64 {
	denominator := a - 2*b + c
	if denominator == 0 {
		return 0
	}

	return 0.5 * (a - c) / denominator
}
