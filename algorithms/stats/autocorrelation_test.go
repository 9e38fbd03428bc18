package stats

import (
	"math"
	"testing"
)

// bruteForce mirrors the defining sum r[l] = sum_i x[i]*x[i+l] with no
// shortcuts, as an oracle for both computational paths.
func bruteForce(signal []float64) []float64 {
	n := len(signal)
	out := make([]float64, n)
	for lag := 0; lag < n; lag++ {
		for i := 0; i+lag < n; i++ {
			out[lag] += signal[i] * signal[i+lag]
		}
	}
	return out
}

func TestComputeMatchesDefinition(t *testing.T) {
	signal := []float64{1, -2, 3, 0.5, -1.5, 2.5, 0, -0.25}

	got := NewAutoCorrelation().Compute(signal, false)
	want := bruteForce(signal)

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("Compute()[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestComputeNormalizedLagZeroIsOne(t *testing.T) {
	signal := []float64{0.3, -0.7, 1.2, 0.1}

	got := NewAutoCorrelation().Compute(signal, true)
	if got[0] != 1 {
		t.Fatalf("normalized Compute()[0] = %g, want 1", got[0])
	}
}

func TestComputeNormalizedScaleInvariance(t *testing.T) {
	signal := make([]float64, 64)
	scaled := make([]float64, 64)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 16)
		scaled[i] = 37.5 * signal[i]
	}

	ac := NewAutoCorrelation()
	a := ac.Compute(signal, true)
	b := ac.Compute(scaled, true)

	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			t.Fatalf("scale changed normalized ACF at lag %d: %g vs %g", i, a[i], b[i])
		}
	}
}

func TestComputeZeroEnergySignal(t *testing.T) {
	silent := make([]float64, 32)

	for _, normalize := range []bool{true, false} {
		got := NewAutoCorrelation().Compute(silent, normalize)
		if len(got) != 32 {
			t.Fatalf("len = %d, want 32", len(got))
		}
		for i, v := range got {
			if v != 0 || math.IsNaN(v) {
				t.Fatalf("Compute(silence, %v)[%d] = %g, want 0", normalize, i, v)
			}
		}
	}
}

func TestComputeEmptySignal(t *testing.T) {
	if got := NewAutoCorrelation().Compute(nil, true); len(got) != 0 {
		t.Fatalf("Compute(nil) len = %d, want 0", len(got))
	}
}

func TestFrequencyDomainMatchesTimeDomain(t *testing.T) {
	// A length past the auto-switch threshold, exercised on both pinned
	// paths so any disagreement between them is caught directly.
	signal := make([]float64, 1500)
	for i := range signal {
		signal[i] = math.Sin(2*math.Pi*float64(i)/50) + 0.3*math.Cos(2*math.Pi*float64(i)/7)
	}

	td := NewAutoCorrelationWithMethod(TimeDomain).Compute(signal, true)
	fd := NewAutoCorrelationWithMethod(FrequencyDomain).Compute(signal, true)

	for i := range td {
		if math.Abs(td[i]-fd[i]) > 1e-9 {
			t.Fatalf("paths disagree at lag %d: time=%g freq=%g", i, td[i], fd[i])
		}
	}
}

func TestComputePeriodicSignalPeaksAtPeriod(t *testing.T) {
	period := 20
	signal := make([]float64, 400)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / float64(period))
	}

	acf := NewAutoCorrelation().Compute(signal, true)

	// The strongest non-trivial lag must land on the period.
	best := 1
	for lag := 2; lag < len(acf)/2; lag++ {
		if acf[lag] > acf[best] {
			best = lag
		}
	}
	if best != period {
		t.Fatalf("dominant lag = %d, want %d", best, period)
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 1023: 1024, 1024: 1024, 1025: 2048}
	for in, want := range cases {
		if got := nextPowerOf2(in); got != want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", in, got, want)
		}
	}
}
