package common

import (
	"math"
	"testing"
)

func TestSubtractMean(t *testing.T) {
	centered, mean := SubtractMean([]float64{1, 2, 3, 4})
	if mean != 2.5 {
		t.Fatalf("SubtractMean() mean = %g, want 2.5", mean)
	}

	want := []float64{-1.5, -0.5, 0.5, 1.5}
	for i, v := range want {
		if centered[i] != v {
			t.Fatalf("centered[%d] = %g, want %g", i, centered[i], v)
		}
	}
}

func TestRMS(t *testing.T) {
	if got := RMS([]float64{3, 4}); math.Abs(got-math.Sqrt(12.5)) > 1e-12 {
		t.Fatalf("RMS() = %g, want %g", got, math.Sqrt(12.5))
	}
	if got := RMS(nil); got != 0 {
		t.Fatalf("RMS(nil) = %g, want 0", got)
	}
}

func TestMedianFilterZeroPaddedEdges(t *testing.T) {
	// Zero padding pulls the edges toward zero: the first window is
	// {0, 5, 4} and the last is {2, 1, 0}.
	got := MedianFilter([]float64{5, 4, 3, 2, 1}, 3)
	want := []float64{4, 4, 3, 2, 1}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("MedianFilter()[%d] = %g, want %g", i, got[i], v)
		}
	}
}

func TestMedianFilterRejectsSpike(t *testing.T) {
	got := MedianFilter([]float64{1, 1, 100, 1, 1}, 3)
	if got[2] != 1 {
		t.Fatalf("MedianFilter() spike survived: got[2] = %g, want 1", got[2])
	}
}

func TestMedianFilterEvenWidthRoundsUp(t *testing.T) {
	odd := MedianFilter([]float64{1, 9, 2, 8, 3}, 3)
	even := MedianFilter([]float64{1, 9, 2, 8, 3}, 2)
	for i := range odd {
		if odd[i] != even[i] {
			t.Fatalf("width 2 and width 3 disagree at %d: %g vs %g", i, even[i], odd[i])
		}
	}
}

func TestMedianFilterDegenerateWidth(t *testing.T) {
	in := []float64{3, 1, 2}
	got := MedianFilter(in, 1)
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("MedianFilter(width=1)[%d] = %g, want %g", i, got[i], in[i])
		}
	}
}

func TestQuadraticPeakOffset(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
		want    float64
	}{
		{"symmetric peak", 1, 4, 1, 0},
		{"flat line degenerate", 2, 2, 2, 0},
		{"leans right", 0.2, 0.8, 0.3, 0.5 * (0.2 - 0.3) / (0.2 - 1.6 + 0.3)},
		{"leans left", 0.3, 0.8, 0.2, 0.5 * (0.3 - 0.2) / (0.3 - 1.6 + 0.2)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := QuadraticPeakOffset(tc.a, tc.b, tc.c); math.Abs(got-tc.want) > 1e-15 {
				t.Fatalf("QuadraticPeakOffset(%g, %g, %g) = %g, want %g", tc.a, tc.b, tc.c, got, tc.want)
			}
		})
	}
}

func TestQuadraticPeakOffsetStaysInHalfSample(t *testing.T) {
	// For a genuine local maximum the refined offset never leaves (-1, 1).
	if got := QuadraticPeakOffset(0.1, 1.0, 0.99); got <= -1 || got >= 1 {
		t.Fatalf("QuadraticPeakOffset() = %g, want within (-1, 1)", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp(5, 0, 3) = %g, want 3", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("Clamp(-1, 0, 3) = %g, want 0", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("Clamp(2, 0, 3) = %g, want 2", got)
	}
}
