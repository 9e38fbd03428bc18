package evaluation

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	got := Summarize([]float64{30, 10, 20})

	if got.Count != 3 {
		t.Fatalf("Count = %d, want 3", got.Count)
	}
	if math.Abs(got.Mean-20) > 1e-12 {
		t.Fatalf("Mean = %g, want 20", got.Mean)
	}
	if got.Median != 20 {
		t.Fatalf("Median = %g, want 20", got.Median)
	}
	if got.Min != 10 || got.Max != 30 {
		t.Fatalf("Min/Max = %g/%g, want 10/30", got.Min, got.Max)
	}
	if math.Abs(got.StdDev-10) > 1e-12 {
		t.Fatalf("StdDev = %g, want 10", got.StdDev)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Fatalf("Summarize(nil) = %+v, want zero value", got)
	}
}

func TestSummarizeSingle(t *testing.T) {
	got := Summarize([]float64{7.5})
	if got.Count != 1 || got.Mean != 7.5 || got.Median != 7.5 || got.StdDev != 0 {
		t.Fatalf("Summarize single = %+v", got)
	}
}
