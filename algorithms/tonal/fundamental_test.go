package tonal

import (
	"math"
	"testing"
)

func TestFundamentalFromACFKnownPeak(t *testing.T) {
	// Rising edge at index 1, peak at lag 2.
	acf := []float64{1.0, 0.2, 0.8, 0.3}

	if got := FundamentalFromACF(acf, 100, false); got != 50 {
		t.Fatalf("FundamentalFromACF(interp=false) = %g, want 50", got)
	}

	// Refined lag 2 + 0.5*(0.2-0.3)/(0.2-1.6+0.3) = 45/22.
	want := 100.0 / (45.0 / 22.0)
	if got := FundamentalFromACF(acf, 100, true); math.Abs(got-want) > 1e-12 {
		t.Fatalf("FundamentalFromACF(interp=true) = %g, want %g", got, want)
	}
}

func TestFundamentalFromACFFirstPeakWinsTies(t *testing.T) {
	acf := []float64{1.0, 0.1, 0.7, 0.2, 0.7}

	if got := FundamentalFromACF(acf, 100, false); got != 50 {
		t.Fatalf("FundamentalFromACF() = %g, want 50 (first of the tied peaks)", got)
	}
}

func TestFundamentalFromACFMonotoneDecay(t *testing.T) {
	if got := FundamentalFromACF([]float64{5, 4, 3, 2, 1}, 100, false); got != 0 {
		t.Fatalf("FundamentalFromACF(monotone) = %g, want 0", got)
	}
}

func TestFundamentalFromACFNoRoomPastCutoff(t *testing.T) {
	// Two entries that rise: the cutoff lands on the final index and leaves
	// nothing strictly after it to search.
	if got := FundamentalFromACF([]float64{0.5, 1.0}, 100, false); got != 0 {
		t.Fatalf("FundamentalFromACF(two rising entries) = %g, want 0", got)
	}

	// The rise at the last pair still yields that final lag as the peak.
	if got := FundamentalFromACF([]float64{1.0, 0.5, 0.9}, 100, false); got != 50 {
		t.Fatalf("FundamentalFromACF(tail rise) = %g, want 50", got)
	}
}

func TestFundamentalFromACFTooShort(t *testing.T) {
	if got := FundamentalFromACF([]float64{1.0}, 100, false); got != 0 {
		t.Fatalf("FundamentalFromACF(short) = %g, want 0", got)
	}
	if got := FundamentalFromACF(nil, 100, true); got != 0 {
		t.Fatalf("FundamentalFromACF(nil) = %g, want 0", got)
	}
}

func TestFundamentalFromACFPeakAtFinalIndex(t *testing.T) {
	// With the peak on the last lag the right neighbor is clamped to the
	// peak itself, so refinement must stay finite and close to the raw lag.
	acf := []float64{1.0, 0.1, 0.4, 0.9}

	raw := FundamentalFromACF(acf, 100, false)
	if raw != 100.0/3.0 {
		t.Fatalf("FundamentalFromACF(interp=false) = %g, want %g", raw, 100.0/3.0)
	}

	refined := FundamentalFromACF(acf, 100, true)
	if math.IsNaN(refined) || math.IsInf(refined, 0) {
		t.Fatalf("FundamentalFromACF(interp=true) = %g, want finite", refined)
	}
	if math.Abs(refined-raw) > raw/4 {
		t.Fatalf("refined estimate %g strayed too far from raw %g", refined, raw)
	}
}
