// Package evaluation scores analysis outputs against ground-truth
// annotations. It compares per-window rate sequences to reference rates and
// time ranges; it never feeds anything back into the analysis core.
package evaluation

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tremolab/vibratrack/dataset"
	"github.com/tremolab/vibratrack/logging"
)

// WindowSeries is the per-window output of one analyzed file: a rate and a
// window start time per analysis window, plus an optional vibrato-presence
// flag per window supplied by the caller (nil means every window counts).
type WindowSeries struct {
	Filename string    `json:"filename"`
	Rates    []float64 `json:"rates"`
	Times    []float64 `json:"times"`
	Flags    []bool    `json:"flags,omitempty"`
}

// inSpan reports whether window n of the series lies inside the span.
// A window counts when it starts inside the span and the next window starts
// before the span ends, so partially covered tail windows are excluded.
func (ws *WindowSeries) inSpan(n int, span dataset.TimeSpan) bool {
	if n+1 >= len(ws.Times) {
		return false
	}
	return ws.Times[n] >= span.Start && ws.Times[n+1] < span.End
}

// RateDeviations scores every annotated vibrato segment against the matching
// file's rate estimates.
//
// For each annotation with a usable span and a vibrato label, the positive
// rate estimates of windows inside the span are compared to the reference
// rate; the segment's score is the mean absolute deviation as a percentage
// of the reference. Segments with no in-span estimates produce no score.
func RateDeviations(series []WindowSeries, annotations []dataset.Annotation) []float64 {
	byName := make(map[string]*WindowSeries, len(series))
	for i := range series {
		byName[series[i].Filename] = &series[i]
	}

	var deviations []float64

	for _, annotation := range annotations {
		if !annotation.HasVibrato || !annotation.HasSpan || annotation.RateHz <= 0 {
			continue
		}

		ws, ok := byName[annotation.Filename]
		if !ok {
			logging.Warn("annotation without matching analysis output", logging.Fields{
				"component": "evaluation",
				"file":      annotation.Filename,
			})
			continue
		}

		sum := 0.0
		count := 0
		for n, rate := range ws.Rates {
			if rate <= 0 || !ws.inSpan(n, annotation.Span) {
				continue
			}
			sum += math.Abs(rate - annotation.RateHz)
			count++
		}

		if count > 0 {
			deviations = append(deviations, 100*sum/float64(count)/annotation.RateHz)
		}
	}

	return deviations
}

// MeanDeviation averages per-segment percent deviations.
func MeanDeviation(deviations []float64) float64 {
	if len(deviations) == 0 {
		return 0
	}
	return stat.Mean(deviations, nil)
}

// PresenceOverlap measures how much annotated vibrato time the caller's
// presence flags miss, as a ratio of total analyzed time: 1 means no
// annotated vibrato window was flagged off, lower values mean more missed
// time. Series without flags contribute no misses.
func PresenceOverlap(series []WindowSeries, annotations []dataset.Annotation) float64 {
	totalTime := 0.0
	missedTime := 0.0

	for i := range series {
		ws := &series[i]
		if len(ws.Times) > 0 {
			totalTime += ws.Times[len(ws.Times)-1]
		}
		if ws.Flags == nil {
			continue
		}

		for _, annotation := range annotations {
			if !annotation.HasVibrato || !annotation.HasSpan || annotation.Filename != ws.Filename {
				continue
			}
			for n := range ws.Flags {
				if !ws.Flags[n] && ws.inSpan(n, annotation.Span) {
					missedTime += ws.Times[n+1] - ws.Times[n]
				}
			}
		}
	}

	if totalTime <= 0 {
		return 1
	}
	return 1 - missedTime/totalTime
}
