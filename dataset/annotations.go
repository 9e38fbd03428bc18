package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tremolab/vibratrack/logging"
)

// TimeSpan is an annotated time range in seconds.
type TimeSpan struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Annotation is one ground-truth row: which file, whether the note carries
// vibrato, the reference rate, and the time range the rate applies to.
type Annotation struct {
	Filename   string   `json:"filename"`
	HasVibrato bool     `json:"has_vibrato"`
	RateHz     float64  `json:"rate_hz"`
	Span       TimeSpan `json:"span"`
	HasSpan    bool     `json:"has_span"`
}

// ColumnMap says which CSV column holds which field. The defaults match the
// MTG violin vibrato annotation layout.
type ColumnMap struct {
	Filename int
	Label    int
	RateHz   int
	Span     int
}

// DefaultColumnMap returns the column layout of the reference dataset.
func DefaultColumnMap() ColumnMap {
	return ColumnMap{Filename: 1, Label: 2, RateHz: 5, Span: 9}
}

// noVibratoLabel is how the reference annotations mark vibrato-free notes.
const noVibratoLabel = "no vibrato"

// ReadAnnotations parses annotation rows from CSV data.
//
// The first row is treated as a header when its rate column does not parse
// as a number. Rows that are too short or carry an unparseable rate are
// skipped with a warning rather than failing the whole file; a "nan" or
// malformed span only clears HasSpan.
func ReadAnnotations(r io.Reader, cols ColumnMap) ([]Annotation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading annotation CSV: %w", err)
	}

	minWidth := max(cols.Filename, cols.Label, cols.RateHz, cols.Span) + 1

	var annotations []Annotation
	for i, row := range rows {
		if len(row) < minWidth {
			logging.Warn("skipping short annotation row", logging.Fields{
				"component": "dataset",
				"row":       i,
				"fields":    len(row),
			})
			continue
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(row[cols.RateHz]), 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			logging.Warn("skipping annotation row with unparseable rate", logging.Fields{
				"component": "dataset",
				"row":       i,
				"value":     row[cols.RateHz],
			})
			continue
		}

		label := strings.TrimSpace(row[cols.Label])

		annotation := Annotation{
			Filename:   strings.TrimSpace(row[cols.Filename]),
			HasVibrato: !strings.EqualFold(label, noVibratoLabel),
			RateHz:     rate,
		}

		if span, ok := parseSpan(row[cols.Span]); ok {
			annotation.Span = span
			annotation.HasSpan = true
		}

		annotations = append(annotations, annotation)
	}

	return annotations, nil
}

// LoadAnnotations reads an annotation CSV file with the default columns.
func LoadAnnotations(path string) ([]Annotation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadAnnotations(f, DefaultColumnMap())
}

// parseSpan parses a "start:end" seconds range. "nan" and malformed values
// report no span.
func parseSpan(value string) (TimeSpan, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "nan") {
		return TimeSpan{}, false
	}

	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return TimeSpan{}, false
	}

	start, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	end, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return TimeSpan{}, false
	}

	return TimeSpan{Start: start, End: end}, true
}
