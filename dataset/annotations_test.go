package dataset

import (
	"math"
	"strings"
	"testing"
)

const sampleCSV = `id,filename,label,instrument,player,rate,extent,unused1,unused2,span
1,violin_01.wav,vibrato,violin,p1,5.8,0.4,x,y,0.5:2.3
2,violin_02.wav,no vibrato,violin,p1,0,0,x,y,nan
3,violin_03.wav,vibrato,violin,p2,6.2,0.5,x,y,1.0:3.5
`

func TestReadAnnotations(t *testing.T) {
	annotations, err := ReadAnnotations(strings.NewReader(sampleCSV), DefaultColumnMap())
	if err != nil {
		t.Fatalf("ReadAnnotations() error = %v", err)
	}

	if len(annotations) != 3 {
		t.Fatalf("len(annotations) = %d, want 3", len(annotations))
	}

	first := annotations[0]
	if first.Filename != "violin_01.wav" {
		t.Fatalf("Filename = %q, want violin_01.wav", first.Filename)
	}
	if !first.HasVibrato {
		t.Fatal("HasVibrato = false, want true")
	}
	if math.Abs(first.RateHz-5.8) > 1e-12 {
		t.Fatalf("RateHz = %g, want 5.8", first.RateHz)
	}
	if !first.HasSpan || first.Span.Start != 0.5 || first.Span.End != 2.3 {
		t.Fatalf("Span = %+v (HasSpan=%v), want 0.5:2.3", first.Span, first.HasSpan)
	}

	second := annotations[1]
	if second.HasVibrato {
		t.Fatal("HasVibrato = true for a 'no vibrato' label, want false")
	}
	if second.HasSpan {
		t.Fatal("HasSpan = true for a nan span, want false")
	}
}

func TestReadAnnotationsSkipsBadRows(t *testing.T) {
	csv := `1,good.wav,vibrato,violin,p1,5.5,0.4,x,y,0.5:2.0
2,short.wav,vibrato
3,badrate.wav,vibrato,violin,p1,not-a-number,0.4,x,y,0.5:2.0
4,also_good.wav,vibrato,violin,p1,6.0,0.4,x,y,nan
`
	annotations, err := ReadAnnotations(strings.NewReader(csv), DefaultColumnMap())
	if err != nil {
		t.Fatalf("ReadAnnotations() error = %v", err)
	}

	if len(annotations) != 2 {
		t.Fatalf("len(annotations) = %d, want 2 (bad rows skipped)", len(annotations))
	}
	if annotations[0].Filename != "good.wav" || annotations[1].Filename != "also_good.wav" {
		t.Fatalf("kept %q and %q, want good.wav and also_good.wav",
			annotations[0].Filename, annotations[1].Filename)
	}
}

func TestReadAnnotationsHeaderless(t *testing.T) {
	csv := "1,a.wav,vibrato,violin,p1,5.5,0.4,x,y,0.5:2.0\n"

	annotations, err := ReadAnnotations(strings.NewReader(csv), DefaultColumnMap())
	if err != nil {
		t.Fatalf("ReadAnnotations() error = %v", err)
	}
	if len(annotations) != 1 {
		t.Fatalf("len(annotations) = %d, want 1 (numeric first row is data, not header)", len(annotations))
	}
}

func TestParseSpan(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeSpan
		wantOK  bool
	}{
		{"0.5:2.3", TimeSpan{Start: 0.5, End: 2.3}, true},
		{" 1.0 : 3.5 ", TimeSpan{Start: 1.0, End: 3.5}, true},
		{"nan", TimeSpan{}, false},
		{"NaN", TimeSpan{}, false},
		{"", TimeSpan{}, false},
		{"1.0", TimeSpan{}, false},
		{"a:b", TimeSpan{}, false},
	}

	for _, tc := range cases {
		got, ok := parseSpan(tc.in)
		if ok != tc.wantOK {
			t.Fatalf("parseSpan(%q) ok = %v, want %v", tc.in, ok, tc.wantOK)
		}
		if got != tc.want {
			t.Fatalf("parseSpan(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
