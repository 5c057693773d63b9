package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractArea(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"two values", "12.5 चौ.मी. आणि 3 चौ.मी.", 15.5, true},
		{"no marker", "no area mentioned", 0, false},
		{"empty", "", 0, false},
		{"explicit zero", "0 चौ.मी.", 0, true},
		{"no space", "45.25चौ.मी.", 45.25, true},
		{"several spaces", "10   चौ.मी.", 10, true},
		{"no-break space", "7.5\u00a0चौ.मी.", 7.5, true},
		{"trailing dot", "3. चौ.मी.", 3, true},
		{"rounded sum", "1.111 चौ.मी. 2.222 चौ.मी.", 3.33, true},
		{"number without marker ignored", "फ्लॅट 101, 55.5 चौ.मी.", 55.5, true},
		{"thousands separator splits", "1,200 चौ.मी.", 200, true},
		{"marker without number", "चौ.मी. only", 0, false},
		{"partial marker", "12 चौ.मी", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractArea(tt.input, RoundFixed)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("%s: ExtractArea(%q) = (%v, %v), expected (%v, %v)",
				tt.name, tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtractAreaWithMarker(t *testing.T) {
	pattern := NewAreaPattern("sq.m.")

	got, ok := ExtractAreaWith(pattern, "20 sq.m. + 5.5 sq.m.", RoundNumeric)
	if !ok || got != 25.5 {
		t.Errorf("ExtractAreaWith = (%v, %v), expected (25.5, true)", got, ok)
	}

	// The dot in the marker is literal.
	if _, ok := ExtractAreaWith(pattern, "20 sqxmx", nil); ok {
		t.Error("expected no match for a marker with other characters in place of dots")
	}
}

func TestFlattenRunsMatchesPlainText(t *testing.T) {
	runs := []excelize.RichTextRun{
		{Text: "12.5 ", Font: &excelize.Font{Bold: true}},
		{Text: "चौ.मी. आणि ", Font: &excelize.Font{Color: "FF0000"}},
		{Text: "3 चौ."},
		{Text: "मी."},
	}
	plain := "12.5 चौ.मी. आणि 3 चौ.मी."

	if got := FlattenRuns(runs); got != plain {
		t.Fatalf("FlattenRuns = %q, expected %q", got, plain)
	}

	fromRuns, okRuns := ExtractArea(FlattenRuns(runs), RoundFixed)
	fromPlain, okPlain := ExtractArea(plain, RoundFixed)
	if fromRuns != fromPlain || okRuns != okPlain {
		t.Errorf("rich text gave (%v, %v), plain text gave (%v, %v)", fromRuns, okRuns, fromPlain, okPlain)
	}
}

func TestFlattenRunsEmpty(t *testing.T) {
	if got := FlattenRuns(nil); got != "" {
		t.Errorf("FlattenRuns(nil) = %q, expected empty", got)
	}
}
