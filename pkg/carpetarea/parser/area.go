package parser

import (
	"regexp"
	"strconv"
)

// UnitMarker is the Marathi abbreviation for square metres used in the
// source registers.
const UnitMarker = "चौ.मी."

// space also covers the Unicode separators that turn up in typed Devanagari text.
const space = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*`

var areaPattern = NewAreaPattern(UnitMarker)

// NewAreaPattern returns the pattern matching a decimal number, optional
// whitespace and marker. The first submatch is the number.
func NewAreaPattern(marker string) *regexp.Regexp {
	return regexp.MustCompile(`(\d+\.?\d*)` + space + regexp.QuoteMeta(marker))
}

// ExtractArea sums every number tagged with UnitMarker in text and rounds the
// total with round. The boolean is false when nothing matched, which is not
// the same as a matched total of zero.
func ExtractArea(text string, round RoundFunc) (float64, bool) {
	return ExtractAreaWith(areaPattern, text, round)
}

// ExtractAreaWith is ExtractArea with an explicit pattern built by NewAreaPattern.
// A nil round defaults to RoundFixed.
func ExtractAreaWith(pattern *regexp.Regexp, text string, round RoundFunc) (float64, bool) {
	if text == "" {
		return 0, false
	}

	var (
		total   float64
		matched bool
	)
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		total += v
		matched = true
	}

	if !matched {
		return 0, false
	}
	if round == nil {
		round = RoundFixed
	}
	return round(total), true
}
