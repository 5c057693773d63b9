package parser

import (
	"math"
	"strconv"
	"strings"
)

// RoundFunc rounds an area value to the two decimal places written to the sheet.
type RoundFunc func(float64) float64

// RoundFixed rounds v to two decimals the way fixed-point string formatting
// does: the nearest two-decimal value of the exact binary double, with exact
// ties going to the larger candidate.
func RoundFixed(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	// FormatFloat breaks exact ties to even.
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if isExactTie(v) {
		s = strconv.FormatFloat(math.Ceil(v*100)/100, 'f', 2, 64)
	}

	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return r
}

// isExactTie reports whether the binary value of v lies exactly halfway
// between two hundredths, e.g. 0.125 but not 1.005 (1.00499999...).
func isExactTie(v float64) bool {
	t := strconv.FormatFloat(math.Abs(v), 'f', 30, 64)
	frac := t[strings.IndexByte(t, '.')+1:]
	return frac[2] == '5' && strings.Trim(frac[3:], "0") == ""
}

// RoundNumeric rounds v*100 half away from zero and scales back.
func RoundNumeric(v float64) float64 {
	return math.Round(v*100) / 100
}
