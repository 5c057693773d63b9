// Package parser provides cell reading and area extraction for worksheets.
package parser

// SqFtPerSqMt is the number of square feet in one square metre, as used by
// the source registers (three decimal places, not the full 10.7639...).
const SqFtPerSqMt = 10.764

// SqMtToSqFt converts square metres to square feet.
// The result is not rounded; callers round to the precision they display.
func SqMtToSqFt(sqmt float64) float64 {
	return sqmt * SqFtPerSqMt
}
