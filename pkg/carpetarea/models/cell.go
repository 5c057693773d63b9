// Package models defines the report data produced by annotation.
package models

// AreaRecord is the derived carpet area of a single row.
type AreaRecord struct {
	// R is the row index (1-based).
	R int `json:"r" yaml:"r"`
	// SqMt is the summed area in square metres, rounded to two decimals.
	SqMt float64 `json:"sq_mt" yaml:"sq_mt"`
	// SqFt is SqMt converted to square feet, rounded to two decimals.
	SqFt float64 `json:"sq_ft" yaml:"sq_ft"`
}
