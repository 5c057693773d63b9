// Package carpetarea annotates property registers with carpet areas parsed
// from free-text descriptions.
package carpetarea

import (
	"fmt"

	"github.com/ukaji3/carpetarea-go/pkg/carpetarea/parser"
)

// Rounding selects how derived areas are rounded to two decimals.
type Rounding string

const (
	// RoundingFixed rounds like fixed-point string formatting. This is the default.
	RoundingFixed Rounding = "fixed"
	// RoundingNumeric rounds the scaled value half away from zero.
	RoundingNumeric Rounding = "numeric"
)

// ParseRounding parses a rounding name. An empty string selects RoundingFixed.
func ParseRounding(s string) (Rounding, error) {
	switch Rounding(s) {
	case "", RoundingFixed:
		return RoundingFixed, nil
	case RoundingNumeric:
		return RoundingNumeric, nil
	default:
		return "", fmt.Errorf("invalid rounding: %s (must be fixed or numeric)", s)
	}
}

// Func returns the rounding function for r.
func (r Rounding) Func() parser.RoundFunc {
	if r == RoundingNumeric {
		return parser.RoundNumeric
	}
	return parser.RoundFixed
}

// Column describes one output column.
type Column struct {
	// Name is the column letter, e.g. "AM".
	Name string
	// Header is the label written to row 1.
	Header string
	// Width is the column width in character units.
	Width float64
}

// Layout holds the fixed positions and labels of a register sheet.
type Layout struct {
	// SheetName is the worksheet to annotate.
	SheetName string
	// SourceColumn holds the free-text description of each unit.
	SourceColumn string
	// UnitMarker follows every area value in the source text.
	UnitMarker string
	// SqMt receives the summed area in square metres.
	SqMt Column
	// SqFt receives the area in square feet.
	SqFt Column
	// Saleable and APR are header-only columns; nothing populates them.
	Saleable Column
	APR      Column
	// NumFmt is the built-in number format id applied to derived cells.
	NumFmt int
}

// Headers returns the header columns in sheet order.
func (l Layout) Headers() []Column {
	return []Column{l.SqMt, l.SqFt, l.Saleable, l.APR}
}

// DefaultLayout returns the layout of the CRE register.
func DefaultLayout() Layout {
	return Layout{
		SheetName:    "CRE",
		SourceColumn: "U",
		UnitMarker:   parser.UnitMarker,
		SqMt:         Column{Name: "AM", Header: "Carpet Area sq.mt", Width: 18},
		SqFt:         Column{Name: "AN", Header: "Carpet Area sq.ft", Width: 18},
		Saleable:     Column{Name: "AO", Header: "Saleable area", Width: 18},
		APR:          Column{Name: "AP", Header: "APR", Width: 10},
		NumFmt:       2, // 0.00
	}
}

// Options configures annotation.
type Options struct {
	// Rounding selects the rounding of derived areas.
	Rounding Rounding
	// Layout is the sheet layout. A zero Layout means DefaultLayout.
	Layout Layout
}

// DefaultOptions returns default annotation options.
func DefaultOptions() Options {
	return Options{
		Rounding: RoundingFixed,
		Layout:   DefaultLayout(),
	}
}

func (o Options) layout() Layout {
	if o.Layout.SheetName == "" {
		return DefaultLayout()
	}
	return o.Layout
}
