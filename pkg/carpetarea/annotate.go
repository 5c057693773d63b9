package carpetarea

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/carpetarea-go/pkg/carpetarea/models"
	"github.com/ukaji3/carpetarea-go/pkg/carpetarea/parser"
)

// Annotate writes the carpet area columns into the layout's sheet of f.
//
// Row 1 always receives the four header labels in bold, centred cells. Every
// row from 2 to the last populated row whose source cell mentions one or more
// areas gets the summed square metres and the square feet equivalent, both
// with a two-decimal number format. Rows without an area are left untouched.
func Annotate(f *excelize.File, opts Options) (*models.SheetReport, error) {
	layout := opts.layout()
	sheetName := layout.SheetName

	// GetSheetIndex folds case; the sheet name must match exactly.
	if !slices.Contains(f.GetSheetList(), sheetName) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	if err := writeHeaders(f, layout); err != nil {
		return nil, err
	}

	lastRow, err := parser.LastDataRow(f, sheetName)
	if err != nil {
		return nil, NewAnnotateError(sheetName, "", StepRows, err)
	}

	report := &models.SheetReport{
		SheetName: sheetName,
		LastRow:   lastRow,
	}

	pattern := parser.NewAreaPattern(layout.UnitMarker)
	round := opts.Rounding.Func()

	for row := 2; row <= lastRow; row++ {
		src, err := excelize.JoinCellName(layout.SourceColumn, row)
		if err != nil {
			return nil, NewAnnotateError(sheetName, "", StepRows, err)
		}
		text, err := parser.CellText(f, sheetName, src)
		if err != nil {
			return nil, NewAnnotateError(sheetName, src, StepRows, err)
		}

		sqmt, ok := parser.ExtractAreaWith(pattern, text, round)
		if !ok {
			continue
		}
		sqft := round(parser.SqMtToSqFt(sqmt))

		if err := writeArea(f, sheetName, layout.SqMt.Name, row, sqmt, layout.NumFmt); err != nil {
			return nil, err
		}
		if err := writeArea(f, sheetName, layout.SqFt.Name, row, sqft, layout.NumFmt); err != nil {
			return nil, err
		}

		log.Debug().
			Int("row", row).
			Float64("sq_mt", sqmt).
			Float64("sq_ft", sqft).
			Msg("derived carpet area")

		report.Records = append(report.Records, models.AreaRecord{R: row, SqMt: sqmt, SqFt: sqft})
	}

	for _, col := range layout.Headers() {
		if err := f.SetColWidth(sheetName, col.Name, col.Name, col.Width); err != nil {
			return nil, NewAnnotateError(sheetName, col.Name, StepColumns, err)
		}
	}

	return report, nil
}

// writeHeaders sets the header labels and merges bold, centred formatting
// into whatever style the header cells already carry.
func writeHeaders(f *excelize.File, layout Layout) error {
	for _, col := range layout.Headers() {
		cell, err := excelize.JoinCellName(col.Name, 1)
		if err != nil {
			return NewAnnotateError(layout.SheetName, "", StepHeaders, err)
		}
		if err := f.SetCellStr(layout.SheetName, cell, col.Header); err != nil {
			return NewAnnotateError(layout.SheetName, cell, StepHeaders, err)
		}
		err = mergeCellStyle(f, layout.SheetName, cell, func(s *excelize.Style) {
			font := excelize.Font{}
			if s.Font != nil {
				font = *s.Font
			}
			font.Bold = true
			s.Font = &font

			align := excelize.Alignment{}
			if s.Alignment != nil {
				align = *s.Alignment
			}
			align.Horizontal = "center"
			align.Vertical = "center"
			s.Alignment = &align
		})
		if err != nil {
			return NewAnnotateError(layout.SheetName, cell, StepHeaders, err)
		}
	}
	return nil
}

// writeArea stores v in column col of row with the given number format.
func writeArea(f *excelize.File, sheetName, col string, row int, v float64, numFmt int) error {
	cell, err := excelize.JoinCellName(col, row)
	if err != nil {
		return NewAnnotateError(sheetName, "", StepRows, err)
	}
	if err := f.SetCellFloat(sheetName, cell, v, -1, 64); err != nil {
		return NewAnnotateError(sheetName, cell, StepRows, err)
	}
	err = mergeCellStyle(f, sheetName, cell, func(s *excelize.Style) {
		s.NumFmt = numFmt
		s.CustomNumFmt = nil
	})
	if err != nil {
		return NewAnnotateError(sheetName, cell, StepRows, err)
	}
	return nil
}

// mergeCellStyle applies edit to a copy of the cell's current style and sets
// the result. NewStyle reuses an identical existing style id.
func mergeCellStyle(f *excelize.File, sheetName, cell string, edit func(*excelize.Style)) error {
	styleID, err := f.GetCellStyle(sheetName, cell)
	if err != nil {
		return err
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return err
	}
	if style == nil {
		style = &excelize.Style{}
	}
	edit(style)

	newID, err := f.NewStyle(style)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, cell, cell, newID)
}
