package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellText returns the flat text of a cell. Rich text runs are concatenated in
// order with their formatting dropped; other cells yield their raw value, so a
// numeric cell reads as "12.5" rather than through its number format. A cell
// that does not exist reads as "".
func CellText(f *excelize.File, sheetName, cell string) (string, error) {
	runs, err := f.GetCellRichText(sheetName, cell)
	if err == nil && len(runs) > 0 {
		return FlattenRuns(runs), nil
	}

	return f.GetCellValue(sheetName, cell, excelize.Options{RawCellValue: true})
}

// FlattenRuns joins the text of rich text runs.
func FlattenRuns(runs []excelize.RichTextRun) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
