package parser

import (
	"github.com/xuri/excelize/v2"
)

// LastDataRow returns the 1-based index of the last row of sheetName holding
// a non-empty cell, or 0 when the sheet has no data.
func LastDataRow(f *excelize.File, sheetName string) (int, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, err
	}

	maxRow := findLastRow(rows)
	return maxRow + 1, nil
}

// findLastRow returns the 0-based index of the last row with a non-empty
// cell, or -1.
func findLastRow(rows [][]string) int {
	for rowIdx := len(rows) - 1; rowIdx >= 0; rowIdx-- {
		for _, cell := range rows[rowIdx] {
			if cell != "" {
				return rowIdx
			}
		}
	}
	return -1
}
