package models

// SheetReport summarizes annotation of one worksheet.
type SheetReport struct {
	// SheetName is the annotated sheet.
	SheetName string `json:"sheet_name" yaml:"sheet_name"`
	// LastRow is the last populated row scanned (1-based, 0 for an empty sheet).
	LastRow int `json:"last_row" yaml:"last_row"`
	// Records contains a record for every row that produced an area.
	Records []AreaRecord `json:"records,omitempty" yaml:"records,omitempty"`
}

// Skipped returns the number of data rows that produced no area.
func (s SheetReport) Skipped() int {
	if s.LastRow < 2 {
		return 0
	}
	return s.LastRow - 1 - len(s.Records)
}
