package models

// WorkbookReport is the workbook-level container for an annotation run.
type WorkbookReport struct {
	// BookName is the workbook file name (no path); empty for uploads.
	BookName string `json:"book_name,omitempty" yaml:"book_name,omitempty"`
	// Sheet is the report for the annotated sheet.
	Sheet SheetReport `json:"sheet" yaml:"sheet"`
}
