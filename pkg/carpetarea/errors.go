package carpetarea

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no sheet with the layout's name.
var ErrSheetNotFound = errors.New("sheet not found")

// Annotation steps reported by AnnotateError.
const (
	StepHeaders   = "headers"
	StepRows      = "rows"
	StepColumns   = "columns"
	StepSerialize = "serialize"
)

// AnnotateError represents an error while writing to a sheet.
type AnnotateError struct {
	SheetName string
	Cell      string // empty for sheet-wide steps
	Step      string
	Err       error
}

func (e *AnnotateError) Error() string {
	if e.Cell != "" {
		return fmt.Sprintf("annotation error in sheet %q at %s (%s): %v", e.SheetName, e.Cell, e.Step, e.Err)
	}
	return fmt.Sprintf("annotation error in sheet %q (%s): %v", e.SheetName, e.Step, e.Err)
}

func (e *AnnotateError) Unwrap() error {
	return e.Err
}

// NewAnnotateError creates a new AnnotateError.
func NewAnnotateError(sheetName, cell, step string, err error) *AnnotateError {
	return &AnnotateError{
		SheetName: sheetName,
		Cell:      cell,
		Step:      step,
		Err:       err,
	}
}
