package carpetarea

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/carpetarea-go/pkg/carpetarea/models"
)

// Process reads a workbook from r, annotates it and returns the serialized
// result. Nothing is returned on error, so callers never see a partial workbook.
func Process(r io.Reader, opts Options) ([]byte, *models.WorkbookReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheet, err := Annotate(f, opts)
	if err != nil {
		return nil, nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, nil, NewAnnotateError(sheet.SheetName, "", StepSerialize, err)
	}

	return buf.Bytes(), &models.WorkbookReport{Sheet: *sheet}, nil
}

// ProcessFile annotates the workbook at inputPath and saves it to outputPath.
// inputPath and outputPath may be the same file.
func ProcessFile(inputPath, outputPath string, opts Options) (*models.WorkbookReport, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
	}

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheet, err := Annotate(f, opts)
	if err != nil {
		return nil, err
	}

	if err := f.SaveAs(outputPath); err != nil {
		return nil, NewAnnotateError(sheet.SheetName, "", StepSerialize, err)
	}

	return &models.WorkbookReport{
		BookName: filepath.Base(inputPath),
		Sheet:    *sheet,
	}, nil
}
