package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/ukaji3/carpetarea-go/pkg/carpetarea/models"
)

func writeRegister(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "CRE"))
	require.NoError(t, f.SetCellStr("CRE", "U1", "Description"))
	require.NoError(t, f.SetCellStr("CRE", "U2", "12.5 चौ.मी. आणि 3 चौ.मी."))
	require.NoError(t, f.SetCellStr("CRE", "U3", "no area mentioned"))
	require.NoError(t, f.SaveAs(path))
}

func TestAnnotateCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "register.xlsx")
	out := filepath.Join(dir, "annotated.xlsx")
	rep := filepath.Join(dir, "report.yaml")
	writeRegister(t, in)

	rootCmd.SetArgs([]string{"annotate", in, "-o", out, "--report", rep, "--log-level", "warn"})
	require.NoError(t, rootCmd.Execute())

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("CRE", "AN2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "166.84", v)

	data, err := os.ReadFile(rep)
	require.NoError(t, err)
	var report models.WorkbookReport
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, "register.xlsx", report.BookName)
	assert.Equal(t, []models.AreaRecord{{R: 2, SqMt: 15.5, SqFt: 166.84}}, report.Sheet.Records)
}

func TestWriteReportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	report := &models.WorkbookReport{
		BookName: "register.xlsx",
		Sheet: models.SheetReport{
			SheetName: "CRE",
			LastRow:   3,
			Records:   []models.AreaRecord{{R: 2, SqMt: 15.5, SqFt: 166.84}},
		},
	}
	require.NoError(t, writeReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got models.WorkbookReport
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *report, got)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "carpetarea dev\n", buf.String())
}
