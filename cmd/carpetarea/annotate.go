package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/ukaji3/carpetarea-go/pkg/carpetarea"
	"github.com/ukaji3/carpetarea-go/pkg/carpetarea/models"
)

var (
	outputPath string
	reportPath string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [input.xlsx]",
	Short: "Annotate a register file on disk",
	Long: `Annotate applies the same carpet area annotation as the HTTP endpoint to a
local workbook and saves the result. With --report it also writes the derived
rows as YAML, or JSON when the report path ends in .json.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	out := outputPath
	if out == "" {
		out = filepath.Join(filepath.Dir(inputPath), "output.xlsx")
	}

	report, err := carpetarea.ProcessFile(inputPath, out, cfg.Options())
	if err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}

	log.Info().
		Str("book", report.BookName).
		Int("rows", report.Sheet.LastRow).
		Int("annotated", len(report.Sheet.Records)).
		Int("skipped", report.Sheet.Skipped()).
		Str("output", out).
		Msg("annotated workbook")

	if reportPath != "" {
		if err := writeReport(reportPath, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func writeReport(path string, report *models.WorkbookReport) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = yaml.Marshal(report)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func init() {
	annotateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: output.xlsx next to the input)")
	annotateCmd.Flags().StringVar(&reportPath, "report", "", "write derived rows to this YAML or JSON file")

	rootCmd.AddCommand(annotateCmd)
}
