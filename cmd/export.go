package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/seatboard/internal/pipeline"
	"github.com/KaramelBytes/seatboard/internal/render"
	"github.com/KaramelBytes/seatboard/internal/seating"
	"github.com/KaramelBytes/seatboard/internal/utils"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write counts and table assignments to an .xlsx workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportOutput == "" {
			return fmt.Errorf("--output is required")
		}
		if !strings.HasSuffix(strings.ToLower(exportOutput), ".xlsx") {
			return fmt.Errorf("--output must end in .xlsx")
		}
		res, err := pipeline.Run(cmd.Context(), newSource(), logger)
		if err != nil {
			return err
		}
		data, err := buildWorkbook(res.Groups.Summary())
		if err != nil {
			return err
		}
		if err := utils.SafeWriteFile(exportOutput, data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote workbook to %s\n", exportOutput)
		return nil
	},
}

const (
	summarySheet = "Summary"
	tablesSheet  = "Tables"
)

// buildWorkbook lays the summary out as two sheets: counters and seating.
func buildWorkbook(sum seating.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(tablesSheet); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}

	rows := [][]any{{"Attribute", "Label", "Count"}, {"present", "Present", sum.Present}}
	for _, c := range sum.Counts {
		rows = append(rows, []any{string(c.Attribute), render.IconFor(c.Attribute).Label, c.Count})
	}
	if err := writeRows(f, summarySheet, rows); err != nil {
		return nil, err
	}

	rows = [][]any{{"Table", "Name", "Indicators"}}
	for _, t := range sum.Tables {
		for _, p := range t.People {
			marks := make([]string, 0, len(p.Indicators))
			for _, a := range p.Indicators {
				marks = append(marks, render.IconFor(a).Label)
			}
			rows = append(rows, []any{t.Number, p.Name, strings.Join(marks, ", ")})
		}
	}
	if err := writeRows(f, tablesSheet, rows); err != nil {
		return nil, err
	}

	for _, sheet := range []string{summarySheet, tablesSheet} {
		if err := f.SetCellStyle(sheet, "A1", "C1", bold); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
		if err := f.SetColWidth(sheet, "B", "C", 28); err != nil {
			return nil, fmt.Errorf("column width: %w", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "path of the .xlsx workbook to write")
}
