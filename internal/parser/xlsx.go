package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/KaramelBytes/seatboard/internal/sheets"
	"github.com/xuri/excelize/v2"
)

type xlsxParser struct{}

func (xlsxParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xlsx")
}

// Parse reads the selected sheet; the first row holds the labels.
func (xlsxParser) Parse(filename string, content []byte, opt Options) (*sheets.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := opt.Sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", filename)
		}
		sheet = list[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet '%s' not found in workbook '%s'.\nAvailable sheets: %s",
			sheet, filename, strings.Join(f.GetSheetList(), ", "))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	t := &sheets.Table{Cols: []sheets.Column{}, Rows: []sheets.Row{}}
	if len(rows) == 0 {
		return t, nil
	}
	for i, h := range rows[0] {
		id, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			id = columnID(i)
		}
		t.Cols = append(t.Cols, sheets.Column{ID: id, Label: strings.TrimSpace(h), Type: "string"})
	}
	for _, rec := range rows[1:] {
		t.Rows = append(t.Rows, stringRow(rec))
	}
	return t, nil
}
