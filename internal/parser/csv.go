package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/seatboard/internal/sheets"
)

type csvParser struct{}

func (csvParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

// Parse treats the first record as the header and every later record as a row.
func (csvParser) Parse(filename string, content []byte, opt Options) (*sheets.Table, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = ','
		if strings.HasSuffix(strings.ToLower(filename), ".tsv") {
			delim = '\t'
		}
	}
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	t := &sheets.Table{Cols: []sheets.Column{}, Rows: []sheets.Row{}}
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		t.Cols = append(t.Cols, sheets.Column{ID: columnID(i), Label: strings.TrimSpace(h), Type: "string"})
	}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		t.Rows = append(t.Rows, stringRow(rec))
	}
	return t, nil
}

func stringRow(rec []string) sheets.Row {
	row := sheets.Row{C: make([]*sheets.Cell, len(rec))}
	for i, v := range rec {
		row.C[i] = sheets.StringCell(strings.TrimSpace(v))
	}
	return row
}

// columnID returns the spreadsheet letter for a zero-based column index.
func columnID(i int) string {
	var b []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}
