package parser_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/seatboard/internal/parser"
	"github.com/KaramelBytes/seatboard/internal/sheets"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestParseFileCSV(t *testing.T) {
	p := writeFile(t, "residents.csv", "Name,Present,Table number,Appetizer,Water\n"+
		"Anna Berg,p,3,,cold\n"+
		"Olav Dahl,a,,v8,half\n")
	tbl, err := parser.ParseFile(p, parser.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tbl.Cols) != 5 || tbl.Cols[2].Label != "Table number" || tbl.Cols[4].ID != "E" {
		t.Fatalf("unexpected cols: %+v", tbl.Cols)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows: %d", len(tbl.Rows))
	}
	if got := tbl.Rows[0].C[2].Text(); got != "3" {
		t.Fatalf("table cell: %q", got)
	}
	if tbl.Rows[0].C[3] != nil {
		t.Fatalf("blank cell should be nil")
	}
}

func TestParseFileTSV(t *testing.T) {
	p := writeFile(t, "residents.tsv", "Name\tPresent\nAnna Berg\tp\n")
	tbl, err := parser.ParseFile(p, parser.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0].C[0].Text() != "Anna Berg" {
		t.Fatalf("unexpected rows: %+v", tbl.Rows)
	}
}

func TestParseFileEmptyCSV(t *testing.T) {
	p := writeFile(t, "empty.csv", "")
	tbl, err := parser.ParseFile(p, parser.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tbl.Rows) != 0 || len(tbl.Cols) != 0 {
		t.Fatalf("expected empty table, got %+v", tbl)
	}
}

func TestParseFileGviz(t *testing.T) {
	payload, err := sheets.WrapPayload(&sheets.Table{
		Cols: []sheets.Column{{ID: "A", Label: "Name", Type: "string"}},
		Rows: []sheets.Row{{C: []*sheets.Cell{{V: "Anna"}}}},
	})
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	p := writeFile(t, "residents.gviz", string(payload))
	tbl, err := parser.ParseFile(p, parser.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows: %d", len(tbl.Rows))
	}

	bad := writeFile(t, "broken.txt", "{}")
	_, err = parser.ParseFile(bad, parser.Options{})
	var mp *sheets.MalformedPayloadError
	if !errors.As(err, &mp) {
		t.Fatalf("expected malformed payload, got %v", err)
	}
}

func TestParseFileXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("residents"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	rows := [][]any{
		{"Name", "Present", "Table number", "Appetizer", "Water"},
		{"Anna Berg", "p", 3, "", "cold"},
		{"Kari Hus", "p", "4", "v8", "half"},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("residents", cell, &r); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	p := filepath.Join(t.TempDir(), "residents.xlsx")
	if err := f.SaveAs(p); err != nil {
		t.Fatalf("save: %v", err)
	}

	tbl, err := parser.ParseFile(p, parser.Options{Sheet: "residents"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tbl.Cols) != 5 || tbl.Cols[0].Label != "Name" {
		t.Fatalf("cols: %+v", tbl.Cols)
	}
	if len(tbl.Rows) != 2 || tbl.Rows[0].C[2].Text() != "3" || tbl.Rows[1].C[3].Text() != "v8" {
		t.Fatalf("rows: %+v", tbl.Rows)
	}

	if _, err := parser.ParseFile(p, parser.Options{Sheet: "missing"}); err == nil {
		t.Fatalf("expected error for missing sheet")
	}
}

func TestParseFileUnsupported(t *testing.T) {
	p := writeFile(t, "residents.ods", "x")
	_, err := parser.ParseFile(p, parser.Options{})
	if !errors.Is(err, parser.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestFileSource(t *testing.T) {
	p := writeFile(t, "residents.csv", "Name,Present\nAnna,p\n")
	tbl, err := parser.FileSource{Path: p}.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows: %d", len(tbl.Rows))
	}
}
