// Package resident decodes spreadsheet rows into Resident records.
//
// Columns are bound by position; the Schema makes that order explicit and can
// check it against the sheet's header labels before decoding.
package resident

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KaramelBytes/seatboard/internal/sheets"
)

// Resident is one decoded row of the residents sheet.
type Resident struct {
	Name      string `json:"name"`
	Present   string `json:"present"`
	Table     int    `json:"table"`
	Appetizer string `json:"appetizer"`
	Water     string `json:"water"`
	Carafe    string `json:"carafe"`
	Cup       string `json:"cup"`
	Mug       string `json:"mug"`
	SmallMilk string `json:"small_milk"`
	Milk      string `json:"milk"`
	CranJuice string `json:"cran_juice"`
}

// IsPresent reports whether the resident is marked "p" (any case).
func (r Resident) IsPresent() bool { return strings.EqualFold(r.Present, "p") }

// FirstName returns the first space-separated token of the full name.
func (r Resident) FirstName() string {
	name, _, _ := strings.Cut(r.Name, " ")
	return name
}

// Field is one positional column of the schema.
type Field struct {
	Name   string
	Header string // first word of the expected column label
	set    func(r *Resident, c *sheets.Cell)
}

// Schema is the ordered list of columns a row is decoded against.
type Schema []Field

func text(dst func(r *Resident) *string) func(*Resident, *sheets.Cell) {
	return func(r *Resident, c *sheets.Cell) { *dst(r) = c.Text() }
}

// DefaultSchema returns the residents sheet layout.
func DefaultSchema() Schema {
	return Schema{
		{Name: "name", Header: "name", set: text(func(r *Resident) *string { return &r.Name })},
		{Name: "present", Header: "present", set: text(func(r *Resident) *string { return &r.Present })},
		{Name: "table", Header: "table", set: func(r *Resident, c *sheets.Cell) { r.Table = TableNumber(c) }},
		{Name: "appetizer", Header: "appetizer", set: text(func(r *Resident) *string { return &r.Appetizer })},
		{Name: "water", Header: "water", set: text(func(r *Resident) *string { return &r.Water })},
		{Name: "carafe", Header: "carafe", set: text(func(r *Resident) *string { return &r.Carafe })},
		{Name: "cup", Header: "cup", set: text(func(r *Resident) *string { return &r.Cup })},
		{Name: "mug", Header: "mug", set: text(func(r *Resident) *string { return &r.Mug })},
		{Name: "small_milk", Header: "small", set: text(func(r *Resident) *string { return &r.SmallMilk })},
		{Name: "milk", Header: "milk", set: text(func(r *Resident) *string { return &r.Milk })},
		{Name: "cran_juice", Header: "cran", set: text(func(r *Resident) *string { return &r.CranJuice })},
	}
}

// Names returns the field names in column order.
func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.Name
	}
	return out
}

// Check compares the sheet labels against the schema and returns one warning per
// mismatch. Mismatches never stop decoding.
func (s Schema) Check(labels []string) []string {
	var warnings []string
	if len(labels) != len(s) {
		warnings = append(warnings, fmt.Sprintf("sheet has %d columns, schema expects %d", len(labels), len(s)))
	}
	for i, f := range s {
		if i >= len(labels) {
			break
		}
		label := strings.TrimSpace(labels[i])
		if label == "" {
			continue
		}
		word, _, _ := strings.Cut(label, " ")
		if !strings.HasPrefix(strings.ToLower(word), f.Header) {
			warnings = append(warnings, fmt.Sprintf("column %d label %q does not look like %s", i+1, label, f.Name))
		}
	}
	return warnings
}

// Decode builds a Resident from row by position. Extra cells are ignored and
// missing cells decode as empty values.
func (s Schema) Decode(row sheets.Row) Resident {
	var r Resident
	for i, f := range s {
		var c *sheets.Cell
		if i < len(row.C) {
			c = row.C[i]
		}
		f.set(&r, c)
	}
	return r
}

// DecodeTable decodes every row of t in order.
func (s Schema) DecodeTable(t *sheets.Table) []Resident {
	if t == nil {
		return nil
	}
	out := make([]Resident, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, s.Decode(row))
	}
	return out
}

// TableNumber coerces a cell to a table number. Numeric values and numeric text
// are accepted when they are non-negative whole numbers; anything else is 0.
func TableNumber(c *sheets.Cell) int {
	if c == nil || c.V == nil {
		return 0
	}
	var f float64
	switch v := c.V.(type) {
	case float64:
		f = v
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = p
	default:
		p, err := strconv.ParseFloat(c.Text(), 64)
		if err != nil {
			return 0
		}
		f = p
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}
