// Package seating groups present residents by table and by tracked attribute.
package seating

import "github.com/KaramelBytes/seatboard/internal/resident"

// Groups is the result of one aggregation pass. It is built fresh per run and
// is not modified after Aggregate returns.
type Groups struct {
	Present  []resident.Resident
	MaxTable int
	Subsets  map[Attribute][]resident.Resident
}

// Table is one seating group with its present residents in row order.
type Table struct {
	Number    int                 `json:"number"`
	Residents []resident.Resident `json:"residents"`
}

// Aggregate filters residents to those present and partitions them by table
// and attribute. Absent residents never appear in any subset.
func Aggregate(residents []resident.Resident) *Groups {
	g := &Groups{
		Present: []resident.Resident{},
		Subsets: make(map[Attribute][]resident.Resident, len(Attributes)),
	}
	for _, s := range Attributes {
		g.Subsets[s.Attribute] = []resident.Resident{}
	}
	for _, r := range residents {
		if !r.IsPresent() {
			continue
		}
		g.Present = append(g.Present, r)
		for _, s := range Attributes {
			if s.Count(r) {
				g.Subsets[s.Attribute] = append(g.Subsets[s.Attribute], r)
			}
		}
		if r.Table > g.MaxTable {
			g.MaxTable = r.Table
		}
	}
	return g
}

// Count returns the size of the subset for a.
func (g *Groups) Count(a Attribute) int { return len(g.Subsets[a]) }

// Tables returns the non-empty tables from 1 to MaxTable in ascending order.
func (g *Groups) Tables() []Table {
	var out []Table
	for n := 1; n <= g.MaxTable; n++ {
		var seated []resident.Resident
		for _, r := range g.Present {
			if r.Table == n {
				seated = append(seated, r)
			}
		}
		if len(seated) == 0 {
			continue
		}
		out = append(out, Table{Number: n, Residents: seated})
	}
	return out
}

// Indicators returns, in display order, the attributes whose indicator
// predicate r satisfies.
func Indicators(r resident.Resident) []Attribute {
	out := make([]Attribute, 0, len(Attributes))
	for _, s := range Attributes {
		if s.Indicator(r) {
			out = append(out, s.Attribute)
		}
	}
	return out
}

// AttributeCount is one summary counter.
type AttributeCount struct {
	Attribute Attribute `json:"attribute"`
	Count     int       `json:"count"`
}

// SeatedPerson is a table entry in the summary.
type SeatedPerson struct {
	Name       string      `json:"name"`
	Indicators []Attribute `json:"indicators"`
}

// TableSummary lists the people at one table.
type TableSummary struct {
	Number int            `json:"number"`
	People []SeatedPerson `json:"people"`
}

// Summary is the serialisable view of Groups.
type Summary struct {
	Present  int              `json:"present"`
	MaxTable int              `json:"max_table"`
	Counts   []AttributeCount `json:"counts"`
	Tables   []TableSummary   `json:"tables"`
}

// Summary flattens the groups into counters and table listings.
func (g *Groups) Summary() Summary {
	s := Summary{
		Present:  len(g.Present),
		MaxTable: g.MaxTable,
		Counts:   make([]AttributeCount, 0, len(Attributes)),
		Tables:   []TableSummary{},
	}
	for _, spec := range Attributes {
		s.Counts = append(s.Counts, AttributeCount{Attribute: spec.Attribute, Count: g.Count(spec.Attribute)})
	}
	for _, t := range g.Tables() {
		ts := TableSummary{Number: t.Number, People: make([]SeatedPerson, 0, len(t.Residents))}
		for _, r := range t.Residents {
			ts.People = append(ts.People, SeatedPerson{Name: r.FirstName(), Indicators: Indicators(r)})
		}
		s.Tables = append(s.Tables, ts)
	}
	return s
}
