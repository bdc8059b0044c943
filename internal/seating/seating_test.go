package seating

import (
	"testing"

	"github.com/KaramelBytes/seatboard/internal/resident"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []resident.Resident {
	return []resident.Resident{
		{Name: "Anna Berg", Present: "p", Table: 2, Water: "cold", Milk: "y"},
		{Name: "Olav Dahl", Present: "a", Table: 2, Water: "cold"},
		{Name: "Kari Hus", Present: "P", Table: 4, Water: "Half", Mug: "yes", SmallMilk: "YES"},
		{Name: "Per Lie", Present: "p", Table: 2, Water: "no", Appetizer: "V8", CranJuice: "Y"},
		{Name: "Siri Moe", Present: "p", Table: 0, Water: "No Ice", Milk: "yes"},
	}
}

func TestAggregate_ExcludesAbsent(t *testing.T) {
	g := Aggregate(fixture()[:2])
	require.Len(t, g.Present, 1)
	assert.Equal(t, 2, g.MaxTable)
	assert.Equal(t, 1, g.Count(ColdWater))
	assert.Equal(t, 1, g.Count(Milk))
	for _, s := range Attributes {
		if s.Attribute == ColdWater || s.Attribute == Milk {
			continue
		}
		assert.Zero(t, g.Count(s.Attribute), "attribute %s", s.Attribute)
	}
	tables := g.Tables()
	require.Len(t, tables, 1)
	assert.Equal(t, 2, tables[0].Number)
	assert.Len(t, tables[0].Residents, 1)
}

func TestAggregate_Empty(t *testing.T) {
	g := Aggregate(nil)
	assert.Empty(t, g.Present)
	assert.Zero(t, g.MaxTable)
	assert.Empty(t, g.Tables())
	for _, s := range Attributes {
		assert.Zero(t, g.Count(s.Attribute))
	}
	sum := g.Summary()
	assert.Zero(t, sum.Present)
	assert.Len(t, sum.Counts, len(Attributes))
}

func TestAggregate_SubsetsOfPresent(t *testing.T) {
	g := Aggregate(fixture())
	present := map[string]bool{}
	for _, r := range g.Present {
		present[r.Name] = true
	}
	for a, subset := range g.Subsets {
		for _, r := range subset {
			assert.True(t, present[r.Name], "%s in %s is not present", r.Name, a)
		}
	}
	assert.Equal(t, 4, g.MaxTable)
}

func TestAggregate_Idempotent(t *testing.T) {
	in := fixture()
	a := Aggregate(in)
	b := Aggregate(in)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("aggregate not deterministic (-a +b):\n%s", diff)
	}
}

func TestCountPredicateQuirks(t *testing.T) {
	g := Aggregate(fixture())
	// Siri has milk "yes", so she also lands in the cranberry count.
	assert.Equal(t, []string{"Per", "Siri"}, names(g.Subsets[Cranberry]))
	// The "yes" spelling only matches in lower case.
	assert.Equal(t, []string{"Anna", "Siri"}, names(g.Subsets[Milk]))
	assert.Empty(t, g.Subsets[SmallMilk], "YES is not an accepted count spelling")
	assert.Equal(t, []string{"Kari"}, names(g.Subsets[Mug]))
	// Water "no" is not counted as no ice, only "no ice" is.
	assert.Equal(t, []string{"Siri"}, names(g.Subsets[NoIce]))

	withNoMilk := Aggregate([]resident.Resident{{Name: "Eva", Present: "p", Table: 1, Milk: "no"}})
	assert.Equal(t, 1, withNoMilk.Count(V8))
}

func TestIndicators(t *testing.T) {
	in := fixture()
	assert.Equal(t, []Attribute{ColdWater, Milk}, Indicators(in[0]))
	assert.Equal(t, []Attribute{HalfWater, SmallMilk, Mug}, Indicators(in[2]))
	assert.Equal(t, []Attribute{NoIce, V8, Cranberry}, Indicators(in[3]))
	assert.Equal(t, []Attribute{Cranberry}, Indicators(resident.Resident{Appetizer: "yes"}))
	assert.Empty(t, Indicators(resident.Resident{}))
}

func TestTables_OrderAndOmission(t *testing.T) {
	g := Aggregate(fixture())
	tables := g.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, 2, tables[0].Number)
	assert.Equal(t, []string{"Anna", "Per"}, names(tables[0].Residents))
	assert.Equal(t, 4, tables[1].Number)

	sum := g.Summary()
	require.Len(t, sum.Tables, 2)
	assert.Equal(t, "Anna", sum.Tables[0].People[0].Name)
	assert.Equal(t, 4, sum.Present)
}

func TestLookup(t *testing.T) {
	s, ok := Lookup(V8)
	require.True(t, ok)
	assert.Equal(t, V8, s.Attribute)
	_, ok = Lookup("tea")
	assert.False(t, ok)
}

func names(rs []resident.Resident) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.FirstName())
	}
	return out
}
