package seating

import (
	"strings"

	"github.com/KaramelBytes/seatboard/internal/resident"
)

// Attribute names a tracked preference.
type Attribute string

const (
	ColdWater Attribute = "cold"
	HalfWater Attribute = "half"
	NoIce     Attribute = "no_ice"
	Milk      Attribute = "milk"
	SmallMilk Attribute = "small_milk"
	Mug       Attribute = "mug"
	V8        Attribute = "v8"
	Cranberry Attribute = "cran"
)

// Predicate matches a resident against an attribute.
type Predicate func(r resident.Resident) bool

// Spec pairs an attribute with its two predicates. Count decides subset
// membership for the summary counters; Indicator decides whether the person
// gets the icon in a table section. The two are kept as the sheet owners wrote
// them and do not always agree.
type Spec struct {
	Attribute Attribute
	Count     Predicate
	Indicator Predicate
}

func fold(a, b string) bool { return strings.EqualFold(a, b) }

// Attributes lists every tracked attribute in display order.
var Attributes = []Spec{
	{
		Attribute: ColdWater,
		Count:     func(r resident.Resident) bool { return fold(r.Water, "cold") },
		Indicator: func(r resident.Resident) bool { return fold(r.Water, "cold") },
	},
	{
		Attribute: HalfWater,
		Count:     func(r resident.Resident) bool { return fold(r.Water, "half") },
		Indicator: func(r resident.Resident) bool { return fold(r.Water, "half") },
	},
	{
		Attribute: NoIce,
		Count:     func(r resident.Resident) bool { return fold(r.Water, "no ice") },
		Indicator: func(r resident.Resident) bool { return fold(r.Water, "no ice") || fold(r.Water, "no") },
	},
	{
		Attribute: Milk,
		Count:     func(r resident.Resident) bool { return fold(r.Milk, "y") || r.Milk == "yes" },
		Indicator: func(r resident.Resident) bool { return fold(r.Milk, "y") || fold(r.Milk, "yes") },
	},
	{
		Attribute: SmallMilk,
		Count:     func(r resident.Resident) bool { return fold(r.SmallMilk, "y") || r.SmallMilk == "yes" },
		Indicator: func(r resident.Resident) bool { return fold(r.SmallMilk, "y") || fold(r.SmallMilk, "yes") },
	},
	{
		Attribute: Mug,
		Count:     func(r resident.Resident) bool { return fold(r.Mug, "y") || r.Mug == "yes" },
		Indicator: func(r resident.Resident) bool { return fold(r.Mug, "y") || fold(r.Mug, "yes") },
	},
	{
		// Count also accepts milk=="no"; Indicator also accepts appetizer "no".
		Attribute: V8,
		Count:     func(r resident.Resident) bool { return fold(r.Appetizer, "v8") || r.Milk == "no" },
		Indicator: func(r resident.Resident) bool { return fold(r.Appetizer, "v8") || fold(r.Appetizer, "no") },
	},
	{
		// Count also accepts milk=="yes"; Indicator also accepts appetizer "yes".
		Attribute: Cranberry,
		Count:     func(r resident.Resident) bool { return fold(r.CranJuice, "y") || r.Milk == "yes" },
		Indicator: func(r resident.Resident) bool { return fold(r.CranJuice, "y") || fold(r.Appetizer, "yes") },
	},
}

// Lookup returns the spec for a.
func Lookup(a Attribute) (Spec, bool) {
	for _, s := range Attributes {
		if s.Attribute == a {
			return s, true
		}
	}
	return Spec{}, false
}
