package render

import "github.com/KaramelBytes/seatboard/internal/seating"

// Icon describes how an attribute is drawn: the summary entry id, the indicator
// class shared by every copy of the icon, and the summary label.
type Icon struct {
	EntryID   string
	Indicator string
	Label     string
}

// Icons maps each tracked attribute to its icon descriptor.
var Icons = map[seating.Attribute]Icon{
	seating.ColdWater: {EntryID: "cold", Indicator: "indicator_cold", Label: "Water with ice"},
	seating.HalfWater: {EntryID: "half_cold", Indicator: "indicator_half", Label: "Half cold half hot water"},
	seating.NoIce:     {EntryID: "no_ice", Indicator: "indicator_noice", Label: "water, no ice"},
	seating.Milk:      {EntryID: "milk", Indicator: "indicator_milk", Label: "Milk"},
	seating.SmallMilk: {EntryID: "smallMilk", Indicator: "indicator_milk_small", Label: "Small jug of milk"},
	seating.Mug:       {EntryID: "Mug", Indicator: "indicator_mug", Label: "Mugs"},
	seating.V8:        {EntryID: "V8", Indicator: "indicator_V8", Label: "V8 juice"},
	seating.Cranberry: {EntryID: "Cran", Indicator: "indicator_Cran", Label: "Cranberry juice"},
}

// IconFor returns the descriptor for a, falling back to the attribute name.
func IconFor(a seating.Attribute) Icon {
	if ic, ok := Icons[a]; ok {
		return ic
	}
	return Icon{EntryID: string(a), Indicator: "indicator_" + string(a), Label: string(a)}
}
