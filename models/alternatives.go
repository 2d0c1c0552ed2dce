package models

// TimeWindow represents a candidate booking window on a single day.
type TimeWindow struct {
	Start int    `json:"start"` // minutes from midnight
	End   int    `json:"end"`   // minutes from midnight
	Label string `json:"label"` // e.g. "10:00-11:00"
}

// NewTimeWindow builds a window with its display label attached.
func NewTimeWindow(start, end int) TimeWindow {
	return TimeWindow{Start: start, End: end, Label: FormatClock(start) + "-" + FormatClock(end)}
}

// SiteInventory counts rooms at a site meeting a capacity requirement. It is
// a coarse hint derived from the static catalog, not a live-availability
// check for the requested window.
type SiteInventory struct {
	Location Site `json:"location"`
	Count    int  `json:"count"`
}

// Alternatives is the suggestion engine's answer when no room satisfies the
// original request. Either list may be empty; empty lists mean "no better
// option found", never an error.
type Alternatives struct {
	Times     []TimeWindow    `json:"alternative_times"`
	Locations []SiteInventory `json:"alternative_locations"`
}

// IsEmpty reports whether the engine found nothing to propose.
func (a Alternatives) IsEmpty() bool {
	return len(a.Times) == 0 && len(a.Locations) == 0
}
