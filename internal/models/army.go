package models

import "strconv"

// FleetCompo maps ship types to ship counts.
// A composition containing AnyShip is abstract: some slots are not yet
// assigned to a concrete ship type.
type FleetCompo map[ShipType]int

// Get returns the count for a ship type
func (c FleetCompo) Get(st ShipType) int {
	return c[st]
}

// Total returns the number of ships across all types
func (c FleetCompo) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// HasWildcard reports whether the composition declares a wildcard category
func (c FleetCompo) HasWildcard() bool {
	_, ok := c[AnyShip]
	return ok
}

// Clone returns a copy of the composition
func (c FleetCompo) Clone() FleetCompo {
	out := make(FleetCompo, len(c))
	for st, n := range c {
		out[st] = n
	}
	return out
}

// Each iterates over ship types in deterministic order, wildcard last.
// Zero counts are skipped.
func (c FleetCompo) Each(fn func(ShipType, int)) {
	for _, st := range AllShipTypes() {
		if n := c[st]; n > 0 {
			fn(st, n)
		}
	}
	if n := c[AnyShip]; n > 0 {
		fn(AnyShip, n)
	}
}

// String renders the composition as "CL1 DD2 any1"
func (c FleetCompo) String() string {
	s := ""
	c.Each(func(st ShipType, n int) {
		if s != "" {
			s += " "
		}
		s += string(st) + strconv.Itoa(n)
	})
	if s == "" {
		return "-"
	}
	return s
}
