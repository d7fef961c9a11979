package models

// ExpeditionsPerWorld is how many expeditions the game groups into one world
const ExpeditionsPerWorld = 8

// CostPercent is the resupply cost as a percentage of a ship's max fuel/ammo
type CostPercent struct {
	FuelPercent int `yaml:"fuel_percent" json:"fuel_percent"`
	AmmoPercent int `yaml:"ammo_percent" json:"ammo_percent"`
}

// ExpeditionInfo is the normalized static record for one expedition.
// Built once at startup and never mutated afterwards.
type ExpeditionInfo struct {
	ID       int
	Name     string
	Time     int // minutes
	Resource Resources

	// ItemProb is obtainable randomly from the expedition
	ItemProb Item
	// ItemGS is guaranteed if great success is achieved
	ItemGS Item

	// MinCompo is a template; callers derive concrete compositions from it
	MinCompo FleetCompo
	Cost     CostPercent
}

// World returns the 1-based world the expedition belongs to
func (e *ExpeditionInfo) World() int {
	return World(e.ID)
}

// World returns the 1-based world an expedition id belongs to
func World(id int) int {
	if id <= 0 {
		return 0
	}
	return (id-1)/ExpeditionsPerWorld + 1
}

// MinShips returns the minimum number of ships the expedition requires
func (e *ExpeditionInfo) MinShips() int {
	return e.MinCompo.Total()
}

// ResourcePerHour returns the base yield of a resource per hour
func (e *ExpeditionInfo) ResourcePerHour(rt ResourceType) float64 {
	if e.Time <= 0 {
		return 0
	}
	return float64(e.Resource.Get(rt)) * 60.0 / float64(e.Time)
}
