package fleet

import (
	"github.com/napolitain/exped-planner/internal/models"
)

// ShipCost is the resupply cost of a group of ships of one type
type ShipCost struct {
	FuelCost int
	AmmoCost int
}

// CostLookup prices count ships of one type. ok is false when the cost is
// unknown for that type, e.g. a ship type missing from the model.
type CostLookup func(st models.ShipType, count int) (cost ShipCost, ok bool)

// CostModel prices resupply from representative ship capacities
type CostModel struct {
	stats map[models.ShipType]models.ShipStats
}

// NewCostModel creates a cost model from per-type capacities.
// The map is copied.
func NewCostModel(stats map[models.ShipType]models.ShipStats) *CostModel {
	m := &CostModel{stats: make(map[models.ShipType]models.ShipStats, len(stats))}
	for st, s := range stats {
		m.stats[st] = s
	}
	return m
}

// DefaultCostModel uses the built-in representative ship definitions
func DefaultCostModel() *CostModel {
	return NewCostModel(models.DefaultShipStats())
}

// Stats returns the capacities of a ship type
func (m *CostModel) Stats(st models.ShipType) (models.ShipStats, bool) {
	s, ok := m.stats[st]
	return s, ok
}

// Types returns the modeled ship types in deterministic order
func (m *CostModel) Types() []models.ShipType {
	var types []models.ShipType
	for _, st := range models.AllShipTypes() {
		if _, ok := m.stats[st]; ok {
			types = append(types, st)
		}
	}
	return types
}

// ShipCost prices a single ship of type st at the given percentages.
// Each ship consumes floor(capacity * percent / 100).
func (m *CostModel) ShipCost(st models.ShipType, p models.CostPercent) (ShipCost, bool) {
	s, ok := m.stats[st]
	if !ok {
		return ShipCost{}, false
	}
	return ShipCost{
		FuelCost: s.Fuel * p.FuelPercent / 100,
		AmmoCost: s.Ammo * p.AmmoPercent / 100,
	}, true
}

// Lookup applies the model to an expedition's cost percentages
func (m *CostModel) Lookup(p models.CostPercent) CostLookup {
	return func(st models.ShipType, count int) (ShipCost, bool) {
		one, ok := m.ShipCost(st, p)
		if !ok {
			return ShipCost{}, false
		}
		return ShipCost{
			FuelCost: one.FuelCost * count,
			AmmoCost: one.AmmoCost * count,
		}, true
	}
}
