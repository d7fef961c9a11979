package economy

import (
	"github.com/napolitain/exped-planner/internal/fleet"
	"github.com/napolitain/exped-planner/internal/models"
)

// Cost is a total fuel/ammo resupply cost
type Cost struct {
	Fuel int `json:"fuel"`
	Ammo int `json:"ammo"`
}

// Resources returns the cost as a resource record
func (c Cost) Resources() models.Resources {
	return models.Resources{Fuel: c.Fuel, Ammo: c.Ammo}
}

// ResupplyInfo is the result of a resupply computation.
// Cost is nil when it cannot currently be known. Compo is nil for custom costs.
type ResupplyInfo struct {
	Cost  *Cost
	Compo models.FleetCompo
}

// ResupplyFunc computes resupply for one expedition, given a lookup already
// applied with that expedition's cost percentages
type ResupplyFunc func(info *models.ExpeditionInfo, lookup fleet.CostLookup) (ResupplyInfo, error)

// ComputeResupplyInfo interprets a cost config
func ComputeResupplyInfo(cfg models.CostConfig) (ResupplyFunc, error) {
	switch cfg.Type {
	case models.CostModelType:
		wildcard, count := cfg.Wildcard, cfg.Count
		return func(info *models.ExpeditionInfo, lookup fleet.CostLookup) (ResupplyInfo, error) {
			compo, resolved, err := fleet.Resolve(info.MinCompo, count, wildcard)
			if err != nil {
				return ResupplyInfo{}, err
			}
			result := ResupplyInfo{Compo: compo}
			if !resolved {
				return result, nil
			}
			result.Cost = foldCost(compo, lookup)
			return result, nil
		}, nil
	case models.CostCustom:
		cost := Cost{Fuel: cfg.Fuel, Ammo: cfg.Ammo}
		return func(*models.ExpeditionInfo, fleet.CostLookup) (ResupplyInfo, error) {
			c := cost
			return ResupplyInfo{Cost: &c}, nil
		}, nil
	}
	return nil, &models.UnknownEnumVariantError{Kind: "cost config type", Value: string(cfg.Type)}
}

// foldCost sums the cost of every (type, count) pair; a single unknown
// pair makes the whole cost unknown
func foldCost(compo models.FleetCompo, lookup fleet.CostLookup) *Cost {
	total := &Cost{}
	for st, count := range compo {
		if count == 0 {
			continue
		}
		c, ok := lookup(st, count)
		if !ok {
			return nil
		}
		total.Fuel += c.FuelCost
		total.Ammo += c.AmmoCost
	}
	return total
}
