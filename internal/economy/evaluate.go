package economy

import (
	"fmt"

	"github.com/napolitain/exped-planner/internal/fleet"
	"github.com/napolitain/exped-planner/internal/models"
)

// LookupFactory builds a per-ship-type cost lookup for an expedition's
// resupply percentages. (*fleet.CostModel).Lookup satisfies it.
type LookupFactory func(p models.CostPercent) fleet.CostLookup

// Evaluation is the income of one run of an expedition under a config
type Evaluation struct {
	Info     *models.ExpeditionInfo
	Config   models.ExpedConfig
	Gross    models.Resources
	Resupply ResupplyInfo
	// Net is nil when the resupply cost is unknown
	Net *models.Resources
}

// Evaluate scales the base income and subtracts the resupply cost
func Evaluate(info *models.ExpeditionInfo, cfg models.ExpedConfig, lookups LookupFactory) (*Evaluation, error) {
	scale, err := ApplyIncomeModifier(cfg.Modifier)
	if err != nil {
		return nil, fmt.Errorf("expedition %d: %w", info.ID, err)
	}
	resupply, err := ComputeResupplyInfo(cfg.Cost)
	if err != nil {
		return nil, fmt.Errorf("expedition %d: %w", info.ID, err)
	}
	supply, err := resupply(info, lookups(info.Cost))
	if err != nil {
		return nil, fmt.Errorf("expedition %d: %w", info.ID, err)
	}

	ev := &Evaluation{
		Info:     info,
		Config:   cfg,
		Gross:    scale(info.Resource),
		Resupply: supply,
	}
	if supply.Cost != nil {
		net := ev.Gross.Sub(supply.Cost.Resources())
		ev.Net = &net
	}
	return ev, nil
}

// GrossPerHour returns the scaled income of rt per hour
func (ev *Evaluation) GrossPerHour(rt models.ResourceType) float64 {
	return perHour(ev.Gross.Get(rt), ev.Info.Time)
}

// NetPerHour returns the net income of rt per hour; ok is false when the
// resupply cost is unknown
func (ev *Evaluation) NetPerHour(rt models.ResourceType) (rate float64, ok bool) {
	if ev.Net == nil {
		return 0, false
	}
	return perHour(ev.Net.Get(rt), ev.Info.Time), true
}

func perHour(v, minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	return float64(v) * 60 / float64(minutes)
}
