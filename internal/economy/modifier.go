// Package economy derives per-expedition income and resupply cost
package economy

import (
	"math"

	"github.com/napolitain/exped-planner/internal/models"
)

// Standard modifier factors
const (
	GreatSuccessFactor = 1.5
	DaihatsuBonus      = 0.05
	DaihatsuBonusCap   = 0.2
)

// ScalingFunc scales one resource quantity
type ScalingFunc func(v int) int

// ToScalingFunc turns a modifier into a function rather than a numeric
// factor. Factors are applied to the value one after another and floored
// once: 15*1.5*1.2 is 27, while 1.5*1.2 is 1.7999999999999998 in float64
// and 15*(1.5*1.2) floors to 26.
func ToScalingFunc(m models.IncomeModifier) (ScalingFunc, error) {
	switch m.Type {
	case models.ModifierStandard:
		gsFactor := 1.0
		if m.GS {
			gsFactor = GreatSuccessFactor
		}
		dlcFactor := 1 + math.Min(DaihatsuBonusCap, float64(m.Daihatsu)*DaihatsuBonus)
		return func(v int) int {
			return int(math.Floor(float64(v) * gsFactor * dlcFactor))
		}, nil
	case models.ModifierCustom:
		value := m.Value
		return func(v int) int {
			return int(math.Floor(float64(v) * value))
		}, nil
	}
	return nil, &models.UnknownEnumVariantError{Kind: "modifier type", Value: string(m.Type)}
}

// OnResourceValue lifts f to operate on every resource kind of a record
func OnResourceValue(f func(v int, rt models.ResourceType) int) func(models.Resources) models.Resources {
	return func(r models.Resources) models.Resources {
		var out models.Resources
		for _, rt := range models.AllResourceTypes() {
			out.Set(rt, f(r.Get(rt), rt))
		}
		return out
	}
}

// ApplyIncomeModifier returns a function scaling a whole resource record
func ApplyIncomeModifier(m models.IncomeModifier) (func(models.Resources) models.Resources, error) {
	scale, err := ToScalingFunc(m)
	if err != nil {
		return nil, err
	}
	return OnResourceValue(func(v int, _ models.ResourceType) int {
		return scale(v)
	}), nil
}
