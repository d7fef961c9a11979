// Package fleet resolves expedition fleet compositions and prices their resupply
package fleet

import (
	"github.com/napolitain/exped-planner/internal/models"
)

// AbstractCompo is a composition whose wildcard slots are not yet assigned.
// Ships holds the declared minimums, including any wildcard minimum under
// models.AnyShip. Padding counts wildcard slots added to reach a fleet size.
type AbstractCompo struct {
	Ships   models.FleetCompo
	Padding int
}

// WildcardSlots returns the number of ships that still need a concrete type
func (a AbstractCompo) WildcardSlots() int {
	return a.Ships[models.AnyShip] + a.Padding
}

// Total returns the number of ships in the composition
func (a AbstractCompo) Total() int {
	return a.Ships.Total() + a.Padding
}

// AtLeast pads minCompo with wildcard slots until it has target ships.
// Minimums that already reach the target are returned unchanged, even when
// they exceed it. minCompo is never modified.
func AtLeast(target int, minCompo models.FleetCompo) (AbstractCompo, error) {
	abstract := AbstractCompo{Ships: minCompo.Clone()}
	minimum := minCompo.Total()
	if minimum >= target {
		return abstract, nil
	}
	if !minCompo.HasWildcard() {
		return AbstractCompo{}, &models.InsufficientCompositionError{Target: target, Minimum: minimum}
	}
	abstract.Padding = target - minimum
	return abstract, nil
}

// ApplyWildcard assigns every wildcard slot to chosen, merging with the
// existing count of that type.
//
// With models.NoWildcard the padding is dropped. A declared wildcard
// minimum is kept under models.AnyShip so it stays visible to the caller;
// either way the composition can no longer be priced.
func ApplyWildcard(chosen models.ShipType, abstract AbstractCompo) models.FleetCompo {
	compo := abstract.Ships.Clone()
	declared := compo[models.AnyShip]
	delete(compo, models.AnyShip)

	if chosen == models.NoWildcard || chosen.IsWildcard() {
		if declared > 0 {
			compo[models.AnyShip] = declared
		}
		return compo
	}

	if slots := declared + abstract.Padding; slots > 0 {
		compo[chosen] += slots
	}
	return compo
}

// Resolve builds a concrete composition of at least count ships from minCompo.
// resolved is false when wildcard slots were left unassigned.
func Resolve(minCompo models.FleetCompo, count int, wildcard models.ShipType) (compo models.FleetCompo, resolved bool, err error) {
	abstract, err := AtLeast(count, minCompo)
	if err != nil {
		return nil, false, err
	}
	compo = ApplyWildcard(wildcard, abstract)
	resolved = abstract.WildcardSlots() == 0 || (wildcard != models.NoWildcard && !wildcard.IsWildcard())
	return compo, resolved, nil
}
