package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResourceType represents the resource kinds an expedition yields
type ResourceType string

const (
	Fuel    ResourceType = "fuel"
	Ammo    ResourceType = "ammo"
	Steel   ResourceType = "steel"
	Bauxite ResourceType = "bauxite"
)

// AllResourceTypes returns all resource types in display order
func AllResourceTypes() []ResourceType {
	return []ResourceType{Fuel, Ammo, Steel, Bauxite}
}

// Resources is a deterministic record over the four resource kinds
type Resources struct {
	Fuel    int `yaml:"fuel" json:"fuel"`
	Ammo    int `yaml:"ammo" json:"ammo"`
	Steel   int `yaml:"steel" json:"steel"`
	Bauxite int `yaml:"bauxite" json:"bauxite"`
}

// Get returns the amount for a resource type
func (r Resources) Get(rt ResourceType) int {
	switch rt {
	case Fuel:
		return r.Fuel
	case Ammo:
		return r.Ammo
	case Steel:
		return r.Steel
	case Bauxite:
		return r.Bauxite
	}
	return 0
}

// Set sets the amount for a resource type
func (r *Resources) Set(rt ResourceType, amount int) {
	switch rt {
	case Fuel:
		r.Fuel = amount
	case Ammo:
		r.Ammo = amount
	case Steel:
		r.Steel = amount
	case Bauxite:
		r.Bauxite = amount
	}
}

// Sub returns r - o per resource kind
func (r Resources) Sub(o Resources) Resources {
	return Resources{
		Fuel:    r.Fuel - o.Fuel,
		Ammo:    r.Ammo - o.Ammo,
		Steel:   r.Steel - o.Steel,
		Bauxite: r.Bauxite - o.Bauxite,
	}
}

// Total returns the sum over all resource kinds
func (r Resources) Total() int {
	return r.Fuel + r.Ammo + r.Steel + r.Bauxite
}

// ResourcesFromSlice destructures a [fuel, ammo, steel, bauxite] array.
// Missing trailing values default to 0.
func ResourcesFromSlice(values []int) Resources {
	var r Resources
	for i, rt := range AllResourceTypes() {
		if i < len(values) {
			r.Set(rt, values[i])
		}
	}
	return r
}

// Weights holds a per-resource priority used to score income
type Weights struct {
	Fuel    float64 `yaml:"fuel" json:"fuel"`
	Ammo    float64 `yaml:"ammo" json:"ammo"`
	Steel   float64 `yaml:"steel" json:"steel"`
	Bauxite float64 `yaml:"bauxite" json:"bauxite"`
}

// EqualWeights weighs every resource the same
func EqualWeights() Weights {
	return Weights{Fuel: 1, Ammo: 1, Steel: 1, Bauxite: 1}
}

// Get returns the weight for a resource type
func (w Weights) Get(rt ResourceType) float64 {
	switch rt {
	case Fuel:
		return w.Fuel
	case Ammo:
		return w.Ammo
	case Steel:
		return w.Steel
	case Bauxite:
		return w.Bauxite
	}
	return 0
}

// ShipType is a ship-type category used by fleet compositions
type ShipType string

const (
	DD  ShipType = "DD"
	DE  ShipType = "DE"
	CL  ShipType = "CL"
	CT  ShipType = "CT"
	CA  ShipType = "CA"
	CAV ShipType = "CAV"
	BB  ShipType = "BB"
	BBV ShipType = "BBV"
	CV  ShipType = "CV"
	CVL ShipType = "CVL"
	AV  ShipType = "AV"
	SS  ShipType = "SS"
	SSV ShipType = "SSV"
	AS  ShipType = "AS"
	LHA ShipType = "LHA"

	// AnyShip is the wildcard category: slots not tied to a ship type
	AnyShip ShipType = "any"

	// NoWildcard leaves wildcard slots unassigned
	NoWildcard ShipType = ""
)

// AllShipTypes returns all concrete ship types in deterministic order
func AllShipTypes() []ShipType {
	return []ShipType{DD, DE, CL, CT, CA, CAV, BB, BBV, CV, CVL, AV, SS, SSV, AS, LHA}
}

// IsWildcard reports whether st is the wildcard category
func (st ShipType) IsWildcard() bool {
	return st == AnyShip
}

// ParseShipType parses a concrete ship type name (case-insensitive).
// "false", "none" and "" parse to NoWildcard.
func ParseShipType(s string) (ShipType, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "false", "none":
		return NoWildcard, nil
	case string(AnyShip):
		return AnyShip, nil
	}
	for _, st := range AllShipTypes() {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return NoWildcard, &UnknownEnumVariantError{Kind: "ship type", Value: s}
}

// UnmarshalYAML accepts a ship type name or the boolean false
func (st *ShipType) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: ship type must be a scalar", node.Line)
	}
	if node.ShortTag() == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		if b {
			return fmt.Errorf("line %d: ship type cannot be true", node.Line)
		}
		*st = NoWildcard
		return nil
	}
	parsed, err := ParseShipType(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*st = parsed
	return nil
}

// MarshalYAML writes NoWildcard back as false
func (st ShipType) MarshalYAML() (any, error) {
	if st == NoWildcard {
		return false, nil
	}
	return string(st), nil
}
