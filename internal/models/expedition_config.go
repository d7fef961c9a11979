package models

import "fmt"

// ModifierType tags an IncomeModifier variant
type ModifierType string

const (
	ModifierStandard ModifierType = "standard"
	ModifierCustom   ModifierType = "custom"
)

// IncomeModifier is a user-chosen scaling rule for expedition income.
// Standard uses GS and Daihatsu; Custom uses Value.
type IncomeModifier struct {
	Type     ModifierType `yaml:"type" json:"type"`
	GS       bool         `yaml:"gs,omitempty" json:"gs,omitempty"`
	Daihatsu int          `yaml:"daihatsu,omitempty" json:"daihatsu,omitempty"`
	Value    float64      `yaml:"value,omitempty" json:"value,omitempty"`
}

// StandardModifier builds a standard modifier
func StandardModifier(gs bool, daihatsu int) IncomeModifier {
	return IncomeModifier{Type: ModifierStandard, GS: gs, Daihatsu: daihatsu}
}

// CustomModifier builds a custom multiplier
func CustomModifier(value float64) IncomeModifier {
	return IncomeModifier{Type: ModifierCustom, Value: value}
}

// Validate checks the variant tag and its fields
func (m IncomeModifier) Validate() error {
	switch m.Type {
	case ModifierStandard:
		if m.Daihatsu < 0 {
			return fmt.Errorf("daihatsu count must be >= 0, got %d", m.Daihatsu)
		}
	case ModifierCustom:
		if m.Value < 0 {
			return fmt.Errorf("custom modifier must be >= 0, got %g", m.Value)
		}
	default:
		return &UnknownEnumVariantError{Kind: "modifier type", Value: string(m.Type)}
	}
	return nil
}

func (m IncomeModifier) String() string {
	switch m.Type {
	case ModifierStandard:
		gs := "norm"
		if m.GS {
			gs = "gs"
		}
		return fmt.Sprintf("%s, DLC x %d", gs, m.Daihatsu)
	case ModifierCustom:
		return fmt.Sprintf("%.2f", m.Value)
	}
	return "?"
}

// CostType tags a CostConfig variant
type CostType string

const (
	CostModelType CostType = "cost-model"
	CostCustom    CostType = "custom"
)

// CostConfig describes how resupply cost is computed for one expedition.
// The cost-model variant uses Wildcard and Count; the custom variant uses Fuel and Ammo.
type CostConfig struct {
	Type     CostType `yaml:"type" json:"type"`
	Wildcard ShipType `yaml:"wildcard,omitempty" json:"wildcard,omitempty"`
	Count    int      `yaml:"count,omitempty" json:"count,omitempty"`
	Fuel     int      `yaml:"fuel,omitempty" json:"fuel,omitempty"`
	Ammo     int      `yaml:"ammo,omitempty" json:"ammo,omitempty"`
}

// ModelCost builds a cost-model config
func ModelCost(wildcard ShipType, count int) CostConfig {
	return CostConfig{Type: CostModelType, Wildcard: wildcard, Count: count}
}

// CustomCost builds a flat custom cost config
func CustomCost(fuel, ammo int) CostConfig {
	return CostConfig{Type: CostCustom, Fuel: fuel, Ammo: ammo}
}

// Validate checks the variant tag and its fields
func (c CostConfig) Validate() error {
	switch c.Type {
	case CostModelType:
		if c.Count < 1 {
			return fmt.Errorf("fleet size must be >= 1, got %d", c.Count)
		}
		if c.Wildcard.IsWildcard() {
			return fmt.Errorf("wildcard must be a concrete ship type or false")
		}
	case CostCustom:
		if c.Fuel < 0 || c.Ammo < 0 {
			return fmt.Errorf("custom cost must be >= 0, got fuel=%d ammo=%d", c.Fuel, c.Ammo)
		}
	default:
		return &UnknownEnumVariantError{Kind: "cost config type", Value: string(c.Type)}
	}
	return nil
}

func (c CostConfig) String() string {
	switch c.Type {
	case CostModelType:
		if c.Wildcard == NoWildcard {
			return "N/A"
		}
		return fmt.Sprintf(">=%d, *=%s", c.Count, c.Wildcard)
	case CostCustom:
		return fmt.Sprintf("%d %d", -c.Fuel, -c.Ammo)
	}
	return "?"
}

// ExpedConfig pairs the income modifier and the cost config of one expedition
type ExpedConfig struct {
	Modifier IncomeModifier `yaml:"modifier" json:"modifier"`
	Cost     CostConfig     `yaml:"cost" json:"cost"`
}

// DefaultExpedConfig is a normal success with no daihatsu and a cost model
// with destroyers filling the wildcard slots
func DefaultExpedConfig() ExpedConfig {
	return ExpedConfig{
		Modifier: StandardModifier(false, 0),
		Cost:     ModelCost(DD, 1),
	}
}

// Validate checks both halves of the config
func (c ExpedConfig) Validate() error {
	if err := c.Modifier.Validate(); err != nil {
		return err
	}
	return c.Cost.Validate()
}
