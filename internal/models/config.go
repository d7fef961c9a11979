package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxExpeditionFleets is how many fleets can be sent on expeditions at once
const MaxExpeditionFleets = 3

// PlannerConfig is the YAML planner configuration
type PlannerConfig struct {
	StrictItems bool                   `yaml:"strict_items"`
	Fleets      int                    `yaml:"fleets"`
	AFKMinutes  int                    `yaml:"afk_minutes"`
	Priority    Weights                `yaml:"priority"`
	Selected    []int                  `yaml:"selected,omitempty"`
	CostModel   map[ShipType]ShipStats `yaml:"cost_model,omitempty"`
	Default     *ExpedConfig           `yaml:"default,omitempty"`
	Expeditions map[int]ExpedConfig    `yaml:"expeditions,omitempty"`
}

// DefaultPlannerConfig returns a config with three fleets and equal priorities
func DefaultPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		Fleets:      3,
		AFKMinutes:  0,
		Priority:    EqualWeights(),
		CostModel:   DefaultShipStats(),
		Expeditions: make(map[int]ExpedConfig),
	}
}

// LoadPlannerConfig loads a planner configuration from a YAML file.
// Unset sections fall back to DefaultPlannerConfig.
func LoadPlannerConfig(path string) (*PlannerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlannerConfig(data)
}

// ParsePlannerConfig parses YAML planner configuration bytes
func ParsePlannerConfig(data []byte) (*PlannerConfig, error) {
	config := DefaultPlannerConfig()
	// Decoding into the defaults keeps their values for absent keys.
	config.CostModel = nil
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid planner config: %w", err)
	}
	if config.CostModel == nil {
		config.CostModel = DefaultShipStats()
	}
	if config.Expeditions == nil {
		config.Expeditions = make(map[int]ExpedConfig)
	}
	return config, nil
}

// ValidatePlannerConfig checks every section of the config
func ValidatePlannerConfig(c *PlannerConfig) error {
	if c.Fleets < 1 || c.Fleets > MaxExpeditionFleets {
		return fmt.Errorf("fleets must be in 1..%d, got %d", MaxExpeditionFleets, c.Fleets)
	}
	if c.AFKMinutes < 0 {
		return fmt.Errorf("afk_minutes must be >= 0, got %d", c.AFKMinutes)
	}
	for _, rt := range AllResourceTypes() {
		if c.Priority.Get(rt) < 0 {
			return fmt.Errorf("priority for %s must be >= 0", rt)
		}
	}
	for st, stats := range c.CostModel {
		if st == NoWildcard || st.IsWildcard() {
			return fmt.Errorf("cost model entry needs a concrete ship type, got %q", st)
		}
		if stats.Fuel < 0 || stats.Ammo < 0 {
			return fmt.Errorf("cost model entry %s has negative capacity", st)
		}
	}
	if c.Default != nil {
		if err := c.Default.Validate(); err != nil {
			return fmt.Errorf("default: %w", err)
		}
	}
	for id, ec := range c.Expeditions {
		if err := ec.Validate(); err != nil {
			return fmt.Errorf("expedition %d: %w", id, err)
		}
	}
	return nil
}

// ConfigFor returns the config of an expedition, falling back to Default
// and then to DefaultExpedConfig
func (c *PlannerConfig) ConfigFor(id int) ExpedConfig {
	if ec, ok := c.Expeditions[id]; ok {
		return ec
	}
	if c.Default != nil {
		return *c.Default
	}
	return DefaultExpedConfig()
}

// Marshal renders the config back to YAML
func (c *PlannerConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
