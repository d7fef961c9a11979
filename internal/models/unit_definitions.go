package models

// ShipStats holds the max fuel/ammo of a representative ship of one type
type ShipStats struct {
	Fuel int `yaml:"fuel" json:"fuel"`
	Ammo int `yaml:"ammo" json:"ammo"`
}

// ShipDefinition contains static ship-type data
type ShipDefinition struct {
	Type  ShipType
	Name  string
	Stats ShipStats
}

// AllShipDefinitions returns representative definitions for every ship type.
// Capacities are those of a typical remodeled ship of the class.
func AllShipDefinitions() []*ShipDefinition {
	return []*ShipDefinition{
		{Type: DD, Name: "Destroyer", Stats: ShipStats{Fuel: 15, Ammo: 20}},
		{Type: DE, Name: "Escort", Stats: ShipStats{Fuel: 10, Ammo: 10}},
		{Type: CL, Name: "Light Cruiser", Stats: ShipStats{Fuel: 25, Ammo: 25}},
		{Type: CT, Name: "Training Cruiser", Stats: ShipStats{Fuel: 35, Ammo: 20}},
		{Type: CA, Name: "Heavy Cruiser", Stats: ShipStats{Fuel: 40, Ammo: 50}},
		{Type: CAV, Name: "Aviation Cruiser", Stats: ShipStats{Fuel: 50, Ammo: 60}},
		{Type: BB, Name: "Battleship", Stats: ShipStats{Fuel: 90, Ammo: 110}},
		{Type: BBV, Name: "Aviation Battleship", Stats: ShipStats{Fuel: 90, Ammo: 100}},
		{Type: CV, Name: "Aircraft Carrier", Stats: ShipStats{Fuel: 60, Ammo: 55}},
		{Type: CVL, Name: "Light Carrier", Stats: ShipStats{Fuel: 40, Ammo: 30}},
		{Type: AV, Name: "Seaplane Tender", Stats: ShipStats{Fuel: 40, Ammo: 35}},
		{Type: SS, Name: "Submarine", Stats: ShipStats{Fuel: 10, Ammo: 20}},
		{Type: SSV, Name: "Aircraft Carrying Submarine", Stats: ShipStats{Fuel: 15, Ammo: 30}},
		{Type: AS, Name: "Submarine Tender", Stats: ShipStats{Fuel: 35, Ammo: 10}},
		{Type: LHA, Name: "Amphibious Assault Ship", Stats: ShipStats{Fuel: 45, Ammo: 15}},
	}
}

// DefaultShipStats returns the representative stats keyed by ship type
func DefaultShipStats() map[ShipType]ShipStats {
	stats := make(map[ShipType]ShipStats)
	for _, def := range AllShipDefinitions() {
		stats[def.Type] = def.Stats
	}
	return stats
}

// GetShipDefinition returns the definition for a ship type
func GetShipDefinition(st ShipType) *ShipDefinition {
	for _, def := range AllShipDefinitions() {
		if def.Type == st {
			return def
		}
	}
	return nil
}
