package economy

import (
	"math/rand"

	"github.com/napolitain/exped-planner/internal/models"
)

var randomWildcards = []models.ShipType{models.NoWildcard, models.DD, models.DE, models.SS}

// RandomConfigTable draws a config for every id. It is demo data for the
// planner UI; pass a seeded rng for reproducible tables.
func RandomConfigTable(rng *rand.Rand, ids []int) map[int]models.ExpedConfig {
	table := make(map[int]models.ExpedConfig, len(ids))
	for _, id := range ids {
		table[id] = models.ExpedConfig{
			Modifier: randomModifier(rng),
			Cost:     randomCost(rng),
		}
	}
	return table
}

func randomModifier(rng *rand.Rand) models.IncomeModifier {
	if rng.Intn(2) == 0 {
		return models.StandardModifier(rng.Intn(2) == 0, rng.Intn(5))
	}
	return models.CustomModifier(1 + rng.Float64()*0.3)
}

func randomCost(rng *rand.Rand) models.CostConfig {
	if rng.Intn(2) == 0 {
		return models.ModelCost(randomWildcards[rng.Intn(len(randomWildcards))], 1+rng.Intn(6))
	}
	return models.CustomCost(rng.Intn(501), rng.Intn(501))
}
