package economy

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/exped-planner/internal/fleet"
	"github.com/napolitain/exped-planner/internal/models"
)

func TestEvaluate(t *testing.T) {
	info := escortMission()
	cfg := models.ExpedConfig{
		Modifier: models.StandardModifier(true, 2),
		Cost:     models.ModelCost(models.DD, 4),
	}

	ev, err := Evaluate(info, cfg, fleet.DefaultCostModel().Lookup)
	require.NoError(t, err)

	assert.Equal(t, models.Resources{Fuel: 330, Ammo: 330, Steel: 33, Bauxite: 33}, ev.Gross)
	require.NotNil(t, ev.Net)
	assert.Equal(t, models.Resources{Fuel: 297, Ammo: 262, Steel: 33, Bauxite: 33}, *ev.Net)

	assert.InDelta(t, 220.0, ev.GrossPerHour(models.Fuel), 1e-9)
	rate, ok := ev.NetPerHour(models.Fuel)
	require.True(t, ok)
	assert.InDelta(t, 198.0, rate, 1e-9)
	rate, ok = ev.NetPerHour(models.Ammo)
	require.True(t, ok)
	assert.InDelta(t, 262.0*60/90, rate, 1e-9)
}

func TestEvaluate_UnknownCost(t *testing.T) {
	cfg := models.ExpedConfig{
		Modifier: models.StandardModifier(false, 0),
		Cost:     models.ModelCost(models.NoWildcard, 4),
	}

	ev, err := Evaluate(escortMission(), cfg, fleet.DefaultCostModel().Lookup)
	require.NoError(t, err)
	assert.Nil(t, ev.Net)
	assert.Nil(t, ev.Resupply.Cost)

	_, ok := ev.NetPerHour(models.Fuel)
	assert.False(t, ok)
	assert.InDelta(t, 200.0*60/90, ev.GrossPerHour(models.Fuel), 1e-9)
}

func TestEvaluate_Errors(t *testing.T) {
	lookups := fleet.DefaultCostModel().Lookup

	_, err := Evaluate(escortMission(), models.ExpedConfig{
		Modifier: models.IncomeModifier{Type: "nope"},
		Cost:     models.CustomCost(0, 0),
	}, lookups)
	var unknown *models.UnknownEnumVariantError
	assert.True(t, errors.As(err, &unknown), "got %v", err)

	_, err = Evaluate(escortMission(), models.ExpedConfig{
		Modifier: models.StandardModifier(false, 0),
		Cost:     models.CostConfig{Type: "nope"},
	}, lookups)
	assert.True(t, errors.As(err, &unknown), "got %v", err)

	info := escortMission()
	info.MinCompo = models.FleetCompo{models.DD: 2}
	_, err = Evaluate(info, models.DefaultExpedConfig(), lookups)
	var insufficient *models.InsufficientCompositionError
	assert.False(t, errors.As(err, &insufficient), "count 1 is met by the minimums")

	_, err = Evaluate(info, models.ExpedConfig{
		Modifier: models.StandardModifier(false, 0),
		Cost:     models.ModelCost(models.DD, 3),
	}, lookups)
	assert.True(t, errors.As(err, &insufficient), "got %v", err)
}

func TestRandomConfigTable(t *testing.T) {
	ids := []int{1, 2, 3, 5, 21, 37, 38, 40}

	a := RandomConfigTable(rand.New(rand.NewSource(42)), ids)
	b := RandomConfigTable(rand.New(rand.NewSource(42)), ids)
	assert.Equal(t, a, b, "same seed must give the same table")
	require.Len(t, a, len(ids))

	for i := int64(0); i < 50; i++ {
		table := RandomConfigTable(rand.New(rand.NewSource(i)), ids)
		for _, id := range ids {
			cfg, ok := table[id]
			require.True(t, ok, "missing id %d", id)
			require.NoError(t, cfg.Validate(), "id %d: %+v", id, cfg)

			switch cfg.Modifier.Type {
			case models.ModifierStandard:
				assert.LessOrEqual(t, cfg.Modifier.Daihatsu, 4)
			case models.ModifierCustom:
				assert.GreaterOrEqual(t, cfg.Modifier.Value, 1.0)
				assert.Less(t, cfg.Modifier.Value, 1.3)
			}
			if cfg.Cost.Type == models.CostModelType {
				assert.GreaterOrEqual(t, cfg.Cost.Count, 1)
				assert.LessOrEqual(t, cfg.Cost.Count, 6)
			} else {
				assert.LessOrEqual(t, cfg.Cost.Fuel, 500)
				assert.LessOrEqual(t, cfg.Cost.Ammo, 500)
			}
		}
	}
}
