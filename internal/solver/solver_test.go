package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/exped-planner/internal/catalog"
	"github.com/napolitain/exped-planner/internal/loader"
	"github.com/napolitain/exped-planner/internal/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	infos := []*models.ExpeditionInfo{
		{ID: 1, Name: "Fuel Run", Time: 60, Resource: models.Resources{Fuel: 100}, MinCompo: models.FleetCompo{models.AnyShip: 1}},
		{ID: 2, Name: "Fuel Run II", Time: 60, Resource: models.Resources{Fuel: 100}, MinCompo: models.FleetCompo{models.AnyShip: 1}},
		{ID: 3, Name: "Ammo Sprint", Time: 30, Resource: models.Resources{Ammo: 100}, MinCompo: models.FleetCompo{models.AnyShip: 1}},
		{ID: 4, Name: "Steel Haul", Time: 120, Resource: models.Resources{Steel: 400}, MinCompo: models.FleetCompo{models.AnyShip: 1}},
		{ID: 5, Name: "Open Escort", Time: 60, Resource: models.Resources{Fuel: 900}, MinCompo: models.FleetCompo{models.AnyShip: 2}},
		{ID: 6, Name: "Destroyer Pair", Time: 60, Resource: models.Resources{Bauxite: 900}, MinCompo: models.FleetCompo{models.DD: 2}},
	}
	c, err := catalog.New(infos)
	require.NoError(t, err)
	return c
}

func testConfigs() ConfigTable {
	return ConfigTable{
		5: {Modifier: models.StandardModifier(false, 0), Cost: models.ModelCost(models.NoWildcard, 2)},
		6: {Modifier: models.StandardModifier(false, 0), Cost: models.ModelCost(models.DD, 4)},
	}
}

func pickIDs(picks []Pick) []int {
	ids := make([]int, len(picks))
	for i, p := range picks {
		ids[i] = p.ID()
	}
	return ids
}

func TestCycleMinutes(t *testing.T) {
	tests := []struct {
		exped, afk, want int
	}{
		{90, 0, 90},
		{90, 60, 120},
		{60, 60, 60},
		{15, 480, 480},
		{600, 480, 960},
		{0, 60, 0},
	}

	for _, tt := range tests {
		if got := CycleMinutes(tt.exped, tt.afk); got != tt.want {
			t.Errorf("CycleMinutes(%d, %d) = %d, want %d", tt.exped, tt.afk, got, tt.want)
		}
	}
}

func TestROIMetric(t *testing.T) {
	m := ROIMetric{Net: models.Resources{Fuel: 300, Ammo: -30, Steel: 0, Bauxite: 60}, CycleMinutes: 90}

	assert.InDelta(t, 200.0, m.PerHour(models.Fuel), 1e-9)
	assert.InDelta(t, -20.0, m.PerHour(models.Ammo), 1e-9)
	assert.InDelta(t, 220.0, m.Calculate(models.EqualWeights()), 1e-9)
	assert.InDelta(t, 40.0, m.Calculate(models.Weights{Bauxite: 1}), 1e-9)
	assert.Zero(t, ROIMetric{Net: m.Net}.Calculate(models.EqualWeights()))
}

func TestSolve_RanksByWeightedIncome(t *testing.T) {
	sol, err := NewSolver(testCatalog(t)).Solve(Request{
		Fleets:   3,
		Priority: models.EqualWeights(),
		Configs:  testConfigs(),
	})
	require.NoError(t, err)

	// 3 and 4 tie at 200/h, 1 and 2 tie at 100/h; lower id first
	assert.Equal(t, []int{3, 4, 1}, pickIDs(sol.Picks))
	assert.Equal(t, []int{3, 4, 1, 2}, pickIDs(sol.Ranked))

	require.Len(t, sol.Skipped, 2)
	assert.Equal(t, 5, sol.Skipped[0].ID)
	assert.Contains(t, sol.Skipped[0].Reason, "unknown")
	assert.Equal(t, 6, sol.Skipped[1].ID)

	perHour := sol.PerHour()
	assert.InDelta(t, 100.0, perHour[models.Fuel], 1e-9)
	assert.InDelta(t, 200.0, perHour[models.Ammo], 1e-9)
	assert.InDelta(t, 200.0, perHour[models.Steel], 1e-9)
	assert.InDelta(t, 0.0, perHour[models.Bauxite], 1e-9)
}

func TestSolve_Priority(t *testing.T) {
	sol, err := Plan(testCatalog(t), Request{
		Fleets:   2,
		Priority: models.Weights{Steel: 1},
		Configs:  testConfigs(),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1}, pickIDs(sol.Picks))
}

func TestSolve_AFKWindow(t *testing.T) {
	sol, err := Plan(testCatalog(t), Request{
		Fleets:     3,
		AFKMinutes: 120,
		Priority:   models.EqualWeights(),
		Configs:    testConfigs(),
	})
	require.NoError(t, err)

	// Every run now takes a whole 120 minute window
	assert.Equal(t, []int{4, 1, 2}, pickIDs(sol.Picks))
	assert.InDelta(t, 50.0, sol.Picks[1].Score, 1e-9)
}

func TestSolve_Candidates(t *testing.T) {
	s := NewSolver(testCatalog(t))

	sol, err := s.Solve(Request{Fleets: 3, Priority: models.EqualWeights(), Candidates: []int{2, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, pickIDs(sol.Picks))

	_, err = s.Solve(Request{Fleets: 1, Candidates: []int{2, 99}})
	assert.Error(t, err)
}

func TestSolve_InvalidRequest(t *testing.T) {
	s := NewSolver(testCatalog(t))

	for _, req := range []Request{
		{Fleets: 0},
		{Fleets: 4},
		{Fleets: 1, AFKMinutes: -5},
	} {
		_, err := s.Solve(req)
		assert.Error(t, err, "%+v", req)
	}
}

func TestNewSolverWithConfig_CostModel(t *testing.T) {
	cfg := models.DefaultPlannerConfig()
	// Without destroyers in the model, padding with DD cannot be priced
	cfg.CostModel = map[models.ShipType]models.ShipStats{models.CL: {Fuel: 25, Ammo: 25}}
	cfg.Fleets = 2

	sol, err := NewSolverWithConfig(testCatalog(t), cfg).Solve(RequestFromConfig(cfg))
	require.NoError(t, err)
	assert.Empty(t, sol.Picks)
	assert.Len(t, sol.Skipped, 6)
}

func TestPlan_DefaultDataset(t *testing.T) {
	infos, err := loader.LoadDefault(loader.Options{Warnf: t.Logf})
	require.NoError(t, err)
	cat, err := catalog.New(infos)
	require.NoError(t, err)

	req := RequestFromConfig(models.DefaultPlannerConfig())
	first, err := Plan(cat, req)
	require.NoError(t, err)
	second, err := Plan(cat, req)
	require.NoError(t, err)

	require.Len(t, first.Picks, 3)
	assert.Equal(t, pickIDs(first.Picks), pickIDs(second.Picks))
	assert.Equal(t, cat.Len(), len(first.Ranked)+len(first.Skipped))
	for i := 1; i < len(first.Ranked); i++ {
		assert.GreaterOrEqual(t, first.Ranked[i-1].Score, first.Ranked[i].Score)
	}
}
