package converter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/napolitain/exped-planner/internal/economy"
	"github.com/napolitain/exped-planner/internal/fleet"
	"github.com/napolitain/exped-planner/internal/models"
	"github.com/napolitain/exped-planner/internal/solver"
)

func escortMission() *models.ExpeditionInfo {
	return &models.ExpeditionInfo{
		ID:       5,
		Name:     "Maritime Escort Mission",
		Time:     90,
		Resource: models.Resources{Fuel: 200, Ammo: 200, Steel: 20, Bauxite: 20},
		ItemProb: models.Item{Name: models.Bucket, MaxCount: 1},
		MinCompo: models.FleetCompo{models.CL: 1, models.DD: 2, models.AnyShip: 1},
		Cost:     models.CostPercent{FuelPercent: 50, AmmoPercent: 80},
	}
}

func evaluate(t *testing.T, cost models.CostConfig) *economy.Evaluation {
	t.Helper()
	cfg := models.ExpedConfig{Modifier: models.StandardModifier(true, 2), Cost: cost}
	ev, err := economy.Evaluate(escortMission(), cfg, fleet.DefaultCostModel().Lookup)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	return ev
}

func TestExpeditionToMessage(t *testing.T) {
	msg := ExpeditionToMessage(escortMission())

	if msg.ID != 5 || msg.World != 1 {
		t.Errorf("got id %d world %d, want 5 and 1", msg.ID, msg.World)
	}
	if msg.Time != "01:30" || msg.TimeMinutes != 90 {
		t.Errorf("got time %q (%d), want 01:30 (90)", msg.Time, msg.TimeMinutes)
	}
	if msg.ItemProb == nil || msg.ItemProb.Range != "0~1" {
		t.Errorf("unexpected item: %+v", msg.ItemProb)
	}
	if msg.ItemGS != nil {
		t.Errorf("expected no great success item, got %+v", msg.ItemGS)
	}
	if msg.MinCompo["any"] != 1 {
		t.Errorf("any: got %d, want 1", msg.MinCompo["any"])
	}
}

func TestEvaluationToMessage(t *testing.T) {
	msg := EvaluationToMessage(evaluate(t, models.ModelCost(models.DD, 4)))

	if msg.Modifier != "gs, DLC x 2" {
		t.Errorf("modifier: got %q", msg.Modifier)
	}
	if msg.Gross["fuel"] != 330 {
		t.Errorf("gross fuel: got %d, want 330", msg.Gross["fuel"])
	}
	if msg.Resupply == nil || *msg.Resupply != (CostMessage{Fuel: 33, Ammo: 68}) {
		t.Errorf("resupply: got %+v, want 33/68", msg.Resupply)
	}
	if msg.Compo["DD"] != 3 {
		t.Errorf("compo DD: got %d, want 3", msg.Compo["DD"])
	}
	if msg.Net["fuel"] != 297 {
		t.Errorf("net fuel: got %d, want 297", msg.Net["fuel"])
	}
	if msg.NetPerHour["fuel"] != 198 {
		t.Errorf("net fuel per hour: got %v, want 198", msg.NetPerHour["fuel"])
	}
}

func TestEvaluationToMessageUnknownCost(t *testing.T) {
	msg := EvaluationToMessage(evaluate(t, models.ModelCost(models.NoWildcard, 4)))

	if msg.Resupply != nil || msg.Net != nil || msg.NetPerHour != nil {
		t.Errorf("expected null cost fields, got %+v %v %v", msg.Resupply, msg.Net, msg.NetPerHour)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"resupply":null`) {
		t.Errorf("expected null resupply in %s", data)
	}
}

func TestSolutionToMessage(t *testing.T) {
	ev := evaluate(t, models.ModelCost(models.DD, 4))
	metric := solver.ROIMetric{Net: *ev.Net, CycleMinutes: 120}
	req := solver.Request{Fleets: 2, AFKMinutes: 120, Priority: models.EqualWeights()}
	sol := &solver.Solution{
		Picks:   []solver.Pick{{Eval: ev, Metric: metric, Score: metric.Calculate(req.Priority)}},
		Skipped: []solver.Skip{{ID: 38, Reason: "resupply cost unknown"}},
	}

	msg := SolutionToMessage(req, sol)

	if len(msg.Picks) != 1 || msg.Picks[0].Rank != 1 {
		t.Fatalf("unexpected picks: %+v", msg.Picks)
	}
	if msg.Picks[0].CycleMinutes != 120 {
		t.Errorf("cycle: got %d, want 120", msg.Picks[0].CycleMinutes)
	}
	if msg.PerHour["fuel"] != 148.5 {
		t.Errorf("fuel per hour: got %v, want 148.5", msg.PerHour["fuel"])
	}
	if len(msg.Skipped) != 1 || msg.Skipped[0].ID != 38 {
		t.Errorf("unexpected skipped: %+v", msg.Skipped)
	}
	if msg.Fleets != 2 || msg.AFKMinutes != 120 {
		t.Errorf("request fields not copied: %+v", msg)
	}
}

func TestSolutionToMessageEmpty(t *testing.T) {
	msg := SolutionToMessage(solver.Request{Fleets: 1}, &solver.Solution{})

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// Empty lists render as [] rather than null
	if !strings.Contains(string(data), `"picks":[]`) || !strings.Contains(string(data), `"skipped":[]`) {
		t.Errorf("unexpected JSON: %s", data)
	}
}
