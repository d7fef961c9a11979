// Package solver picks which expeditions to run with the available fleets
package solver

import (
	"fmt"
	"sort"

	"github.com/napolitain/exped-planner/internal/catalog"
	"github.com/napolitain/exped-planner/internal/economy"
	"github.com/napolitain/exped-planner/internal/fleet"
	"github.com/napolitain/exped-planner/internal/models"
)

// ConfigSource gives the config of an expedition.
// *models.PlannerConfig and ConfigTable implement it.
type ConfigSource interface {
	ConfigFor(id int) models.ExpedConfig
}

// ConfigTable is a fixed per-expedition config table
type ConfigTable map[int]models.ExpedConfig

// ConfigFor returns the table entry, or DefaultExpedConfig
func (t ConfigTable) ConfigFor(id int) models.ExpedConfig {
	if ec, ok := t[id]; ok {
		return ec
	}
	return models.DefaultExpedConfig()
}

// Request describes one planning run
type Request struct {
	Fleets     int
	AFKMinutes int
	Priority   models.Weights
	// Candidates restricts the search; empty means the whole catalog
	Candidates []int
	// Configs defaults to DefaultExpedConfig for every expedition
	Configs ConfigSource
}

// RequestFromConfig builds a request from a planner config
func RequestFromConfig(cfg *models.PlannerConfig) Request {
	return Request{
		Fleets:     cfg.Fleets,
		AFKMinutes: cfg.AFKMinutes,
		Priority:   cfg.Priority,
		Candidates: cfg.Selected,
		Configs:    cfg,
	}
}

// Pick is one scored expedition
type Pick struct {
	Eval   *economy.Evaluation
	Metric ROIMetric
	Score  float64
}

// ID returns the expedition id
func (p Pick) ID() int {
	return p.Eval.Info.ID
}

// Skip records an expedition that could not be scored
type Skip struct {
	ID     int
	Reason string
}

// Solution is the result of a planning run
type Solution struct {
	// Picks are the chosen expeditions, best first
	Picks []Pick
	// Ranked holds every scored expedition, best first
	Ranked  []Pick
	Skipped []Skip
}

// PerHour sums the hourly income of the picks
func (s *Solution) PerHour() map[models.ResourceType]float64 {
	total := make(map[models.ResourceType]float64)
	for _, p := range s.Picks {
		for _, rt := range models.AllResourceTypes() {
			total[rt] += p.Metric.PerHour(rt)
		}
	}
	return total
}

// Solver ranks the expeditions of a catalog
type Solver struct {
	Catalog   *catalog.Catalog
	CostModel *fleet.CostModel
}

// NewSolver creates a solver using the default cost model
func NewSolver(cat *catalog.Catalog) *Solver {
	return &Solver{Catalog: cat, CostModel: fleet.DefaultCostModel()}
}

// NewSolverWithConfig creates a solver using the cost model of a planner config
func NewSolverWithConfig(cat *catalog.Catalog, cfg *models.PlannerConfig) *Solver {
	s := NewSolver(cat)
	if len(cfg.CostModel) > 0 {
		s.CostModel = fleet.NewCostModel(cfg.CostModel)
	}
	return s
}

// Plan ranks the catalog with the default cost model
func Plan(cat *catalog.Catalog, req Request) (*Solution, error) {
	return NewSolver(cat).Solve(req)
}

// Solve scores every candidate and keeps the best one per fleet.
// Expeditions whose cost is unknown or whose config fails are skipped.
func (s *Solver) Solve(req Request) (*Solution, error) {
	if req.Fleets < 1 || req.Fleets > models.MaxExpeditionFleets {
		return nil, fmt.Errorf("fleets must be in 1..%d, got %d", models.MaxExpeditionFleets, req.Fleets)
	}
	if req.AFKMinutes < 0 {
		return nil, fmt.Errorf("afk minutes must be >= 0, got %d", req.AFKMinutes)
	}

	candidates, err := s.candidates(req.Candidates)
	if err != nil {
		return nil, err
	}
	configs := req.Configs
	if configs == nil {
		configs = ConfigTable{}
	}

	solution := &Solution{}
	for _, info := range candidates {
		ev, err := economy.Evaluate(info, configs.ConfigFor(info.ID), s.CostModel.Lookup)
		if err != nil {
			solution.Skipped = append(solution.Skipped, Skip{ID: info.ID, Reason: err.Error()})
			continue
		}
		if ev.Net == nil {
			solution.Skipped = append(solution.Skipped, Skip{ID: info.ID, Reason: "resupply cost unknown"})
			continue
		}

		metric := ROIMetric{Net: *ev.Net, CycleMinutes: CycleMinutes(info.Time, req.AFKMinutes)}
		solution.Ranked = append(solution.Ranked, Pick{
			Eval:   ev,
			Metric: metric,
			Score:  metric.Calculate(req.Priority),
		})
	}

	sort.SliceStable(solution.Ranked, func(i, j int) bool {
		a, b := solution.Ranked[i], solution.Ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.ID() < b.ID()
	})

	n := min(req.Fleets, len(solution.Ranked))
	solution.Picks = solution.Ranked[:n:n]
	return solution, nil
}

func (s *Solver) candidates(ids []int) ([]*models.ExpeditionInfo, error) {
	if len(ids) == 0 {
		return s.Catalog.All(), nil
	}
	infos := make([]*models.ExpeditionInfo, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		info, ok := s.Catalog.Get(id)
		if !ok {
			return nil, fmt.Errorf("unknown expedition id %d", id)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
