package converter

import (
	"github.com/napolitain/exped-planner/internal/economy"
	"github.com/napolitain/exped-planner/internal/models"
	"github.com/napolitain/exped-planner/internal/solver"
)

// ExpeditionMessage is the static data of one expedition
type ExpeditionMessage struct {
	ID          int                `json:"id"`
	Name        string             `json:"name"`
	World       int                `json:"world"`
	Time        string             `json:"time"`
	TimeMinutes int                `json:"time_minutes"`
	Resource    map[string]int     `json:"resource"`
	ItemProb    *ItemMessage       `json:"item_prob"`
	ItemGS      *ItemMessage       `json:"item_gs"`
	MinCompo    map[string]int     `json:"min_compo"`
	CostPercent models.CostPercent `json:"cost_percent"`
}

// CostMessage is a resupply cost
type CostMessage struct {
	Fuel int `json:"fuel"`
	Ammo int `json:"ammo"`
}

// EvaluationMessage is the income of one expedition under a config.
// Resupply, Net and NetPerHour are null when the cost is unknown.
type EvaluationMessage struct {
	Expedition   ExpeditionMessage  `json:"expedition"`
	Modifier     string             `json:"modifier"`
	Cost         string             `json:"cost"`
	Gross        map[string]int     `json:"gross"`
	GrossPerHour map[string]float64 `json:"gross_per_hour"`
	Compo        map[string]int     `json:"compo"`
	Resupply     *CostMessage       `json:"resupply"`
	Net          map[string]int     `json:"net"`
	NetPerHour   map[string]float64 `json:"net_per_hour"`
}

// PickMessage is one chosen expedition of a plan
type PickMessage struct {
	Rank         int                `json:"rank"`
	Evaluation   EvaluationMessage  `json:"evaluation"`
	CycleMinutes int                `json:"cycle_minutes"`
	PerHour      map[string]float64 `json:"per_hour"`
	Score        float64            `json:"score"`
}

// SkipMessage is an expedition the planner could not score
type SkipMessage struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
}

// PlanMessage is the result of a planning run
type PlanMessage struct {
	Fleets     int                `json:"fleets"`
	AFKMinutes int                `json:"afk_minutes"`
	Priority   models.Weights     `json:"priority"`
	Picks      []PickMessage      `json:"picks"`
	Skipped    []SkipMessage      `json:"skipped"`
	PerHour    map[string]float64 `json:"per_hour"`
}

// ExpeditionToMessage converts an expedition record
func ExpeditionToMessage(info *models.ExpeditionInfo) ExpeditionMessage {
	return ExpeditionMessage{
		ID:          info.ID,
		Name:        info.Name,
		World:       info.World(),
		Time:        models.FormatTime(info.Time),
		TimeMinutes: info.Time,
		Resource:    ResourcesToMessage(info.Resource),
		ItemProb:    ItemToMessage(info.ItemProb, false),
		ItemGS:      ItemToMessage(info.ItemGS, true),
		MinCompo:    CompoToMessage(info.MinCompo),
		CostPercent: info.Cost,
	}
}

// EvaluationToMessage converts an evaluation
func EvaluationToMessage(ev *economy.Evaluation) EvaluationMessage {
	msg := EvaluationMessage{
		Expedition:   ExpeditionToMessage(ev.Info),
		Modifier:     ev.Config.Modifier.String(),
		Cost:         ev.Config.Cost.String(),
		Gross:        ResourcesToMessage(ev.Gross),
		GrossPerHour: RatesToMessage(ev.GrossPerHour),
		Compo:        CompoToMessage(ev.Resupply.Compo),
	}
	if c := ev.Resupply.Cost; c != nil {
		msg.Resupply = &CostMessage{Fuel: c.Fuel, Ammo: c.Ammo}
	}
	if ev.Net != nil {
		msg.Net = ResourcesToMessage(*ev.Net)
		msg.NetPerHour = RatesToMessage(func(rt models.ResourceType) float64 {
			rate, _ := ev.NetPerHour(rt)
			return rate
		})
	}
	return msg
}

// SolutionToMessage converts a planner solution
func SolutionToMessage(req solver.Request, sol *solver.Solution) PlanMessage {
	msg := PlanMessage{
		Fleets:     req.Fleets,
		AFKMinutes: req.AFKMinutes,
		Priority:   req.Priority,
		Picks:      make([]PickMessage, 0, len(sol.Picks)),
		Skipped:    make([]SkipMessage, 0, len(sol.Skipped)),
	}
	for i, p := range sol.Picks {
		msg.Picks = append(msg.Picks, PickMessage{
			Rank:         i + 1,
			Evaluation:   EvaluationToMessage(p.Eval),
			CycleMinutes: p.Metric.CycleMinutes,
			PerHour:      RatesToMessage(p.Metric.PerHour),
			Score:        p.Score,
		})
	}
	for _, s := range sol.Skipped {
		msg.Skipped = append(msg.Skipped, SkipMessage{ID: s.ID, Reason: s.Reason})
	}
	total := sol.PerHour()
	msg.PerHour = RatesToMessage(func(rt models.ResourceType) float64 {
		return total[rt]
	})
	return msg
}
