package solver

import (
	"github.com/napolitain/exped-planner/internal/models"
)

// ROIMetric is the income of one expedition over its effective cycle
type ROIMetric struct {
	Net models.Resources
	// CycleMinutes is how long a fleet is tied up per run, including idle
	// time until the player returns
	CycleMinutes int
}

// CycleMinutes returns the effective cycle of an expedition for an AFK
// window. Without a window the fleet is resent as soon as it returns. With
// one, a run only restarts when the player checks in, so the cycle is the
// expedition time rounded up to whole windows.
func CycleMinutes(expedMinutes, afkMinutes int) int {
	if afkMinutes <= 0 || expedMinutes <= 0 {
		return expedMinutes
	}
	windows := (expedMinutes + afkMinutes - 1) / afkMinutes
	return windows * afkMinutes
}

// PerHour returns the income of rt per hour over the cycle
func (m ROIMetric) PerHour(rt models.ResourceType) float64 {
	if m.CycleMinutes <= 0 {
		return 0
	}
	return float64(m.Net.Get(rt)) * 60 / float64(m.CycleMinutes)
}

// Calculate weighs the hourly income by resource priority
func (m ROIMetric) Calculate(priority models.Weights) float64 {
	var score float64
	for _, rt := range models.AllResourceTypes() {
		score += priority.Get(rt) * m.PerHour(rt)
	}
	return score
}
