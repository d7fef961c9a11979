// Package converter turns planner results into JSON report messages
package converter

import (
	"github.com/napolitain/exped-planner/internal/models"
)

// ResourcesToMessage keys a resource record by resource name
func ResourcesToMessage(r models.Resources) map[string]int {
	out := make(map[string]int, 4)
	for _, rt := range models.AllResourceTypes() {
		out[string(rt)] = r.Get(rt)
	}
	return out
}

// RatesToMessage keys per-resource rates by resource name
func RatesToMessage(rate func(models.ResourceType) float64) map[string]float64 {
	out := make(map[string]float64, 4)
	for _, rt := range models.AllResourceTypes() {
		out[string(rt)] = rate(rt)
	}
	return out
}

// CompoToMessage keys a composition by ship type. A nil composition stays nil.
func CompoToMessage(c models.FleetCompo) map[string]int {
	if c == nil {
		return nil
	}
	out := make(map[string]int, len(c))
	c.Each(func(st models.ShipType, n int) {
		out[string(st)] = n
	})
	return out
}

// ItemMessage is a reward item
type ItemMessage struct {
	Name     string `json:"name"`
	MaxCount int    `json:"max_count"`
	Range    string `json:"range"`
}

// ItemToMessage returns nil when the item gives no reward
func ItemToMessage(i models.Item, guaranteed bool) *ItemMessage {
	if !i.HasReward() {
		return nil
	}
	return &ItemMessage{Name: string(i.Name), MaxCount: i.MaxCount, Range: i.RangeText(guaranteed)}
}
