package loader

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// RawExpedition is one entry of exped-info.json
type RawExpedition struct {
	ID       int   `json:"api_id"`
	Resource []int `json:"resource"` // fuel, ammo, steel, bauxite
}

// MissionMeta is the master data of one expedition
type MissionMeta struct {
	ID      int
	Name    string
	Time    int // minutes
	UseFuel float64
	UseBull float64
	// WinItem1 and WinItem2 are [code, maxCount] pairs
	WinItem1 [2]int
	WinItem2 [2]int
}

// ParseRawExpeditions parses the raw expedition list
func ParseRawExpeditions(data []byte) ([]RawExpedition, error) {
	var raw []RawExpedition
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse exped-info.json: %w", err)
	}
	return raw, nil
}

// ParseMissionMeta parses mission master data keyed by id. It accepts a
// plain array of missions, a start2-style {"api_data": {"api_mst_mission": [...]}}
// document or an object holding "api_mst_mission" directly.
func ParseMissionMeta(data []byte) (map[int]MissionMeta, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to parse missions.json: invalid JSON")
	}

	list := gjson.ParseBytes(data)
	if !list.IsArray() {
		list = gjson.GetBytes(data, "api_data.api_mst_mission")
		if !list.Exists() {
			list = gjson.GetBytes(data, "api_mst_mission")
		}
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("failed to parse missions.json: no mission list found")
	}

	meta := make(map[int]MissionMeta)
	var parseErr error
	list.ForEach(func(_, v gjson.Result) bool {
		m := MissionMeta{
			ID:       int(v.Get("api_id").Int()),
			Name:     v.Get("api_name").String(),
			Time:     int(v.Get("api_time").Int()),
			UseFuel:  v.Get("api_use_fuel").Float(),
			UseBull:  v.Get("api_use_bull").Float(),
			WinItem1: itemPair(v.Get("api_win_item1")),
			WinItem2: itemPair(v.Get("api_win_item2")),
		}
		if m.ID <= 0 {
			parseErr = fmt.Errorf("mission entry without a valid api_id: %s", v.Raw)
			return false
		}
		if _, dup := meta[m.ID]; dup {
			parseErr = fmt.Errorf("duplicate mission id %d", m.ID)
			return false
		}
		meta[m.ID] = m
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return meta, nil
}

func itemPair(v gjson.Result) [2]int {
	var pair [2]int
	for i, x := range v.Array() {
		if i >= len(pair) {
			break
		}
		pair[i] = int(x.Int())
	}
	return pair
}
