package models

import "slices"

// Preset is a named set of expeditions
type Preset struct {
	Name string
	IDs  []int
}

// Presets returns the built-in expedition presets
func Presets() []Preset {
	return []Preset{
		{Name: "Balanced", IDs: []int{5, 21, 37, 38}},
		{Name: "Fuel", IDs: []int{5, 9, 21, 38}},
		{Name: "Ammo", IDs: []int{2, 5, 13, 37}},
		{Name: "Steel", IDs: []int{3, 14, 37, 38}},
		{Name: "Bauxite", IDs: []int{6, 11, 40}},
		{Name: "Buckets", IDs: []int{2, 4, 9, 10, 13}},
		{Name: "Overnight", IDs: []int{9, 12, 24, 28}},
	}
}

// FindPreset returns the preset with the given name
func FindPreset(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Selection tracks which expeditions are enabled in the planner
type Selection map[int]bool

// Toggle flips the flag for an expedition
func (s Selection) Toggle(id int) {
	s[id] = !s[id]
}

// ApplyPreset sets every id in all to whether it belongs to ids
func (s Selection) ApplyPreset(ids, all []int) {
	for _, id := range all {
		s[id] = slices.Contains(ids, id)
	}
}

// IDs returns the enabled ids in ascending order
func (s Selection) IDs() []int {
	ids := make([]int, 0, len(s))
	for id, on := range s {
		if on {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
