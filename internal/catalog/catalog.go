// Package catalog holds the loaded expeditions. A Catalog is built once and
// only read afterwards, so it can be shared between goroutines.
package catalog

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/napolitain/exped-planner/internal/models"
)

const maxSuggestions = 3

// Catalog is an ordered, id-indexed set of expeditions
type Catalog struct {
	infos []*models.ExpeditionInfo
	byID  map[int]*models.ExpeditionInfo
}

// New indexes infos, keeping their order. Duplicate ids are rejected.
func New(infos []*models.ExpeditionInfo) (*Catalog, error) {
	c := &Catalog{
		infos: slices.Clone(infos),
		byID:  make(map[int]*models.ExpeditionInfo, len(infos)),
	}
	for _, info := range infos {
		if info == nil {
			return nil, fmt.Errorf("nil expedition in catalog")
		}
		if _, dup := c.byID[info.ID]; dup {
			return nil, fmt.Errorf("duplicate expedition id %d", info.ID)
		}
		c.byID[info.ID] = info
	}
	return c, nil
}

// All returns the expeditions in load order
func (c *Catalog) All() []*models.ExpeditionInfo {
	return slices.Clone(c.infos)
}

// Len returns the number of expeditions
func (c *Catalog) Len() int {
	return len(c.infos)
}

// Get returns the expedition with the given id
func (c *Catalog) Get(id int) (*models.ExpeditionInfo, bool) {
	info, ok := c.byID[id]
	return info, ok
}

// IDs returns every id in load order
func (c *Catalog) IDs() []int {
	ids := make([]int, len(c.infos))
	for i, info := range c.infos {
		ids[i] = info.ID
	}
	return ids
}

// Worlds groups the expeditions by world, in ascending world order
func (c *Catalog) Worlds() [][]*models.ExpeditionInfo {
	grouped := make(map[int][]*models.ExpeditionInfo)
	var worlds []int
	for _, info := range c.infos {
		w := info.World()
		if _, ok := grouped[w]; !ok {
			worlds = append(worlds, w)
		}
		grouped[w] = append(grouped[w], info)
	}
	sort.Ints(worlds)

	out := make([][]*models.ExpeditionInfo, 0, len(worlds))
	for _, w := range worlds {
		out = append(out, grouped[w])
	}
	return out
}

// NotFoundError is returned by Lookup when no expedition matches
type NotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no expedition matches %q", e.Query)
	}
	return fmt.Sprintf("no expedition matches %q, did you mean: %s?",
		e.Query, strings.Join(e.Suggestions, ", "))
}

// Lookup finds an expedition by numeric id, by name (case-insensitive) or
// by a prefix shared with no other name
func (c *Catalog) Lookup(query string) (*models.ExpeditionInfo, error) {
	q := strings.TrimSpace(query)
	if id, err := strconv.Atoi(q); err == nil {
		if info, ok := c.byID[id]; ok {
			return info, nil
		}
		return nil, &NotFoundError{Query: query}
	}

	needle := strings.ToLower(q)
	if needle == "" {
		return nil, &NotFoundError{Query: query}
	}

	var prefixed []*models.ExpeditionInfo
	for _, info := range c.infos {
		name := strings.ToLower(info.Name)
		if name == needle {
			return info, nil
		}
		if strings.HasPrefix(name, needle) {
			prefixed = append(prefixed, info)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], nil
	}
	if len(prefixed) > 1 {
		names := make([]string, 0, maxSuggestions)
		for _, info := range prefixed {
			if len(names) == maxSuggestions {
				break
			}
			names = append(names, info.Name)
		}
		return nil, &NotFoundError{Query: query, Suggestions: names}
	}
	return nil, &NotFoundError{Query: query, Suggestions: c.suggest(needle)}
}

type suggestion struct {
	name string
	id   int
	dist int
}

// suggest returns the closest names by edit distance
func (c *Catalog) suggest(needle string) []string {
	var cands []suggestion
	length := utf8.RuneCountInString(needle)
	for _, info := range c.infos {
		name := []rune(strings.ToLower(info.Name))
		dist := levenshtein.ComputeDistance(needle, string(name))
		// Also compare against the name cut to the query length so that
		// a misspelled start of a long name still matches.
		if len(name) > length {
			dist = min(dist, levenshtein.ComputeDistance(needle, string(name[:length])))
		}
		if dist > distanceLimit(length) {
			continue
		}
		cands = append(cands, suggestion{name: info.Name, id: info.ID, dist: dist})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].id < cands[j].id
		}
		return cands[i].dist < cands[j].dist
	})

	names := make([]string, 0, maxSuggestions)
	for _, s := range cands {
		if len(names) == maxSuggestions {
			break
		}
		names = append(names, s.name)
	}
	return names
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
