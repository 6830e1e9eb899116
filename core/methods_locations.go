package core

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/cityroute/names"
)

// AddLocation inserts a location with an empty road list.
// Returns ErrEmptyLocation for "" and ErrLocationExists if a location with
// the same folded name is already present.
// Complexity: O(1) amortized.
func (g *Graph) AddLocation(name string) error {
	if name == "" {
		return ErrEmptyLocation
	}
	key := names.Fold(name)
	if _, exists := g.locs[key]; exists {
		return fmt.Errorf("%w: %q", ErrLocationExists, name)
	}
	g.locs[key] = &adjacency{name: name}
	g.order = append(g.order, key)

	return nil
}

// HasLocation reports whether name is a location.
// Complexity: O(1).
func (g *Graph) HasLocation(name string) bool {
	_, ok := g.locs[names.Fold(name)]
	return ok
}

// Name returns the display spelling stored for name.
func (g *Graph) Name(name string) (string, bool) {
	a, ok := g.locs[names.Fold(name)]
	if !ok {
		return "", false
	}

	return a.name, true
}

// RemoveLocation deletes name and every road touching it.
//
// Phase 1 strips each road whose destination is name from every other
// location's list; phase 2 drops name's own record. When the call returns
// no list references the removed location.
// Complexity: O(V + E).
func (g *Graph) RemoveLocation(name string) error {
	key := names.Fold(name)
	if _, ok := g.locs[key]; !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}

	// 1) Cascade: strip inbound roads everywhere.
	for _, other := range g.order {
		if other == key {
			continue
		}
		a := g.locs[other]
		a.roads = slices.DeleteFunc(a.roads, func(r Road) bool {
			return names.Equal(r.To, name)
		})
	}

	// 2) Drop the record and its slot in the enumeration order.
	delete(g.locs, key)
	if i := slices.Index(g.order, key); i >= 0 {
		g.order = slices.Delete(g.order, i, i+1)
	}

	return nil
}

// Locations returns every display name in insertion order.
// Complexity: O(V).
func (g *Graph) Locations() []string {
	out := make([]string, len(g.order))
	for i, key := range g.order {
		out[i] = g.locs[key].name
	}

	return out
}

// LocationCount returns |V|.
func (g *Graph) LocationCount() int { return len(g.order) }

// Degree returns the number of roads at name.
func (g *Graph) Degree(name string) (int, error) {
	a, ok := g.locs[names.Fold(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}

	return len(a.roads), nil
}

// Clear removes every location and road, keeping the options.
func (g *Graph) Clear() {
	g.order = nil
	g.locs = make(map[string]*adjacency)
}

// Clone returns a deep copy sharing no storage with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		strictDistance: g.strictDistance,
		order:          slices.Clone(g.order),
		locs:           make(map[string]*adjacency, len(g.locs)),
	}
	for key, a := range g.locs {
		c.locs[key] = &adjacency{name: a.name, roads: slices.Clone(a.roads)}
	}

	return c
}
