package core

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/cityroute/names"
)

// Roads returns a copy of name's adjacency list in insertion order.
func (g *Graph) Roads(name string) ([]Road, error) {
	a, ok := g.locs[names.Fold(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}

	return slices.Clone(a.roads), nil
}

// VisitRoads calls fn for each road of name in list order until fn returns
// false. fn must not mutate the graph.
func (g *Graph) VisitRoads(name string, fn func(Road) bool) error {
	a, ok := g.locs[names.Fold(name)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}
	for _, r := range a.roads {
		if !fn(r) {
			return nil
		}
	}

	return nil
}

// Edges returns every road exactly once. Locations are walked in
// insertion order and a road is reported from the endpoint seen first.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	pos := make(map[string]int, len(g.order))
	for i, key := range g.order {
		pos[key] = i
	}

	out := make([]Edge, 0, g.RoadCount())
	for i, key := range g.order {
		a := g.locs[key]
		for _, r := range a.roads {
			if pos[names.Fold(r.To)] > i {
				out = append(out, Edge{From: a.name, To: r.To, Distance: r.Distance})
			}
		}
	}

	return out
}

// Adjacency is one location with a copy of its road list.
type Adjacency struct {
	Name  string
	Roads []Road
}

// AdjacencyList returns every location with its roads, in insertion order.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() []Adjacency {
	out := make([]Adjacency, len(g.order))
	for i, key := range g.order {
		a := g.locs[key]
		out[i] = Adjacency{Name: a.name, Roads: slices.Clone(a.roads)}
	}

	return out
}
