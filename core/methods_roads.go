package core

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/cityroute/names"
)

// AddRoad connects from and to with an undirected road of the given
// distance, appending one entry to each endpoint's list.
//
// Checks run in this order: both endpoints exist (ErrLocationNotFound),
// from and to differ (ErrLoopNotAllowed), no road already joins them
// (ErrRoadExists), distance > 0 in strict mode (ErrBadDistance).
// Complexity: O(deg(from)).
func (g *Graph) AddRoad(from, to string, distance int) error {
	a, ok := g.locs[names.Fold(from)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, from)
	}
	b, ok := g.locs[names.Fold(to)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, to)
	}
	if names.Equal(from, to) {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if indexOfRoad(a.roads, to) >= 0 {
		return fmt.Errorf("%w: %q-%q", ErrRoadExists, a.name, b.name)
	}
	if g.strictDistance && distance <= 0 {
		return fmt.Errorf("%w: %d", ErrBadDistance, distance)
	}

	a.roads = append(a.roads, Road{To: b.name, Distance: distance})
	b.roads = append(b.roads, Road{To: a.name, Distance: distance})

	return nil
}

// RemoveRoad deletes the road between from and to from both lists.
// Returns ErrLocationNotFound if an endpoint is missing and ErrRoadNotFound
// if neither list held a matching entry.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveRoad(from, to string) error {
	a, ok := g.locs[names.Fold(from)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, from)
	}
	b, ok := g.locs[names.Fold(to)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, to)
	}

	n1, n2 := len(a.roads), len(b.roads)
	a.roads = slices.DeleteFunc(a.roads, func(r Road) bool { return names.Equal(r.To, to) })
	b.roads = slices.DeleteFunc(b.roads, func(r Road) bool { return names.Equal(r.To, from) })
	if len(a.roads) == n1 && len(b.roads) == n2 {
		return fmt.Errorf("%w: %q-%q", ErrRoadNotFound, a.name, b.name)
	}

	return nil
}

// HasRoad reports whether a road joins from and to.
func (g *Graph) HasRoad(from, to string) bool {
	a, ok := g.locs[names.Fold(from)]
	if !ok {
		return false
	}

	return indexOfRoad(a.roads, to) >= 0
}

// Distance returns the length of the road joining from and to, found by a
// linear scan of from's list.
func (g *Graph) Distance(from, to string) (int, error) {
	a, ok := g.locs[names.Fold(from)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrLocationNotFound, from)
	}
	i := indexOfRoad(a.roads, to)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q-%q", ErrRoadNotFound, a.name, to)
	}

	return a.roads[i].Distance, nil
}

// RoadCount returns the number of undirected roads: the total list length
// halved, since every road is stored twice.
// Complexity: O(V).
func (g *Graph) RoadCount() int {
	total := 0
	for _, a := range g.locs {
		total += len(a.roads)
	}

	return total / 2
}

func indexOfRoad(roads []Road, to string) int {
	return slices.IndexFunc(roads, func(r Road) bool { return names.Equal(r.To, to) })
}
