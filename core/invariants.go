package core

import (
	"fmt"

	"github.com/katalvlaran/cityroute/names"
)

// CheckInvariants verifies symmetry, the absence of self-loops and
// parallel roads, and that every destination is a location. It returns an
// error wrapping ErrInvariant describing the first breach found.
// Complexity: O(V + E·deg).
func (g *Graph) CheckInvariants() error {
	if len(g.order) != len(g.locs) {
		return fmt.Errorf("%w: order has %d keys, map has %d", ErrInvariant, len(g.order), len(g.locs))
	}
	for _, key := range g.order {
		a, ok := g.locs[key]
		if !ok {
			return fmt.Errorf("%w: ordered key %q missing from map", ErrInvariant, key)
		}
		seen := make(map[string]bool, len(a.roads))
		for _, r := range a.roads {
			to := names.Fold(r.To)
			if to == key {
				return fmt.Errorf("%w: self-loop at %q", ErrInvariant, a.name)
			}
			if seen[to] {
				return fmt.Errorf("%w: parallel road %q-%q", ErrInvariant, a.name, r.To)
			}
			seen[to] = true

			b, ok := g.locs[to]
			if !ok {
				return fmt.Errorf("%w: road %q-%q dangles", ErrInvariant, a.name, r.To)
			}
			i := indexOfRoad(b.roads, a.name)
			if i < 0 || b.roads[i].Distance != r.Distance {
				return fmt.Errorf("%w: road %q-%q is not mirrored", ErrInvariant, a.name, r.To)
			}
		}
	}

	return nil
}
