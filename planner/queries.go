package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/cityroute/bfs"
	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dfs"
	"github.com/katalvlaran/cityroute/index"
	"github.com/katalvlaran/cityroute/names"
)

// Stats summarizes both structures.
type Stats struct {
	Locations   int
	Roads       int
	IndexHeight int
	First       string // alphabetically first name, "" when empty
	Last        string // alphabetically last name, "" when empty
}

// BFS traverses breadth-first from start.
// Errors: ErrNotFound, or ctx.Err() if ctx is cancelled.
func (p *Planner) BFS(ctx context.Context, start string) (res *bfs.Result, err error) {
	defer p.observe("bfs", time.Now(), &err)
	p.mu.RLock()
	defer p.mu.RUnlock()

	res, err = bfs.Traverse(p.graph, names.Normalize(start), bfs.WithContext(ctx))

	return res, classify(err)
}

// DFS traverses depth-first from start.
// Errors: ErrNotFound, or ctx.Err() if ctx is cancelled.
func (p *Planner) DFS(ctx context.Context, start string) (res *dfs.Result, err error) {
	defer p.observe("dfs", time.Now(), &err)
	p.mu.RLock()
	defer p.mu.RUnlock()

	res, err = dfs.Traverse(p.graph, names.Normalize(start), dfs.WithContext(ctx))

	return res, classify(err)
}

// ShortestPath returns the fewest-hops route from from to to.
// Errors: ErrNotFound (missing endpoint or no path), or ctx.Err().
func (p *Planner) ShortestPath(ctx context.Context, from, to string) (route *bfs.Route, err error) {
	defer p.observe("shortest_path", time.Now(), &err)
	p.mu.RLock()
	defer p.mu.RUnlock()

	route, err = bfs.ShortestPath(p.graph, names.Normalize(from), names.Normalize(to),
		bfs.WithContext(ctx))

	return route, classify(err)
}

// InOrderNames returns every location in ascending case-insensitive order.
func (p *Planner) InOrderNames() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.index.InOrder()
}

// Locations returns every location in insertion order.
func (p *Planner) Locations() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.Locations()
}

// HasLocation reports whether name is stored.
func (p *Planner) HasLocation(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.HasLocation(names.Normalize(name))
}

// LocationCount returns the number of locations.
func (p *Planner) LocationCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.LocationCount()
}

// RoadCount returns the number of undirected roads.
func (p *Planner) RoadCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.RoadCount()
}

// Roads returns a copy of name's adjacency list.
// Errors: ErrNotFound.
func (p *Planner) Roads(name string) ([]core.Road, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	roads, err := p.graph.Roads(names.Normalize(name))

	return roads, classify(err)
}

// Connections returns every location with its roads, in insertion order.
func (p *Planner) Connections() []core.Adjacency {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.AdjacencyList()
}

// IndexShape returns the current layout of the name index, or nil if empty.
func (p *Planner) IndexShape() *index.Shape {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.index.Shape()
}

// Stats returns a snapshot of sizes.
func (p *Planner) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s := Stats{
		Locations:   p.graph.LocationCount(),
		Roads:       p.graph.RoadCount(),
		IndexHeight: p.index.Height(),
	}
	s.First, _ = p.index.Min()
	s.Last, _ = p.index.Max()

	return s
}

// CheckConsistency verifies that the index and the graph hold the same
// set of locations and that the graph's own invariants hold.
// A failure wraps core.ErrInvariant.
func (p *Planner) CheckConsistency() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if err := p.graph.CheckInvariants(); err != nil {
		return err
	}
	if p.index.Len() != p.graph.LocationCount() {
		return fmt.Errorf("%w: index holds %d names, graph holds %d",
			core.ErrInvariant, p.index.Len(), p.graph.LocationCount())
	}
	var missing string
	p.index.Walk(func(name string) bool {
		if !p.graph.HasLocation(name) {
			missing = name
			return false
		}
		return true
	})
	if missing != "" {
		return fmt.Errorf("%w: %q indexed but not in graph", core.ErrInvariant, missing)
	}

	return nil
}

func (p *Planner) observe(op string, started time.Time, err *error) {
	p.metrics.query(op, started, *err)
}
