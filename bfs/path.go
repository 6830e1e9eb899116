package bfs

import (
	"fmt"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/names"
)

// ShortestPath returns the route from -> to with the fewest roads.
//
// The search is a BFS from `from` that records, for every newly discovered
// location, the location it was discovered from, and stops as soon as `to`
// is discovered. The route is rebuilt by walking those parent links from
// `to` back to `from` onto a stack, then popping it. Distance sums, for
// each consecutive pair, the distance of the road found by scanning the
// earlier stop's list.
//
// from == to yields the single-stop route with Distance 0.
// Returns ErrGraphNil, ErrEndpointNotFound, ErrNoPath, ErrOptionViolation,
// ErrNeighbors or a context error.
func ShortestPath(g core.Reader, from, to string, opts ...Option) (*Route, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	src, ok := g.Name(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEndpointNotFound, from)
	}
	dst, ok := g.Name(to)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEndpointNotFound, to)
	}
	if names.Equal(src, dst) {
		return &Route{Stops: []string{src}}, nil
	}

	parent, err := searchParents(g, o, src, dst)
	if err != nil {
		return nil, err
	}

	// Walk parents from dst back to src; the stack top is src.
	stack := []string{dst}
	for cur := dst; !names.Equal(cur, src); {
		cur = parent[names.Fold(cur)]
		stack = append(stack, cur)
	}

	route := &Route{Stops: make([]string, 0, len(stack))}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n := len(route.Stops); n > 0 {
			d, err := roadDistance(g, route.Stops[n-1], top)
			if err != nil {
				return nil, err
			}
			route.Distance += d
		}
		route.Stops = append(route.Stops, top)
	}

	return route, nil
}

// searchParents runs the early-exit BFS and returns folded name → parent
// display name. It returns ErrNoPath if dst is never discovered.
func searchParents(g core.Reader, o Options, src, dst string) (map[string]string, error) {
	n := g.LocationCount()
	parent := make(map[string]string, n)
	visited := map[string]bool{names.Fold(src): true}
	queue := []queueItem{{name: src}}
	dstKey := names.Fold(dst)

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		next := cur.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}

		found := false
		err := g.VisitRoads(cur.name, func(r core.Road) bool {
			key := names.Fold(r.To)
			if visited[key] {
				return true
			}
			visited[key] = true
			parent[key] = cur.name
			o.OnEnqueue(r.To, next)
			queue = append(queue, queueItem{name: r.To, depth: next})
			if key == dstKey {
				found = true
				return false
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("%w: roads of %q: %w", ErrNeighbors, cur.name, err)
		}
		if found {
			return parent, nil
		}
	}

	return nil, fmt.Errorf("%w between %q and %q", ErrNoPath, src, dst)
}

// roadDistance scans from's list for the road to `to`.
func roadDistance(g core.Reader, from, to string) (int, error) {
	d, found := 0, false
	err := g.VisitRoads(from, func(r core.Road) bool {
		if names.Equal(r.To, to) {
			d, found = r.Distance, true
			return false
		}
		return true
	})
	if err != nil {
		return 0, fmt.Errorf("%w: roads of %q: %w", ErrNeighbors, from, err)
	}
	if !found {
		return 0, fmt.Errorf("%w: route step %q-%q has no road", core.ErrInvariant, from, to)
	}

	return d, nil
}
