package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cityroute/names"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start location is absent.
	ErrStartNotFound = errors.New("bfs: start location not found")

	// ErrEndpointNotFound is returned when a route endpoint is absent.
	ErrEndpointNotFound = errors.New("bfs: route endpoint not found")

	// ErrNoPath is returned when the destination cannot be reached.
	ErrNoPath = errors.New("bfs: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when listing a location's roads fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a location is first discovered.
	OnEnqueue func(name string, depth int)

	// OnVisit is called when a location is dequeued and numbered.
	// Returning an error aborts the run.
	OnVisit func(step Step, depth int) error

	// MaxDepth, if > 0, stops discovery beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no-op hooks and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnVisit:   func(Step, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a discovery hook.
func WithOnEnqueue(fn func(name string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a visit hook; an error from fn stops the BFS.
func WithOnVisit(fn func(step Step, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits discovery to depth d.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Step is one numbered visit. Step counts from 1.
type Step struct {
	Step int
	Name string
}

// Result holds the outcome of a traversal:
//   - Steps: locations in visit order, numbered from 1.
//   - Depth: display name → roads from the start.
//   - Parent: display name → the location that discovered it.
type Result struct {
	Steps  []Step
	Depth  map[string]int
	Parent map[string]string
}

// Names returns the visited locations in order.
func (r *Result) Names() []string {
	out := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.Name
	}

	return out
}

// PathTo reconstructs the BFS-tree path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	for _, s := range r.Steps {
		if names.Equal(s.Name, dest) {
			dest = s.Name
			path := []string{}
			for cur := dest; ; {
				path = append(path, cur)
				prev, ok := r.Parent[cur]
				if !ok {
					break
				}
				cur = prev
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}

			return path, nil
		}
	}

	return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
}

// Route is a fewest-hop route and the total distance along it.
type Route struct {
	// Stops runs from the origin to the destination inclusive.
	Stops []string

	// Distance is the sum of road distances between consecutive stops.
	Distance int
}

// Hops returns the number of roads on the route.
func (r *Route) Hops() int {
	if len(r.Stops) == 0 {
		return 0
	}

	return len(r.Stops) - 1
}
