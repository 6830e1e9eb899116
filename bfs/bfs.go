package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/names"
)

// queueItem pairs a location with its depth.
type queueItem struct {
	name  string // display name
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   core.Reader
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool // folded names
	res     *Result
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Traverse runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartNotFound, ErrOptionViolation, ErrNeighbors,
// a context error, or a wrapped OnVisit error. On abort the partial Result
// is returned alongside the error.
func Traverse(g core.Reader, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	name, ok := g.Name(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.LocationCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Steps:  make([]Step, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed the queue; the start has no parent.
	w.enqueue(name, 0, "")

	return w.res, w.loop()
}

// enqueue marks name visited at depth d and appends it to the queue.
func (w *walker) enqueue(name string, d int, parent string) {
	w.visited[names.Fold(name)] = true
	w.res.Depth[name] = d
	if parent != "" {
		w.res.Parent[name] = parent
	}
	w.opts.OnEnqueue(name, d)
	w.queue = append(w.queue, queueItem{name: name, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit numbers the location and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	step := Step{Step: len(w.res.Steps) + 1, Name: item.name}
	w.res.Steps = append(w.res.Steps, step)
	if err := w.opts.OnVisit(step, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.name, err)
	}

	return nil
}

// enqueueNeighbors offers each unvisited neighbour in adjacency-list order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	err := w.graph.VisitRoads(item.name, func(r core.Road) bool {
		if !w.visited[names.Fold(r.To)] {
			w.enqueue(r.To, next, item.name)
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("%w: roads of %q: %w", ErrNeighbors, item.name, err)
	}

	return nil
}
