package dfs

import (
	"fmt"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/names"
)

// frame is one stack entry.
type frame struct {
	name   string
	parent string // "" for the start
	depth  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   core.Reader
	opts    Options
	stack   []frame
	visited map[string]bool // folded names
	buf     []core.Road     // reused per pop
	res     *Result
}

// Traverse runs an iterative depth-first search on g from start.
// On abort the partial Result is returned with the error.
func Traverse(g core.Reader, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	name, ok := g.Name(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.LocationCount()
	w := &dfsWalker{
		graph:   g,
		opts:    o,
		stack:   []frame{{name: name}},
		visited: make(map[string]bool, n),
		res: &Result{
			Steps:  make([]Step, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	return w.res, w.loop()
}

// loop pops until the stack is empty.
func (w *dfsWalker) loop() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		key := names.Fold(top.name)
		if w.visited[key] {
			continue
		}
		w.visited[key] = true

		if err := w.visit(top); err != nil {
			return err
		}
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		if err := w.pushNeighbors(top); err != nil {
			return err
		}
	}

	return nil
}

// visit records the step, depth and parent, then runs OnVisit.
func (w *dfsWalker) visit(f frame) error {
	step := Step{Step: len(w.res.Steps) + 1, Name: f.name}
	w.res.Steps = append(w.res.Steps, step)
	w.res.Depth[f.name] = f.depth
	if f.parent != "" {
		w.res.Parent[f.name] = f.parent
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(step); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", f.name, err)
		}
	}

	return nil
}

// pushNeighbors pushes unvisited neighbours last-to-first so the first
// road in the list is popped next.
func (w *dfsWalker) pushNeighbors(f frame) error {
	w.buf = w.buf[:0]
	err := w.graph.VisitRoads(f.name, func(r core.Road) bool {
		w.buf = append(w.buf, r)
		return true
	})
	if err != nil {
		return fmt.Errorf("%w: roads of %q: %w", ErrNeighbors, f.name, err)
	}
	for i := len(w.buf) - 1; i >= 0; i-- {
		to := w.buf[i].To
		if !w.visited[names.Fold(to)] {
			w.stack = append(w.stack, frame{name: to, parent: f.name, depth: f.depth + 1})
		}
	}

	return nil
}
