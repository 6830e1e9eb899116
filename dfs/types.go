package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Traverse.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start location does not exist.
	ErrStartNotFound = errors.New("dfs: start location not found")

	// ErrNeighbors is returned when listing a location's roads fails.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")
)

// Option configures optional behavior of Traverse.
type Option func(*Options)

// Options holds configurable parameters for a DFS run.
type Options struct {
	// Ctx allows cancellation; checked once per pop.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked for each numbered step.
	// Returning an error aborts the traversal.
	OnVisit func(step Step) error

	// MaxDepth, if non-negative, stops pushing neighbours deeper than this
	// tree depth. 0 visits only the start. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns background context, no hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for the traversal. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the per-step hook.
func WithOnVisit(fn func(step Step) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits the DFS tree depth; negative means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// Step is one numbered visit, counting from 1.
type Step struct {
	Step int
	Name string
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Steps lists locations in the order they were first popped.
	Steps []Step

	// Depth maps each visited location to its depth in the DFS tree.
	Depth map[string]int

	// Parent maps each visited location, except the start, to the location
	// whose push of it was the one eventually popped.
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
