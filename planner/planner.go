package planner

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/index"
	"github.com/katalvlaran/cityroute/internal/logging"
)

// Planner owns one name index and one road graph and keeps them in step.
// It is safe for concurrent use.
type Planner struct {
	mu      sync.RWMutex
	index   *index.Index
	graph   *core.Graph
	logger  *slog.Logger
	metrics *metrics
}

// Options holds the construction parameters of a Planner.
type Options struct {
	// Logger receives mutation logs. Default: logging.Discard().
	Logger *slog.Logger

	// Registry receives the planner's collectors.
	// Default: a fresh private prometheus.NewRegistry().
	Registry prometheus.Registerer

	// Seed, if non-nil, is applied by New.
	Seed *Seed
}

// Option configures a Planner.
type Option func(*Options)

// DefaultOptions returns the zero-configuration settings.
func DefaultOptions() Options {
	return Options{Logger: logging.Discard()}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegistry registers the planner's metrics on reg.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(o *Options) {
		o.Registry = reg
	}
}

// WithSeed makes New apply s before returning.
func WithSeed(s Seed) Option {
	return func(o *Options) {
		o.Seed = &s
	}
}

// New returns an empty Planner, seeded if WithSeed was given.
// A metrics registration or seed failure is returned with the partially
// built Planner discarded. Planners given the same registry share their
// collectors.
func New(opts ...Option) (*Planner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Registry == nil {
		o.Registry = prometheus.NewRegistry()
	}

	m, err := newMetrics(o.Registry)
	if err != nil {
		return nil, err
	}
	p := &Planner{
		index:   index.New(),
		graph:   core.NewGraph(),
		logger:  o.Logger,
		metrics: m,
	}
	if o.Seed != nil {
		if err := p.Seed(*o.Seed); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// syncGauges publishes the current sizes. Caller holds the lock.
func (p *Planner) syncGauges() {
	p.metrics.size(p.graph.LocationCount(), p.graph.RoadCount())
}
