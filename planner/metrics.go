package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the collectors of one Planner. Planners sharing a
// registry share its collectors; the size gauges then report the planner
// that mutated last.
type metrics struct {
	mutations *prometheus.CounterVec
	queries   *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	locations prometheus.Gauge
	roads     prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	var (
		m   metrics
		err error
	)

	// mutations counts mutation attempts by operation and outcome
	if m.mutations, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cityroute_mutations_total",
		Help: "Total mutations by operation and result",
	}, []string{"op", "result"})); err != nil {
		return nil, err
	}

	// queries counts read operations by operation and outcome
	if m.queries, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cityroute_queries_total",
		Help: "Total queries by operation and result",
	}, []string{"op", "result"})); err != nil {
		return nil, err
	}

	if m.duration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cityroute_query_duration_seconds",
		Help:    "Traversal and route query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"op"})); err != nil {
		return nil, err
	}

	if m.locations, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cityroute_locations",
		Help: "Number of locations currently stored",
	})); err != nil {
		return nil, err
	}

	if m.roads, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cityroute_roads",
		Help: "Number of undirected roads currently stored",
	})); err != nil {
		return nil, err
	}

	return &m, nil
}

// register adds c to reg. If an identical collector is already
// registered, that one is returned instead.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	var zero C

	return zero, fmt.Errorf("planner: registering metrics: %w", err)
}

func (m *metrics) mutation(op string, err error) {
	m.mutations.WithLabelValues(op, outcome(err)).Inc()
}

func (m *metrics) query(op string, started time.Time, err error) {
	m.queries.WithLabelValues(op, outcome(err)).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

func (m *metrics) size(locations, roads int) {
	m.locations.Set(float64(locations))
	m.roads.Set(float64(roads))
}
