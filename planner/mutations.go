package planner

import (
	"fmt"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/names"
)

// Operation labels.
const (
	opAddLocation    = "add_location"
	opRemoveLocation = "remove_location"
	opAddRoad        = "add_road"
	opRemoveRoad     = "remove_road"
)

// AddLocation validates name and adds it to the index, then the graph.
// Surrounding whitespace is trimmed first.
//
// Errors: ErrInvalidInput, ErrDuplicate; core.ErrInvariant if the graph
// refuses a name the index accepted (the index insert is undone).
func (p *Planner) AddLocation(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.addLocation(name)
}

func (p *Planner) addLocation(name string) (err error) {
	name = names.Normalize(name)
	defer func() { p.record(opAddLocation, err, "name", name) }()

	if err = names.Validate(name); err != nil {
		return classify(err)
	}
	if !p.index.Insert(name) {
		return classify(fmt.Errorf("%w: %q", core.ErrLocationExists, name))
	}
	if gerr := p.graph.AddLocation(name); gerr != nil {
		p.index.Delete(name)
		p.logger.Error("index and graph disagree on add",
			"name", name, "error", gerr)

		return fmt.Errorf("%w: graph rejected %q after index insert: %w",
			core.ErrInvariant, name, gerr)
	}

	return nil
}

// RemoveLocation removes name and every road touching it from the graph,
// then removes name from the index.
//
// Errors: ErrNotFound; core.ErrInvariant if the index lacked a name the
// graph held.
func (p *Planner) RemoveLocation(name string) (err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	name = names.Normalize(name)
	defer func() { p.record(opRemoveLocation, err, "name", name) }()

	if err = p.graph.RemoveLocation(name); err != nil {
		return classify(err)
	}
	if !p.index.Delete(name) {
		p.logger.Error("index and graph disagree on remove", "name", name)

		return fmt.Errorf("%w: %q missing from index", core.ErrInvariant, name)
	}

	return nil
}

// AddRoad validates distance and connects from and to in both directions.
//
// Errors: ErrInvalidInput, ErrNotFound, ErrSelfLoop, ErrDuplicate.
func (p *Planner) AddRoad(from, to string, distance int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.addRoad(from, to, distance)
}

func (p *Planner) addRoad(from, to string, distance int) (err error) {
	from, to = names.Normalize(from), names.Normalize(to)
	defer func() {
		p.record(opAddRoad, err, "from", from, "to", to, "distance", distance)
	}()

	if err = names.ValidateDistance(distance); err != nil {
		return classify(err)
	}

	return classify(p.graph.AddRoad(from, to, distance))
}

// RemoveRoad deletes the road between from and to in both directions.
//
// Errors: ErrNotFound.
func (p *Planner) RemoveRoad(from, to string) (err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	from, to = names.Normalize(from), names.Normalize(to)
	defer func() { p.record(opRemoveRoad, err, "from", from, "to", to) }()

	return classify(p.graph.RemoveRoad(from, to))
}

// record logs and counts a finished mutation. Caller holds the write lock.
func (p *Planner) record(op string, err error, attrs ...any) {
	p.metrics.mutation(op, err)
	if err == nil {
		p.syncGauges()
		p.logger.Debug(op, attrs...)

		return
	}
	p.logger.Info(op+" rejected", append(attrs, "reason", outcome(err), "error", err)...)
}
