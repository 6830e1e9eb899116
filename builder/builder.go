package builder

import "fmt"

// Target receives generated locations and roads.
// *core.Graph and *planner.Planner both satisfy it.
type Target interface {
	AddLocation(name string) error
	AddRoad(from, to string, distance int) error
}

// Constructor adds one topology to t using cfg.
type Constructor func(t Target, cfg config) error

// Build resolves opts and applies cons to t in order.
// The first failure is returned; work already applied is kept.
func Build(t Target, opts []Option, cons ...Constructor) error {
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// addLocations adds idFn(0..n-1).
func addLocations(method string, t Target, cfg config, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := t.AddLocation(id); err != nil {
			return fmt.Errorf("%s: AddLocation(%q): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// addRoad joins idFn(i) and idFn(j) with the next distance.
func addRoad(method string, t Target, cfg config, i, j int) error {
	u, v, d := cfg.idFn(i), cfg.idFn(j), cfg.nextDistance()
	if err := t.AddRoad(u, v, d); err != nil {
		return fmt.Errorf("%s: AddRoad(%q, %q, %d): %w: %w", method, u, v, d, ErrConstructFailed, err)
	}

	return nil
}

// checkRand fails when cfg needs randomness it does not have.
func checkRand(method string, cfg config) error {
	if cfg.randomDist && cfg.rng == nil {
		return fmt.Errorf("%s: WithDistanceRange: %w", method, ErrNeedRandSource)
	}

	return nil
}
