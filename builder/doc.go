// Package builder generates synthetic city networks for tests, benchmarks
// and the CLI "generate" command.
//
// What:
//
//	A Constructor adds locations and roads to a Target. Build applies
//	constructors in order against any Target: *core.Graph directly, or
//	*planner.Planner so the index stays in step.
//
// Topologies:
//
//   - Path(n)            n ≥ 2, n-1 roads
//   - Cycle(n)           n ≥ 3, n roads
//   - Star(n)            n ≥ 2, hub is the first ID, n-1 roads
//   - Grid(rows, cols)   rows, cols ≥ 1, 4-neighbourhood, row-major IDs
//   - RandomSparse(n, p) n ≥ 1, each pair joined with probability p
//
// Options:
//
//   - WithIDScheme(fn)        location names per index (default "City A", "City B", ...)
//   - WithSeed(seed), WithRand(r)  randomness for RandomSparse and WithDistanceRange
//   - WithDistance(d)         constant road distance (default 10)
//   - WithDistanceRange(a, b) uniform distance in [a, b]; needs randomness
//
// Determinism:
//
//	Same options, seed and constructor order produce the same network.
//	Locations are added in index order; roads in ascending (i, j) order.
//
// Errors:
//
//	ErrTooFewLocations, ErrInvalidProbability, ErrNeedRandSource,
//	ErrConstructFailed (wrapping the Target's own error). Option
//	constructors panic on meaningless values.
package builder
