package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLocation indicates an empty location name.
	ErrEmptyLocation = errors.New("core: location name is empty")

	// ErrLocationExists indicates AddLocation of a name already present.
	ErrLocationExists = errors.New("core: location already exists")

	// ErrLocationNotFound indicates an operation referenced a non-existent location.
	ErrLocationNotFound = errors.New("core: location not found")

	// ErrRoadExists indicates a second road between the same pair of locations.
	ErrRoadExists = errors.New("core: road already exists")

	// ErrRoadNotFound indicates no road connects the given pair.
	ErrRoadNotFound = errors.New("core: road not found")

	// ErrLoopNotAllowed indicates a road from a location to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadDistance indicates a non-positive road distance.
	ErrBadDistance = errors.New("core: road distance must be positive")

	// ErrInvariant indicates the graph storage is inconsistent.
	// It is a programming defect, never a user-facing condition.
	ErrInvariant = errors.New("core: graph invariant violated")
)

// Road is one adjacency-list entry: the far endpoint and the distance.
type Road struct {
	// To is the display name of the destination location.
	To string

	// Distance is the road length, positive in strict mode.
	Distance int
}

// Edge is an undirected road reported once, From being the endpoint that
// appears first in location insertion order.
type Edge struct {
	From     string
	To       string
	Distance int
}

// Reader is the read-only view the traversal packages need.
// *Graph implements it.
type Reader interface {
	// HasLocation reports whether name is a location.
	HasLocation(name string) bool

	// Name returns the display spelling of name.
	Name(name string) (string, bool)

	// VisitRoads calls fn for each road of name in list order until fn
	// returns false. It returns ErrLocationNotFound for an unknown name.
	VisitRoads(name string, fn func(Road) bool) error

	// LocationCount returns |V|.
	LocationCount() int
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithLenientDistance lets AddRoad accept zero and negative distances,
// leaving that validation to the caller.
func WithLenientDistance() GraphOption {
	return func(g *Graph) { g.strictDistance = false }
}

// adjacency is one location record.
type adjacency struct {
	name  string // display spelling
	roads []Road // insertion order
}

// Graph is the adjacency-list city graph.
//
// locs is keyed by names.Fold; order keeps the folded keys in insertion
// order so enumeration is deterministic.
type Graph struct {
	strictDistance bool

	order []string
	locs  map[string]*adjacency
}

// NewGraph creates an empty Graph. By default road distances must be
// positive.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		strictDistance: true,
		locs:           make(map[string]*adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// StrictDistance reports whether AddRoad rejects non-positive distances.
func (g *Graph) StrictDistance() bool { return g.strictDistance }

var _ Reader = (*Graph)(nil)
