// Package core provides the city graph: an undirected, weighted
// adjacency-list graph whose vertices are named locations and whose edges
// are roads with a positive integer distance.
//
// The Graph G = (V,E) keeps these invariants after every call returns:
//
//   - Symmetry: a road (A,B,d) is stored as Road{B,d} in A's list and as
//     Road{A,d} in B's list, with the same d.
//   - No self-loops and at most one road between any pair of locations.
//   - Every road destination is itself a location of the graph.
//
// Names are compared with the names package policy (case-insensitive), so
// "Kandy" and "kandy" are the same location. The spelling used by the
// first AddLocation is kept as the display name and is what every query
// returns.
//
// Ordering:
//
//   - Locations() and Edges() enumerate locations in insertion order.
//   - Each adjacency list keeps roads in the order they were added; the
//     traversal packages rely on this order for deterministic output.
//
// Core Methods:
//
//	// Location lifecycle
//	AddLocation(name string) error               // O(1) amortized
//	HasLocation(name string) bool                // O(1)
//	RemoveLocation(name string) error            // O(V + E): strips every road into name, then drops it
//
//	// Road lifecycle
//	AddRoad(from, to string, distance int) error // O(deg(from))
//	RemoveRoad(from, to string) error            // O(deg(from) + deg(to))
//	HasRoad(from, to string) bool                // O(deg(from))
//
//	// Query
//	Roads(name string) ([]Road, error)           // snapshot of one list
//	VisitRoads(name string, fn) error            // no-copy iteration
//	Distance(from, to string) (int, error)
//	Locations() []string
//	Edges() []Edge                               // each road once
//	LocationCount(), RoadCount() int
//
// Options:
//
//	WithLenientDistance() accepts zero and negative distances. By default
//	AddRoad rejects them with ErrBadDistance.
//
// Errors:
//
//	ErrEmptyLocation     - location name is the empty string.
//	ErrLocationExists    - AddLocation of a name already present.
//	ErrLocationNotFound  - a referenced location does not exist.
//	ErrRoadExists        - a road already connects the pair.
//	ErrRoadNotFound      - no road connects the pair.
//	ErrLoopNotAllowed    - a road from a location to itself.
//	ErrBadDistance       - non-positive distance in strict mode.
//	ErrInvariant         - CheckInvariants found corrupted storage (a defect).
//
// A Graph is not safe for concurrent use; callers that share one across
// goroutines guard it externally (see package planner).
package core
