// Package bfs provides breadth-first traversal and fewest-hop routing over
// a core.Reader (normally a *core.Graph).
//
// What
//
//   - Traverse visits every location reachable from a start, in FIFO order,
//     and returns the numbered visit sequence plus depth and parent links.
//   - ShortestPath finds the route with the fewest roads between two
//     locations and totals the road distances along it.
//
// Determinism
//
//	A location is marked visited when it is enqueued, never twice, and the
//	neighbours of the current location are offered to the queue in the
//	order of its adjacency list. Since core keeps each list in road
//	insertion order, the same sequence of mutations always yields the same
//	visit order.
//
// Fewest hops, not least distance
//
//	ShortestPath ignores distances while searching. The reported Distance
//	is the sum of the road distances along the fewest-hop route found, which
//	need not be the minimum-distance route:
//
//	    A ──1── B ──1── C
//	    └───────10──────┘
//
//	ShortestPath(A, C) returns [A C] with Distance 10.
//
// Complexity (V = locations, E = roads)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, visited set, depth and parent maps.
//
// Usage
//
//	res, err := bfs.Traverse(g, "Colombo")
//	for _, s := range res.Steps {
//	    fmt.Println(s.Step, s.Name)
//	}
//
//	route, err := bfs.ShortestPath(g, "Kandy", "Galle")
//	if errors.Is(err, bfs.ErrNoPath) { ... }
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeue.
//   - WithMaxDepth(d):    do not enqueue beyond depth d (>0); 0 = no limit.
//   - WithOnEnqueue(fn):  hook when a location is first discovered.
//   - WithOnVisit(fn):    hook when a location is dequeued; an error aborts.
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrStartNotFound     if the Traverse start is not a location.
//   - ErrEndpointNotFound  if a ShortestPath endpoint is not a location.
//   - ErrNoPath            if the destination is unreachable.
//   - ErrOptionViolation   for invalid options (negative MaxDepth).
//   - ErrNeighbors         if the graph fails to list a location's roads.
//   - Wrapped OnVisit errors and context errors.
package bfs
