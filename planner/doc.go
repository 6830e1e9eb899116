// Package planner coordinates the two views of a city network: the ordered
// name index (package index) and the road graph (package core).
//
// What:
//
//	Planner keeps both structures holding exactly the same set of
//	locations. Every mutation goes through it; every query returns a
//	structured result (slices, bfs.Result, bfs.Route) rather than text.
//
// Ordering:
//
//   - AddLocation writes the index first, then the graph. A duplicate is
//     caught by the index and the graph is never touched.
//   - RemoveLocation writes the graph first (cascading its roads), then
//     the index. An unknown name is caught by the graph and the index is
//     never touched.
//
// Errors:
//
// Every error returned by a Planner method matches, via errors.Is, one of
// the taxonomy sentinels below and also the underlying package sentinel:
//
//   - ErrDuplicate     (core.ErrLocationExists, core.ErrRoadExists)
//   - ErrNotFound      (core.ErrLocationNotFound, core.ErrRoadNotFound,
//     bfs.ErrStartNotFound, bfs.ErrEndpointNotFound, bfs.ErrNoPath,
//     dfs.ErrStartNotFound)
//   - ErrSelfLoop      (core.ErrLoopNotAllowed)
//   - ErrInvalidInput  (names.ErrInvalidName, names.ErrInvalidDistance)
//
// core.ErrInvariant is returned unclassified: it marks a defect.
//
// Concurrency:
//
//	A single sync.RWMutex guards both structures. Mutations take the write
//	lock; queries take the read lock.
//
// Observability:
//
//	Mutations are logged through log/slog (debug on success, info on
//	rejection) and counted in Prometheus metrics registered on a private
//	registry unless WithRegistry supplies one.
package planner
