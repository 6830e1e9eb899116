// Package dfs implements iterative depth-first traversal over a core.Reader
// using an explicit LIFO stack.
//
// Key features:
//   - Traverse(g, start, opts...): numbered visit order plus DFS-tree parents.
//   - A location is marked visited when it is popped, not when pushed, so
//     it may sit on the stack several times; only its first pop counts.
//   - Unvisited neighbours are pushed in reverse adjacency-list order, so
//     the first road in a list is the first one explored.
//   - Hooks: OnVisit per numbered step, error aborts.
//   - Limits: MaxDepth (tree depth), cancellation via context.Context.
//
// Example, roads added in the order Hub–Zeta, Hub–Alpha, Zeta–Leaf:
//
//	        Hub
//	       /   \
//	    Zeta   Alpha
//	     |
//	    Leaf
//
//	Traverse(g, "Hub") visits Hub, Zeta, Leaf, Alpha.
//
// Complexity:
//
//   - Time:   O(V + E); every road can push one stack entry.
//   - Memory: O(V + E) for the stack in the worst case, O(V) for the maps.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrStartNotFound   if start is not a location.
//   - ErrNeighbors       if the graph fails to list a location's roads.
//   - context errors and wrapped OnVisit errors.
package dfs
