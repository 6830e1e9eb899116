// Package index provides the ordered location-name index: an unbalanced
// binary search tree keyed by case-insensitive name order.
//
// What
//
//   - Insert, Delete and Contains keyed by names.Compare.
//   - InOrder returns a fresh ascending snapshot; Walk streams the same
//     order with early stop.
//   - Shape exports an immutable nested copy of the tree for renderers.
//
// Storage
//
//	Nodes live in an arena ([]node) and link to each other by slot number,
//	with nilSlot (-1) as the empty link. Deleting a node returns its slot to
//	a free list that later inserts reuse, so a long add/remove session does
//	not grow the arena without bound.
//
//	  slot:   0        1        2
//	        [Kandy]  [Galle]  [Matara]
//	        L=1 R=2  L=- R=-  L=- R=-
//
// Deletion
//
//	0 children  → the parent link becomes nilSlot.
//	1 child     → the child is spliced into the parent link.
//	2 children  → the in-order successor (leftmost node of the right subtree)
//	              has its name copied into the node, and the successor's own
//	              node is then deleted from the right subtree.
//
// Complexity
//
//   - Insert / Delete / Contains: O(depth).
//   - InOrder / Shape / Height:   O(n).
//
// The tree is never rebalanced; its shape depends on insertion order and a
// sorted insertion sequence degrades it to a list of depth n.
//
// An Index is not safe for concurrent use.
package index
