package index

import "github.com/katalvlaran/cityroute/names"

// Insert adds name to the index.
// It returns false, leaving the index unchanged, if a name equal to it
// under names.Compare is already present.
// Complexity: O(depth).
func (ix *Index) Insert(name string) bool {
	// Duplicates are rejected before the descent starts.
	if ix.Contains(name) {
		return false
	}
	slot := ix.alloc(name)
	ix.size++

	if ix.root == nilSlot {
		ix.root = slot
		return true
	}

	cur := ix.root
	for {
		n := &ix.nodes[cur]
		if names.Compare(name, n.name) < 0 {
			if n.left == nilSlot {
				n.left = slot
				return true
			}
			cur = n.left
		} else {
			if n.right == nilSlot {
				n.right = slot
				return true
			}
			cur = n.right
		}
	}
}

// Delete removes name from the index and reports whether it was present.
// Complexity: O(depth).
func (ix *Index) Delete(name string) bool {
	if !ix.Contains(name) {
		return false
	}
	ix.root = ix.deleteAt(ix.root, name)
	ix.size--

	return true
}

// deleteAt removes name from the subtree rooted at slot at and returns the
// slot that now roots that subtree.
func (ix *Index) deleteAt(at int32, name string) int32 {
	if at == nilSlot {
		return nilSlot
	}
	n := &ix.nodes[at]
	switch c := names.Compare(name, n.name); {
	case c < 0:
		n.left = ix.deleteAt(n.left, name)
	case c > 0:
		n.right = ix.deleteAt(n.right, name)
	default:
		if n.left == nilSlot {
			child := n.right
			ix.release(at)
			return child
		}
		if n.right == nilSlot {
			child := n.left
			ix.release(at)
			return child
		}
		// Two children: promote the in-order successor's name, then remove
		// the successor's original node from the right subtree.
		succ := ix.minSlot(n.right)
		n.name = ix.nodes[succ].name
		n.right = ix.deleteAt(n.right, n.name)
	}

	return at
}

// Contains reports whether name is present.
// Complexity: O(depth).
func (ix *Index) Contains(name string) bool {
	return ix.find(name) != nilSlot
}

// Lookup returns the stored spelling of name, which may differ in case
// from the query.
func (ix *Index) Lookup(name string) (string, bool) {
	slot := ix.find(name)
	if slot == nilSlot {
		return "", false
	}

	return ix.nodes[slot].name, true
}

func (ix *Index) find(name string) int32 {
	cur := ix.root
	for cur != nilSlot {
		n := &ix.nodes[cur]
		switch c := names.Compare(name, n.name); {
		case c == 0:
			return cur
		case c < 0:
			cur = n.left
		default:
			cur = n.right
		}
	}

	return nilSlot
}

func (ix *Index) minSlot(at int32) int32 {
	for ix.nodes[at].left != nilSlot {
		at = ix.nodes[at].left
	}

	return at
}

func (ix *Index) maxSlot(at int32) int32 {
	for ix.nodes[at].right != nilSlot {
		at = ix.nodes[at].right
	}

	return at
}
