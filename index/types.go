package index

// nilSlot marks an empty child link or an empty tree.
const nilSlot int32 = -1

// node is one arena record. A released node has an empty name and sits
// on the free list until reused.
type node struct {
	name        string
	left, right int32
}

// Index is an arena-backed binary search tree of location names.
// The zero value is not usable; call New.
type Index struct {
	nodes []node  // arena
	free  []int32 // released slots, reused LIFO
	root  int32   // root slot, nilSlot when empty
	size  int     // live names
}

// Shape is an immutable snapshot of one subtree, for drawing.
// Left and Right are nil when the child is absent.
type Shape struct {
	Name  string
	Left  *Shape
	Right *Shape
}

// New returns an empty Index.
// Complexity: O(1).
func New() *Index {
	return &Index{root: nilSlot}
}

// Len returns the number of names held.
func (ix *Index) Len() int { return ix.size }

// IsEmpty reports whether the index holds no names.
func (ix *Index) IsEmpty() bool { return ix.size == 0 }

// Clear drops every name and the arena behind them.
func (ix *Index) Clear() {
	ix.nodes = nil
	ix.free = nil
	ix.root = nilSlot
	ix.size = 0
}

// alloc stores name in a fresh or recycled slot and returns the slot.
func (ix *Index) alloc(name string) int32 {
	rec := node{name: name, left: nilSlot, right: nilSlot}
	if n := len(ix.free); n > 0 {
		slot := ix.free[n-1]
		ix.free = ix.free[:n-1]
		ix.nodes[slot] = rec

		return slot
	}
	ix.nodes = append(ix.nodes, rec)

	return int32(len(ix.nodes) - 1)
}

// release returns slot to the free list.
func (ix *Index) release(slot int32) {
	ix.nodes[slot] = node{left: nilSlot, right: nilSlot}
	ix.free = append(ix.free, slot)
}
