package index

// InOrder returns every name in ascending case-insensitive order.
// The slice is a fresh copy; later mutations do not affect it.
// Complexity: O(n).
func (ix *Index) InOrder() []string {
	out := make([]string, 0, ix.size)
	ix.Walk(func(name string) bool {
		out = append(out, name)
		return true
	})

	return out
}

// Walk calls fn for each name in ascending order until fn returns false.
// The index must not be mutated from inside fn.
func (ix *Index) Walk(fn func(name string) bool) {
	stack := make([]int32, 0, 16)
	cur := ix.root
	for cur != nilSlot || len(stack) > 0 {
		for cur != nilSlot {
			stack = append(stack, cur)
			cur = ix.nodes[cur].left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(ix.nodes[cur].name) {
			return
		}
		cur = ix.nodes[cur].right
	}
}

// Min returns the smallest name, or false on an empty index.
func (ix *Index) Min() (string, bool) {
	if ix.root == nilSlot {
		return "", false
	}

	return ix.nodes[ix.minSlot(ix.root)].name, true
}

// Max returns the largest name, or false on an empty index.
func (ix *Index) Max() (string, bool) {
	if ix.root == nilSlot {
		return "", false
	}

	return ix.nodes[ix.maxSlot(ix.root)].name, true
}

// Height returns the number of nodes on the longest root-to-leaf path;
// 0 for an empty index.
func (ix *Index) Height() int {
	return ix.heightAt(ix.root)
}

func (ix *Index) heightAt(at int32) int {
	if at == nilSlot {
		return 0
	}

	return 1 + max(ix.heightAt(ix.nodes[at].left), ix.heightAt(ix.nodes[at].right))
}

// Shape returns a nested copy of the tree, or nil when empty.
func (ix *Index) Shape() *Shape {
	return ix.shapeAt(ix.root)
}

func (ix *Index) shapeAt(at int32) *Shape {
	if at == nilSlot {
		return nil
	}
	n := ix.nodes[at]

	return &Shape{Name: n.name, Left: ix.shapeAt(n.left), Right: ix.shapeAt(n.right)}
}
