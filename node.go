package kdtree

// Node is one entry of a KDTree's flattened node array. It is either an
// internal node (IsLeaf false) with absolute child indices and the boundary
// of each child, or a leaf holding the sorted, deduplicated keys of the
// objects overlapping its cell.
//
// Nodes are stored in pre-order: an internal node at index i has its left
// child at i+1, followed by the whole left subtree, then the right child.
type Node[K any] struct {
	Left, Right   int
	LeftBoundary  AABB
	RightBoundary AABB

	IsLeaf bool
	Keys   []K
}

func newLeaf[K any](keys []K) Node[K] {
	return Node[K]{IsLeaf: true, Keys: keys}
}

// slide shifts the child indices of an internal node by offset.
func (n *Node[K]) slide(offset int) {
	if n.IsLeaf {
		return
	}
	n.Left += offset
	n.Right += offset
}

// flatten joins two independently indexed fragments under parent. The parent
// takes index 0, left starts at 1 and right starts after left, with every
// child index rebased accordingly.
func flatten[K any](parent Node[K], left, right []Node[K]) []Node[K] {
	nodes := make([]Node[K], 0, 1+len(left)+len(right))

	parent.Left = 1
	parent.Right = 1 + len(left)
	nodes = append(nodes, parent)

	for _, n := range left {
		n.slide(1)
		nodes = append(nodes, n)
	}
	for _, n := range right {
		n.slide(1 + len(left))
		nodes = append(nodes, n)
	}
	return nodes
}
