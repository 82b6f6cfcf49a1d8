package kdtree

// Stats summarises the shape of a built tree.
type Stats struct {
	Objects     int `json:"objects"`
	Nodes       int `json:"nodes"`
	Leaves      int `json:"leaves"`
	EmptyLeaves int `json:"empty_leaves"`
	Depth       int `json:"depth"` // edges on the longest root-to-leaf path
	MaxLeafSize int `json:"max_leaf_size"`

	// LeafReferences is the total number of keys across all leaves. It
	// exceeds Objects when objects straddle split planes.
	LeafReferences int `json:"leaf_references"`
}

// Stats returns shape statistics gathered when the tree was built.
func (t *KDTree[K, O]) Stats() Stats { return t.stats }

func computeStats[K any](nodes []Node[K], objects int) Stats {
	s := Stats{Objects: objects, Nodes: len(nodes)}
	if len(nodes) > 0 {
		walkStats(nodes, 0, 0, &s)
	}
	return s
}

func walkStats[K any](nodes []Node[K], node, depth int, s *Stats) {
	if depth > s.Depth {
		s.Depth = depth
	}

	n := &nodes[node]
	if !n.IsLeaf {
		walkStats(nodes, n.Left, depth+1, s)
		walkStats(nodes, n.Right, depth+1, s)
		return
	}

	s.Leaves++
	s.LeafReferences += len(n.Keys)
	if len(n.Keys) == 0 {
		s.EmptyLeaves++
	}
	if len(n.Keys) > s.MaxLeafSize {
		s.MaxLeafSize = len(n.Keys)
	}
}
