package kdtree

import (
	"github.com/segmentio/encoding/json"
)

type aabbJSON struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

// MarshalJSON encodes the box as {"min":[x,y,z],"max":[x,y,z]}, or null when
// the box is empty.
func (b AABB) MarshalJSON() ([]byte, error) {
	if b.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(aabbJSON{
		Min: [3]float64{b.min.X, b.min.Y, b.min.Z},
		Max: [3]float64{b.max.X, b.max.Y, b.max.Z},
	})
}

type nodeJSON[K any] struct {
	Leaf          bool  `json:"leaf"`
	Keys          []K   `json:"keys,omitempty"`
	Left          int   `json:"left,omitempty"`
	Right         int   `json:"right,omitempty"`
	LeftBoundary  *AABB `json:"left_boundary,omitempty"`
	RightBoundary *AABB `json:"right_boundary,omitempty"`
}

type treeJSON[K any] struct {
	RootBoundary AABB          `json:"root_boundary"`
	Stats        Stats         `json:"stats"`
	Nodes        []nodeJSON[K] `json:"nodes"`
}

// MarshalJSON dumps the flattened tree for debugging. Objects are not
// included; only keys, node layout and boundaries are.
func (t *KDTree[K, O]) MarshalJSON() ([]byte, error) {
	out := treeJSON[K]{
		RootBoundary: t.rootBoundary,
		Stats:        t.stats,
		Nodes:        make([]nodeJSON[K], len(t.nodes)),
	}

	for i := range t.nodes {
		n := &t.nodes[i]
		if n.IsLeaf {
			out.Nodes[i] = nodeJSON[K]{Leaf: true, Keys: n.Keys}
			continue
		}
		out.Nodes[i] = nodeJSON[K]{
			Left:          n.Left,
			Right:         n.Right,
			LeftBoundary:  &n.LeftBoundary,
			RightBoundary: &n.RightBoundary,
		}
	}
	return json.Marshal(out)
}
