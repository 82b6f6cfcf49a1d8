package kdtree

import (
	"math/rand"
	"slices"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestEdgeCase_EmptyTree(t *testing.T) {
	for name, tree := range map[string]*KDTree[int, AABB]{
		"Empty":            Empty[int, AABB](),
		"FromObjects(nil)": FromObjects[int, AABB](nil),
	} {
		t.Run(name, func(t *testing.T) {
			if len(tree.Nodes()) != 0 {
				t.Errorf("len(Nodes()) = %d, want 0", len(tree.Nodes()))
			}
			if !tree.RootBoundary().IsEmpty() {
				t.Errorf("RootBoundary() = %v..%v, want empty", tree.RootBoundary().Min(), tree.RootBoundary().Max())
			}
			if tree.Len() != 0 {
				t.Errorf("Len() = %d, want 0", tree.Len())
			}
			for _, q := range []AABB{
				box(0, 0, 0, 1, 1, 1),
				box(-1e9, -1e9, -1e9, 1e9, 1e9, 1e9),
			} {
				if got := tree.Query(boxQuery(q), nil); len(got) != 0 {
					t.Errorf("Query = %v, want empty", got)
				}
			}
		})
	}
}

func TestEdgeCase_EmptyTreeLeavesBufferUntouched(t *testing.T) {
	got := Empty[int, AABB]().Query(boxQuery(box(0, 0, 0, 1, 1, 1)), []int{3, 3, 1})
	if !slices.Equal(got, []int{3, 3, 1}) {
		t.Errorf("Query = %v, want buffer unchanged", got)
	}
}

func TestEdgeCase_SingleObject(t *testing.T) {
	tree := FromObjects([]Item[int, AABB]{{Key: 9, Object: box(1, 1, 1, 2, 2, 2)}})

	if len(tree.Nodes()) != 1 || !tree.Nodes()[0].IsLeaf {
		t.Fatalf("nodes = %+v, want a single leaf", tree.Nodes())
	}
	if got := tree.Query(boxQuery(box(1.5, 1.5, 1.5, 3, 3, 3)), nil); !slices.Equal(got, []int{9}) {
		t.Errorf("Query = %v, want [9]", got)
	}
	if got := tree.Query(boxQuery(box(3, 3, 3, 4, 4, 4)), nil); len(got) != 0 {
		t.Errorf("Query = %v, want empty", got)
	}
}

func TestEdgeCase_AllIdenticalBoxes(t *testing.T) {
	items := make([]Item[int, AABB], 100)
	for i := range items {
		items[i] = Item[int, AABB]{Key: i, Object: box(0, 0, 0, 1, 1, 1)}
	}

	for name, cfg := range map[string]Config{"default": DefaultConfig(), "split happy": splitHappyConfig()} {
		t.Run(name, func(t *testing.T) {
			tree, err := FromObjectsWithConfig(items, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			// Every candidate plane lies on the boundary, so nothing splits.
			if len(tree.Nodes()) != 1 {
				t.Errorf("len(Nodes()) = %d, want 1", len(tree.Nodes()))
			}
			if got := tree.Query(boxQuery(box(0.5, 0.5, 0.5, 0.6, 0.6, 0.6)), nil); len(got) != 100 {
				t.Errorf("Query returned %d keys, want 100", len(got))
			}
		})
	}
}

func TestEdgeCase_IdenticalPoints(t *testing.T) {
	items := make([]Item[int, Point], 50)
	for i := range items {
		items[i] = Item[int, Point]{Key: i, Object: Point{r3.Vec{X: 5, Y: 5, Z: 5}}}
	}
	tree := FromObjects(items)

	if got := tree.Query(pointQuery(box(4, 4, 4, 5, 5, 5)), nil); len(got) != 50 {
		t.Errorf("Query returned %d keys, want 50", len(got))
	}
	if got := tree.Query(pointQuery(box(5.1, 5, 5, 6, 6, 6)), nil); len(got) != 0 {
		t.Errorf("Query = %v, want empty", got)
	}
}

func pointQuery(b AABB) BoxQuery[Point] { return BoxQuery[Point]{Box: b} }

func TestEdgeCase_PointCloudIsNotDuplicated(t *testing.T) {
	// Points never straddle a plane, so each one lands in exactly one leaf.
	rng := rand.New(rand.NewSource(23))
	items := make([]Item[int, Point], 500)
	for i := range items {
		items[i] = Item[int, Point]{Key: i, Object: Point{vec(rng.Float64()*10, rng.Float64()*10, rng.Float64()*10)}}
	}

	for name, cfg := range map[string]Config{"default": DefaultConfig(), "split happy": splitHappyConfig()} {
		t.Run(name, func(t *testing.T) {
			tree, err := FromObjectsWithConfig(items, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			s := tree.Stats()
			if s.LeafReferences != len(items) {
				t.Errorf("LeafReferences = %d, want %d", s.LeafReferences, len(items))
			}
			if s.Leaves < 2 {
				t.Errorf("Leaves = %d, want a split tree", s.Leaves)
			}
		})
	}
}

func TestEdgeCase_CollinearPoints(t *testing.T) {
	// The root boundary is a segment with zero surface area. The tree must
	// still build and answer queries correctly.
	items := make([]Item[int, Point], 200)
	for i := range items {
		items[i] = Item[int, Point]{Key: i, Object: Point{r3.Vec{X: float64(i)}}}
	}
	tree, err := FromObjectsWithConfig(items, splitHappyConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := tree.Query(pointQuery(box(10, -1, -1, 12.5, 1, 1)), nil)
	if !slices.Equal(got, []int{10, 11, 12}) {
		t.Errorf("Query = %v, want [10 11 12]", got)
	}
}

func TestEdgeCase_FlatBoxes(t *testing.T) {
	// Zero-thickness boxes on shared planes exercise the End-before-Start
	// ordering at equal distances.
	rng := rand.New(rand.NewSource(21))
	var items []Item[int, AABB]
	for i := 0; i < 120; i++ {
		x := float64(rng.Intn(10))
		y, z := rng.Float64()*10, rng.Float64()*10
		items = append(items, Item[int, AABB]{Key: i, Object: box(x, y, z, x, y+2, z+2)})
	}
	tree, err := FromObjectsWithConfig(items, splitHappyConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 100; i++ {
		q := boxQuery(randomBoxes(rng, 1, 12, 4)[0].Object)
		got := tree.Query(q, nil)
		want := bruteForceQuery(items, Query[AABB](q))
		if !slices.Equal(got, want) {
			t.Fatalf("query %d: tree = %v, brute force = %v", i, got, want)
		}
	}
}

func TestEdgeCase_NestedBoxes(t *testing.T) {
	// Concentric boxes: every object straddles every interior plane.
	items := make([]Item[int, AABB], 40)
	for i := range items {
		r := float64(i + 1)
		items[i] = Item[int, AABB]{Key: i, Object: box(-r, -r, -r, r, r, r)}
	}
	tree, err := FromObjectsWithConfig(items, splitHappyConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := tree.Query(boxQuery(box(0, 0, 0, 0, 0, 0)), nil)
	if len(got) != 40 {
		t.Errorf("query at origin returned %d keys, want 40", len(got))
	}
	got = tree.Query(boxQuery(box(39.5, 0, 0, 39.5, 0, 0)), nil)
	if !slices.Equal(got, []int{39}) {
		t.Errorf("query near the outer shell = %v, want [39]", got)
	}
}

func TestEdgeCase_DuplicateKeysLastObjectWins(t *testing.T) {
	items := []Item[int, AABB]{
		{Key: 1, Object: box(0, 0, 0, 1, 1, 1)},
		{Key: 1, Object: box(10, 10, 10, 11, 11, 11)},
	}
	tree := FromObjects(items)

	if tree.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tree.Len())
	}
	if got := tree.Query(boxQuery(box(10, 10, 10, 10.5, 10.5, 10.5)), nil); !slices.Equal(got, []int{1}) {
		t.Errorf("Query = %v, want [1]", got)
	}
	if got := tree.Query(boxQuery(box(0, 0, 0, 0.5, 0.5, 0.5)), nil); len(got) != 0 {
		t.Errorf("Query = %v, want empty: key 1 now refers to the second box", got)
	}
}
