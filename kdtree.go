package kdtree

import (
	"slices"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"golang.org/x/exp/constraints"
)

// KDTree is an immutable kd-tree over the bounding boxes of a set of objects,
// built with the Surface Area Heuristic. Nodes live in one flat array in
// pre-order; see [Node].
//
// A built tree is never modified, so it can be queried from many goroutines
// at once.
type KDTree[K constraints.Ordered, O Insertable] struct {
	nodes        []Node[K]
	objects      map[K]O
	rootBoundary AABB
	cfg          Config
	stats        Stats
}

// Empty returns a tree with no nodes and an empty root boundary.
func Empty[K constraints.Ordered, O Insertable]() *KDTree[K, O] {
	return &KDTree[K, O]{
		objects:      map[K]O{},
		rootBoundary: EmptyAABB(),
		cfg:          DefaultConfig(),
	}
}

// FromObjects builds a tree over items with [DefaultConfig]. Keys must be
// unique; when a key repeats, the last object wins in the object store.
func FromObjects[K constraints.Ordered, O Insertable](items []Item[K, O]) *KDTree[K, O] {
	return build(items, DefaultConfig())
}

// FromObjectsWithConfig builds a tree over items using the cost weights in
// cfg. It only fails when cfg is invalid.
func FromObjectsWithConfig[K constraints.Ordered, O Insertable](items []Item[K, O], cfg Config) (*KDTree[K, O], error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return build(items, cfg), nil
}

// build constructs the tree with an already validated cfg.
func build[K constraints.Ordered, O Insertable](items []Item[K, O], cfg Config) *KDTree[K, O] {
	t := Empty[K, O]()
	t.cfg = cfg
	if len(items) == 0 {
		return t
	}

	for _, it := range items {
		t.objects[it.Key] = it.Object
	}

	events, boundary := buildEvents(items)
	t.rootBoundary = boundary
	t.nodes = buildNode(len(items), boundary, events, &t.cfg)
	t.stats = computeStats(t.nodes, len(t.objects))

	instrumentBuild(t.stats)
	logs.WithTag("objects", t.stats.Objects).
		WithTag("events", len(events)).
		WithTag("nodes", t.stats.Nodes).
		WithTag("leaves", t.stats.Leaves).
		WithTag("depth", t.stats.Depth).
		Debug("kd-tree built")

	return t
}

// buildNode recursively builds the subtree for a node holding objectCount
// objects whose sorted events are given. The returned fragment is indexed
// from 0.
func buildNode[K constraints.Ordered](objectCount int, boundary AABB, events []Event[K], cfg *Config) []Node[K] {
	best := partition(objectCount, boundary, events, cfg)
	if best.Cost > cfg.CostIntersection*float64(objectCount) {
		return []Node[K]{newLeaf(leafKeys(events))}
	}

	plane := events[best.SplitIndex].Plane
	leftBoundary, rightBoundary := boundary.Split(plane)

	sides := classify(events, best.SplitIndex)
	leftEvents, rightEvents, nLeft, nRight := splice(events, sides, best.LeftCount, best.RightCount)

	left := buildNode(nLeft, leftBoundary, leftEvents, cfg)
	right := buildNode(nRight, rightBoundary, rightEvents, cfg)

	parent := Node[K]{LeftBoundary: leftBoundary, RightBoundary: rightBoundary}
	return flatten(parent, left, right)
}

// leafKeys collects one key per object from its X-axis Start event.
func leafKeys[K constraints.Ordered](events []Event[K]) []K {
	var keys []K
	for _, e := range events {
		if e.Plane.Axis == AxisX && e.Type == EventStart {
			keys = append(keys, e.Key)
		}
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}

// RootBoundary returns the union of the bounding boxes of every object in
// the tree. For an empty tree it is [EmptyAABB].
func (t *KDTree[K, O]) RootBoundary() AABB { return t.rootBoundary }

// Len returns the number of objects stored in the tree.
func (t *KDTree[K, O]) Len() int { return len(t.objects) }

// Object returns the object stored under key.
func (t *KDTree[K, O]) Object(key K) (O, bool) {
	o, ok := t.objects[key]
	return o, ok
}

// Nodes returns the flattened node array. Callers must not modify it.
func (t *KDTree[K, O]) Nodes() []Node[K] { return t.nodes }

// Config returns the cost weights the tree was built with.
func (t *KDTree[K, O]) Config() Config { return t.cfg }

// Query appends to result the keys of every object intersecting q and
// returns the extended slice.
//
// Candidates are gathered from all leaves whose cells overlap q, then the
// whole of result is sorted, deduplicated and filtered with
// q.IntersectsObject. Pass an empty slice (or a reused one truncated to
// length 0) unless earlier entries should go through the same filtering.
func (t *KDTree[K, O]) Query(q Query[O], result []K) []K {
	if len(t.nodes) == 0 {
		return result
	}

	result = t.collect(0, t.rootBoundary, q, result)
	slices.Sort(result)
	result = slices.Compact(result)
	candidates := len(result)

	matches := result[:0]
	for _, key := range result {
		if o, ok := t.objects[key]; ok && q.IntersectsObject(o) {
			matches = append(matches, key)
		}
	}

	instrumentQuery(candidates, len(matches))
	return matches
}

// collect appends the keys of every leaf reachable from node whose cell,
// bounded by boundary, overlaps q.
func (t *KDTree[K, O]) collect(node int, boundary AABB, q Query[O], result []K) []K {
	if !q.IntersectsAABB(boundary) {
		return result
	}

	n := &t.nodes[node]
	if n.IsLeaf {
		return append(result, n.Keys...)
	}
	result = t.collect(n.Left, n.LeftBoundary, q, result)
	return t.collect(n.Right, n.RightBoundary, q, result)
}
