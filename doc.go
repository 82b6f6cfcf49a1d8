// Package kdtree implements a static kd-tree over axis-aligned bounding
// boxes, built with the Surface Area Heuristic (SAH) in O(N log N) following
// Wald & Havran, "On building fast kd-trees for ray tracing, and on doing
// that in O(N log N)" (2006).
//
// The tree answers "which objects intersect this volume" queries. Objects
// implement [Insertable]; query volumes implement [Query]. The package ships
// ready-made shapes ([AABB], [Sphere], [Point]) and queries ([BoxQuery],
// [SphereQuery]).
//
// Basic usage:
//
//	items := []kdtree.Item[int, kdtree.AABB]{
//		{Key: 1, Object: kdtree.NewAABB(r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1})},
//		{Key: 2, Object: kdtree.NewAABB(r3.Vec{X: 2, Y: 2, Z: 2}, r3.Vec{X: 3, Y: 3, Z: 3})},
//	}
//	tree := kdtree.FromObjects(items)
//	q := kdtree.BoxQuery[kdtree.AABB]{Box: kdtree.NewAABB(r3.Vec{}, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5})}
//	keys := tree.Query(q, nil) // [1]
//
// # Construction
//
// Every object contributes six events, a Start and an End on each axis.
// The events are sorted once by position, then axis, then type with End
// before Start. Each node sweeps its events to find the cheapest plane under
// the SAH cost model ([Config]), then splices its event list into two
// already sorted child lists, so no level re-sorts. A node becomes a leaf
// when the best split costs more than testing all of its objects.
//
// # Layout
//
// Nodes are stored in a single slice in pre-order with absolute child
// indices. Each internal node keeps the boundary of both children so queries
// never recompute cells.
//
// # Queries
//
// Query prunes subtrees whose cells miss the query volume, gathers leaf
// keys, sorts and deduplicates them (objects straddling planes appear in
// several leaves), then keeps only the keys whose object passes the exact
// IntersectsObject test. A built tree is read-only and safe for concurrent
// queries; [KDTree.QueryParallel] runs a batch over several goroutines.
package kdtree
