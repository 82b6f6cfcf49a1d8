package kdtree

// Insertable is implemented by objects stored in a KDTree.
type Insertable interface {
	// BoundingBox returns a box enclosing the object. It must be well formed
	// and have finite coordinates.
	BoundingBox() AABB

	// IntersectsAABB reports whether the object's true geometry touches b.
	IntersectsAABB(b AABB) bool
}

// Query is a volume the tree can be searched with. IntersectsAABB is used to
// prune subtrees and may be conservative; IntersectsObject is the exact test
// applied to every candidate before it is returned.
type Query[O any] interface {
	IntersectsAABB(b AABB) bool
	IntersectsObject(o O) bool
}

// Item pairs an object with the key it is stored and reported under.
type Item[K comparable, O Insertable] struct {
	Key    K
	Object O
}
