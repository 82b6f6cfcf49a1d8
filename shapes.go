package kdtree

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// BoundingBox makes an AABB usable as a stored object.
func (b AABB) BoundingBox() AABB { return b }

// IntersectsAABB is [AABB.Intersects].
func (b AABB) IntersectsAABB(o AABB) bool { return b.Intersects(o) }

// IntersectsSphere reports whether the sphere touches the box.
func (b AABB) IntersectsSphere(s Sphere) bool {
	return s.IntersectsAABB(b)
}

// Sphere is a solid ball.
type Sphere struct {
	Center r3.Vec
	Radius float64
}

func (s Sphere) BoundingBox() AABB {
	r := r3.Vec{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return NewAABB(r3.Sub(s.Center, r), r3.Add(s.Center, r))
}

// IntersectsAABB tests the distance from the centre to the closest point of b.
func (s Sphere) IntersectsAABB(b AABB) bool {
	if b.IsEmpty() {
		return false
	}
	d := r3.Sub(b.closestPoint(s.Center), s.Center)
	return r3.Dot(d, d) <= s.Radius*s.Radius
}

func (s Sphere) IntersectsSphere(o Sphere) bool {
	d := r3.Sub(o.Center, s.Center)
	r := s.Radius + o.Radius
	return r3.Dot(d, d) <= r*r
}

// Point is a single location in space.
type Point struct {
	r3.Vec
}

func (p Point) BoundingBox() AABB { return NewAABB(p.Vec, p.Vec) }

func (p Point) IntersectsAABB(b AABB) bool { return b.ContainsPoint(p.Vec) }

func (p Point) IntersectsSphere(s Sphere) bool {
	d := r3.Sub(p.Vec, s.Center)
	return r3.Dot(d, d) <= s.Radius*s.Radius
}

// SphereIntersecter is an object with an exact sphere test.
type SphereIntersecter interface {
	Insertable
	IntersectsSphere(s Sphere) bool
}

// BoxQuery searches for objects touching an axis-aligned box. The exact test
// is delegated to the object's own IntersectsAABB.
type BoxQuery[O Insertable] struct {
	Box AABB
}

func (q BoxQuery[O]) IntersectsAABB(b AABB) bool { return q.Box.Intersects(b) }
func (q BoxQuery[O]) IntersectsObject(o O) bool  { return o.IntersectsAABB(q.Box) }

// SphereQuery searches for objects touching a sphere.
type SphereQuery[O SphereIntersecter] struct {
	Sphere Sphere
}

func (q SphereQuery[O]) IntersectsAABB(b AABB) bool { return q.Sphere.IntersectsAABB(b) }
func (q SphereQuery[O]) IntersectsObject(o O) bool  { return o.IntersectsSphere(q.Sphere) }
