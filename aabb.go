package kdtree

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// AABB is an axis-aligned bounding box. The zero value is a degenerate box at
// the origin; use [EmptyAABB] for a box that contains nothing.
type AABB struct {
	min r3.Vec
	max r3.Vec
}

// NewAABB returns the box spanned by two corners given in any order.
func NewAABB(a, b r3.Vec) AABB {
	return AABB{
		min: r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)},
		max: r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)},
	}
}

// EmptyAABB returns an inverted box (min=+Inf, max=-Inf). Merging any box
// into it yields that box, and it intersects nothing.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		min: r3.Vec{X: inf, Y: inf, Z: inf},
		max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

func (b AABB) Min() r3.Vec { return b.min }
func (b AABB) Max() r3.Vec { return b.max }

// IsEmpty reports whether the box has an inverted extent on any axis.
func (b AABB) IsEmpty() bool {
	return b.min.X > b.max.X || b.min.Y > b.max.Y || b.min.Z > b.max.Z
}

// Size returns max - min.
func (b AABB) Size() r3.Vec { return r3.Sub(b.max, b.min) }

// Center returns the midpoint of the box.
func (b AABB) Center() r3.Vec { return r3.Scale(0.5, r3.Add(b.min, b.max)) }

// Extent returns the (min, max) interval of the box along axis.
func (b AABB) Extent(axis Axis) (lo, hi float64) {
	return axis.of(b.min), axis.of(b.max)
}

// Merge returns the smallest box containing both b and o.
func (b AABB) Merge(o AABB) AABB {
	return AABB{
		min: r3.Vec{X: math.Min(b.min.X, o.min.X), Y: math.Min(b.min.Y, o.min.Y), Z: math.Min(b.min.Z, o.min.Z)},
		max: r3.Vec{X: math.Max(b.max.X, o.max.X), Y: math.Max(b.max.Y, o.max.Y), Z: math.Max(b.max.Z, o.max.Z)},
	}
}

// Split cuts the box with plane. The cut distance is clamped to the box
// extent, so a plane outside the box yields one degenerate side.
func (b AABB) Split(plane AlignedPlane) (left, right AABB) {
	lo, hi := b.Extent(plane.Axis)
	d := math.Min(math.Max(plane.Distance, lo), hi)

	left, right = b, b
	left.max = plane.Axis.with(left.max, d)
	right.min = plane.Axis.with(right.min, d)
	return left, right
}

// Surface returns the total area of the six faces.
func (b AABB) Surface() float64 {
	s := b.Size()
	return 2 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// Intersects reports whether the boxes overlap. Touching faces count.
func (b AABB) Intersects(o AABB) bool {
	return b.min.X <= o.max.X && b.max.X >= o.min.X &&
		b.min.Y <= o.max.Y && b.max.Y >= o.min.Y &&
		b.min.Z <= o.max.Z && b.max.Z >= o.min.Z
}

// ContainsPoint reports whether p lies inside the box or on its boundary.
func (b AABB) ContainsPoint(p r3.Vec) bool {
	return p.X >= b.min.X && p.X <= b.max.X &&
		p.Y >= b.min.Y && p.Y <= b.max.Y &&
		p.Z >= b.min.Z && p.Z <= b.max.Z
}

// closestPoint clamps p into the box.
func (b AABB) closestPoint(p r3.Vec) r3.Vec {
	return r3.Vec{
		X: math.Min(math.Max(p.X, b.min.X), b.max.X),
		Y: math.Min(math.Max(p.Y, b.min.Y), b.max.Y),
		Z: math.Min(math.Max(p.Z, b.min.Z), b.max.Z),
	}
}
