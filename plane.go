package kdtree

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Axis identifies one of the three coordinate axes. Axes are ordered
// X < Y < Z, which is the order used to break ties between events.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// axes lists every axis in tie-break order.
var axes = [3]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// of returns the coordinate of v along a.
func (a Axis) of(v r3.Vec) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// with returns v with its coordinate along a replaced by d.
func (a Axis) with(v r3.Vec, d float64) r3.Vec {
	switch a {
	case AxisX:
		v.X = d
	case AxisY:
		v.Y = d
	default:
		v.Z = d
	}
	return v
}

// AlignedPlane is the plane perpendicular to Axis at signed Distance from
// the origin.
type AlignedPlane struct {
	Axis     Axis
	Distance float64
}

// IntersectsAABB reports whether the plane cuts strictly through b. A plane
// lying on one of b's faces does not count: cutting there leaves one side
// identical to b.
func (p AlignedPlane) IntersectsAABB(b AABB) bool {
	lo, hi := b.Extent(p.Axis)
	return lo < p.Distance && p.Distance < hi
}

func (p AlignedPlane) String() string {
	return fmt.Sprintf("%s=%g", p.Axis, p.Distance)
}
