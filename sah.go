package kdtree

import "math"

// split is the outcome of one SAH sweep over a node's events.
type split struct {
	Cost       float64
	SplitIndex int // index of the event whose plane achieved Cost
	LeftCount  int
	RightCount int
}

// costSAH estimates the cost of cutting boundary with plane, given nL objects
// on the left and nR on the right. Planes not strictly inside boundary are
// rejected with +Inf.
func costSAH(plane AlignedPlane, boundary AABB, nL, nR int, cfg *Config) float64 {
	if !plane.IntersectsAABB(boundary) {
		return math.Inf(1)
	}

	left, right := boundary.Split(plane)
	area := boundary.Surface()
	pL := left.Surface() / area
	pR := right.Surface() / area

	cost := cfg.CostTraversal + cfg.CostIntersection*(float64(nL)*pL+float64(nR)*pR)
	if nL == 0 || nR == 0 {
		cost *= cfg.EmptyCutBonus
	}
	return cost
}

// partition sweeps the sorted events of a node holding objectCount objects
// and returns the cheapest split plane over all three axes.
//
// The per-axis counters follow Wald & Havran: an End event leaves the right
// side before its plane is evaluated, a Start event joins the left side
// after. Only a strictly cheaper candidate replaces the current best, so
// among equal costs the earliest event in sort order wins.
func partition[K any](objectCount int, boundary AABB, events []Event[K], cfg *Config) split {
	var left [3]int
	right := [3]int{objectCount, objectCount, objectCount}

	best := split{Cost: math.Inf(1)}
	for i, e := range events {
		a := e.Plane.Axis
		if e.Type == EventEnd {
			right[a]--
		}

		if cost := costSAH(e.Plane, boundary, left[a], right[a], cfg); cost < best.Cost {
			best = split{
				Cost:       cost,
				SplitIndex: i,
				LeftCount:  left[a],
				RightCount: right[a],
			}
		}

		if e.Type == EventStart {
			left[a]++
		}
	}
	return best
}
