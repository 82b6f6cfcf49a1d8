package kdtree

// side records where an object goes when its node is split.
type side uint8

const (
	sideBoth side = iota
	sideLeft
	sideRight
)

// classify assigns every object touched on the split axis to a side of the
// plane at events[splitIndex]. Objects ending at or before the split go
// left, objects starting at or after it go right, the rest straddle.
func classify[K comparable](events []Event[K], splitIndex int) map[K]side {
	axis := events[splitIndex].Plane.Axis
	sides := make(map[K]side, len(events)/6+1)

	for _, e := range events[:splitIndex+1] {
		if e.Plane.Axis != axis {
			continue
		}
		if e.Type == EventEnd {
			sides[e.Key] = sideLeft
		} else if sides[e.Key] != sideLeft {
			// A flat object's End precedes its own Start.
			sides[e.Key] = sideBoth
		}
	}
	for _, e := range events[splitIndex:] {
		if e.Plane.Axis == axis && e.Type == EventStart {
			sides[e.Key] = sideRight
		}
	}
	return sides
}

// splice routes events into left and right lists according to sides. Both
// outputs keep the input order, so they stay sorted without re-sorting. The
// returned counts are the number of distinct objects on each side.
func splice[K comparable](events []Event[K], sides map[K]side, leftHint, rightHint int) (left, right []Event[K], nLeft, nRight int) {
	left = make([]Event[K], 0, 6*leftHint)
	right = make([]Event[K], 0, 6*rightHint)

	for _, e := range events {
		s := sides[e.Key]
		if s != sideRight {
			left = append(left, e)
		}
		if s != sideLeft {
			right = append(right, e)
		}

		if e.Plane.Axis != AxisX || e.Type != EventStart {
			continue
		}
		if s != sideRight {
			nLeft++
		}
		if s != sideLeft {
			nRight++
		}
	}
	return left, right, nLeft, nRight
}
