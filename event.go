package kdtree

import (
	"cmp"
	"slices"
)

// EventType marks whether an event opens or closes an object's extent along
// its axis. End sorts before Start at the same position, so an object ending
// exactly where another begins is counted as already left of the plane.
type EventType uint8

const (
	EventEnd EventType = iota
	EventStart
)

func (t EventType) String() string {
	if t == EventEnd {
		return "end"
	}
	return "start"
}

// Event is one endpoint of an object's bounding box along one axis.
type Event[K any] struct {
	Plane AlignedPlane
	Type  EventType
	Key   K
}

// compareEvents orders events by distance, then axis, then type (End first).
// Keys do not take part; equal events keep their relative order under a
// stable sort.
func compareEvents[K any](a, b Event[K]) int {
	if c := cmp.Compare(a.Plane.Distance, b.Plane.Distance); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Plane.Axis, b.Plane.Axis); c != 0 {
		return c
	}
	return cmp.Compare(a.Type, b.Type)
}

// buildEvents emits six events per item (End then Start on every axis),
// sorts them stably and returns them with the union of all bounding boxes.
func buildEvents[K comparable, O Insertable](items []Item[K, O]) ([]Event[K], AABB) {
	boundary := EmptyAABB()
	events := make([]Event[K], 0, 6*len(items))

	for _, it := range items {
		box := it.Object.BoundingBox()
		boundary = boundary.Merge(box)
		for _, a := range axes {
			events = append(events,
				Event[K]{Plane: AlignedPlane{Axis: a, Distance: a.of(box.max)}, Type: EventEnd, Key: it.Key},
				Event[K]{Plane: AlignedPlane{Axis: a, Distance: a.of(box.min)}, Type: EventStart, Key: it.Key},
			)
		}
	}

	slices.SortStableFunc(events, compareEvents[K])
	return events, boundary
}
