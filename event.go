package planarsweep

import (
	"cmp"
	"fmt"

	"github.com/samples-of-junichim/planar-sweep-method/linesegment"
	"github.com/samples-of-junichim/planar-sweep-method/numeric"
	"github.com/samples-of-junichim/planar-sweep-method/point"
	"github.com/samples-of-junichim/planar-sweep-method/twothreetree"
)

// eventKind is the nature of an entry in the event queue.
type eventKind uint8

const (
	// eventLeft marks the sweep line reaching a segment's left endpoint.
	eventLeft eventKind = iota
	// eventCross marks the sweep line reaching a crossing of two segments.
	eventCross
	// eventRight marks the sweep line reaching a segment's right endpoint.
	eventRight
)

func (k eventKind) String() string {
	switch k {
	case eventLeft:
		return "LEFT"
	case eventCross:
		return "CROSS"
	case eventRight:
		return "RIGHT"
	default:
		return fmt.Sprintf("eventKind(%d)", uint8(k))
	}
}

// event is an entry in the event queue: a point in the plane at which the
// vertical order of segments under the sweep line can change.
//
// second is meaningful only for crossing events. id is the index of the
// segment in the input after degenerate and duplicate segments are dropped,
// for endpoint events, and -1 for crossings; probes built to search the queue
// also use -1, which matches any id.
type event struct {
	kind    eventKind
	point   point.Point
	segment linesegment.LineSegment
	second  linesegment.LineSegment
	id      int
}

func (e event) String() string {
	return fmt.Sprintf("%s %s %s", e.kind, e.point, e.segment)
}

// compareEvents is the total order of the event queue. It defines event
// identity as well as priority:
//
//  1. x coordinate, under the relative tolerance;
//  2. on an x tie, crossings sort before endpoints, so a crossing that
//     reorders the status structure is handled before a new left endpoint is
//     inserted against the stale order;
//  3. then y coordinate;
//  4. on a y tie, two crossings are the same point and compare equal, and a
//     left endpoint sorts before a right one, so a segment is in the status
//     structure before anything at the same point tries to remove around it;
//  5. finally the segment id; a missing id matches any.
func compareEvents(a, b event) int {
	if !numeric.IsClose(a.point.X(), b.point.X()) {
		if a.point.X() < b.point.X() {
			return -1
		}
		return 1
	}

	aCross := a.kind == eventCross
	bCross := b.kind == eventCross
	if aCross != bCross {
		if aCross {
			return -1
		}
		return 1
	}

	if !numeric.IsClose(a.point.Y(), b.point.Y()) {
		if a.point.Y() < b.point.Y() {
			return -1
		}
		return 1
	}

	if aCross {
		return 0
	}
	if a.kind != b.kind {
		if a.kind == eventLeft {
			return -1
		}
		return 1
	}
	if a.id < 0 || b.id < 0 {
		return 0
	}
	return cmp.Compare(a.id, b.id)
}

// newEventTree builds the event queue: a 2-3 tree keyed by compareEvents.
func newEventTree() *twothreetree.Tree[event] {
	compare := func(a, b event) (int, error) {
		return compareEvents(a, b), nil
	}
	key := func(e event) string {
		return e.String()
	}
	return twothreetree.New(func(e event) *twothreetree.Leaf[event] {
		return twothreetree.NewLeaf(e, compare, key)
	})
}
