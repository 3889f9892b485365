package planarsweep

import (
	"fmt"

	"github.com/samples-of-junichim/planar-sweep-method/linesegment"
	"github.com/samples-of-junichim/planar-sweep-method/numeric"
	"github.com/samples-of-junichim/planar-sweep-method/twothreetree"
)

// sweepline is the single shared scalar the status comparator observes. It is
// owned and mutated only by the sweeper, at the start of each event (and
// transiently during nudge retries and crossing-orientation probes).
type sweepline struct {
	x float64
}

// statusEntry is an entry of the status structure: a segment currently
// intersected by the sweep line, ordered by its y-coordinate there.
type statusEntry struct {
	segment linesegment.LineSegment
}

// statusComparator orders two status segments by their y at the sweep-line x.
//
// Equal y means either the same segment or segments meeting at the sweep
// line. For the latter, both are re-evaluated at x minus the tie-break
// offset — the order just before the crossing — so the structure is not
// reordered before the crossing event runs. A segment that has no y there
// (its left endpoint sits on the sweep line) sorts below one that does, which
// places a freshly inserted segment under the segment it touches. When
// neither side evaluates, the pair is unorderable and the caller decides
// whether to move the sweep line and retry.
func statusComparator(sweep *sweepline) twothreetree.Comparator[statusEntry] {
	return func(a, b statusEntry) (int, error) {
		ya, sa := a.segment.YAt(sweep.x)
		if sa != linesegment.IntersectionPoint {
			return 0, fmt.Errorf("%w: %s has no y at x=%g (%s)", ErrUnorderable, a.segment, sweep.x, sa)
		}
		yb, sb := b.segment.YAt(sweep.x)
		if sb != linesegment.IntersectionPoint {
			return 0, fmt.Errorf("%w: %s has no y at x=%g (%s)", ErrUnorderable, b.segment, sweep.x, sb)
		}

		if !numeric.IsClose(ya, yb) {
			if ya < yb {
				return -1, nil
			}
			return 1, nil
		}

		if a.segment.Eq(b.segment) {
			return 0, nil
		}

		// Same y, different segments: resolve with the pre-crossing order.
		xPrev := sweep.x - sweepDelta
		ya2, sa2 := a.segment.YAt(xPrev)
		yb2, sb2 := b.segment.YAt(xPrev)
		aOK := sa2 == linesegment.IntersectionPoint
		bOK := sb2 == linesegment.IntersectionPoint
		switch {
		case aOK && bOK:
			if numeric.IsClose(ya2, yb2) {
				return 0, nil
			}
			if ya2 < yb2 {
				return -1, nil
			}
			return 1, nil
		case aOK:
			// b begins at the sweep line; it sorts lower so its insertion
			// lands below the segment it touches.
			return 1, nil
		case bOK:
			return -1, nil
		default:
			return 0, fmt.Errorf("%w: neither %s nor %s has a y at x=%g",
				ErrUnorderable, a.segment, b.segment, xPrev)
		}
	}
}

// statusKey labels a status entry with its segment and, when defined, its y
// at the sweep line. Debug dumps only.
func statusKey(sweep *sweepline) twothreetree.KeyFunc[statusEntry] {
	return func(e statusEntry) string {
		y, status := e.segment.YAt(sweep.x)
		if status != linesegment.IntersectionPoint {
			return fmt.Sprintf("%s y=?", e.segment)
		}
		return fmt.Sprintf("%s y=%g", e.segment, y)
	}
}

// newStatusTree builds the status structure: a 2-3 tree whose leaves capture
// the shared sweep-line position in their comparator.
func newStatusTree(sweep *sweepline) *twothreetree.Tree[statusEntry] {
	compare := statusComparator(sweep)
	key := statusKey(sweep)
	return twothreetree.New(func(e statusEntry) *twothreetree.Leaf[statusEntry] {
		return twothreetree.NewLeaf(e, compare, key)
	})
}
