package planarsweep

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/samples-of-junichim/planar-sweep-method/linesegment"
	"github.com/samples-of-junichim/planar-sweep-method/numeric"
	"github.com/samples-of-junichim/planar-sweep-method/point"
	"github.com/samples-of-junichim/planar-sweep-method/twothreetree"
)

const (
	// sweepDelta is the offset used to disambiguate comparisons at a
	// crossing: stepping back gives the pre-crossing order, stepping forward
	// the post-crossing one. Tied to the parallel tolerance of the geometry
	// package; the constants cannot be changed independently.
	sweepDelta = 1e-5

	// verticalExtent is the half-width of the throwaway horizontal segments
	// that bound the status range query for a vertical segment. Large enough
	// to dominate rounding of the probe evaluations.
	verticalExtent = 1.0
)

// sweeper carries the state of one sweep: the shared sweep-line position, the
// status structure A, the event queue B, and the intersections found so far.
type sweeper struct {
	sweep *sweepline
	a     *twothreetree.Tree[statusEntry]
	b     *twothreetree.Tree[event]

	// crosses lists the intersection points in discovery order; seen holds
	// the same points for the exact-equality duplicate check.
	crosses []point.Point
	seen    *hashset.Set
}

func newSweeper() *sweeper {
	sweep := &sweepline{x: -math.MaxFloat64}
	return &sweeper{
		sweep: sweep,
		a:     newStatusTree(sweep),
		b:     newEventTree(),
		seen:  hashset.New(),
	}
}

// FindIntersections computes all pairwise intersection points of the given
// segments with the Bentley–Ottmann sweep.
//
// Every point in the result is a true intersection of at least two input
// segments and appears exactly once (under exact-float equality), in the
// order it was discovered. Crossings of vertical segments with non-vertical
// ones are included; collinear overlaps are not reported.
//
// The only errors are fatal logic errors: geometric degeneracies the
// tie-break offset cannot resolve, or a broken internal invariant.
func FindIntersections(segments []linesegment.LineSegment) ([]point.Point, error) {
	s := newSweeper()
	if err := s.enqueueEndpoints(segments); err != nil {
		return nil, err
	}
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.crosses, nil
}

// enqueueEndpoints seeds the event queue with both endpoints of every
// segment. Degenerate (zero-length) segments and exact duplicates are
// dropped: neither carries crossing information of its own, and a duplicate
// would leave a second removal event behind after the shared status entry is
// gone. The status structure starts empty.
func (s *sweeper) enqueueEndpoints(segments []linesegment.LineSegment) error {
	unique := make([]linesegment.LineSegment, 0, len(segments))
	for _, seg := range segments {
		if seg.P1().Eq(seg.P2()) {
			continue
		}
		dup := false
		for _, u := range unique {
			if u.Eq(seg) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, seg)
		}
	}

	for i, seg := range unique {
		if _, err := s.b.Insert(event{
			kind:    eventLeft,
			point:   seg.LeftPoint(),
			segment: seg,
			id:      i,
		}); err != nil {
			return err
		}
		if _, err := s.b.Insert(event{
			kind:    eventRight,
			point:   seg.RightPoint(),
			segment: seg,
			id:      i,
		}); err != nil {
			return err
		}
	}
	return nil
}

// run advances the sweep line through the event queue until it drains.
func (s *sweeper) run() error {
	for {
		lfb := s.b.Minimum()
		if lfb == nil {
			return nil
		}
		ev := lfb.Cargo()

		s.sweep.x = ev.point.X()
		logDebugf("event %s, sweep x=%g", ev, s.sweep.x)

		var err error
		switch ev.kind {
		case eventLeft:
			err = s.handleLeft(ev)
		case eventRight:
			err = s.handleRight(ev)
		case eventCross:
			err = s.handleCross(ev)
		}
		if err != nil {
			return err
		}

		if err := s.b.Delete(ev); err != nil {
			return err
		}
	}
}

// handleLeft inserts the segment into the status structure and probes its new
// neighbors for crossings. Vertical segments are fully resolved here by a
// range query and never enter the status structure.
func (s *sweeper) handleLeft(ev event) error {
	if ev.segment.IsVertical() {
		return s.handleVertical(ev)
	}

	entry := statusEntry{segment: ev.segment}
	lfa, err := s.a.Insert(entry)
	if err != nil {
		// The left endpoint sits on an intersection already at the sweep
		// line; nudge past it, insert, and restore the sweep position.
		logDebugf("left insert retry for %s: %v", ev.segment, err)
		s.sweep.x += sweepDelta
		lfa, err = s.a.Insert(entry)
		s.sweep.x = ev.point.X()
		if err != nil {
			return fmt.Errorf("inserting %s at x=%g: %w", ev.segment, s.sweep.x, err)
		}
	}

	if prev := s.a.Predecessor(lfa); prev != nil {
		if err := s.checkCrossing(lfa.Cargo(), prev.Cargo()); err != nil {
			return err
		}
	}
	if next := s.a.Successor(lfa); next != nil {
		if err := s.checkCrossing(lfa.Cargo(), next.Cargo()); err != nil {
			return err
		}
	}
	return nil
}

// handleVertical records the crossing of a vertical segment with every status
// segment whose y at the sweep line falls inside the vertical's extent. The
// range is bounded by two throwaway horizontal segments at the vertical's
// lowest and highest y.
func (s *sweeper) handleVertical(ev event) error {
	x := ev.point.X()
	lo := statusEntry{segment: linesegment.New(x-verticalExtent, ev.segment.MinY(), x+verticalExtent, ev.segment.MinY())}
	hi := statusEntry{segment: linesegment.New(x-verticalExtent, ev.segment.MaxY(), x+verticalExtent, ev.segment.MaxY())}

	leaves, err := s.a.Range(lo, hi)
	if err != nil {
		return fmt.Errorf("vertical segment %s: %w", ev.segment, err)
	}
	for _, lf := range leaves {
		y, status := lf.Cargo().segment.YAt(x)
		if status != linesegment.IntersectionPoint {
			return fmt.Errorf("%w: %s has no y at x=%g (%s)",
				ErrUnorderable, lf.Cargo().segment, x, status)
		}
		s.record(point.New(x, y))
	}
	return nil
}

// handleRight removes the segment from the status structure and probes its
// former neighbors, now adjacent, against each other.
func (s *sweeper) handleRight(ev event) error {
	if ev.segment.IsVertical() {
		// Fully handled on its left event.
		return nil
	}

	lfa, err := s.findStatusLeaf(ev.segment)
	if err != nil {
		return err
	}
	if lfa == nil {
		return fmt.Errorf("%w: right endpoint %s of %s", ErrSegmentNotFound, ev.point, ev.segment)
	}

	prev := s.a.Predecessor(lfa)
	next := s.a.Successor(lfa)

	s.a.DeleteLeaf(lfa)

	if prev != nil && next != nil {
		return s.checkCrossing(prev.Cargo(), next.Cargo())
	}
	return nil
}

// handleCross reorders the two crossing segments in the status structure and
// probes the new outer neighbor pairs.
func (s *sweeper) handleCross(ev event) error {
	if ev.second == (linesegment.LineSegment{}) {
		return fmt.Errorf("%w: %s", ErrMissingCrossSegment, ev)
	}

	lfa1, err := s.findStatusLeaf(ev.segment)
	if err != nil {
		return err
	}
	if lfa1 == nil {
		return fmt.Errorf("%w: crossing %s of %s", ErrSegmentNotFound, ev.point, ev.segment)
	}
	lfa2, err := s.findStatusLeaf(ev.second)
	if err != nil {
		return err
	}
	if lfa2 == nil {
		return fmt.Errorf("%w: crossing %s of %s", ErrSegmentNotFound, ev.point, ev.second)
	}

	// Establish which leaf currently sits below the other. The usual case is
	// adjacency; fall back to comparing at the current sweep position.
	lower, upper := lfa1, lfa2
	switch {
	case s.a.Successor(lfa1) == lfa2:
	case s.a.Successor(lfa2) == lfa1:
		lower, upper = lfa2, lfa1
	default:
		c, err := statusComparator(s.sweep)(lfa1.Cargo(), lfa2.Cargo())
		if err != nil {
			return err
		}
		if c > 0 {
			lower, upper = lfa2, lfa1
		}
	}

	// Post-crossing orientation: probe just right of the crossing.
	xNext := ev.point.X() + sweepDelta
	yLower, sLower := lower.Cargo().segment.YAt(xNext)
	yUpper, sUpper := upper.Cargo().segment.YAt(xNext)
	if sLower != linesegment.IntersectionPoint || sUpper != linesegment.IntersectionPoint {
		return fmt.Errorf("%w: %s or %s has no y at x=%g",
			ErrUnorderable, lower.Cargo().segment, upper.Cargo().segment, xNext)
	}
	if numeric.IsClose(yLower, yUpper) {
		return fmt.Errorf("%w: %s and %s at %s",
			ErrDegenerateCross, lower.Cargo().segment, upper.Cargo().segment, ev.point)
	}

	if yLower > yUpper {
		// The pair still holds the pre-crossing order; exchange them. When
		// the crossing coincides with a left endpoint, the insertion placed
		// the new segment below the one it touches: a segment leaving
		// upward is exchanged here, one leaving downward already holds the
		// post-crossing order and there is nothing to swap.
		s.a.Swap(lower, upper)
	}

	if next := s.a.Successor(upper); next != nil {
		if err := s.checkCrossing(upper.Cargo(), next.Cargo()); err != nil {
			return err
		}
	}
	if prev := s.a.Predecessor(lower); prev != nil {
		if err := s.checkCrossing(lower.Cargo(), prev.Cargo()); err != nil {
			return err
		}
	}
	return nil
}

// findStatusLeaf locates the status leaf holding exactly the given segment.
//
// The search lands on some leaf that compares equal to the segment at the
// current sweep position; collinear segments tie permanently, so that leaf
// may hold a different segment. The tied neighbors on both sides are then
// scanned for the exact one.
func (s *sweeper) findStatusLeaf(seg linesegment.LineSegment) (*twothreetree.Leaf[statusEntry], error) {
	entry := statusEntry{segment: seg}
	lfa, err := s.a.Search(entry)
	if err != nil || lfa == nil {
		return lfa, err
	}
	if lfa.Cargo().segment.Eq(seg) {
		return lfa, nil
	}

	compare := statusComparator(s.sweep)
	for lf := s.a.Predecessor(lfa); lf != nil; lf = s.a.Predecessor(lf) {
		if lf.Cargo().segment.Eq(seg) {
			return lf, nil
		}
		if c, err := compare(lf.Cargo(), entry); err != nil || c != 0 {
			break
		}
	}
	for lf := s.a.Successor(lfa); lf != nil; lf = s.a.Successor(lf) {
		if lf.Cargo().segment.Eq(seg) {
			return lf, nil
		}
		if c, err := compare(lf.Cargo(), entry); err != nil || c != 0 {
			break
		}
	}
	return nil, nil
}

// checkCrossing tests two status segments for a crossing point. A new
// crossing is recorded and enqueued as a future crossing event, unless a
// right endpoint event already sits at the same point or both segments begin
// there.
func (s *sweeper) checkCrossing(target, other statusEntry) error {
	cp, status := target.segment.Intersection(other.segment)
	if status != linesegment.IntersectionPoint {
		return nil
	}

	if !s.record(cp) {
		// Already discovered; its event, if any, is already queued.
		return nil
	}

	// Two segments that both begin at the crossing have no y before the
	// sweep line and cannot be ordered there; the later one was inserted with
	// the sweep line nudged past the crossing, so the status structure
	// already holds their post-crossing order.
	if target.segment.LeftPoint().Eq(cp) && other.segment.LeftPoint().Eq(cp) {
		return nil
	}

	// A crossing that coincides with a right endpoint is resolved by the
	// endpoint's own removal handling; queueing it as well would reorder
	// segments that are no longer both present.
	probe := event{
		kind:    eventRight,
		point:   cp,
		segment: target.segment,
		id:      -1,
	}
	lfb, err := s.b.Search(probe)
	if err != nil {
		return err
	}
	if lfb != nil {
		return nil
	}

	_, err = s.b.Insert(event{
		kind:    eventCross,
		point:   cp,
		segment: target.segment,
		second:  other.segment,
		id:      -1,
	})
	return err
}

// record appends cp to the intersection list unless an exactly equal point
// (both coordinates, ==) was already reported. It returns true when the point
// is new.
func (s *sweeper) record(cp point.Point) bool {
	if s.seen.Contains(cp) {
		return false
	}
	s.seen.Add(cp)
	s.crosses = append(s.crosses, cp)
	logDebugf("intersection %s", cp)
	return true
}
