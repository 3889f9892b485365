// Package planarsweep finds all pairwise intersection points of a set of
// planar line segments with the Bentley–Ottmann sweep-line algorithm, in
// O((n+k) log n) time for n segments and k reported intersections.
//
// # Algorithm
//
// A vertical sweep line advances monotonically in x through the plane. Two
// ordered structures drive the sweep, both built on the 2-3 tree of
// [github.com/samples-of-junichim/planar-sweep-method/twothreetree]:
//
//   - The event queue holds pending events, keyed by (x, event kind, y,
//     segment id): segment left endpoints, right endpoints, and discovered
//     crossings. Crossings sort before endpoints that share their x, so that
//     the status order is corrected before new segments are inserted against
//     it.
//   - The status structure holds the segments currently intersected by the
//     sweep line, ordered by their y-coordinate at the sweep-line x. Its
//     comparator closes over the sweep position, so the ordering follows the
//     sweep without re-keying; ties at a crossing are broken by re-evaluating
//     just before the sweep line.
//
// At a left endpoint the segment enters the status structure and is tested
// against its two neighbors; at a right endpoint it leaves and its former
// neighbors are tested against each other; at a crossing the two segments
// swap places and the new neighbor pairs are tested. Every test that finds a
// crossing to the right of the sweep line enqueues it as a future event.
//
// # Degenerate inputs
//
// The implementation handles the cases that separate a working sweep from a
// textbook sketch: vertical segments (resolved by a range query over the
// status structure, never inserted into it), endpoints lying on another
// segment's interior, endpoints coinciding with intersection points,
// coincident endpoints, and several segments meeting one point. Collinear
// overlapping segments are classified but deliberately produce no
// intersection points.
//
// Use [FindIntersections] for the sweep and [FindIntersectionsSlow] as the
// quadratic reference implementation; both report each distinct intersection
// point exactly once.
package planarsweep
