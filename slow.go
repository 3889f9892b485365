package planarsweep

import (
	"github.com/google/btree"

	"github.com/samples-of-junichim/planar-sweep-method/linesegment"
	"github.com/samples-of-junichim/planar-sweep-method/point"
)

// FindIntersectionsSlow computes all pairwise intersection points with the
// O(n²) brute-force method: every pair of segments is tested directly.
//
// It reports the same set of points as [FindIntersections] — each distinct
// point once, collinear overlaps excluded — but ordered lexicographically by
// (x, y) rather than by discovery. It exists as the validation reference for
// the sweep and remains the faster choice for very small inputs.
func FindIntersectionsSlow(segments []linesegment.LineSegment) []point.Point {
	found := btree.NewG[point.Point](2, pointLess)
	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			if p, status := segments[i].Intersection(segments[j]); status == linesegment.IntersectionPoint {
				found.ReplaceOrInsert(p)
			}
		}
	}

	out := make([]point.Point, 0, found.Len())
	found.Ascend(func(p point.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

// pointLess orders points lexicographically by (x, y) with exact-float
// comparison, so the backing tree deduplicates exactly equal points.
func pointLess(a, b point.Point) bool {
	if a.X() != b.X() {
		return a.X() < b.X()
	}
	return a.Y() < b.Y()
}
