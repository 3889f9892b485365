// Package linesegment provides the line segment primitive and the geometric
// queries the sweep-line intersection algorithm is built on: evaluating a
// segment's infinite line at a given x or y, testing point containment, and
// classifying how two segments intersect.
//
// A LineSegment is a value type holding its two endpoints in the order given;
// no positional relationship between the endpoints is assumed. The coefficients
// of the segment's infinite line a·x + b·y = c are derived on demand:
//
//	a = y2 - y1
//	b = x1 - x2
//	c = x1·y2 - y1·x2
//
// Queries that can fail (a vertical segment has no y at x, a computed crossing
// may fall outside a segment) return an IntersectionStatus alongside the
// result, so callers branch on the classification instead of sentinel values.
package linesegment

import (
	"encoding/json"
	"fmt"

	"github.com/samples-of-junichim/planar-sweep-method/numeric"
	"github.com/samples-of-junichim/planar-sweep-method/point"
	"github.com/samples-of-junichim/planar-sweep-method/rectangle"
)

// parallelTol is the absolute tolerance under which a determinant or a line
// coefficient is considered zero. It interacts with the sweep-line nudge
// constant; the two cannot be changed independently.
const parallelTol = 1e-10

// IntersectionStatus classifies the outcome of an intersection or line
// evaluation query on a LineSegment.
type IntersectionStatus uint8

const (
	// IntersectionNotCalculated is the zero value; no query has produced it.
	IntersectionNotCalculated IntersectionStatus = iota

	// IntersectionPoint indicates the query produced a valid point on the
	// segment (or, for Intersection, on both segments).
	IntersectionPoint

	// IntersectionParallel indicates two segments with parallel lines, or an
	// axis-parallel segment for which XAt/YAt is undefined.
	IntersectionParallel

	// IntersectionCollinear indicates two segments on the same infinite line
	// that do not touch.
	IntersectionCollinear

	// IntersectionCollinearOverlap indicates two segments on the same infinite
	// line that share at least one point, including segments that only touch
	// at an endpoint.
	IntersectionCollinearOverlap

	// IntersectionCollinearContained indicates collinear segments where one is
	// entirely inside the other.
	IntersectionCollinearContained

	// IntersectionOutsideSegment indicates the infinite lines cross, but the
	// crossing lies outside at least one of the segments' bounding boxes.
	IntersectionOutsideSegment
)

// String returns a human-readable name for the status.
func (s IntersectionStatus) String() string {
	switch s {
	case IntersectionNotCalculated:
		return "IntersectionNotCalculated"
	case IntersectionPoint:
		return "IntersectionPoint"
	case IntersectionParallel:
		return "IntersectionParallel"
	case IntersectionCollinear:
		return "IntersectionCollinear"
	case IntersectionCollinearOverlap:
		return "IntersectionCollinearOverlap"
	case IntersectionCollinearContained:
		return "IntersectionCollinearContained"
	case IntersectionOutsideSegment:
		return "IntersectionOutsideSegment"
	default:
		return fmt.Sprintf("IntersectionStatus(%d)", uint8(s))
	}
}

// LineSegment represents a line segment in 2D space, defined by two endpoints.
// The endpoints carry no ordering; use LeftPoint and RightPoint for the
// x-ordered view the sweep line needs.
type LineSegment struct {
	p1 point.Point
	p2 point.Point
}

// New creates a LineSegment from raw endpoint coordinates.
func New(x1, y1, x2, y2 float64) LineSegment {
	return NewFromPoints(point.New(x1, y1), point.New(x2, y2))
}

// NewFromPoints creates a LineSegment from two endpoints, preserving their
// order.
func NewFromPoints(p1, p2 point.Point) LineSegment {
	return LineSegment{p1: p1, p2: p2}
}

// P1 returns the first endpoint as given at construction.
func (l LineSegment) P1() point.Point { return l.p1 }

// P2 returns the second endpoint as given at construction.
func (l LineSegment) P2() point.Point { return l.p2 }

// A returns the x coefficient of the segment's infinite line a·x + b·y = c.
func (l LineSegment) A() float64 {
	return l.p2.Y() - l.p1.Y()
}

// B returns the y coefficient of the segment's infinite line a·x + b·y = c.
func (l LineSegment) B() float64 {
	return l.p1.X() - l.p2.X()
}

// C returns the constant term of the segment's infinite line a·x + b·y = c.
func (l LineSegment) C() float64 {
	return l.p1.X()*l.p2.Y() - l.p1.Y()*l.p2.X()
}

// LeftPoint returns the endpoint with the smaller x-coordinate. For vertical
// segments (equal x) it returns P2.
func (l LineSegment) LeftPoint() point.Point {
	if l.p1.X() < l.p2.X() {
		return l.p1
	}
	return l.p2
}

// RightPoint returns the endpoint with the larger x-coordinate. For vertical
// segments (equal x) it returns P1.
func (l LineSegment) RightPoint() point.Point {
	if l.p1.X() < l.p2.X() {
		return l.p2
	}
	return l.p1
}

// MinY returns the smaller y-coordinate of the two endpoints.
func (l LineSegment) MinY() float64 {
	if l.p1.Y() < l.p2.Y() {
		return l.p1.Y()
	}
	return l.p2.Y()
}

// MaxY returns the larger y-coordinate of the two endpoints.
func (l LineSegment) MaxY() float64 {
	if l.p1.Y() < l.p2.Y() {
		return l.p2.Y()
	}
	return l.p1.Y()
}

// BoundingBox returns the axis-aligned bounding box of the segment.
func (l LineSegment) BoundingBox() rectangle.Rectangle {
	return rectangle.NewFromPoints(l.p1, l.p2)
}

// IsVertical reports whether the segment is parallel to the y-axis, i.e. the
// y coefficient of its line is zero within tolerance.
func (l LineSegment) IsVertical() bool {
	return numeric.IsCloseTol(l.B(), 0, 0, parallelTol)
}

// IsOnLine reports whether p lies on the segment's infinite line.
func (l LineSegment) IsOnLine(p point.Point) bool {
	return numeric.IsClose(l.C(), l.A()*p.X()+l.B()*p.Y())
}

// ContainsPoint reports whether p lies on the segment itself: on the infinite
// line and inside the bounding box.
func (l LineSegment) ContainsPoint(p point.Point) bool {
	return l.IsOnLine(p) && l.BoundingBox().ContainsPoint(p)
}

// Eq reports whether the calling segment and other have the same endpoints,
// in either orientation, under the point tolerance.
func (l LineSegment) Eq(other LineSegment) bool {
	return (l.p1.Eq(other.p1) && l.p2.Eq(other.p2)) ||
		(l.p1.Eq(other.p2) && l.p2.Eq(other.p1))
}

// Intersection computes the crossing of the calling segment with other.
//
// When the two infinite lines are parallel (the determinant is zero within
// tolerance) the returned status refines the relationship to
// IntersectionParallel, IntersectionCollinear, IntersectionCollinearOverlap or
// IntersectionCollinearContained; no point is returned in any of these cases,
// as collinear overlaps are not single crossing points. Otherwise the lines
// cross at
//
//	x = (c2·b1 - c1·b2) / d
//	y = (c1·a2 - c2·a1) / d          with d = a2·b1 - a1·b2
//
// and the point is returned with IntersectionPoint iff it lies inside both
// segments' bounding boxes; otherwise the status is
// IntersectionOutsideSegment.
func (l LineSegment) Intersection(other LineSegment) (point.Point, IntersectionStatus) {
	d := other.A()*l.B() - l.A()*other.B()
	if numeric.IsCloseTol(d, 0, 0, parallelTol) {
		status := IntersectionParallel
		if l.IsOnLine(other.p1) || l.IsOnLine(other.p2) {
			status = IntersectionCollinear
			if l.ContainsPoint(other.p1) || l.ContainsPoint(other.p2) ||
				other.ContainsPoint(l.p1) || other.ContainsPoint(l.p2) {
				status = IntersectionCollinearOverlap
				if (l.ContainsPoint(other.p1) && l.ContainsPoint(other.p2)) ||
					(other.ContainsPoint(l.p1) && other.ContainsPoint(l.p2)) {
					status = IntersectionCollinearContained
				}
			}
		}
		return point.Point{}, status
	}

	x := (other.C()*l.B() - l.C()*other.B()) / d
	y := (l.C()*other.A() - other.C()*l.A()) / d

	p := point.New(x, y)
	if l.BoundingBox().ContainsPoint(p) && other.BoundingBox().ContainsPoint(p) {
		return p, IntersectionPoint
	}
	return point.Point{}, IntersectionOutsideSegment
}

// YAt evaluates the segment's infinite line at the given x.
//
// The status is IntersectionParallel when the segment is vertical (no unique
// y exists), IntersectionOutsideSegment when the point at x falls outside the
// segment's bounding box, and IntersectionPoint on success.
func (l LineSegment) YAt(x float64) (float64, IntersectionStatus) {
	if l.IsVertical() {
		return 0, IntersectionParallel
	}
	y := (l.C() - l.A()*x) / l.B()
	if l.BoundingBox().ContainsPoint(point.New(x, y)) {
		return y, IntersectionPoint
	}
	return 0, IntersectionOutsideSegment
}

// XAt evaluates the segment's infinite line at the given y.
//
// The status is IntersectionParallel when the segment is horizontal (no unique
// x exists), IntersectionOutsideSegment when the point at y falls outside the
// segment's bounding box, and IntersectionPoint on success.
func (l LineSegment) XAt(y float64) (float64, IntersectionStatus) {
	if numeric.IsCloseTol(l.A(), 0, 0, parallelTol) {
		return 0, IntersectionParallel
	}
	x := (l.C() - l.B()*y) / l.A()
	if l.BoundingBox().ContainsPoint(point.New(x, y)) {
		return x, IntersectionPoint
	}
	return 0, IntersectionOutsideSegment
}

// String returns the segment in the form "(x1, y1)(x2, y2)".
func (l LineSegment) String() string {
	return fmt.Sprintf("%s%s", l.p1.String(), l.p2.String())
}

// MarshalJSON serializes LineSegment as JSON.
func (l LineSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		P1 point.Point `json:"p1"`
		P2 point.Point `json:"p2"`
	}{
		P1: l.p1,
		P2: l.p2,
	})
}

// UnmarshalJSON deserializes LineSegment from JSON.
func (l *LineSegment) UnmarshalJSON(data []byte) error {
	var aux struct {
		P1 point.Point `json:"p1"`
		P2 point.Point `json:"p2"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	l.p1 = aux.P1
	l.p2 = aux.P2
	return nil
}
