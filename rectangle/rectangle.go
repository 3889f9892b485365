// Package rectangle provides an axis-aligned rectangle type.
//
// Within this library the rectangle's main job is to act as the bounding box
// of a line segment: point-in-box tests decide whether a point on a segment's
// infinite line actually lies on the finite segment, and whether a computed
// crossing of two infinite lines falls inside both segments.
package rectangle

import (
	"encoding/json"
	"fmt"

	"github.com/samples-of-junichim/planar-sweep-method/point"
)

// Rectangle represents an axis-aligned rectangle defined by its minimum and
// maximum corners. The zero value is the degenerate rectangle at the origin.
type Rectangle struct {
	minX float64
	minY float64
	maxX float64
	maxY float64
}

// New creates a Rectangle from two opposite corners given as raw coordinates.
// The corners may be supplied in any order; they are normalized to min/max.
func New(x1, y1, x2, y2 float64) Rectangle {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Rectangle{minX: x1, minY: y1, maxX: x2, maxY: y2}
}

// NewFromPoints creates the smallest Rectangle containing all given points.
// At least one point must be provided.
func NewFromPoints(pts ...point.Point) Rectangle {
	if len(pts) == 0 {
		panic(fmt.Errorf("rectangle: NewFromPoints requires at least one point"))
	}
	r := Rectangle{
		minX: pts[0].X(),
		minY: pts[0].Y(),
		maxX: pts[0].X(),
		maxY: pts[0].Y(),
	}
	for _, p := range pts[1:] {
		if p.X() < r.minX {
			r.minX = p.X()
		}
		if p.X() > r.maxX {
			r.maxX = p.X()
		}
		if p.Y() < r.minY {
			r.minY = p.Y()
		}
		if p.Y() > r.maxY {
			r.maxY = p.Y()
		}
	}
	return r
}

// ContainsPoint reports whether p lies inside the rectangle or on its
// boundary. The test is inclusive and exact; callers needing tolerance widen
// the rectangle instead.
func (r Rectangle) ContainsPoint(p point.Point) bool {
	return r.minX <= p.X() && p.X() <= r.maxX &&
		r.minY <= p.Y() && p.Y() <= r.maxY
}

// MinX returns the minimum x-coordinate of the rectangle.
func (r Rectangle) MinX() float64 { return r.minX }

// MinY returns the minimum y-coordinate of the rectangle.
func (r Rectangle) MinY() float64 { return r.minY }

// MaxX returns the maximum x-coordinate of the rectangle.
func (r Rectangle) MaxX() float64 { return r.maxX }

// MaxY returns the maximum y-coordinate of the rectangle.
func (r Rectangle) MaxY() float64 { return r.maxY }

// Width returns the horizontal extent of the rectangle.
func (r Rectangle) Width() float64 { return r.maxX - r.minX }

// Height returns the vertical extent of the rectangle.
func (r Rectangle) Height() float64 { return r.maxY - r.minY }

// Eq reports whether the calling rectangle equals other, comparing the
// normalized corners under the point tolerance.
func (r Rectangle) Eq(other Rectangle) bool {
	return point.New(r.minX, r.minY).Eq(point.New(other.minX, other.minY)) &&
		point.New(r.maxX, r.maxY).Eq(point.New(other.maxX, other.maxY))
}

// String returns the rectangle in the form "[(minX, minY), (maxX, maxY)]".
func (r Rectangle) String() string {
	return fmt.Sprintf("[(%g, %g), (%g, %g)]", r.minX, r.minY, r.maxX, r.maxY)
}

// MarshalJSON serializes Rectangle as JSON.
func (r Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Min point.Point `json:"min"`
		Max point.Point `json:"max"`
	}{
		Min: point.New(r.minX, r.minY),
		Max: point.New(r.maxX, r.maxY),
	})
}
