// Package point defines the foundational geometric primitive in this library,
// the Point type. All other geometric types, such as line segments and
// rectangles, are built upon it.
//
// A Point is an immutable pair of float64 coordinates in a standard
// right-handed Cartesian coordinate system (x increases to the right, y
// increases upward). Equality between points is approximate: Eq compares both
// coordinates under a relative floating-point tolerance, which is the right
// test for coordinates produced by geometric computation. Point is a plain
// comparable struct, so == remains available where exact-float identity is
// wanted (for example, deduplicating computed intersection points).
package point

import (
	"encoding/json"
	"fmt"

	"github.com/samples-of-junichim/planar-sweep-method/numeric"
)

// Point represents a point in two-dimensional space with x and y coordinates
// of type float64. Point is a value type; it is copied on assignment and never
// mutated.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{
		x: x,
		y: y,
	}
}

// X returns the x-coordinate of the point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point) Y() float64 {
	return p.y
}

// Eq determines whether the calling Point p is equal to another Point q under
// the package-wide relative floating-point tolerance.
//
// Approximate equality is the appropriate comparison for coordinates that come
// out of floating-point computation, where small precision errors may result
// in slightly different values.
func (p Point) Eq(q Point) bool {
	return numeric.IsClose(p.x, q.x) && numeric.IsClose(p.y, q.y)
}

// String returns the point in the form "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{
		X: p.x,
		Y: p.y,
	})
}

// UnmarshalJSON deserializes Point from JSON.
func (p *Point) UnmarshalJSON(data []byte) error {
	var aux struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.x = aux.X
	p.y = aux.Y
	return nil
}
