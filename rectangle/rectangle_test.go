package rectangle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samples-of-junichim/planar-sweep-method/point"
)

func TestNew_NormalizesCorners(t *testing.T) {
	r := New(3, 4, 1, 2)
	assert.Equal(t, 1.0, r.MinX())
	assert.Equal(t, 2.0, r.MinY())
	assert.Equal(t, 3.0, r.MaxX())
	assert.Equal(t, 4.0, r.MaxY())
	assert.Equal(t, 2.0, r.Width())
	assert.Equal(t, 2.0, r.Height())
}

func TestNewFromPoints(t *testing.T) {
	r := NewFromPoints(point.New(1, 5), point.New(-2, 3), point.New(4, -1))
	assert.True(t, r.Eq(New(-2, -1, 4, 5)))
}

func TestRectangle_ContainsPoint(t *testing.T) {
	r := New(0, 0, 2, 1)
	tests := map[string]struct {
		p        point.Point
		expected bool
	}{
		"interior":          {point.New(1, 0.5), true},
		"corner":            {point.New(0, 0), true},
		"edge":              {point.New(2, 0.5), true},
		"outside right":     {point.New(2.1, 0.5), false},
		"outside above":     {point.New(1, 1.1), false},
		"outside left":      {point.New(-0.1, 0.5), false},
		"bottom edge point": {point.New(1, 0), true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ContainsPoint(tt.p))
		})
	}
}

func TestRectangle_ContainsPoint_DegenerateBox(t *testing.T) {
	// A vertical segment's bounding box has zero width; points on the line
	// must still register as contained.
	r := New(1, 0, 1, 3)
	assert.True(t, r.ContainsPoint(point.New(1, 1.5)))
	assert.False(t, r.ContainsPoint(point.New(1.001, 1.5)))
}

func TestRectangle_String(t *testing.T) {
	assert.Equal(t, "[(0, 0), (2, 1)]", New(0, 0, 2, 1).String())
}
