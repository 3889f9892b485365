package planarsweep

import "errors"

var (
	// ErrSegmentNotFound indicates an endpoint or crossing event referenced a
	// segment that is not in the sweep-line status structure.
	ErrSegmentNotFound = errors.New("planarsweep: segment not found in sweep-line status")
	// ErrMissingCrossSegment indicates a crossing event without its second segment.
	ErrMissingCrossSegment = errors.New("planarsweep: crossing event carries no second segment")
	// ErrUnorderable indicates two status segments that cannot be ordered at
	// the current sweep position even after stepping back by the tie-break
	// offset.
	ErrUnorderable = errors.New("planarsweep: segments cannot be ordered at the sweep line")
	// ErrDegenerateCross indicates two crossing segments that still compare
	// equal just past their crossing point.
	ErrDegenerateCross = errors.New("planarsweep: crossing segments remain coincident past the crossing")
)
