package canvas

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerate is returned when the input to a geometric operation has no
	// meaningful answer, such as the direction of a zero-length vector or a conic
	// with a zero semi-axis.
	ErrDegenerate = errors.New("canvas: degenerate input")

	// ErrParallel is returned when intersecting two parallel or coincident lines.
	// It wraps ErrDegenerate.
	ErrParallel = fmt.Errorf("%w: lines are parallel", ErrDegenerate)

	// ErrControlPoints is returned by curve constructors given the wrong number
	// of control points.
	ErrControlPoints = errors.New("canvas: wrong number of control points")

	// ErrTooManySegments is returned by [DiscoverPolygons] when the input would
	// require enumerating more than 2^[MaxDiscoverySegments] subsets.
	ErrTooManySegments = errors.New("canvas: too many segments for polygon discovery")
)
