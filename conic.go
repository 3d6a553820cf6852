package canvas

import (
	"fmt"
	"math"
)

// MinEllipseSemiAxis is the size below which an ellipse is too small to
// digitize. Ellipses whose semi-axes are both smaller produce no points.
const MinEllipseSemiAxis = 2

// DefaultConicBound is the world-space coordinate at which open conics
// (parabolas and hyperbolas) stop being digitized.
const DefaultConicBound = 3000

// ConicOptions controls how far open conics are digitized. Zero values select
// defaults.
type ConicOptions struct {
	// XLimit and YLimit bound the walk, as offsets from the conic's vertex or
	// center. Parabolas default to DefaultConicBound minus the vertex
	// coordinate, hyperbolas to DefaultConicBound.
	XLimit float64
	YLimit float64
}

// step is one of the three candidate moves of a digitizer walk.
type step int

const (
	stepHorizontal step = iota
	stepVertical
	stepDiagonal
)

// choose returns the candidate with the smallest error, preferring horizontal
// over vertical over diagonal steps on ties.
func choose(horizontal, vertical, diagonal float64) step {
	switch {
	case horizontal <= vertical && horizontal <= diagonal:
		return stepHorizontal
	case vertical <= diagonal:
		return stepVertical
	default:
		return stepDiagonal
	}
}

// reflectAll returns the mirror images of pts across l.
func reflectAll(pts []Point, l Line) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = pt.ReflectAlongLine(l)
	}
	return out
}

func axes(origin Point) (horizontal, vertical Line) {
	return Line{origin, Pt(origin.X+1, origin.Y)}, Line{origin, Pt(origin.X, origin.Y+1)}
}

// quadrants mirrors a first-quadrant arc around origin into all four quadrants.
func quadrants(q1 []Point, origin Point) []Point {
	horizontal, vertical := axes(origin)
	q2 := reflectAll(q1, vertical)
	q3 := reflectAll(q2, horizontal)
	q4 := reflectAll(q1, horizontal)
	out := make([]Point, 0, 4*len(q1))
	out = append(out, q1...)
	out = append(out, q2...)
	out = append(out, q3...)
	return append(out, q4...)
}

func ellipseError(x, y, a, b float64) float64 {
	return math.Abs(x*x/(a*a) + y*y/(b*b) - 1)
}

// Ellipse digitizes the axis-aligned ellipse centered at origin with
// semi-axes a and b.
//
// The first quadrant is walked from (0, b) down to the x axis, each step
// moving to whichever neighbour lies closest to the ellipse, and ends at the
// pixel on the x axis closest to (a, 0). The other three quadrants are its
// reflections.
func Ellipse(origin Point, a, b float64) ([]Point, error) {
	if a == 0 || b == 0 {
		return nil, fmt.Errorf("ellipse with semi-axes %g, %g: %w", a, b, ErrDegenerate)
	}
	a, b = math.Abs(a), math.Abs(b)
	if a < MinEllipseSemiAxis && b < MinEllipseSemiAxis {
		Logger().Debug("skipping tiny ellipse", "a", a, "b", b)
		return nil, nil
	}
	origin = origin.Trunc()

	var q1 []Point
	x, y := 0.0, math.Trunc(b)
	for {
		q1 = append(q1, Pt(origin.X+x, origin.Y+y))
		// On the x axis the only way on is outwards, which stops helping once
		// the vertex has been reached.
		if y == 0 {
			if ellipseError(x+1, 0, a, b) >= ellipseError(x, 0, a, b) {
				break
			}
			x++
			continue
		}
		switch choose(
			ellipseError(x+1, y, a, b),
			ellipseError(x, y-1, a, b),
			ellipseError(x+1, y-1, a, b),
		) {
		case stepHorizontal:
			x++
		case stepVertical:
			y--
		case stepDiagonal:
			x++
			y--
		}
	}
	return quadrants(q1, origin), nil
}

// parabolaError is the error of a point of y² = p·x, in the parabola's own
// frame. Points on the axis of symmetry other than the vertex never lie on
// the curve.
func parabolaError(along, across, p float64) float64 {
	if along == 0 {
		if across == 0 {
			return p
		}
		return math.Inf(1)
	}
	return math.Abs(across*across/along - p)
}

// Parabola digitizes the parabola with the given vertex and parameter p. A
// horizontal parabola satisfies y² = |p|·x and opens along the x axis; a
// vertical one satisfies x² = |p|·y. Negative values of p open the parabola
// towards negative coordinates.
func Parabola(vertex Point, p float64, horizontal bool, opts ConicOptions) ([]Point, error) {
	if p == 0 {
		return nil, fmt.Errorf("parabola with p = 0: %w", ErrDegenerate)
	}
	vertex = vertex.Trunc()
	// along and across are offsets parallel and perpendicular to the axis of
	// symmetry; the limits are translated into that frame.
	alongLimit, acrossLimit := opts.XLimit, opts.YLimit
	if alongLimit == 0 {
		alongLimit = DefaultConicBound - vertex.X
	}
	if acrossLimit == 0 {
		acrossLimit = DefaultConicBound - vertex.Y
	}
	if !horizontal {
		alongLimit, acrossLimit = acrossLimit, alongLimit
	}
	ap := math.Abs(p)

	var half []Point
	var along, across float64
	for {
		if horizontal {
			half = append(half, Pt(vertex.X+along, vertex.Y+across))
		} else {
			half = append(half, Pt(vertex.X+across, vertex.Y+along))
		}
		switch choose(
			parabolaError(along+1, across, ap),
			parabolaError(along, across+1, ap),
			parabolaError(along+1, across+1, ap),
		) {
		case stepHorizontal:
			along++
		case stepVertical:
			across++
		case stepDiagonal:
			along++
			across++
		}
		if along >= alongLimit || across >= acrossLimit {
			break
		}
	}

	horizontalAxis, verticalAxis := axes(vertex)
	symmetry, transverse := horizontalAxis, verticalAxis
	if !horizontal {
		symmetry, transverse = verticalAxis, horizontalAxis
	}
	pts := append(half, reflectAll(half, symmetry)...)
	if p < 0 {
		pts = reflectAll(pts, transverse)
	}
	return pts, nil
}

func hyperbolaError(x, y, a, b float64, horizontal bool) float64 {
	if horizontal {
		return math.Abs(x*x/(a*a) - y*y/(b*b) - 1)
	}
	return math.Abs(y*y/(b*b) - x*x/(a*a) - 1)
}

// Hyperbola digitizes the hyperbola centered at origin with semi-axes a and
// b. A horizontal hyperbola satisfies x²/a² − y²/b² = 1, a vertical one
// y²/b² − x²/a² = 1. One branch half is walked outwards from the vertex and
// reflected into all four quadrants.
func Hyperbola(origin Point, a, b float64, horizontal bool, opts ConicOptions) ([]Point, error) {
	if a == 0 || b == 0 {
		return nil, fmt.Errorf("hyperbola with semi-axes %g, %g: %w", a, b, ErrDegenerate)
	}
	a, b = math.Abs(a), math.Abs(b)
	origin = origin.Trunc()
	xLimit, yLimit := opts.XLimit, opts.YLimit
	if xLimit == 0 {
		xLimit = DefaultConicBound
	}
	if yLimit == 0 {
		yLimit = DefaultConicBound
	}

	x, y := math.Trunc(a), 0.0
	if !horizontal {
		x, y = 0, math.Trunc(b)
	}
	var q1 []Point
	for {
		q1 = append(q1, Pt(origin.X+x, origin.Y+y))
		switch choose(
			hyperbolaError(x+1, y, a, b, horizontal),
			hyperbolaError(x, y+1, a, b, horizontal),
			hyperbolaError(x+1, y+1, a, b, horizontal),
		) {
		case stepHorizontal:
			x++
		case stepVertical:
			y++
		case stepDiagonal:
			x++
			y++
		}
		if x >= xLimit || y >= yLimit {
			break
		}
	}
	return quadrants(q1, origin), nil
}
