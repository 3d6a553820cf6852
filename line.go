package canvas

import "fmt"

// Line is the infinite line through two points.
type Line struct {
	P0 Point
	P1 Point
}

// Direction returns the vector from P0 to P1.
func (l Line) Direction() Vector {
	return VectorBetween(l.P0, l.P1)
}

// AngleToXAxis returns the angle of the line's direction, see
// [Vector.AngleToXAxis].
func (l Line) AngleToXAxis() (float64, error) {
	return l.Direction().AngleToXAxis()
}

// Normal returns the normal ⟨−dy, dx⟩ of the line in the xy plane.
func (l Line) Normal() Vector {
	d := l.Direction()
	return Vector{X: -d.Y, Y: d.X}
}

// Coefficients returns a, b and c of the implicit equation a·x + b·y + c = 0.
func (l Line) Coefficients() (a, b, c float64) {
	n := l.Normal()
	return n.X, n.Y, -(l.P0.X*n.X + l.P0.Y*n.Y)
}

// DistanceToPoint returns the perpendicular distance between pt and the line.
// A line through two equal points degenerates to the distance to that point.
func (l Line) DistanceToPoint(pt Point) float64 {
	d := l.Direction()
	m := d.Modulus()
	if m == 0 {
		return l.P0.Distance(pt)
	}
	// |(P−A)×B| / |B|
	return VectorBetween(l.P0, pt).Cross(d).Modulus() / m
}

// ClosestPoint returns the orthogonal projection of pt onto the line.
func (l Line) ClosestPoint(pt Point) Point {
	d, err := l.Direction().Normalize()
	if err != nil {
		return l.P0
	}
	t := VectorBetween(l.P0, pt).Dot(d)
	p := l.P0.Move(d, t)
	p.W = 1
	return p
}

// ContainsPoint reports whether pt is at most tolerance away from the line.
func (l Line) ContainsPoint(pt Point, tolerance float64) bool {
	return l.DistanceToPoint(pt) <= tolerance
}

// IntersectionPoint returns the point where l and o cross, using Cramer's rule
// on their implicit equations. Parallel and coincident lines have no unique
// intersection and return [ErrParallel].
func (l Line) IntersectionPoint(o Line) (Point, error) {
	a1, b1, c1 := l.Coefficients()
	a2, b2, c2 := o.Coefficients()
	det := a1*b2 - a2*b1
	if det == 0 {
		return Point{}, fmt.Errorf("intersect %v and %v: %w", l, o, ErrParallel)
	}
	return Pt(
		(b1*c2-b2*c1)/det,
		(c1*a2-c2*a1)/det,
	), nil
}

func (l Line) String() string {
	return fmt.Sprintf("line %v→%v", l.P0, l.P1)
}
