package canvas

import "fmt"

// DefaultTolerance is the distance, in pixels, within which a point counts as
// lying on a line segment.
const DefaultTolerance = 1.0

// boundsEpsilon absorbs rounding error when checking whether a computed
// intersection lies within a segment's bounding box.
const boundsEpsilon = 1e-9

// Segment is a line segment between two endpoints.
type Segment struct {
	P0 Point
	P1 Point
}

// Seg returns the segment from p0 to p1.
func Seg(p0, p1 Point) Segment {
	return Segment{P0: p0, P1: p1}
}

func (s Segment) String() string {
	return fmt.Sprintf("segment %v–%v", s.P0, s.P1)
}

// Line returns the infinite line through the segment's endpoints.
func (s Segment) Line() Line {
	return Line(s)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P0.Distance(s.P1)
}

func (s Segment) BoundingBox() Rect {
	return NewRectFromPoints(s.P0, s.P1)
}

// IsHorizontal reports whether both endpoints have the same y coordinate.
func (s Segment) IsHorizontal() bool {
	return s.P0.Y == s.P1.Y
}

// InBounds reports whether pt lies within the segment's bounding box.
func (s Segment) InBounds(pt Point) bool {
	return s.BoundingBox().ContainsClosed(pt, boundsEpsilon)
}

// ContainsPoint reports whether pt lies within the segment's bounding box and
// at most [DefaultTolerance] away from its line.
func (s Segment) ContainsPoint(pt Point) bool {
	return s.InBounds(pt) && s.Line().ContainsPoint(pt, DefaultTolerance)
}

// IntersectionPoint returns the point where s and o cross. It reports false if
// the segments are parallel or their lines cross outside of either segment.
func (s Segment) IntersectionPoint(o Segment) (Point, bool) {
	pt, err := s.Line().IntersectionPoint(o.Line())
	if err != nil {
		return Point{}, false
	}
	if !s.ContainsPoint(pt) || !o.ContainsPoint(pt) {
		return Point{}, false
	}
	return pt, true
}

// Intersects reports whether s and o cross.
func (s Segment) Intersects(o Segment) bool {
	_, ok := s.IntersectionPoint(o)
	return ok
}

// Translate returns the segment moved by v.
func (s Segment) Translate(v Vector) Segment {
	return Segment{P0: s.P0.Move(v, 1), P1: s.P1.Move(v, 1)}
}
