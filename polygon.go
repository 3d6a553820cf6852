package canvas

import (
	"cmp"
	"math"
	"slices"
)

// Polygon is a convex polygon described by an unordered set of vertices. Its
// boundary is the convex hull of the vertices.
type Polygon struct {
	vertices []Point

	filled     bool
	fillMethod int
	fillSeed   *Point
}

// NewPolygon returns a polygon with a copy of the given vertices.
func NewPolygon(vertices []Point) *Polygon {
	return &Polygon{vertices: slices.Clone(vertices)}
}

// Vertices returns a copy of the polygon's vertices, in the order they were
// given to [NewPolygon].
func (p *Polygon) Vertices() []Point {
	return slices.Clone(p.vertices)
}

// cross returns the z component of (a − o) × (b − o). It is positive if o, a,
// b make a left turn.
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Hull returns the vertices of the convex hull of pts, using Graham's scan.
// Collinear and duplicate points are dropped. The pivot, the point with the
// lowest y and then lowest x, is always the last point of the result.
func Hull(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	pivot := slices.MinFunc(pts, func(a, b Point) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	others := make([]Point, 0, len(pts)-1)
	for _, pt := range pts {
		if pt.X != pivot.X || pt.Y != pivot.Y {
			others = append(others, pt)
		}
	}
	// Every other point lies in the upper half plane of the pivot, so the sign
	// of the cross product orders them by their angle to the X axis.
	slices.SortStableFunc(others, func(a, b Point) int {
		if c := cross(pivot, a, b); c != 0 {
			if c > 0 {
				return -1
			}
			return 1
		}
		return cmp.Compare(pivot.DistanceSquared(a), pivot.DistanceSquared(b))
	})

	stack := make([]Point, 1, len(pts))
	stack[0] = pivot
	for _, pt := range others {
		for len(stack) >= 2 && cross(stack[len(stack)-2], stack[len(stack)-1], pt) <= 0 {
			stack = stack[:len(stack)-1]
		}
		if top := stack[len(stack)-1]; top.X == pt.X && top.Y == pt.Y {
			continue
		}
		stack = append(stack, pt)
	}
	slices.Reverse(stack)
	return stack
}

// Hull returns the vertices of the polygon's boundary. See [Hull].
func (p *Polygon) Hull() []Point {
	return Hull(p.vertices)
}

// Segments returns the boundary of the polygon, connecting consecutive hull
// vertices and the last vertex to the first. A polygon whose vertices all
// coincide has no boundary; one whose vertices are collinear has a single
// segment.
func (p *Polygon) Segments() []Segment {
	hull := p.Hull()
	switch len(hull) {
	case 0, 1:
		return nil
	case 2:
		return []Segment{{hull[0], hull[1]}}
	}
	segs := make([]Segment, len(hull))
	for i, pt := range hull {
		segs[i] = Segment{P0: pt, P1: hull[(i+1)%len(hull)]}
	}
	return segs
}

// ContainsPoint reports whether pt lies inside the polygon. It counts how
// often a vertical ray from pt to beyond the polygon's bounding box crosses
// the boundary. Each boundary segment is treated as half-open in x, so a ray
// through a vertex is counted once.
func (p *Polygon) ContainsPoint(pt Point) bool {
	segs := p.Segments()
	if len(segs) < 3 {
		return false
	}
	top := p.BoundingBox().MaxY() + 1
	if pt.Y > top {
		return false
	}
	var crossings int
	for _, s := range segs {
		a, b := s.P0, s.P1
		if (a.X > pt.X) == (b.X > pt.X) {
			continue
		}
		y := a.Y + (pt.X-a.X)*(b.Y-a.Y)/(b.X-a.X)
		if y > pt.Y && y <= top {
			crossings++
		}
	}
	return crossings%2 == 1
}

// Fill marks the polygon as filled by the fill algorithm identified by method,
// starting at seed. seed may be nil for algorithms that don't need one.
func (p *Polygon) Fill(method int, seed *Point) {
	p.filled = true
	p.fillMethod = method
	if seed != nil {
		s := *seed
		p.fillSeed = &s
	} else {
		p.fillSeed = nil
	}
}

func (p *Polygon) Filled() bool    { return p.filled }
func (p *Polygon) FillMethod() int { return p.fillMethod }

// FillSeed returns the point the polygon was filled from, if any.
func (p *Polygon) FillSeed() (Point, bool) {
	if p.fillSeed == nil {
		return Point{}, false
	}
	return *p.fillSeed, true
}

// HighestY returns the largest y coordinate of the polygon's vertices, or -Inf
// for a polygon without vertices. LowestY, LeftmostX and RightmostX behave
// analogously.
func (p *Polygon) HighestY() float64 {
	v := math.Inf(-1)
	for _, pt := range p.vertices {
		v = max(v, pt.Y)
	}
	return v
}

func (p *Polygon) LowestY() float64 {
	v := math.Inf(1)
	for _, pt := range p.vertices {
		v = min(v, pt.Y)
	}
	return v
}

func (p *Polygon) LeftmostX() float64 {
	v := math.Inf(1)
	for _, pt := range p.vertices {
		v = min(v, pt.X)
	}
	return v
}

func (p *Polygon) RightmostX() float64 {
	v := math.Inf(-1)
	for _, pt := range p.vertices {
		v = max(v, pt.X)
	}
	return v
}

// BoundingBox returns the smallest rectangle containing all vertices.
func (p *Polygon) BoundingBox() Rect {
	return BoundingBoxOf(p.vertices)
}

func (p *Polygon) Kind() Kind { return KindPolygon }

func (p *Polygon) Bounds() Rect { return p.BoundingBox() }

// Draw strokes the polygon's boundary with Bresenham's algorithm.
func (p *Polygon) Draw(s Surface) error {
	for _, seg := range p.Segments() {
		DrawBresenham(seg.P0, seg.P1, s)
	}
	return nil
}
