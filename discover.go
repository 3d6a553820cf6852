package canvas

import (
	"fmt"
	"iter"
	"math/bits"
)

// MaxDiscoverySegments is the largest number of segments [DiscoverPolygons]
// accepts. Discovery examines every subset of its input.
const MaxDiscoverySegments = 20

// vertexEpsilon is the distance below which two intersection points are
// considered to be the same polygon vertex.
const vertexEpsilon = 1e-6

// IntersectionPoints returns the points where pairs of segments in segs cross,
// one per intersecting pair.
func IntersectionPoints(segs []Segment) []Point {
	var pts []Point
	for i, s := range segs {
		for _, o := range segs[i+1:] {
			if pt, ok := s.IntersectionPoint(o); ok {
				pts = append(pts, pt)
			}
		}
	}
	return pts
}

// IsConnectedAndClosed reports whether every segment in segs intersects
// exactly two of the others.
func IsConnectedAndClosed(segs []Segment) bool {
	for i, s := range segs {
		var n int
		for j, o := range segs {
			if i != j && s.Intersects(o) {
				n++
			}
		}
		if n != 2 {
			return false
		}
	}
	return true
}

// intersectionGraph returns the graph whose nodes are the intersection points
// of segs and whose undirected arcs connect points lying on a common segment.
func intersectionGraph(segs []Segment) *Graph[Point] {
	pts := IntersectionPoints(segs)
	var arcs []Arc
	for _, s := range segs {
		for i, p := range pts {
			if !s.ContainsPoint(p) {
				continue
			}
			for j := i + 1; j < len(pts); j++ {
				if s.ContainsPoint(pts[j]) {
					arcs = append(arcs, Arc{From: i, To: j})
				}
			}
		}
	}
	return NewGraph(pts, arcs)
}

// IntersectionGraphIsConnected reports whether the intersection points of
// segs form a connected graph, two points being adjacent if they lie on the
// same segment.
func IntersectionGraphIsConnected(segs []Segment) bool {
	return intersectionGraph(segs).IsConnected()
}

// IsPolygon reports whether segs bound a closed polygon: each segment meets
// exactly two others, the intersections form a single connected cycle, and
// there are at least three distinct vertices.
func IsPolygon(segs []Segment) bool {
	return IsConnectedAndClosed(segs) &&
		IntersectionGraphIsConnected(segs) &&
		len(distinct(IntersectionPoints(segs))) >= 3
}

// distinct returns pts without points that coincide with an earlier one.
func distinct(pts []Point) []Point {
	var out []Point
outer:
	for _, pt := range pts {
		for _, o := range out {
			if pt.Distance(o) <= vertexEpsilon {
				continue outer
			}
		}
		out = append(out, pt)
	}
	return out
}

// subsets yields every subset of segs with at least minSize elements, in
// order of their bitmask over segs.
func subsets(segs []Segment, minSize int) iter.Seq[[]Segment] {
	return func(yield func([]Segment) bool) {
		n := uint(len(segs))
		for mask := uint64(1); mask < 1<<n; mask++ {
			if bits.OnesCount64(mask) < minSize {
				continue
			}
			sub := make([]Segment, 0, bits.OnesCount64(mask))
			for i := range n {
				if mask&(1<<i) != 0 {
					sub = append(sub, segs[i])
				}
			}
			if !yield(sub) {
				return
			}
		}
	}
}

// DiscoverPolygons returns every polygon bounded by a subset of at least three
// of the segments. Each polygon's vertices are the distinct pairwise
// intersection points of its subset.
//
// The cost is exponential in the number of segments; more than
// [MaxDiscoverySegments] segments are rejected with [ErrTooManySegments].
func DiscoverPolygons(segs []Segment) ([]*Polygon, error) {
	if len(segs) > MaxDiscoverySegments {
		return nil, fmt.Errorf("%w: got %d, limit is %d", ErrTooManySegments, len(segs), MaxDiscoverySegments)
	}
	var polys []*Polygon
	var examined int
	for sub := range subsets(segs, 3) {
		examined++
		if IsPolygon(sub) {
			polys = append(polys, NewPolygon(distinct(IntersectionPoints(sub))))
		}
	}
	Logger().Debug("discovered polygons", "segments", len(segs), "subsets", examined, "polygons", len(polys))
	return polys, nil
}
