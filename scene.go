package canvas

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/google/uuid"
)

// Kind identifies the type of a [Primitive].
type Kind int

const (
	KindStroke Kind = iota
	KindEllipse
	KindParabola
	KindHyperbola
	KindHermite
	KindBezier
	KindBSpline
	KindPolygon
	KindCube
)

func (k Kind) String() string {
	switch k {
	case KindStroke:
		return "stroke"
	case KindEllipse:
		return "ellipse"
	case KindParabola:
		return "parabola"
	case KindHyperbola:
		return "hyperbola"
	case KindHermite:
		return "Hermite curve"
	case KindBezier:
		return "Bézier curve"
	case KindBSpline:
		return "B-spline"
	case KindPolygon:
		return "polygon"
	case KindCube:
		return "cube"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Primitive is anything that can be stored in a [Scene] and drawn onto a
// [Surface].
type Primitive interface {
	Kind() Kind
	Draw(s Surface) error
	// Bounds returns the smallest rectangle enclosing what Draw paints,
	// before rounding to pixels.
	Bounds() Rect
}

var (
	_ Primitive = Stroke{}
	_ Primitive = EllipseShape{}
	_ Primitive = ParabolaShape{}
	_ Primitive = HyperbolaShape{}
	_ Primitive = (*HermiteCurve)(nil)
	_ Primitive = (*BezierCurve)(nil)
	_ Primitive = (*BSpline)(nil)
	_ Primitive = (*Polygon)(nil)
	_ Primitive = (*Cube)(nil)
)

// plot paints every point at full coverage.
func plot(s Surface, pts []Point) {
	if s == nil {
		return
	}
	for _, pt := range pts {
		if pt.IsNaN() {
			continue
		}
		x, y := pt.Pixel()
		s.SetPixel(x, y, 1)
	}
}

// Stroke is a segment drawn with a particular line algorithm.
type Stroke struct {
	Segment
	Algorithm Algorithm
}

func (st Stroke) Kind() Kind { return KindStroke }

func (st Stroke) Bounds() Rect { return st.BoundingBox() }

func (st Stroke) Draw(s Surface) error {
	Rasterize(st.Algorithm, st.P0, st.P1, s)
	return nil
}

// EllipseShape is an axis-aligned ellipse. See [Ellipse].
type EllipseShape struct {
	Center Point
	A, B   float64
}

func (e EllipseShape) Kind() Kind { return KindEllipse }

func (e EllipseShape) Bounds() Rect {
	return NewRectFromPoints(e.Center, e.Center).Inflate(math.Abs(e.A), math.Abs(e.B))
}

func (e EllipseShape) Draw(s Surface) error {
	pts, err := Ellipse(e.Center, e.A, e.B)
	if err != nil {
		return err
	}
	plot(s, pts)
	return nil
}

// ParabolaShape is an axis-aligned parabola. See [Parabola].
type ParabolaShape struct {
	Vertex     Point
	P          float64
	Horizontal bool
	Options    ConicOptions
}

func (p ParabolaShape) Kind() Kind { return KindParabola }

func (p ParabolaShape) Bounds() Rect {
	pts, _ := Parabola(p.Vertex, p.P, p.Horizontal, p.Options)
	return BoundingBoxOf(pts)
}

func (p ParabolaShape) Draw(s Surface) error {
	pts, err := Parabola(p.Vertex, p.P, p.Horizontal, p.Options)
	if err != nil {
		return err
	}
	plot(s, pts)
	return nil
}

// HyperbolaShape is an axis-aligned hyperbola. See [Hyperbola].
type HyperbolaShape struct {
	Center     Point
	A, B       float64
	Horizontal bool
	Options    ConicOptions
}

func (h HyperbolaShape) Kind() Kind { return KindHyperbola }

func (h HyperbolaShape) Bounds() Rect {
	pts, _ := Hyperbola(h.Center, h.A, h.B, h.Horizontal, h.Options)
	return BoundingBoxOf(pts)
}

func (h HyperbolaShape) Draw(s Surface) error {
	pts, err := Hyperbola(h.Center, h.A, h.B, h.Horizontal, h.Options)
	if err != nil {
		return err
	}
	plot(s, pts)
	return nil
}

// DefaultSnapOptions are the snapping distances used by interactive editing.
var DefaultSnapOptions = SnapOptions{
	ConnectDistance: 10,
	UnsnapDistance:  30,
}

// SnapOptions controls how [Scene.DragCurve] connects curves.
type SnapOptions struct {
	// ConnectDistance is how close an endpoint of the dragged curve has to be
	// to another curve's endpoint for the two to be joined.
	ConnectDistance float64
	// UnsnapDistance is how far the pointer may move away from a joined
	// endpoint before the curve follows the pointer again.
	UnsnapDistance float64
}

// Scene is an in-memory store of primitives, identified by UUIDs. It is not
// safe for concurrent use.
type Scene struct {
	items map[uuid.UUID]Primitive
	order []uuid.UUID
}

func NewScene() *Scene {
	return &Scene{items: map[uuid.UUID]Primitive{}}
}

// Add stores p and returns its newly assigned ID.
func (sc *Scene) Add(p Primitive) uuid.UUID {
	id := uuid.New()
	sc.items[id] = p
	sc.order = append(sc.order, id)
	return id
}

// Remove deletes the primitive with the given ID. It reports whether the
// primitive existed.
func (sc *Scene) Remove(id uuid.UUID) bool {
	if _, ok := sc.items[id]; !ok {
		return false
	}
	delete(sc.items, id)
	for i, o := range sc.order {
		if o == id {
			sc.order = append(sc.order[:i], sc.order[i+1:]...)
			break
		}
	}
	return true
}

func (sc *Scene) Get(id uuid.UUID) (Primitive, bool) {
	p, ok := sc.items[id]
	return p, ok
}

func (sc *Scene) Len() int { return len(sc.order) }

// All yields the stored primitives in the order they were added.
func (sc *Scene) All() iter.Seq2[uuid.UUID, Primitive] {
	return func(yield func(uuid.UUID, Primitive) bool) {
		for _, id := range sc.order {
			if !yield(id, sc.items[id]) {
				return
			}
		}
	}
}

// ByKind returns the primitives of kind k, in the order they were added.
func (sc *Scene) ByKind(k Kind) []Primitive {
	var out []Primitive
	for _, p := range sc.All() {
		if p.Kind() == k {
			out = append(out, p)
		}
	}
	return out
}

// Curves returns the Hermite curves, then the Bézier curves, then, if
// includeBSplines is set, the B-splines.
func (sc *Scene) Curves(includeBSplines bool) []Curve {
	kinds := []Kind{KindHermite, KindBezier}
	if includeBSplines {
		kinds = append(kinds, KindBSpline)
	}
	var out []Curve
	for _, k := range kinds {
		for _, p := range sc.ByKind(k) {
			out = append(out, p.(Curve))
		}
	}
	return out
}

// ClosestReferencePoint returns the curve with the reference point nearest to
// pt and that point's index. Ties go to the curve and point found first. It
// reports false if the scene has no curves.
func (sc *Scene) ClosestReferencePoint(pt Point, includeBSplines bool) (Curve, int, bool) {
	var (
		best     Curve
		bestIdx  int
		bestDist = math.Inf(1)
	)
	for _, c := range sc.Curves(includeBSplines) {
		for i, ref := range c.ReferencePoints() {
			if d := ref.Distance(pt); d < bestDist {
				best, bestIdx, bestDist = c, i, d
			}
		}
	}
	return best, bestIdx, best != nil
}

// EndpointsExcept returns the endpoints of every curve other than c.
func (sc *Scene) EndpointsExcept(c Curve) []Point {
	var out []Point
	for _, o := range sc.Curves(true) {
		if o != c {
			out = append(out, o.Endpoints()...)
		}
	}
	return out
}

// translateCurve moves every reference point of c by v.
func translateCurve(c Curve, v Vector) {
	for i, ref := range c.ReferencePoints() {
		c.SetReferencePoint(i, ref.Move(v, 1))
	}
}

// DragCurve moves c so that its reference point at index follows the pointer
// at mouse. If one of c's endpoints is within opts.ConnectDistance of another
// curve's endpoint and the pointer is still within opts.UnsnapDistance of
// that endpoint, c is instead moved to join the two endpoints. DragCurve
// reports whether the curve snapped.
func (sc *Scene) DragCurve(c Curve, index int, mouse Point, opts SnapOptions) bool {
	others := sc.EndpointsExcept(c)
	for _, end := range c.Endpoints() {
		for _, o := range others {
			if end.Distance(o) <= opts.ConnectDistance && mouse.Distance(o) <= opts.UnsnapDistance {
				translateCurve(c, VectorBetween(end, o))
				return true
			}
		}
	}
	refs := c.ReferencePoints()
	if index < 0 || index >= len(refs) {
		panic(fmt.Sprintf("reference point index %d out of range [0, %d)", index, len(refs)))
	}
	translateCurve(c, VectorBetween(refs[index], mouse))
	return false
}

// Segments returns the segments of all strokes.
func (sc *Scene) Segments() []Segment {
	var out []Segment
	for _, p := range sc.ByKind(KindStroke) {
		out = append(out, p.(Stroke).Segment)
	}
	return out
}

// DiscoverPolygons runs [DiscoverPolygons] on the scene's strokes.
func (sc *Scene) DiscoverPolygons() ([]*Polygon, error) {
	return DiscoverPolygons(sc.Segments())
}

// Bounds returns the smallest rectangle enclosing every primitive, or the zero
// rectangle for an empty scene.
func (sc *Scene) Bounds() Rect {
	var r Rect
	for i, id := range sc.order {
		b := sc.items[id].Bounds()
		if i == 0 {
			r = b
		} else {
			r = r.Union(b)
		}
	}
	return r
}

// Erase removes the primitive with the given ID and repaints the area it
// covered: the area is cleared, and the remaining primitives overlapping it
// are drawn again. It reports whether the primitive existed.
func (sc *Scene) Erase(id uuid.UUID, s Surface) (bool, error) {
	p, ok := sc.items[id]
	if !ok {
		return false, nil
	}
	// One pixel of margin covers rounding and antialiased neighbours.
	dirty := p.Bounds().Inflate(1, 1)
	sc.Remove(id)
	s.Clear(dirty.Image())

	var errs []error
	for oid, o := range sc.All() {
		if !o.Bounds().Overlaps(dirty) {
			continue
		}
		if err := o.Draw(s); err != nil {
			errs = append(errs, fmt.Errorf("drawing %s %s: %w", o.Kind(), oid, err))
		}
	}
	return true, errors.Join(errs...)
}

// Render draws every primitive onto s, in the order they were added. Errors
// from individual primitives don't stop rendering; they are returned joined.
func (sc *Scene) Render(s Surface) error {
	var errs []error
	for id, p := range sc.All() {
		if err := p.Draw(s); err != nil {
			errs = append(errs, fmt.Errorf("drawing %s %s: %w", p.Kind(), id, err))
		}
	}
	return errors.Join(errs...)
}
