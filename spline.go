package canvas

import (
	"fmt"
	"math"
)

// DefaultStep is the default parameter increment used when sampling
// parametric curves.
const DefaultStep = 0.001

// Curve is a parametric curve defined by reference points that can be edited
// in place.
type Curve interface {
	Kind() Kind
	// ReferencePoints returns a copy of the curve's reference points.
	ReferencePoints() []Point
	// SetReferencePoint replaces the reference point at index i. It panics if
	// i is out of range.
	SetReferencePoint(i int, pt Point)
	// Endpoints returns the reference points at which the curve can be
	// connected to other curves.
	Endpoints() []Point
	// Points samples the curve with the given parameter step.
	Points(step float64) []Point
}

var _ Curve = (*HermiteCurve)(nil)
var _ Curve = (*BezierCurve)(nil)
var _ Curve = (*BSpline)(nil)

// samples returns the number of intervals [0, 1] is split into for a step.
func samples(step float64) int {
	if !(step > 0 && step <= 1) {
		step = DefaultStep
	}
	return max(1, int(math.Round(1/step)))
}

// EvalBasis samples the cubic segment with the given basis matrix and
// geometry (p1, p2, p3, p4) for t from 0 to 1 inclusive.
func EvalBasis(basis Matrix, p1, p2, p3, p4 Point, step float64) []Point {
	return evalCoefficients(basis.Mul(NewMatrixFromRows([][]float64{
		{p1.X, p1.Y},
		{p2.X, p2.Y},
		{p3.X, p3.Y},
		{p4.X, p4.Y},
	})), step)
}

// evalCoefficients samples x(t) = c₁₁t³ + c₂₁t² + c₃₁t + c₄₁ and the
// corresponding y(t) from the second column of c.
func evalCoefficients(c Matrix, step float64) []Point {
	n := samples(step)
	pts := make([]Point, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		t2 := t * t
		t3 := t2 * t
		pts = append(pts, Pt(
			t3*c.At(1, 1)+t2*c.At(2, 1)+t*c.At(3, 1)+c.At(4, 1),
			t3*c.At(1, 2)+t2*c.At(2, 2)+t*c.At(3, 2)+c.At(4, 2),
		))
	}
	return pts
}

// Hermite samples the Hermite curve from p1 to p4 with tangents r1 and r4.
func Hermite(p1, p4 Point, r1, r4 Vector, step float64) []Point {
	return EvalBasis(HermiteBasis(), p1, p4, r1.AsPoint(), r4.AsPoint(), step)
}

// Bezier samples the cubic Bézier curve with control points p1 to p4.
func Bezier(p1, p2, p3, p4 Point, step float64) []Point {
	return EvalBasis(BezierBasis(), p1, p2, p3, p4, step)
}

// BSplineSegment samples one segment of a uniform cubic B-spline.
func BSplineSegment(p1, p2, p3, p4 Point, step float64) []Point {
	return EvalBasis(BSplineBasis(), p1, p2, p3, p4, step)
}

// BSplineCurve samples the closed uniform cubic B-spline through the control
// points. The first three points are repeated at the end to close the loop,
// and each of the resulting len(pts) windows of four points contributes one
// segment.
func BSplineCurve(pts []Point, step float64) ([]Point, error) {
	if len(pts) < 4 {
		return nil, fmt.Errorf("%w: B-spline needs at least 4, got %d", ErrControlPoints, len(pts))
	}
	closed := make([]Point, 0, len(pts)+3)
	closed = append(closed, pts...)
	closed = append(closed, pts[:3]...)

	out := make([]Point, 0, len(pts)*(samples(step)+1))
	for i := range len(pts) {
		out = append(out, BSplineSegment(closed[i], closed[i+1], closed[i+2], closed[i+3], step)...)
	}
	return out, nil
}

// refs is an index-addressed list of reference points shared by the curve
// types.
type refs []Point

func (r refs) ReferencePoints() []Point {
	return append([]Point(nil), r...)
}

func (r refs) SetReferencePoint(i int, pt Point) {
	if i < 0 || i >= len(r) {
		panic(fmt.Sprintf("reference point index %d out of range [0, %d)", i, len(r)))
	}
	r[i] = pt
}

// HermiteCurve is a cubic Hermite curve. Its reference points are the two
// endpoints; the tangents are not reference points.
type HermiteCurve struct {
	refs
	R1 Vector
	R4 Vector
}

// NewHermiteCurve returns the Hermite curve from p1 to p4 with tangents r1 and r4.
func NewHermiteCurve(p1, p4 Point, r1, r4 Vector) *HermiteCurve {
	return &HermiteCurve{refs: refs{p1, p4}, R1: r1, R4: r4}
}

func (c *HermiteCurve) Kind() Kind         { return KindHermite }
func (c *HermiteCurve) P1() Point          { return c.refs[0] }
func (c *HermiteCurve) P4() Point          { return c.refs[1] }
func (c *HermiteCurve) Endpoints() []Point { return []Point{c.refs[0], c.refs[1]} }

// Bounds returns the bounding box of the sampled curve, which unlike that of
// the reference points accounts for the tangents.
func (c *HermiteCurve) Bounds() Rect { return BoundingBoxOf(c.Points(DefaultStep)) }

func (c *HermiteCurve) Points(step float64) []Point {
	return Hermite(c.refs[0], c.refs[1], c.R1, c.R4, step)
}

// BezierCurve is a cubic Bézier curve with four control points.
type BezierCurve struct {
	refs
}

// NewBezierCurve returns the Bézier curve with the given control points, of
// which there must be exactly four.
func NewBezierCurve(pts []Point) (*BezierCurve, error) {
	if len(pts) != 4 {
		return nil, fmt.Errorf("%w: Bézier curve needs 4, got %d", ErrControlPoints, len(pts))
	}
	return &BezierCurve{refs: append(refs(nil), pts...)}, nil
}

func (c *BezierCurve) Kind() Kind         { return KindBezier }
func (c *BezierCurve) Endpoints() []Point { return []Point{c.refs[0], c.refs[3]} }

func (c *BezierCurve) Bounds() Rect { return BoundingBoxOf(c.Points(DefaultStep)) }

func (c *BezierCurve) Points(step float64) []Point {
	return Bezier(c.refs[0], c.refs[1], c.refs[2], c.refs[3], step)
}

// BSpline is a closed uniform cubic B-spline.
type BSpline struct {
	refs
}

// NewBSpline returns the B-spline with the given control points, of which
// there must be at least four.
func NewBSpline(pts []Point) (*BSpline, error) {
	if len(pts) < 4 {
		return nil, fmt.Errorf("%w: B-spline needs at least 4, got %d", ErrControlPoints, len(pts))
	}
	return &BSpline{refs: append(refs(nil), pts...)}, nil
}

func (c *BSpline) Kind() Kind { return KindBSpline }

// Endpoints returns the control points at positions 0 and 3.
func (c *BSpline) Endpoints() []Point { return []Point{c.refs[0], c.refs[3]} }

func (c *BSpline) Bounds() Rect { return BoundingBoxOf(c.Points(DefaultStep)) }

func (c *BSpline) Points(step float64) []Point {
	// The constructor guarantees enough points.
	pts, _ := BSplineCurve(c.refs, step)
	return pts
}

func (c *HermiteCurve) Draw(s Surface) error {
	plot(s, c.Points(DefaultStep))
	return nil
}

func (c *BezierCurve) Draw(s Surface) error {
	plot(s, c.Points(DefaultStep))
	return nil
}

func (c *BSpline) Draw(s Surface) error {
	plot(s, c.Points(DefaultStep))
	return nil
}
