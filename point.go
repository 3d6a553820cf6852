package canvas

import (
	"fmt"
	"math"
)

// Point is a point in homogeneous coordinates. Most of the package works in
// the z = 0 plane; Z is used by the cube model. W is the homogeneous weight
// and is 1 for points created with [Pt] and [Pt3].
type Point struct {
	X float64
	Y float64
	Z float64
	W float64
}

// Pt returns the point (x, y, 0).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y, W: 1}
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z, W: 1}
}

func (pt Point) String() string {
	if pt.Z == 0 {
		return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
	}
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Trunc returns a new point with x, y and z rounded towards zero. This is the
// quantization applied to points that address pixels.
func (pt Point) Trunc() Point {
	return Point{
		X: math.Trunc(pt.X),
		Y: math.Trunc(pt.Y),
		Z: math.Trunc(pt.Z),
		W: pt.W,
	}
}

// Round returns a new point with x, y and z rounded to the nearest integers,
// halves rounding up.
func (pt Point) Round() Point {
	return Point{
		X: round(pt.X),
		Y: round(pt.Y),
		Z: round(pt.Z),
		W: pt.W,
	}
}

// Move returns pt translated by v·scale.
func (pt Point) Move(v Vector, scale float64) Point {
	return Point{
		X: pt.X + v.X*scale,
		Y: pt.Y + v.Y*scale,
		Z: pt.Z + v.Z*scale,
		W: pt.W,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vector {
	return VectorBetween(o, pt)
}

// Reflect returns the reflection of pt through center.
func (pt Point) Reflect(center Point) Point {
	return pt.Move(VectorBetween(pt, center), 2)
}

// ReflectAlongLine returns the mirror image of pt with respect to l.
func (pt Point) ReflectAlongLine(l Line) Point {
	return pt.Reflect(l.ClosestPoint(pt))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return VectorBetween(pt, o).Modulus()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	v := VectorBetween(pt, o)
	return v.Dot(v)
}

// ApplyMatrix multiplies the row vector (x, y, z, w) by m, which must be 4×4.
func (pt Point) ApplyMatrix(m Matrix) Point {
	if m.Height() != 4 || m.Width() != 4 {
		panic(fmt.Sprintf("ApplyMatrix needs a 4×4 matrix, got %d×%d", m.Height(), m.Width()))
	}
	row := []float64{pt.X, pt.Y, pt.Z, pt.W}
	return Point{
		X: dot(row, m.Column(1)),
		Y: dot(row, m.Column(2)),
		Z: dot(row, m.Column(3)),
		W: dot(row, m.Column(4)),
	}
}

// Pixel returns the integer pixel coordinates addressed by pt.
func (pt Point) Pixel() (int, int) {
	r := pt.Round()
	return int(r.X), int(r.Y)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}

// round rounds halves towards positive infinity, which is what pixel
// placement expects for negative coordinates.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}
