package canvas

import (
	"fmt"
	"math"
)

// Vector is the difference of two points.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Vec returns the vector ⟨x, y, z⟩.
func Vec(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// VectorBetween returns the vector from start to end.
func VectorBetween(start, end Point) Vector {
	return Vector{
		X: end.X - start.X,
		Y: end.Y - start.Y,
		Z: end.Z - start.Z,
	}
}

func (v Vector) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Modulus returns the length of the vector.
func (v Vector) Modulus() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsZero reports whether all components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// AngleToXAxis returns the angle between the projection of v onto the xy
// plane and the positive x axis, in whole degrees in [0, 360).
//
// The angle of a vector without x and y components is undefined and reported
// as [ErrDegenerate].
func (v Vector) AngleToXAxis() (float64, error) {
	var rad float64
	switch {
	case v.X == 0 && v.Y == 0:
		return 0, fmt.Errorf("angle of %v: %w", v, ErrDegenerate)
	case v.X == 0:
		rad = math.Copysign(math.Pi/2, v.Y)
	default:
		rad = math.Atan(v.Y / v.X)
		if v.X < 0 {
			rad += math.Pi
		}
	}
	deg := rad * 180 / math.Pi
	return math.Mod(round(deg+360), 360), nil
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v×o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Mul returns v scaled by f.
func (v Vector) Mul(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Add adds two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Normalize returns a vector of modulus 1 with the same direction as v.
func (v Vector) Normalize() (Vector, error) {
	m := v.Modulus()
	if m == 0 {
		return Vector{}, fmt.Errorf("normalize zero vector: %w", ErrDegenerate)
	}
	return v.Mul(1 / m), nil
}

// Orthogonal returns ⟨y, −x, z⟩, which is orthogonal to v in the xy plane.
func (v Vector) Orthogonal() Vector {
	return Vector{X: v.Y, Y: -v.X, Z: v.Z}
}

// AsPoint returns the point reached by moving from the origin by v.
func (v Vector) AsPoint() Point {
	return Pt3(v.X, v.Y, v.Z)
}
