package canvas

import (
	"errors"
	"math"
	"testing"
)

func TestVectorAngleToXAxis(t *testing.T) {
	tests := []struct {
		v    Vector
		want float64
	}{
		{Vec(1, 0, 0), 0},
		{Vec(1, 1, 0), 45},
		{Vec(0, 1, 0), 90},
		{Vec(-1, 1, 0), 135},
		{Vec(-1, 0, 0), 180},
		{Vec(-1, -1, 0), 225},
		{Vec(0, -1, 0), 270},
		{Vec(1, -1, 0), 315},
		{Vec(1, math.Sqrt(3), 0), 60},
		// z doesn't matter
		{Vec(3, 3, 100), 45},
	}
	for _, tt := range tests {
		got, err := tt.v.AngleToXAxis()
		if err != nil {
			t.Errorf("%v: unexpected error: %s", tt.v, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v: got %v°, want %v°", tt.v, got, tt.want)
		}
	}

	if _, err := Vec(0, 0, 1).AngleToXAxis(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, want ErrDegenerate", err)
	}
}

func TestVectorModulus(t *testing.T) {
	if m := Vec(2, 3, 6).Modulus(); m != 7 {
		t.Errorf("got %v, want 7", m)
	}
	if !Vec(0, 0, 0).IsZero() || Vec(0, 0, 1).IsZero() {
		t.Error("IsZero is wrong")
	}
}

func TestVectorProducts(t *testing.T) {
	x, y, z := Vec(1, 0, 0), Vec(0, 1, 0), Vec(0, 0, 1)
	diff(t, z, x.Cross(y))
	diff(t, x, y.Cross(z))
	diff(t, y, z.Cross(x))
	diff(t, Vec(0, 0, -1), y.Cross(x))

	a, b := Vec(1, 2, 3), Vec(-4, 5, 0.5)
	if got := a.Dot(b); got != 7.5 {
		t.Errorf("got %v, want 7.5", got)
	}
	// The cross product is orthogonal to both factors.
	c := a.Cross(b)
	diff(t, 0.0, c.Dot(a), approx)
	diff(t, 0.0, c.Dot(b), approx)
}

func TestVectorNormalize(t *testing.T) {
	n, err := Vec(3, 0, 4).Normalize()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Vec(0.6, 0, 0.8), n, approx)

	if _, err := (Vector{}).Normalize(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, want ErrDegenerate", err)
	}
}

func TestVectorOrthogonal(t *testing.T) {
	v := Vec(3, -7, 2)
	o := v.Orthogonal()
	diff(t, Vec(-7, -3, 2), o)
	if d := o.X*v.X + o.Y*v.Y; d != 0 {
		t.Errorf("orthogonal vector has xy dot product %v", d)
	}
	diff(t, Vec(4, 6, 0), Vec(1, 2, 0).Add(Vec(1, 1, 0)).Mul(2))
	diff(t, Pt3(1, 2, 3), Vec(1, 2, 3).AsPoint())
}
