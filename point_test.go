package canvas

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointDistanceSymmetric(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(3, 4), Pt(-2.5, 7.25), Pt3(1, 2, 3), Pt(1e6, -1e6)}
	for _, a := range pts {
		if d := a.Distance(a); d != 0 {
			t.Errorf("distance of %v to itself is %v", a, d)
		}
		for _, b := range pts {
			if ab, ba := a.Distance(b), b.Distance(a); ab != ba {
				t.Errorf("distance(%v, %v) = %v, but distance(%v, %v) = %v", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestPointTrunc(t *testing.T) {
	diff(t, Point{X: 1, Y: -2, Z: 3, W: 1}, Pt3(1.9, -2.9, 3.5).Trunc())
	diff(t, Point{X: 2, Y: -2, Z: 4, W: 1}, Pt3(1.5, -2.5, 3.5).Round())
}

func TestPointPixel(t *testing.T) {
	tests := []struct {
		in   Point
		x, y int
	}{
		{Pt(0, 0), 0, 0},
		{Pt(0.49, 0.5), 0, 1},
		{Pt(-0.5, -0.51), 0, -1},
		{Pt(10.2, 9.7), 10, 10},
	}
	for _, tt := range tests {
		if x, y := tt.in.Pixel(); x != tt.x || y != tt.y {
			t.Errorf("%v: got (%d, %d), want (%d, %d)", tt.in, x, y, tt.x, tt.y)
		}
	}
}

func TestPointMove(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Move(Vec(-5, 0, 0), 2))
	diff(t, Vec(3, 4, 0), Pt(4, 6).Sub(Pt(1, 2)))
}

func TestPointReflect(t *testing.T) {
	diff(t, Pt(4, 6), Pt(0, 0).Reflect(Pt(2, 3)))

	// Mirroring across the diagonal swaps x and y.
	diag := Line{Pt(0, 0), Pt(1, 1)}
	diff(t, Pt(5, 2), Pt(2, 5).ReflectAlongLine(diag), approx)
	// Points on the line are fixed.
	diff(t, Pt(3, 3), Pt(3, 3).ReflectAlongLine(diag), approx)
}

func TestPointApplyMatrix(t *testing.T) {
	translate := NewMatrixFromRows([][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{5, -3, 2, 1},
	})
	diff(t, Point{X: 6, Y: -1, Z: 5, W: 1}, Pt3(1, 2, 3).ApplyMatrix(translate))

	defer func() {
		if recover() == nil {
			t.Error("expected panic for 3×3 matrix")
		}
	}()
	Pt(0, 0).ApplyMatrix(NewMatrix(3, 3))
}

func TestPointIsNaN(t *testing.T) {
	if Pt(1, 2).IsNaN() {
		t.Error("finite point reported as NaN")
	}
	if !Pt(math.NaN(), 2).IsNaN() {
		t.Error("NaN point not reported as NaN")
	}
}
