package canvas

import (
	"image"
	"testing"
)

func TestRectAbs(t *testing.T) {
	diff(t, Rect{0, 5, 10, 20}, Rect{10, 20, 0, 5}.Abs())
	diff(t, Rect{-1, -2, 3, 4}, NewRectFromPoints(Pt(3, -2), Pt(-1, 4)))
}

func TestBoundingBoxOf(t *testing.T) {
	diff(t, Rect{}, BoundingBoxOf(nil))
	r := BoundingBoxOf([]Point{Pt(1, 1), Pt(-3, 4), Pt(2, -5)})
	diff(t, Rect{-3, -5, 2, 4}, r)
	if w, h := r.Width(), r.Height(); w != 5 || h != 9 {
		t.Errorf("got size %v×%v, want 5×9", w, h)
	}
	diff(t, Pt(-0.5, -0.5), r.Center())
}

func TestRectContainsClosed(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	for _, pt := range []Point{Pt(0, 0), Pt(10, 10), Pt(5, 0), Pt(10+1e-12, 5)} {
		if !r.ContainsClosed(pt, 1e-9) {
			t.Errorf("%v should be contained", pt)
		}
	}
	for _, pt := range []Point{Pt(-0.1, 0), Pt(5, 10.1)} {
		if r.ContainsClosed(pt, 1e-9) {
			t.Errorf("%v shouldn't be contained", pt)
		}
	}
}

func TestRectUnionInflate(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	diff(t, Rect{0, 0, 5, 3}, r.UnionPoint(Pt(5, 3)))
	diff(t, Rect{-2, 0, 1, 4}, r.Union(Rect{-2, 2, 0, 4}))
	diff(t, Rect{-1, -2, 2, 3}, r.Inflate(1, 2))
}

func TestRectOverlaps(t *testing.T) {
	r := Rect{0, 0, 10, 5}
	tests := []struct {
		o    Rect
		want bool
	}{
		{Rect{2, 2, 3, 3}, true},
		{Rect{-5, -5, 0, 0}, true},
		{Rect{10, 5, 12, 7}, true},
		{Rect{5, 0, 5, 0}, true},
		{Rect{10.5, 0, 12, 5}, false},
		{Rect{0, -3, 10, -0.1}, false},
	}
	for _, tt := range tests {
		if got := r.Overlaps(tt.o); got != tt.want {
			t.Errorf("%v overlaps %v: got %t, want %t", r, tt.o, got, tt.want)
		}
		if got := tt.o.Overlaps(r); got != tt.want {
			t.Errorf("%v overlaps %v: got %t, want %t", tt.o, r, got, tt.want)
		}
	}
}

func TestRectImage(t *testing.T) {
	diff(t, image.Rect(-1, 0, 3, 5), Rect{-0.5, 0.2, 2.1, 4.9}.Image())
}
