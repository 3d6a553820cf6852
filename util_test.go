package canvas

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and thus points and vectors, to within 1e-9.
var approx = cmpopts.EquateApprox(0, 1e-9)

// recorder is a Surface that remembers every pixel it was asked to paint.
type recorder struct {
	pixels  []Pixel
	cleared []image.Rectangle
}

func (r *recorder) SetPixel(x, y int, coverage float64) {
	r.pixels = append(r.pixels, Pixel{X: x, Y: y, Coverage: coverage})
}

func (r *recorder) Clear(rect image.Rectangle) {
	r.cleared = append(r.cleared, rect)
}

func pixelsOf(pts ...[2]int) []Pixel {
	out := make([]Pixel, len(pts))
	for i, p := range pts {
		out[i] = Pixel{X: p[0], Y: p[1], Coverage: 1}
	}
	return out
}
