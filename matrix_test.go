package canvas

import (
	"testing"
)

func rowsOf(m Matrix) [][]float64 {
	out := make([][]float64, m.Height())
	for i := range out {
		out[i] = m.Row(i + 1)
	}
	return out
}

func TestMatrixAccess(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Set(1, 1, 1)
	m.Set(2, 3, 6)
	if got := m.At(2, 3); got != 6 {
		t.Errorf("got %v, want 6", got)
	}
	if h, w := m.Height(), m.Width(); h != 2 || w != 3 {
		t.Errorf("got %d×%d, want 2×3", h, w)
	}
	diff(t, []float64{0, 0, 6}, m.Row(2))
	diff(t, []float64{1, 0}, m.Column(1))

	// Rows and columns are copies.
	m.Row(1)[0] = 42
	m.Column(1)[0] = 42
	if got := m.At(1, 1); got != 1 {
		t.Errorf("mutating a row copy changed the matrix: got %v", got)
	}
}

func TestMatrixClone(t *testing.T) {
	m := NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	c.Set(1, 1, 10)
	if got := m.At(1, 1); got != 1 {
		t.Errorf("clone shares storage with original: got %v", got)
	}
}

func TestMatrixMul(t *testing.T) {
	a := NewMatrixFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	b := NewMatrixFromRows([][]float64{
		{7, 8},
		{9, 10},
		{11, 12},
	})
	diff(t, [][]float64{{58, 64}, {139, 154}}, rowsOf(a.Mul(b)))
	diff(t, [][]float64{{2, 4, 6}, {8, 10, 12}}, rowsOf(a.Add(a)))
}

func TestMatrixIdentity(t *testing.T) {
	id := NewMatrixFromRows([][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	for _, basis := range []Matrix{HermiteBasis(), BezierBasis(), BSplineBasis()} {
		diff(t, rowsOf(basis), rowsOf(basis.Mul(id)))
		diff(t, rowsOf(basis), rowsOf(id.Mul(basis)))
	}
}

func TestMatrixBasesAreFresh(t *testing.T) {
	b := BezierBasis()
	b.Set(1, 1, 100)
	if got := BezierBasis().At(1, 1); got != -1 {
		t.Errorf("basis constant was mutated: got %v", got)
	}
}

func TestBSplineBasisRowsSum(t *testing.T) {
	// At t = 0 the weights of the four control points are the last row, and
	// they must sum to one.
	var sum float64
	for _, v := range BSplineBasis().Row(4) {
		sum += v
	}
	diff(t, 1.0, sum, approx)
}

func TestMatrixPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"zero size", func() { NewMatrix(0, 1) }},
		{"ragged rows", func() { NewMatrixFromRows([][]float64{{1, 2}, {3}}) }},
		{"row 0", func() { NewMatrix(2, 2).At(0, 1) }},
		{"column out of range", func() { NewMatrix(2, 2).Set(1, 3, 0) }},
		{"mul mismatch", func() { NewMatrix(2, 3).Mul(NewMatrix(2, 3)) }},
		{"add mismatch", func() { NewMatrix(2, 3).Add(NewMatrix(3, 2)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
