package canvas

import (
	"fmt"
	"strings"
)

// Matrix is a dense, row-major matrix of reals.
//
// Rows and columns are indexed starting at 1. Accessing an element outside of
// the matrix is a programming error and panics.
type Matrix struct {
	height int
	width  int
	data   []float64
}

// NewMatrix returns a height×width matrix filled with zeros.
func NewMatrix(height, width int) Matrix {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("invalid matrix dimensions %d×%d", height, width))
	}
	return Matrix{
		height: height,
		width:  width,
		data:   make([]float64, height*width),
	}
}

// NewMatrixFromRows returns a matrix with the given rows. All rows must have
// the same length. The values are copied.
func NewMatrixFromRows(rows [][]float64) Matrix {
	if len(rows) == 0 {
		panic("matrix needs at least one row")
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.width {
			panic(fmt.Sprintf("row %d has %d elements, want %d", i+1, len(row), m.width))
		}
		copy(m.data[i*m.width:], row)
	}
	return m
}

func (m Matrix) Height() int { return m.height }
func (m Matrix) Width() int  { return m.width }

func (m Matrix) index(i, j int) int {
	if i < 1 || i > m.height || j < 1 || j > m.width {
		panic(fmt.Sprintf("index (%d, %d) out of range for %d×%d matrix", i, j, m.height, m.width))
	}
	return (i-1)*m.width + (j - 1)
}

// At returns the element in row i and column j.
func (m Matrix) At(i, j int) float64 {
	return m.data[m.index(i, j)]
}

// Set sets the element in row i and column j. Matrices share their storage
// when copied by value; use [Matrix.Clone] before mutating a shared matrix.
func (m Matrix) Set(i, j int, v float64) {
	m.data[m.index(i, j)] = v
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := m
	out.data = append([]float64(nil), m.data...)
	return out
}

// Row returns a copy of row i.
func (m Matrix) Row(i int) []float64 {
	start := m.index(i, 1)
	return append([]float64(nil), m.data[start:start+m.width]...)
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) []float64 {
	col := make([]float64, m.height)
	for i := range m.height {
		col[i] = m.At(i+1, j)
	}
	return col
}

// Add returns the element-wise sum m+o. Both matrices must have the same
// dimensions.
func (m Matrix) Add(o Matrix) Matrix {
	if m.height != o.height || m.width != o.width {
		panic(fmt.Sprintf("cannot add %d×%d and %d×%d matrices", m.height, m.width, o.height, o.width))
	}
	sum := NewMatrix(m.height, m.width)
	for i := range m.data {
		sum.data[i] = m.data[i] + o.data[i]
	}
	return sum
}

// Mul returns the matrix product m·o. The width of m must equal the height of o.
func (m Matrix) Mul(o Matrix) Matrix {
	if m.width != o.height {
		panic(fmt.Sprintf("cannot multiply %d×%d and %d×%d matrices", m.height, m.width, o.height, o.width))
	}
	product := NewMatrix(m.height, o.width)
	for i := 1; i <= m.height; i++ {
		row := m.Row(i)
		for j := 1; j <= o.width; j++ {
			product.Set(i, j, dot(row, o.Column(j)))
		}
	}
	return product
}

func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 1; i <= m.height; i++ {
		if i > 1 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", m.Row(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

// dot returns the dot product of two equally long slices.
func dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("dot product of vectors with lengths %d and %d", len(a), len(b)))
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// HermiteBasis returns the basis matrix of cubic Hermite curves, for the
// geometry vector (P1, P4, R1, R4).
func HermiteBasis() Matrix {
	return NewMatrixFromRows([][]float64{
		{2, -2, 1, 1},
		{-3, 3, -2, -1},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
	})
}

// BezierBasis returns the basis matrix of cubic Bézier curves.
func BezierBasis() Matrix {
	return NewMatrixFromRows([][]float64{
		{-1, 3, -3, 1},
		{3, -6, 3, 0},
		{-3, 3, 0, 0},
		{1, 0, 0, 0},
	})
}

// BSplineBasis returns the basis matrix of uniform cubic B-splines.
func BSplineBasis() Matrix {
	return NewMatrixFromRows([][]float64{
		{-1.0 / 6, 1.0 / 2, -1.0 / 2, 1.0 / 6},
		{1.0 / 2, -1, 1.0 / 2, 0},
		{-1.0 / 2, 0, 1.0 / 2, 0},
		{1.0 / 6, 2.0 / 3, 1.0 / 6, 0},
	})
}
