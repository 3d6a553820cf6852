package canvas

import "math"

// DefaultViewDirection is the direction of a camera looking into the screen.
var DefaultViewDirection = Vec(0, 0, -1)

// Cube is a cube centered on the origin, rotated about the X, Y and Z axes by
// RotX, RotY and RotZ degrees. Origin only affects where [Cube.Draw] paints
// it.
type Cube struct {
	Side   float64
	RotX   float64
	RotY   float64
	RotZ   float64
	Origin Point
}

// NewCube returns a cube with the given side length and rotations in degrees.
func NewCube(side, rotX, rotY, rotZ float64) *Cube {
	return &Cube{Side: side, RotX: rotX, RotY: rotY, RotZ: rotZ}
}

// rotationTerms returns the cosine and sine of −deg. Inverse negates the sine.
func rotationTerms(deg float64, inverse bool) (cos, sin float64) {
	sin, cos = math.Sincos(-deg * math.Pi / 180)
	if inverse {
		sin = -sin
	}
	return cos, sin
}

// RotationX returns the 4×4 matrix rotating row vectors about the X axis by
// RotX, or by −RotX if inverse is true.
func (c *Cube) RotationX(inverse bool) Matrix {
	cos, sin := rotationTerms(c.RotX, inverse)
	return NewMatrixFromRows([][]float64{
		{1, 0, 0, 0},
		{0, cos, sin, 0},
		{0, -sin, cos, 0},
		{0, 0, 0, 1},
	})
}

func (c *Cube) RotationY(inverse bool) Matrix {
	cos, sin := rotationTerms(c.RotY, inverse)
	return NewMatrixFromRows([][]float64{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	})
}

func (c *Cube) RotationZ(inverse bool) Matrix {
	cos, sin := rotationTerms(c.RotZ, inverse)
	return NewMatrixFromRows([][]float64{
		{cos, sin, 0, 0},
		{-sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Rotation returns the product RotationX · RotationY · RotationZ.
func (c *Cube) Rotation(inverse bool) Matrix {
	return c.RotationX(inverse).Mul(c.RotationY(inverse)).Mul(c.RotationZ(inverse))
}

// Vertices returns the eight unrotated corners of the cube.
func (c *Cube) Vertices() []Point {
	h := c.Side / 2
	return []Point{
		Pt3(h, h, h),
		Pt3(h, h, -h),
		Pt3(h, -h, h),
		Pt3(h, -h, -h),
		Pt3(-h, h, h),
		Pt3(-h, h, -h),
		Pt3(-h, -h, h),
		Pt3(-h, -h, -h),
	}
}

// faceNormals are the outward normals of the faces, in the order returned by
// [Cube.Faces].
var faceNormals = [6]Vector{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// BodyMatrix returns the 6×4 matrix whose rows describe the planes of the
// rotated faces. Row i is (n, −side/2) · Rotation(false), where n is the
// outward normal of face i, so its first three columns are the rotated
// normal.
func (c *Cube) BodyMatrix() Matrix {
	d := -c.Side / 2
	rows := make([][]float64, len(faceNormals))
	for i, n := range faceNormals {
		rows[i] = []float64{n.X, n.Y, n.Z, d}
	}
	return NewMatrixFromRows(rows).Mul(c.Rotation(false))
}

// Faces returns the six rotated faces, in the order x > 0, x < 0, y > 0,
// y < 0, z > 0, z < 0 of the unrotated cube.
func (c *Cube) Faces() []*Polygon {
	rot := c.Rotation(false)
	verts := c.Vertices()
	faces := make([]*Polygon, len(faceNormals))
	for i, n := range faceNormals {
		var face []Point
		for _, v := range verts {
			if VectorBetween(Point{}, v).Dot(n) > 0 {
				face = append(face, v.ApplyMatrix(rot))
			}
		}
		faces[i] = NewPolygon(face)
	}
	return faces
}

// VisibleFaces returns the faces whose rotated outward normal has a strictly
// positive dot product with view.
func (c *Cube) VisibleFaces(view Vector) []*Polygon {
	body := c.BodyMatrix()
	faces := c.Faces()
	var visible []*Polygon
	for i, face := range faces {
		row := body.Row(i + 1)
		normal := Vec(row[0], row[1], row[2])
		if normal.Dot(view) > 0 {
			visible = append(visible, face)
		} else {
			Logger().Debug("culling cube face", "face", i, "normal", normal, "view", view)
		}
	}
	return visible
}

func (c *Cube) Kind() Kind { return KindCube }

// Bounds returns the area painted by [Cube.Draw].
func (c *Cube) Bounds() Rect {
	offset := VectorBetween(Point{}, c.Origin)
	var pts []Point
	for _, face := range c.VisibleFaces(DefaultViewDirection) {
		for _, v := range face.Hull() {
			pts = append(pts, v.Move(offset, 1))
		}
	}
	return BoundingBoxOf(pts)
}

// Draw strokes the edges of the faces visible along [DefaultViewDirection],
// projected onto the XY plane and translated by Origin.
func (c *Cube) Draw(s Surface) error {
	offset := VectorBetween(Point{}, c.Origin)
	for _, face := range c.VisibleFaces(DefaultViewDirection) {
		for _, seg := range face.Segments() {
			seg = seg.Translate(offset)
			DrawDDA(seg.P0, seg.P1, s)
		}
	}
	return nil
}
