package canvas

import (
	"fmt"
	"image"
	"math"
)

// Surface is a pixel sink that rasterizers draw into.
type Surface interface {
	// SetPixel paints the pixel at (x, y) with the given coverage in [0, 1].
	// Coverage 1 paints the pixel opaquely.
	SetPixel(x, y int, coverage float64)
	// Clear resets all pixels in r.
	Clear(r image.Rectangle)
}

// Pixel is a single pixel produced by a rasterizer.
type Pixel struct {
	X, Y     int
	Coverage float64
}

func (px Pixel) String() string {
	return fmt.Sprintf("(%d, %d)@%g", px.X, px.Y, px.Coverage)
}

// Point returns the pixel's position as a point.
func (px Pixel) Point() Point {
	return Pt(float64(px.X), float64(px.Y))
}

// Algorithm selects a line rasterization algorithm.
type Algorithm int

const (
	DDA Algorithm = iota
	Bresenham
	Wu
)

func (alg Algorithm) String() string {
	switch alg {
	case DDA:
		return "DDA"
	case Bresenham:
		return "Bresenham"
	case Wu:
		return "Wu"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(alg))
	}
}

// ParseAlgorithm returns the algorithm with the given name, as returned by
// [Algorithm.String].
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, alg := range []Algorithm{DDA, Bresenham, Wu} {
		if alg.String() == name {
			return alg, nil
		}
	}
	return 0, fmt.Errorf("canvas: unknown line algorithm %q", name)
}

func (alg Algorithm) MarshalText() ([]byte, error) {
	return []byte(alg.String()), nil
}

func (alg *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*alg = v
	return nil
}

// Rasterize draws the line from p0 to p1 onto s using alg and returns the
// pixels it painted. s may be nil, in which case nothing is painted.
func Rasterize(alg Algorithm, p0, p1 Point, s Surface) []Pixel {
	switch alg {
	case DDA:
		return DrawDDA(p0, p1, s)
	case Bresenham:
		return DrawBresenham(p0, p1, s)
	case Wu:
		return DrawWu(p0, p1, s)
	default:
		panic(fmt.Sprintf("invalid algorithm %v", alg))
	}
}

func paint(s Surface, pxs []Pixel) {
	if s == nil {
		return
	}
	for _, px := range pxs {
		s.SetPixel(px.X, px.Y, px.Coverage)
	}
}

// endpoints quantizes the endpoints of a line to pixels. It reports false if
// both end up on the same pixel.
func endpoints(alg Algorithm, p0, p1 Point) (x0, y0, x1, y1 int, ok bool) {
	x0, y0 = p0.Pixel()
	x1, y1 = p1.Pixel()
	if x0 == x1 && y0 == y1 {
		Logger().Debug("refusing to draw degenerate line", "algorithm", alg, "start", p0, "end", p1)
		return x0, y0, x1, y1, false
	}
	return x0, y0, x1, y1, true
}

// isOctantAligned reports whether the line from (x0, y0) to (x1, y1) is
// horizontal, vertical or diagonal, to within a whole degree.
func isOctantAligned(x0, y0, x1, y1 int) bool {
	v := Vec(float64(x1-x0), float64(y1-y0), 0)
	angle, err := v.AngleToXAxis()
	if err != nil {
		return false
	}
	return math.Mod(angle, 45) == 0
}

// DrawDDA draws a line using the digital differential analyzer: it steps
// along the longer axis in unit steps and rounds the other coordinate.
func DrawDDA(p0, p1 Point, s Surface) []Pixel {
	x0, y0, x1, y1, ok := endpoints(DDA, p0, p1)
	if !ok {
		return nil
	}
	dx := x1 - x0
	dy := y1 - y0
	steps := max(abs(dx), abs(dy))
	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)

	pxs := make([]Pixel, 0, steps+1)
	x, y := float64(x0), float64(y0)
	for range steps + 1 {
		pxs = append(pxs, Pixel{X: int(round(x)), Y: int(round(y)), Coverage: 1})
		x += xInc
		y += yInc
	}
	paint(s, pxs)
	return pxs
}

// DrawBresenham draws a line using Bresenham's integer error accumulation.
// Horizontal, vertical and diagonal lines are drawn with [DrawDDA].
func DrawBresenham(p0, p1 Point, s Surface) []Pixel {
	x0, y0, x1, y1, ok := endpoints(Bresenham, p0, p1)
	if !ok {
		return nil
	}
	if isOctantAligned(x0, y0, x1, y1) {
		Logger().Debug("delegating aligned line to DDA", "algorithm", Bresenham, "start", p0, "end", p1)
		return DrawDDA(p0, p1, s)
	}

	dx := x1 - x0
	dy := y1 - y0
	x, y := x0, y0
	// Always step along the dominant axis.
	steep := abs(dy) > abs(dx)
	if steep {
		dx, dy = dy, dx
		x, y = y, x
	}
	stepX := sign(dx)
	stepY := sign(dy)
	adx := abs(dx)
	ady := abs(dy)

	// e = 1/2 + dy/dx, scaled by 2dx to stay in integers.
	e := 2*ady - adx
	pxs := make([]Pixel, 0, adx+1)
	for range adx + 1 {
		if steep {
			pxs = append(pxs, Pixel{X: y, Y: x, Coverage: 1})
		} else {
			pxs = append(pxs, Pixel{X: x, Y: y, Coverage: 1})
		}
		if e >= 0 {
			y += stepY
			e -= 2 * adx
		}
		x += stepX
		e += 2 * ady
	}
	paint(s, pxs)
	return pxs
}

// wuThreshold is the accumulated error at which Wu's algorithm advances the
// dependent coordinate. Each step paints a band two pixels wide, so the band
// only moves once the ideal line passes the middle of its far pixel.
const wuThreshold = 1.5

// DrawWu draws an antialiased line using Wu's algorithm. Every step paints
// two adjacent pixels straddling the ideal line, with coverages summing to 1.
// Both endpoints are included, so a line whose dominant axis spans Δ pixels
// paints 2·(Δ+1) pixels.
// Horizontal, vertical and diagonal lines are drawn with [DrawDDA].
func DrawWu(p0, p1 Point, s Surface) []Pixel {
	x0, y0, x1, y1, ok := endpoints(Wu, p0, p1)
	if !ok {
		return nil
	}
	if isOctantAligned(x0, y0, x1, y1) {
		Logger().Debug("delegating aligned line to DDA", "algorithm", Wu, "start", p0, "end", p1)
		return DrawDDA(p0, p1, s)
	}
	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	ideal := Line{
		P0: Pt(float64(x0), float64(y0)),
		P1: Pt(float64(x1), float64(y1)),
	}

	// The independent variable advances by one pixel per step; the dependent
	// one follows the accumulated error.
	swap := abs(y1-y0) > abs(x1-x0)
	indStart, indEnd, depStart, depEnd := x0, x1, y0, y1
	if swap {
		indStart, indEnd, depStart, depEnd = y0, y1, x0, x1
	}
	indStep := 1
	if indEnd-indStart <= 0 {
		indStep = -1
	}
	depStep := 1
	if depEnd-depStart <= 0 {
		depStep = -1
	}
	deltaErr := float64(abs(depEnd-depStart)) / float64(abs(indEnd-indStart))

	pxs := make([]Pixel, 0, 2*(abs(indEnd-indStart)+1))
	dep := depStart
	var acc float64
	for ind := indStart; ; ind += indStep {
		x, y := ind, dep
		x2, y2 := x, y+depStep
		if swap {
			x, y = dep, ind
			x2, y2 = x+depStep, y
		}
		c := max(0, 1-ideal.DistanceToPoint(Pt(float64(x), float64(y))))
		pxs = append(pxs,
			Pixel{X: x, Y: y, Coverage: c},
			Pixel{X: x2, Y: y2, Coverage: 1 - c},
		)
		if ind == indEnd {
			break
		}

		acc += deltaErr
		if acc >= wuThreshold {
			dep += depStep
			acc -= 1
		}
	}
	paint(s, pxs)
	return pxs
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
