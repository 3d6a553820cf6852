package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

var _ Surface = (*ImageSurface)(nil)

// ImageSurface is a [Surface] that paints into an *image.RGBA. Pixels outside
// the image bounds are ignored.
type ImageSurface struct {
	img *image.RGBA
	// Ink is the colour painted at full coverage.
	Ink color.RGBA
}

// NewImageSurface returns a transparent surface of the given size, painting
// in black.
func NewImageSurface(width, height int) *ImageSurface {
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1))))
}

// NewImageSurfaceFromImage returns a surface that paints into img directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	return &ImageSurface{img: img, Ink: colornames.Black}
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// SetPixel blends the ink over the pixel at (x, y), scaled by coverage.
func (s *ImageSurface) SetPixel(x, y int, coverage float64) {
	if !(image.Point{x, y}.In(s.img.Bounds())) || !(coverage > 0) {
		return
	}
	coverage = min(coverage, 1)
	dst := s.img.RGBAAt(x, y)
	// Source-over with a premultiplied ink scaled by coverage.
	sa := float64(s.Ink.A) / 255 * coverage
	blend := func(src, dst uint8) uint8 {
		return uint8(float64(src)*coverage + float64(dst)*(1-sa) + 0.5)
	}
	s.img.SetRGBA(x, y, color.RGBA{
		R: blend(s.Ink.R, dst.R),
		G: blend(s.Ink.G, dst.G),
		B: blend(s.Ink.B, dst.B),
		A: blend(s.Ink.A, dst.A),
	})
}

// Clear makes every pixel in r transparent.
func (s *ImageSurface) Clear(r image.Rectangle) {
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.Transparent, image.Point{}, draw.Src)
}

// Fill paints every pixel with c.
func (s *ImageSurface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Scale returns a copy of the image enlarged by an integer factor, keeping
// pixels sharp.
func (s *ImageSurface) Scale(factor int) *image.RGBA {
	factor = max(factor, 1)
	b := s.img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(out, out.Bounds(), s.img, b, draw.Src, nil)
	return out
}
