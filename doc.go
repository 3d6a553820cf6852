// Package canvas provides the geometry and scan-conversion engine of a 2D
// drawing surface.
//
// # Primitives
//
// [Point], [Vector], [Line], [Segment] and [Matrix] are small value types.
// Points carry homogeneous coordinates so that they can be transformed with
// 4×4 matrices (see [Point.ApplyMatrix]); most of the package works in the
// z = 0 plane. Matrices are indexed from 1, matching the usual mathematical
// notation.
//
// # Rasterization
//
// Lines are converted to pixels with the DDA, Bresenham and Wu algorithms
// (see [Rasterize]), which paint onto a [Surface]. Ellipses, parabolas and
// hyperbolas are digitized by [Ellipse], [Parabola] and [Hyperbola], which
// walk one quadrant or half of the conic choosing the neighbouring pixel
// closest to the curve, and mirror the result.
//
// # Curves
//
// [Hermite], [Bezier] and [BSplineCurve] sample cubic curves by multiplying
// their geometry with a basis matrix. [HermiteCurve], [BezierCurve] and
// [BSpline] wrap them with editable reference points.
//
// # Polygons
//
// A [Polygon] is the convex hull of its vertices. [DiscoverPolygons] finds
// the polygons enclosed by a set of segments; its cost grows exponentially
// with the number of segments.
//
// # Scenes
//
// A [Scene] stores primitives by ID, answers the queries needed for snapping
// curves together, and renders everything onto a surface such as
// [ImageSurface].
//
// # Coordinate system
//
// Pixel coordinates are integers obtained by rounding halves up. The package
// doesn't care whether y grows upwards or downwards; [Cube] assumes a camera
// looking along [DefaultViewDirection].
package canvas
