package geom

import "math"

// Rect is an axis-aligned rectangle given by two corners.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// ZeroRect is the empty rectangle at the origin.
var ZeroRect = Rect{}

// NewRect builds a rectangle from its edges.
func NewRect(x0, y0, x1, y1 float64) Rect { return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1} }

// RectFromPoints returns the rectangle spanned by two opposite corners, in
// either order.
func RectFromPoints(p0, p1 Point) Rect {
	return Rect{X0: p0.X, Y0: p0.Y, X1: p1.X, Y1: p1.Y}.Abs()
}

// RectFromOriginSize returns the rectangle with the given top-left corner
// and size. A negative size is normalized.
func RectFromOriginSize(origin Point, size Size) Rect {
	return RectFromPoints(origin, origin.Add(size.ToVec2()))
}

// WithOrigin moves r so its origin is at p, keeping its size.
func (r Rect) WithOrigin(p Point) Rect { return RectFromOriginSize(p, r.Size()) }

// WithSize resizes r, keeping its origin.
func (r Rect) WithSize(s Size) Rect { return RectFromOriginSize(r.Origin(), s) }

// Width returns X1 - X0.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 - Y0.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// MinX returns the smaller X edge.
func (r Rect) MinX() float64 { return math.Min(r.X0, r.X1) }

// MaxX returns the larger X edge.
func (r Rect) MaxX() float64 { return math.Max(r.X0, r.X1) }

// MinY returns the smaller Y edge.
func (r Rect) MinY() float64 { return math.Min(r.Y0, r.Y1) }

// MaxY returns the larger Y edge.
func (r Rect) MaxY() float64 { return math.Max(r.Y0, r.Y1) }

// Origin returns the (X0, Y0) corner.
func (r Rect) Origin() Point { return Point{X: r.X0, Y: r.Y0} }

// Size returns the width and height.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// Center returns the midpoint.
func (r Rect) Center() Point {
	return Point{X: 0.5 * (r.X0 + r.X1), Y: 0.5 * (r.Y0 + r.Y1)}
}

// Abs returns r with its corners swapped as needed so that X1 >= X0 and
// Y1 >= Y0.
func (r Rect) Abs() Rect {
	return Rect{X0: r.MinX(), Y0: r.MinY(), X1: r.MaxX(), Y1: r.MaxY()}
}

// Area returns the signed area.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// IsEmpty reports whether r encloses no area.
func (r Rect) IsEmpty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Contains reports whether p lies inside r. The X0 and Y0 edges are
// inclusive, the X1 and Y1 edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Union returns the smallest rectangle enclosing both r and o. Empty
// rectangles are not special-cased.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, o.X0),
		Y0: math.Min(r.Y0, o.Y0),
		X1: math.Max(r.X1, o.X1),
		Y1: math.Max(r.Y1, o.Y1),
	}
}

// UnionPoint grows r to include p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		X0: math.Min(r.X0, p.X),
		Y0: math.Min(r.Y0, p.Y),
		X1: math.Max(r.X1, p.X),
		Y1: math.Max(r.Y1, p.Y),
	}
}

// Intersect returns the overlap of r and o. When they do not overlap the
// result has zero width or height, positioned at the overlap's start edge.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X0, o.X0)
	y0 := math.Max(r.Y0, o.Y0)
	x1 := math.Min(r.X1, o.X1)
	y1 := math.Min(r.Y1, o.Y1)
	return Rect{X0: x0, Y0: y0, X1: math.Max(x1, x0), Y1: math.Max(y1, y0)}
}

// Translate offsets r by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{X0: r.X0 + v.X, Y0: r.Y0 + v.Y, X1: r.X1 + v.X, Y1: r.Y1 + v.Y}
}

// Inset moves every edge inward by d. A negative d grows the rectangle.
func (r Rect) Inset(d float64) Rect {
	return Rect{X0: r.X0 + d, Y0: r.Y0 + d, X1: r.X1 - d, Y1: r.Y1 - d}
}

// IsFinite reports whether every edge is finite.
func (r Rect) IsFinite() bool {
	return isFinite(r.X0) && isFinite(r.Y0) && isFinite(r.X1) && isFinite(r.Y1)
}

// IsNaN reports whether any edge is NaN.
func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}
