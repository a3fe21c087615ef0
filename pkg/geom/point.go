package geom

import "math"

// Point is a position in 2D space.
type Point struct {
	X, Y float64
}

// Vec2 is a displacement in 2D space.
type Vec2 struct {
	X, Y float64
}

// Size is a width and a height.
type Size struct {
	Width, Height float64
}

// ZeroPoint is the origin.
var ZeroPoint = Point{}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// ToVec2 returns the displacement from the origin to p.
func (p Point) ToVec2() Vec2 { return Vec2{X: p.X, Y: p.Y} }

// Add offsets p by v.
func (p Point) Add(v Vec2) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec2 { return Vec2{X: p.X - q.X, Y: p.Y - q.Y} }

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Hypot() }

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool { return isFinite(p.X) && isFinite(p.Y) }

// ToPoint returns the point at displacement v from the origin.
func (v Vec2) ToPoint() Point { return Point{X: v.X, Y: v.Y} }

// ToSize reinterprets v as a size.
func (v Vec2) ToSize() Size { return Size{Width: v.X, Height: v.Y} }

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{X: v.X - w.X, Y: v.Y - w.Y} }

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// ToVec2 reinterprets s as a displacement.
func (s Size) ToVec2() Vec2 { return Vec2{X: s.Width, Y: s.Height} }

// Area returns Width * Height.
func (s Size) Area() float64 { return s.Width * s.Height }

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool { return s.Area() == 0 }

func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
