package geom

import "math"

// Affine is a 2D affine transform stored as [a b c d e f]. See the package
// documentation for the coefficient layout.
type Affine [6]float64

var (
	// Identity leaves every point unchanged.
	Identity = Affine{1, 0, 0, 1, 0, 0}
	// FlipY mirrors across the X axis.
	FlipY = Affine{1, 0, 0, -1, 0, 0}
	// FlipX mirrors across the Y axis.
	FlipX = Affine{-1, 0, 0, 1, 0, 0}
)

// NewAffine builds a transform from its six coefficients.
func NewAffine(a, b, c, d, e, f float64) Affine { return Affine{a, b, c, d, e, f} }

// Scale returns a uniform scaling by s.
func Scale(s float64) Affine { return Affine{s, 0, 0, s, 0, 0} }

// ScaleNonUniform scales X by sx and Y by sy.
func ScaleNonUniform(sx, sy float64) Affine { return Affine{sx, 0, 0, sy, 0, 0} }

// Rotate returns a rotation by th radians. Positive angles rotate from the
// positive X axis towards the positive Y axis.
func Rotate(th float64) Affine {
	s, c := math.Sincos(th)
	return Affine{c, s, -s, c, 0, 0}
}

// Translate returns a translation by v.
func Translate(v Vec2) Affine { return Affine{1, 0, 0, 1, v.X, v.Y} }

// MapUnitSquare returns the transform that maps the unit square onto r.
func MapUnitSquare(r Rect) Affine {
	return Affine{r.Width(), 0, 0, r.Height(), r.X0, r.Y0}
}

// Coeffs returns the six coefficients.
func (t Affine) Coeffs() [6]float64 { return [6]float64(t) }

// Mul composes two transforms: the result applies o first, then t.
func (t Affine) Mul(o Affine) Affine {
	return Affine{
		t[0]*o[0] + t[2]*o[1],
		t[1]*o[0] + t[3]*o[1],
		t[0]*o[2] + t[2]*o[3],
		t[1]*o[2] + t[3]*o[3],
		t[0]*o[4] + t[2]*o[5] + t[4],
		t[1]*o[4] + t[3]*o[5] + t[5],
	}
}

// Then returns the transform that applies t, then o.
func (t Affine) Then(o Affine) Affine { return o.Mul(t) }

// ThenTranslate appends a translation by v.
func (t Affine) ThenTranslate(v Vec2) Affine {
	t[4] += v.X
	t[5] += v.Y
	return t
}

// Apply maps p through t.
func (t Affine) Apply(p Point) Point {
	return Point{
		X: t[0]*p.X + t[2]*p.Y + t[4],
		Y: t[1]*p.X + t[3]*p.Y + t[5],
	}
}

// ApplyVec maps a displacement through the linear part of t.
func (t Affine) ApplyVec(v Vec2) Vec2 {
	return Vec2{X: t[0]*v.X + t[2]*v.Y, Y: t[1]*v.X + t[3]*v.Y}
}

// Determinant returns a*d - b*c. A zero determinant means t is not
// invertible.
func (t Affine) Determinant() float64 { return t[0]*t[3] - t[1]*t[2] }

// Inverse returns the inverse transform. For a singular transform the
// result contains infinities or NaNs; check IsFinite when that matters.
func (t Affine) Inverse() Affine {
	invDet := 1 / t.Determinant()
	return Affine{
		invDet * t[3],
		-invDet * t[1],
		-invDet * t[2],
		invDet * t[0],
		invDet * (t[2]*t[5] - t[3]*t[4]),
		invDet * (t[1]*t[4] - t[0]*t[5]),
	}
}

// TransformRectBBox maps the four corners of r through t and returns their
// bounding box.
func (t Affine) TransformRectBBox(r Rect) Rect {
	p00 := t.Apply(Point{r.X0, r.Y0})
	p01 := t.Apply(Point{r.X0, r.Y1})
	p10 := t.Apply(Point{r.X1, r.Y0})
	p11 := t.Apply(Point{r.X1, r.Y1})
	return RectFromPoints(p00, p01).UnionPoint(p10).UnionPoint(p11)
}

// Translation returns the translation component.
func (t Affine) Translation() Vec2 { return Vec2{X: t[4], Y: t[5]} }

// IsFinite reports whether every coefficient is finite.
func (t Affine) IsFinite() bool {
	for _, v := range t {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// IsNaN reports whether any coefficient is NaN.
func (t Affine) IsNaN() bool {
	for _, v := range t {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// ApproxEqual reports whether every coefficient of t and o differs by at
// most eps.
func (t Affine) ApproxEqual(o Affine, eps float64) bool {
	for i := range t {
		if math.Abs(t[i]-o[i]) > eps {
			return false
		}
	}
	return true
}
