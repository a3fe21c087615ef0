package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Basics(t *testing.T) {
	r := NewRect(1, 2, 4, 8)
	assert.Equal(t, 3.0, r.Width())
	assert.Equal(t, 6.0, r.Height())
	assert.Equal(t, 18.0, r.Area())
	assert.Equal(t, Pt(1, 2), r.Origin())
	assert.Equal(t, Size{3, 6}, r.Size())
	assert.Equal(t, Pt(2.5, 5), r.Center())
	assert.False(t, r.IsEmpty())
}

func TestRect_FromPointsNormalizes(t *testing.T) {
	r := RectFromPoints(Pt(4, 8), Pt(1, 2))
	assert.Equal(t, NewRect(1, 2, 4, 8), r)

	r = RectFromOriginSize(Pt(5, 5), Size{-2, 3})
	assert.Equal(t, NewRect(3, 5, 5, 8), r)
}

func TestRect_WithOriginAndSize(t *testing.T) {
	r := NewRect(0, 0, 10, 20)
	assert.Equal(t, NewRect(5, 5, 15, 25), r.WithOrigin(Pt(5, 5)))
	assert.Equal(t, NewRect(0, 0, 1, 2), r.WithSize(Size{1, 2}))
}

func TestRect_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{name: "zero", r: ZeroRect, want: true},
		{name: "zero width", r: NewRect(1, 1, 1, 5), want: true},
		{name: "zero height", r: NewRect(1, 1, 5, 1), want: true},
		{name: "inverted", r: NewRect(5, 5, 1, 1), want: true},
		{name: "normal", r: NewRect(0, 0, 1, 1), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.IsEmpty())
		})
	}
}

func TestRect_ContainsIsHalfOpen(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.True(t, r.Contains(Pt(0, 0)))
	assert.True(t, r.Contains(Pt(9.99, 5)))
	assert.False(t, r.Contains(Pt(10, 5)))
	assert.False(t, r.Contains(Pt(5, 10)))
	assert.False(t, r.Contains(Pt(-0.1, 5)))
}

func TestRect_UnionIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 20, 15)

	assert.Equal(t, NewRect(0, 0, 20, 15), a.Union(b))
	assert.Equal(t, NewRect(5, 5, 10, 10), a.Intersect(b))

	disjoint := NewRect(30, 30, 40, 40)
	got := a.Intersect(disjoint)
	assert.True(t, got.IsEmpty())
	assert.Equal(t, NewRect(30, 30, 30, 30), got)

	assert.Equal(t, NewRect(-1, 0, 10, 12), a.UnionPoint(Pt(-1, 12)))
}

func TestRect_TranslateInset(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.Equal(t, NewRect(1, 2, 11, 12), r.Translate(Vec2{1, 2}))
	assert.Equal(t, NewRect(2, 2, 8, 8), r.Inset(2))
}

func TestRect_Finite(t *testing.T) {
	assert.True(t, NewRect(0, 0, 1, 1).IsFinite())
	assert.False(t, NewRect(0, 0, math.Inf(1), 1).IsFinite())
	assert.True(t, NewRect(math.NaN(), 0, 1, 1).IsNaN())
}

func TestVectorConversions(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, Vec2{3, 4}, p.ToVec2())
	assert.Equal(t, p, p.ToVec2().ToPoint())
	assert.Equal(t, Size{3, 4}, p.ToVec2().ToSize())
	assert.Equal(t, 5.0, p.ToVec2().Hypot())
	assert.Equal(t, 5.0, p.Distance(ZeroPoint))
	assert.Equal(t, Vec2{2, 2}, Pt(3, 3).Sub(Pt(1, 1)))
}
