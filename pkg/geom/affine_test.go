package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestAffine_Apply(t *testing.T) {
	tests := []struct {
		name string
		t    Affine
		in   Point
		want Point
	}{
		{name: "identity", t: Identity, in: Pt(3, 4), want: Pt(3, 4)},
		{name: "scale", t: Scale(2), in: Pt(3, 4), want: Pt(6, 8)},
		{name: "non-uniform", t: ScaleNonUniform(2, 3), in: Pt(1, 1), want: Pt(2, 3)},
		{name: "translate", t: Translate(Vec2{10, -5}), in: Pt(1, 1), want: Pt(11, -4)},
		{name: "flip y", t: FlipY, in: Pt(1, 2), want: Pt(1, -2)},
		{name: "flip x", t: FlipX, in: Pt(1, 2), want: Pt(-1, 2)},
		{name: "rotate quarter", t: Rotate(math.Pi / 2), in: Pt(1, 0), want: Pt(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.t.Apply(tt.in)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
		})
	}
}

func TestAffine_MulOrder(t *testing.T) {
	// Scale applied first, then translate.
	m := Translate(Vec2{1, 0}).Mul(Scale(2))
	assert.Equal(t, Pt(3, 2), m.Apply(Pt(1, 1)))

	// Then is the reversed spelling.
	assert.Equal(t, m, Scale(2).Then(Translate(Vec2{1, 0})))
	assert.Equal(t, m, Scale(2).ThenTranslate(Vec2{1, 0}))
}

func TestAffine_InverseComposesToIdentity(t *testing.T) {
	cases := map[string]Affine{
		"translate": Translate(Vec2{12.5, -3}),
		"scale":     Scale(4),
		"rotate":    Rotate(0.7),
		"mixed":     Translate(Vec2{3, 9}).Mul(Rotate(1.1)).Mul(ScaleNonUniform(2, 0.5)),
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			require.True(t, m.Mul(m.Inverse()).ApproxEqual(Identity, eps))
			require.True(t, m.Inverse().Mul(m).ApproxEqual(Identity, eps))
		})
	}
}

func TestAffine_Determinant(t *testing.T) {
	assert.Equal(t, 1.0, Identity.Determinant())
	assert.Equal(t, 6.0, ScaleNonUniform(2, 3).Determinant())
	assert.Equal(t, -1.0, FlipY.Determinant())
}

func TestAffine_SingularAndDegenerate(t *testing.T) {
	singular := Scale(0)
	assert.True(t, singular.IsFinite())
	assert.False(t, singular.Inverse().IsFinite())

	nan := Affine{math.NaN(), 0, 0, 1, 0, 0}
	assert.True(t, nan.IsNaN())
	assert.False(t, nan.IsFinite())

	inf := Translate(Vec2{math.Inf(1), 0})
	assert.False(t, inf.IsNaN())
	assert.False(t, inf.IsFinite())

	assert.False(t, Identity.IsNaN())
	assert.True(t, Identity.IsFinite())
}

func TestMapUnitSquare(t *testing.T) {
	r := NewRect(10, 20, 30, 60)
	m := MapUnitSquare(r)
	assert.Equal(t, Pt(10, 20), m.Apply(Pt(0, 0)))
	assert.Equal(t, Pt(30, 60), m.Apply(Pt(1, 1)))
}

func TestAffine_TransformRectBBox(t *testing.T) {
	r := NewRect(0, 0, 2, 1)

	got := Translate(Vec2{5, 5}).TransformRectBBox(r)
	assert.Equal(t, NewRect(5, 5, 7, 6), got)

	rotated := Rotate(math.Pi / 2).TransformRectBBox(r)
	assert.InDelta(t, -1, rotated.X0, eps)
	assert.InDelta(t, 0, rotated.Y0, eps)
	assert.InDelta(t, 0, rotated.X1, eps)
	assert.InDelta(t, 2, rotated.Y1, eps)
}
