package geom_test

import (
	"math"
	"testing"

	geom "github.com/defini7/defGeometry2D"
	"github.com/stretchr/testify/require"
)

func TestVec2Arith(t *testing.T) {
	v := v2(3, 4)
	w := v2(1, -2)

	require.Equal(t, v2(4, 2), v.Add(w))
	require.Equal(t, v2(2, 6), v.Sub(w))
	require.Equal(t, v2(3, -8), v.Mul(w))
	require.Equal(t, v2(3, -2), v.Div(w))
	require.Equal(t, v2(6, 8), v.Scale(2))
	require.Equal(t, v2(-3, -4), v.Neg())
	require.Equal(t, v2(1, 2), w.Abs())
	require.Equal(t, v2(-4, 3), v.Perp())
}

func TestVec2Splat(t *testing.T) {
	require.Equal(t, v2(7, 7), geom.Splat(7.0))
	require.Equal(t, geom.Vec2[int]{X: 3, Y: 3}, geom.Splat(3))
}

func TestVec2Convert(t *testing.T) {
	require.Equal(t, geom.Vec2[int]{X: 1, Y: 0}, geom.Convert[int](v2(1.9, -0.5)))
	require.Equal(t, v2(3, 4), geom.Convert[float64](geom.V2(3, 4)))
}

func TestVec2Mod(t *testing.T) {
	require.Equal(t, geom.V2(3, -3), geom.Mod(geom.V2(7, -3), geom.V2(4, 4)))
}

func TestVec2DotCross(t *testing.T) {
	require.Equal(t, 11.0, v2(3, 4).Dot(v2(1, 2)))
	require.Equal(t, 0.0, v2(1, 0).Dot(v2(0, 1)))
	require.Equal(t, 2.0, v2(3, 4).Cross(v2(1, 2)))
	require.Equal(t, 0.0, v2(2, 4).Cross(v2(1, 2)))
}

func TestVec2Len(t *testing.T) {
	require.Equal(t, 5.0, v2(3, 4).Len())
	require.Equal(t, 25.0, v2(3, 4).Len2())
	require.Equal(t, 5.0, v2(1, 1).Dist(v2(4, 5)))
	require.Equal(t, 7.0, v2(1, 1).Man(v2(4, 5)))

	// Integer vectors keep exact results when the root is whole.
	require.Equal(t, 5, geom.V2(3, 4).Len())
}

func TestVec2Norm(t *testing.T) {
	require.Equal(t, v2(0.6, 0.8), v2(3, 4).Norm())
	require.Equal(t, v2(0, 0), v2(0, 0).Norm())

	n := v2(-2, 7).Norm()
	require.InDelta(t, 1, n.Len(), 1e-12)
	require.True(t, n.Norm().NearWithin(n, 1e-12))
}

func TestVec2Lerp(t *testing.T) {
	a := v2(0, 0)
	b := v2(10, 20)

	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))
	require.Equal(t, v2(2.5, 5), a.Lerp(b, 0.25))
}

func TestVec2MinMaxClamp(t *testing.T) {
	require.Equal(t, v2(1, 2), v2(1, 5).Min(v2(3, 2)))
	require.Equal(t, v2(3, 5), v2(1, 5).Max(v2(3, 2)))
	require.Equal(t, v2(3, 0), v2(5, -1).Clamp(v2(0, 0), v2(3, 3)))
}

func TestVec2Rounding(t *testing.T) {
	v := v2(-1.5, 2.5)

	require.Equal(t, v2(-2, 2), v.Floor())
	require.Equal(t, v2(-1, 3), v.Ceil())
	require.Equal(t, v2(-2, 3), v.Round())
}

func TestVec2Angle(t *testing.T) {
	require.InDelta(t, math.Pi/2, v2(1, 0).Angle(v2(0, 1)), 1e-12)
	require.InDelta(t, 0, v2(1, 0).Angle(v2(3, 0)), 1e-12)
	require.InDelta(t, math.Pi, v2(1, 0).Angle(v2(-1, 0)), 1e-12)
	require.InDelta(t, math.Pi/4, v2(1, 1).Angle(v2(0, 1)), 1e-12)

	// The angle does not depend on the operand order.
	require.Equal(t, v2(2, 3).Angle(v2(-5, 1)), v2(-5, 1).Angle(v2(2, 3)))
}

func TestVec2Polar(t *testing.T) {
	p := v2(3, 4).Polar()
	require.InDelta(t, 5, p.X, 1e-12)
	require.InDelta(t, math.Atan2(4, 3), p.Y, 1e-12)

	for _, v := range []geom.Vec2[float64]{v2(3, 4), v2(-2, 7), v2(0.5, -0.25)} {
		rt := v.Polar().Cart()
		require.True(t, rt.NearWithin(v, 1e-12), "round trip of %v gave %v", v, rt)
	}
}

func TestVec2Compare(t *testing.T) {
	require.True(t, v2(1, 2).Less(v2(3, 4)))
	require.False(t, v2(1, 5).Less(v2(2, 3)))
	require.False(t, v2(1, 5).GreaterEq(v2(2, 3)))
	require.True(t, v2(3, 4).LessEq(v2(3, 4)))
	require.True(t, v2(3, 4).GreaterEq(v2(3, 4)))
	require.True(t, v2(5, 5).Greater(v2(4, 4)))
}

func TestVec2Near(t *testing.T) {
	require.True(t, v2(1, 1).Near(v2(1.05, 0.95)))
	require.False(t, v2(1, 1).Near(v2(1.2, 1)))
	require.True(t, v2(1, 1).NearWithin(v2(1.4, 0.7), 0.5))
}

func TestVec2String(t *testing.T) {
	require.Equal(t, "(3, 4)", geom.V2(3, 4).String())
	require.Equal(t, "(1.5, -2.5)", v2(1.5, -2.5).String())
}
