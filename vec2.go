package geom

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Vec2 is a 2-component vector. It is a pure value type: operations
// return new vectors and never modify their operands.
type Vec2[T Scalar] struct {
	X, Y T
}

// V2 returns the vector (x, y).
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat returns the vector (s, s).
func Splat[T Scalar](s T) Vec2[T] {
	return Vec2[T]{X: s, Y: s}
}

// Convert converts v to a vector with scalar type U. Conversions
// between scalar types are always explicit; this is the only bridge
// between, for example, integer vectors and the float-typed predicate
// suite.
func Convert[U, T Scalar](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}

// Mod returns the component-wise remainder of v and w.
func Mod[T constraints.Integer](v, w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X % w.X, Y: v.Y % w.Y}
}

// Add returns the component-wise sum of v and w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference of v and w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the component-wise product of v and w.
func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div returns the component-wise quotient of v and w.
func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X / w.X, Y: v.Y / w.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Neg returns v with both components negated.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Abs returns v with the absolute value of both components.
func (v Vec2[T]) Abs() Vec2[T] {
	return Vec2[T]{X: abs(v.X), Y: abs(v.Y)}
}

// Perp returns v rotated by +90 degrees, (-y, x).
func (v Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{X: -v.Y, Y: v.X}
}

// Min returns the component-wise minimum of v and w.
func (v Vec2[T]) Min(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: min(v.X, w.X), Y: min(v.Y, w.Y)}
}

// Max returns the component-wise maximum of v and w.
func (v Vec2[T]) Max(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: max(v.X, w.X), Y: max(v.Y, w.Y)}
}

// Clamp returns v with each component limited to the range given by
// the corresponding components of lo and hi.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: min(max(v.X, lo.X), hi.X),
		Y: min(max(v.Y, lo.Y), hi.Y),
	}
}

// Lerp returns the linear interpolation between v and w at t, where
// t=0 yields v and t=1 yields w. The interpolation is computed in
// float64 and converted back to T.
func (v Vec2[T]) Lerp(w Vec2[T], t float64) Vec2[T] {
	return Vec2[T]{
		X: T(float64(v.X) + t*(float64(w.X)-float64(v.X))),
		Y: T(float64(v.Y) + t*(float64(w.Y)-float64(v.Y))),
	}
}

// Floor returns v with both components rounded down.
func (v Vec2[T]) Floor() Vec2[T] {
	return Vec2[T]{X: T(math.Floor(float64(v.X))), Y: T(math.Floor(float64(v.Y)))}
}

// Ceil returns v with both components rounded up.
func (v Vec2[T]) Ceil() Vec2[T] {
	return Vec2[T]{X: T(math.Ceil(float64(v.X))), Y: T(math.Ceil(float64(v.Y)))}
}

// Round returns v with both components rounded to the nearest integer,
// rounding half away from zero.
func (v Vec2[T]) Round() Vec2[T] {
	return Vec2[T]{X: T(math.Round(float64(v.X))), Y: T(math.Round(float64(v.Y)))}
}

// Dot returns the dot product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D scalar cross product of v and w, the signed
// area of the parallelogram they span.
func (v Vec2[T]) Cross(w Vec2[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// Len returns the length of v. It is computed in float64 and converted
// back to T; use [Vec2.Len2] when only relative comparison is needed.
func (v Vec2[T]) Len() T {
	return sqrt(v.Len2())
}

// Len2 returns the squared length of v, avoiding the square root.
func (v Vec2[T]) Len2() T {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the distance between v and w.
func (v Vec2[T]) Dist(w Vec2[T]) T {
	return v.Sub(w).Len()
}

// Man returns the Manhattan distance between v and w.
func (v Vec2[T]) Man(w Vec2[T]) T {
	return abs(v.X-w.X) + abs(v.Y-w.Y)
}

// Norm returns the unit vector in the direction of v. The zero vector
// is returned unchanged.
func (v Vec2[T]) Norm() Vec2[T] {
	l := v.Len()
	if l == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{X: v.X / l, Y: v.Y / l}
}

// Angle returns the angle between v and w in radians, in [0, π].
func (v Vec2[T]) Angle(w Vec2[T]) float64 {
	return math.Atan2(math.Abs(float64(v.Cross(w))), float64(v.Dot(w)))
}

// Cart treats v as polar coordinates (radius, angle) and returns the
// corresponding Cartesian vector.
func (v Vec2[T]) Cart() Vec2[T] {
	return Vec2[T]{
		X: T(math.Cos(float64(v.Y)) * float64(v.X)),
		Y: T(math.Sin(float64(v.Y)) * float64(v.X)),
	}
}

// Polar returns v as polar coordinates, (length, atan2(y, x)).
func (v Vec2[T]) Polar() Vec2[T] {
	return Vec2[T]{X: v.Len(), Y: T(math.Atan2(float64(v.Y), float64(v.X)))}
}

// Less reports whether both components of v are less than those of w.
// Like the other component-wise comparisons it is a partial order: two
// vectors whose components disagree are not ordered either way.
func (v Vec2[T]) Less(w Vec2[T]) bool {
	return v.X < w.X && v.Y < w.Y
}

// LessEq reports whether both components of v are less than or equal
// to those of w.
func (v Vec2[T]) LessEq(w Vec2[T]) bool {
	return v.X <= w.X && v.Y <= w.Y
}

// Greater reports whether both components of v are greater than those
// of w.
func (v Vec2[T]) Greater(w Vec2[T]) bool {
	return v.X > w.X && v.Y > w.Y
}

// GreaterEq reports whether both components of v are greater than or
// equal to those of w.
func (v Vec2[T]) GreaterEq(w Vec2[T]) bool {
	return v.X >= w.X && v.Y >= w.Y
}

// Near reports whether both components of v and w are within [Epsilon]
// of each other.
func (v Vec2[T]) Near(w Vec2[T]) bool {
	return v.NearWithin(w, defaultTol[T]())
}

// NearWithin reports whether both components of v and w are within tol
// of each other.
func (v Vec2[T]) NearWithin(w Vec2[T], tol T) bool {
	return EqualWithin(v.X, w.X, tol) && EqualWithin(v.Y, w.Y, tol)
}

// String returns v formatted as "(x, y)".
func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
