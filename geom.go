// Package geom provides 2D geometry primitives: a generic vector type,
// circle, line segment, and axis-aligned rectangle shapes, and a full
// suite of containment and intersection predicates between them.
//
// It is patterned after image.Point and image.Rectangle, but is generic
// over the scalar type and extends them with the predicate suite that
// games, simulations, and UI hit-testing need.
//
// All predicate arithmetic is performed in the shape's own
// floating-point scalar type. There is no implicit promotion between
// differently-typed values; integer-valued vectors take part in the
// vector layer only and must be converted explicitly with [Convert]
// before use with the predicates. Boundary decisions ("touching counts")
// are made with a tolerance: the kernels accept it explicitly through
// [ContainsWithin] and [IntersectWithin], while the shape methods use
// the package default [Epsilon].
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that the vector layer can
// handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is a constraint for the types that shapes and predicates can
// handle.
type Float interface {
	constraints.Float
}

const (
	// Epsilon is the default comparison tolerance. Every boundary
	// decision made by the predicate suite treats values within
	// Epsilon of each other as equal.
	Epsilon = 0.1

	// Pi is the circle constant.
	Pi = math.Pi
)

// EqualWithin reports whether a and b differ by no more than tol.
func EqualWithin[T Scalar](a, b, tol T) bool {
	return abs(a-b) <= tol
}

// Equal reports whether a and b differ by no more than [Epsilon].
func Equal[T Scalar](a, b T) bool {
	return EqualWithin(a, b, defaultTol[T]())
}

// defaultTol is Epsilon converted to T. For integer scalars the
// conversion truncates to zero, making the default comparison exact.
func defaultTol[T Scalar]() T {
	e := Epsilon
	return T(e)
}

func abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sqrt[T Scalar](x T) T {
	return T(math.Sqrt(float64(x)))
}
