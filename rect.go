package geom

import (
	"fmt"
	"iter"
)

// Side identifies one side of a rectangle. The four real sides have
// values in [0, NumSides); SideNone is the sentinel returned by APIs
// that may fail to identify a side.
type Side int

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
	SideNone
)

// NumSides is the number of sides of a rectangle.
const NumSides = 4

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideNone:
		return "none"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Rect is an axis-aligned rectangle described by its top-left corner
// and size. Size components are assumed to be non-negative; [Rect.Canon]
// normalizes a rectangle that violates this. Sides and corners are
// derived from Pos and Size, never stored.
type Rect[T Float] struct {
	Pos, Size Vec2[T]
}

// NewRect returns the rectangle with top-left corner pos and the given
// size.
func NewRect[T Float](pos, size Vec2[T]) Rect[T] {
	return Rect[T]{Pos: pos, Size: size}
}

// Dx returns the width of r.
func (r Rect[T]) Dx() T {
	return r.Size.X
}

// Dy returns the height of r.
func (r Rect[T]) Dy() T {
	return r.Size.Y
}

// Area returns the area of r.
func (r Rect[T]) Area() T {
	return r.Size.X * r.Size.Y
}

// Perimeter returns the perimeter of r.
func (r Rect[T]) Perimeter() T {
	return 2 * (r.Size.X + r.Size.Y)
}

// TopLeft returns the top-left corner of r.
func (r Rect[T]) TopLeft() Vec2[T] {
	return r.Pos
}

// TopRight returns the top-right corner of r.
func (r Rect[T]) TopRight() Vec2[T] {
	return r.Pos.Add(V2(r.Size.X, 0))
}

// BottomLeft returns the bottom-left corner of r.
func (r Rect[T]) BottomLeft() Vec2[T] {
	return r.Pos.Add(V2(0, r.Size.Y))
}

// BottomRight returns the bottom-right corner of r.
func (r Rect[T]) BottomRight() Vec2[T] {
	return r.Pos.Add(r.Size)
}

// Left returns the left side of r, from the top-left corner to the
// bottom-left corner.
func (r Rect[T]) Left() Line[T] {
	return Line[T]{Start: r.TopLeft(), End: r.BottomLeft()}
}

// Top returns the top side of r, from the top-left corner to the
// top-right corner.
func (r Rect[T]) Top() Line[T] {
	return Line[T]{Start: r.TopLeft(), End: r.TopRight()}
}

// Right returns the right side of r, from the top-right corner to the
// bottom-right corner.
func (r Rect[T]) Right() Line[T] {
	return Line[T]{Start: r.TopRight(), End: r.BottomRight()}
}

// Bottom returns the bottom side of r, from the bottom-left corner to
// the bottom-right corner.
func (r Rect[T]) Bottom() Line[T] {
	return Line[T]{Start: r.BottomLeft(), End: r.BottomRight()}
}

// Side returns the side of r identified by s, or a zero Line when s is
// not one of the four real sides.
func (r Rect[T]) Side(s Side) Line[T] {
	switch s {
	case SideLeft:
		return r.Left()
	case SideTop:
		return r.Top()
	case SideRight:
		return r.Right()
	case SideBottom:
		return r.Bottom()
	default:
		return Line[T]{}
	}
}

// Sides returns an iterator over the four sides of r in [Side] order.
func (r Rect[T]) Sides() iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		for s := SideLeft; s < NumSides; s++ {
			if !yield(r.Side(s)) {
				return
			}
		}
	}
}

// Corners returns an iterator over the four corners of r: top-left,
// top-right, bottom-left, bottom-right.
func (r Rect[T]) Corners() iter.Seq[Vec2[T]] {
	return func(yield func(Vec2[T]) bool) {
		for _, p := range [NumSides]Vec2[T]{r.TopLeft(), r.TopRight(), r.BottomLeft(), r.BottomRight()} {
			if !yield(p) {
				return
			}
		}
	}
}

// Center returns the center point of r.
func (r Rect[T]) Center() Vec2[T] {
	return r.Pos.Add(r.Size.Scale(0.5))
}

// CenterAt returns r moved so that its center is at p.
func (r Rect[T]) CenterAt(p Vec2[T]) Rect[T] {
	return Rect[T]{Pos: p.Sub(r.Size.Scale(0.5)), Size: r.Size}
}

// Add returns r translated by v.
func (r Rect[T]) Add(v Vec2[T]) Rect[T] {
	return Rect[T]{Pos: r.Pos.Add(v), Size: r.Size}
}

// Resize returns r with its size set to size, keeping the top-left
// corner fixed.
func (r Rect[T]) Resize(size Vec2[T]) Rect[T] {
	return Rect[T]{Pos: r.Pos, Size: size}
}

// Canon returns the canonical version of r: a rectangle with the same
// extent but with non-negative size components.
func (r Rect[T]) Canon() Rect[T] {
	if r.Size.X < 0 {
		r.Pos.X += r.Size.X
		r.Size.X = -r.Size.X
	}
	if r.Size.Y < 0 {
		r.Pos.Y += r.Size.Y
		r.Size.Y = -r.Size.Y
	}
	return r
}
