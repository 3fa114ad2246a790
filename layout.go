package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// Edges is a bitmask selecting zero or more edges of a rectangle.
// Unlike [Side], which identifies a single side, an Edges value names
// a set of them, as [Align] needs.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// HSplit splits a rectangle into two rectangles arranged horizontally,
// the left one w wide.
func HSplit[T Float](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resize(V2(w, r.Dy()))
	right = r.Resize(V2(r.Dx()-w, r.Dy())).Add(V2(w, 0))
	return left, right
}

// HSplitHalf splits a rectangle into two equal rectangles arranged
// horizontally.
func HSplitHalf[T Float](r Rect[T]) (left, right Rect[T]) {
	return HSplit(r, r.Dx()/2)
}

// VSplit splits a rectangle into two rectangles arranged vertically,
// the top one h tall.
func VSplit[T Float](r Rect[T], h T) (top, bottom Rect[T]) {
	top = r.Resize(V2(r.Dx(), h))
	bottom = r.Resize(V2(r.Dx(), r.Dy()-h)).Add(V2(0, h))
	return top, bottom
}

// VSplitHalf splits a rectangle into two equal rectangles arranged
// vertically.
func VSplitHalf[T Float](r Rect[T]) (top, bottom Rect[T]) {
	return VSplit(r, r.Dy()/2)
}

// TileEvenX arranges and resizes the elements of tiles so that they
// comprise an even, horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rect[float64], 3)
//	geom.TileEvenX(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenX[T Float](tiles []Rect[T], r Rect[T]) {
	fillTiles(tiles, SplitEvenX(len(tiles), r))
}

// SplitEvenX is the same as [TileEvenX] except that it yields the
// successive tiles from an iterator instead of inserting them into a
// slice.
func SplitEvenX[T Float](n int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		step := V2(r.Dx()/T(n), 0)
		c, _ := HSplit(r, step.X)
		for range n {
			if !yield(c) {
				return
			}
			c = c.Add(step)
		}
	}
}

// TileEvenY arranges and resizes the elements of tiles so that they
// comprise an even, vertical splitting of r.
func TileEvenY[T Float](tiles []Rect[T], r Rect[T]) {
	fillTiles(tiles, SplitEvenY(len(tiles), r))
}

// SplitEvenY is the same as [TileEvenY] except that it yields the
// successive tiles from an iterator instead of inserting them into a
// slice.
func SplitEvenY[T Float](n int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		step := V2(0, r.Dy()/T(n))
		c, _ := VSplit(r, step.Y)
		for range n {
			if !yield(c) {
				return
			}
			c = c.Add(step)
		}
	}
}

// Align moves inner so that each edge selected in edges lines up with
// the matching edge of outer. Selecting two opposite edges stretches
// inner between them. An axis with no selected edge stays centered on
// outer.
func Align[T Float](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.Pos.Y = outer.Pos.Y
		if edges&EdgeBottom != 0 {
			inner.Size.Y = outer.Size.Y
		}
	case edges&EdgeBottom != 0:
		inner.Pos.Y = outer.Pos.Y + outer.Size.Y - inner.Size.Y
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.Pos.X = outer.Pos.X
		if edges&EdgeRight != 0 {
			inner.Size.X = outer.Size.X
		}
	case edges&EdgeRight != 0:
		inner.Pos.X = outer.Pos.X + outer.Size.X - inner.Size.X
	}

	return inner
}

func fillTiles[T Float](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
