package geom

// Line is a line segment between two endpoints. It is degenerate when
// Start == End; predicates fall back to point semantics for degenerate
// segments instead of dividing by zero.
type Line[T Float] struct {
	Start, End Vec2[T]
}

// NewLine returns the line segment from start to end.
func NewLine[T Float](start, end Vec2[T]) Line[T] {
	return Line[T]{Start: start, End: end}
}

// Vec returns the direction vector of l, End-Start.
func (l Line[T]) Vec() Vec2[T] {
	return l.End.Sub(l.Start)
}

// Len returns the length of l.
func (l Line[T]) Len() T {
	return l.Vec().Len()
}

// Dist returns the perpendicular distance from p to the infinite line
// through l. For a degenerate segment it returns the distance from p
// to the segment's single point.
func (l Line[T]) Dist(p Vec2[T]) T {
	a := l.End.Y - l.Start.Y
	b := l.Start.X - l.End.X
	if a == 0 && b == 0 {
		return p.Dist(l.Start)
	}
	c := l.End.X*l.Start.Y - l.Start.X*l.End.Y
	return abs(a*p.X+b*p.Y+c) / sqrt(a*a+b*b)
}
