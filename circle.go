package geom

// Circle is a circle described by its center and radius. A negative
// radius has no geometric meaning; predicates assume Radius >= 0 and do
// not validate it.
type Circle[T Float] struct {
	Pos    Vec2[T]
	Radius T
}

// NewCircle returns the circle centered at pos with the given radius.
func NewCircle[T Float](pos Vec2[T], radius T) Circle[T] {
	return Circle[T]{Pos: pos, Radius: radius}
}

// Area returns the area of c.
func (c Circle[T]) Area() T {
	return T(Pi) * c.Radius * c.Radius
}

// Circumference returns the circumference of c.
func (c Circle[T]) Circumference() T {
	return 2 * T(Pi) * c.Radius
}
