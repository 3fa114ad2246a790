package geom

// Kind identifies the variant of a [Shape]. Kinds are ordered; the
// intersection dispatcher normalizes a pair of shapes to ascending
// Kind order so that exactly one kernel exists per unordered pair.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindCircle
	KindRect
)

// Shape is the tagged union of the geometric variants: [Vec2], [Line],
// [Circle], and [Rect] all implement it. It exists so that containment
// and intersection can be evaluated over heterogeneous shape values
// through [Contains] and [Intersect].
type Shape[T Float] interface {
	Kind() Kind
}

func (v Vec2[T]) Kind() Kind   { return KindPoint }
func (l Line[T]) Kind() Kind   { return KindLine }
func (c Circle[T]) Kind() Kind { return KindCircle }
func (r Rect[T]) Kind() Kind   { return KindRect }

// Intersections is the set of points shared by two shapes. An empty
// set means the shapes do not intersect.
type Intersections[T Float] []Vec2[T]

// Contains reports whether a contains b, using the default [Epsilon]
// tolerance.
func Contains[T Float](a, b Shape[T]) bool {
	return ContainsWithin(a, b, defaultTol[T]())
}

// ContainsWithin reports whether b lies entirely within or on the
// boundary of a, resolving boundary comparisons with the given
// tolerance. Pairs with no geometric meaning, such as a point
// containing a line, report false.
func ContainsWithin[T Float](a, b Shape[T], tol T) bool {
	switch a := a.(type) {
	case Vec2[T]:
		if b, ok := b.(Vec2[T]); ok {
			return a.NearWithin(b, tol)
		}
	case Line[T]:
		switch b := b.(type) {
		case Vec2[T]:
			return containsLinePoint(a, b, tol)
		case Line[T]:
			return containsLineLine(a, b, tol)
		}
	case Circle[T]:
		switch b := b.(type) {
		case Vec2[T]:
			return containsCirclePoint(a, b, tol)
		case Line[T]:
			return containsCircleLine(a, b, tol)
		case Circle[T]:
			return containsCircleCircle(a, b)
		case Rect[T]:
			return containsCircleRect(a, b)
		}
	case Rect[T]:
		switch b := b.(type) {
		case Vec2[T]:
			return containsRectPoint(a, b)
		case Line[T]:
			return containsRectLine(a, b)
		case Circle[T]:
			return containsRectCircle(a, b)
		case Rect[T]:
			return containsRectRect(a, b)
		}
	}
	return false
}

// Intersect returns the intersection points of a and b, using the
// default [Epsilon] tolerance.
func Intersect[T Float](a, b Shape[T]) Intersections[T] {
	return IntersectWithin(a, b, defaultTol[T]())
}

// IntersectWithin returns the intersection points of a and b,
// resolving boundary comparisons with the given tolerance. The pair is
// normalized to canonical order first, so the result is the same point
// set regardless of argument order. A point intersects a shape when
// the shape contains it, the point itself being the sole intersection;
// shape pairs produce their boundary crossing points.
func IntersectWithin[T Float](a, b Shape[T], tol T) Intersections[T] {
	if a.Kind() > b.Kind() {
		a, b = b, a
	}

	switch a := a.(type) {
	case Vec2[T]:
		switch b := b.(type) {
		case Vec2[T]:
			if a.NearWithin(b, tol) {
				return Intersections[T]{b}
			}
		case Line[T]:
			if containsLinePoint(b, a, tol) {
				return Intersections[T]{a}
			}
		case Circle[T]:
			if containsCirclePoint(b, a, tol) {
				return Intersections[T]{a}
			}
		case Rect[T]:
			if _, ok := intersectRectPoint(b, a, tol); ok {
				return Intersections[T]{a}
			}
		}
	case Line[T]:
		switch b := b.(type) {
		case Line[T]:
			if p, ok := intersectLineLine(a, b, tol); ok {
				return Intersections[T]{p}
			}
		case Circle[T]:
			return intersectCircleLine(b, a, tol)
		case Rect[T]:
			ps, _ := intersectRectLine(b, a, tol)
			return ps
		}
	case Circle[T]:
		switch b := b.(type) {
		case Circle[T]:
			return intersectCircleCircle(a, b, tol)
		case Rect[T]:
			ps, _ := intersectCircleRect(a, b, tol)
			return ps
		}
	case Rect[T]:
		if b, ok := b.(Rect[T]); ok {
			ps, _ := intersectRectRect(a, b, tol)
			return ps
		}
	}
	return nil
}
