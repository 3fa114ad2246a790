package geom

import (
	"deedles.dev/xiter"
)

// IntersectPoint reports whether p lies on l; when it does, p itself
// is the sole intersection.
func (l Line[T]) IntersectPoint(p Vec2[T]) (Vec2[T], bool) {
	if containsLinePoint(l, p, defaultTol[T]()) {
		return p, true
	}
	return Vec2[T]{}, false
}

// IntersectLine returns the intersection point of l and o, if any.
// Collinear and parallel segments never report an intersection point.
func (l Line[T]) IntersectLine(o Line[T]) (Vec2[T], bool) {
	return intersectLineLine(l, o, defaultTol[T]())
}

// IntersectCircle returns the points where l crosses or touches the
// boundary of c.
func (l Line[T]) IntersectCircle(c Circle[T]) Intersections[T] {
	return intersectCircleLine(c, l, defaultTol[T]())
}

// IntersectRect returns the points where l crosses the sides of r,
// along with the side that produced each point: sides[i] is the side
// intersected at the i-th point.
func (l Line[T]) IntersectRect(r Rect[T]) (Intersections[T], []Side) {
	return intersectRectLine(r, l, defaultTol[T]())
}

// IntersectPoint reports whether p lies inside or on the boundary of
// c; when it does, p itself is the sole intersection.
func (c Circle[T]) IntersectPoint(p Vec2[T]) (Vec2[T], bool) {
	if containsCirclePoint(c, p, defaultTol[T]()) {
		return p, true
	}
	return Vec2[T]{}, false
}

// IntersectLine returns the points where l crosses or touches the
// boundary of c: none, one tangent point, or two.
func (c Circle[T]) IntersectLine(l Line[T]) Intersections[T] {
	return intersectCircleLine(c, l, defaultTol[T]())
}

// IntersectCircle returns the points where the boundaries of c and o
// cross: none, one point of tangency, or two. Concentric circles,
// including coincident ones, have no finite point set and report none.
func (c Circle[T]) IntersectCircle(o Circle[T]) Intersections[T] {
	return intersectCircleCircle(c, o, defaultTol[T]())
}

// IntersectRect returns the points where the boundary of c crosses the
// sides of r, along with the touched sides in [Side] order, one entry
// per side.
func (c Circle[T]) IntersectRect(r Rect[T]) (Intersections[T], []Side) {
	return intersectCircleRect(c, r, defaultTol[T]())
}

// IntersectPoint reports whether p lies inside or on the boundary of
// r, and on which side: the first side containing p in [Side] order,
// or SideNone when p is interior.
func (r Rect[T]) IntersectPoint(p Vec2[T]) (Side, bool) {
	return intersectRectPoint(r, p, defaultTol[T]())
}

// IntersectLine returns the points where l crosses the sides of r,
// along with the side that produced each point: sides[i] is the side
// intersected at the i-th point.
func (r Rect[T]) IntersectLine(l Line[T]) (Intersections[T], []Side) {
	return intersectRectLine(r, l, defaultTol[T]())
}

// IntersectCircle returns the points where the boundary of c crosses
// the sides of r, along with the touched sides in [Side] order, one
// entry per side.
func (r Rect[T]) IntersectCircle(c Circle[T]) (Intersections[T], []Side) {
	return intersectCircleRect(c, r, defaultTol[T]())
}

// IntersectRect returns the points where the sides of r and o cross.
// The returned sides are the sides of r touched by o, in [Side] order,
// one entry per side; points shared by several side pairs are not
// deduplicated.
func (r Rect[T]) IntersectRect(o Rect[T]) (Intersections[T], []Side) {
	return intersectRectRect(r, o, defaultTol[T]())
}

// intersectLineLine solves the 2x2 linear system built from the
// implicit equations of the two segments. It is the single
// implementation behind every line-line pairing.
func intersectLineLine[T Float](l1, l2 Line[T], tol T) (Vec2[T], bool) {
	a1 := l1.Start.Y - l1.End.Y
	b1 := l1.End.X - l1.Start.X
	a2 := l2.Start.Y - l2.End.Y
	b2 := l2.End.X - l2.Start.X

	det := a1*b2 - a2*b1
	if det == 0 {
		// Collinear or parallel segments share no single point.
		return Vec2[T]{}, false
	}

	c1 := l1.Start.X*l1.End.Y - l1.End.X*l1.Start.Y
	c2 := l2.Start.X*l2.End.Y - l2.End.X*l2.Start.Y

	p := V2((b1*c2-b2*c1)/det, (a2*c1-a1*c2)/det)
	if !containsLinePoint(l1, p, tol) || !containsLinePoint(l2, p, tol) {
		return Vec2[T]{}, false
	}
	return p, true
}

// intersectCircleCircle is the radical-line construction: the chord
// through both intersection points lies perpendicular to the center
// line at distance a from the first center.
func intersectCircleCircle[T Float](c1, c2 Circle[T], tol T) Intersections[T] {
	d := c1.Pos.Dist(c2.Pos)
	if d == 0 {
		// Concentric circles coincide entirely or share nothing;
		// neither case has a finite point set.
		return nil
	}

	a := (c1.Radius*c1.Radius - c2.Radius*c2.Radius + d*d) / (2 * d)
	h2 := c1.Radius*c1.Radius - a*a
	if h2 < 0 {
		return nil
	}

	v := c2.Pos.Sub(c1.Pos)
	mid := c1.Pos.Add(v.Scale(a / d))
	off := v.Perp().Scale(sqrt(h2) / d)

	p1, p2 := mid.Add(off), mid.Sub(off)
	if p1.NearWithin(p2, tol) {
		return Intersections[T]{p1}
	}
	return Intersections[T]{p1, p2}
}

// intersectCircleLine is the closest-point construction: project the
// center onto the infinite line and walk ±sqrt(r²-d²) along the
// direction from there. Candidates outside the segment are discarded.
func intersectCircleLine[T Float](c Circle[T], l Line[T], tol T) Intersections[T] {
	v := l.Vec()
	if v.Len2() == 0 {
		if containsCirclePoint(c, l.Start, tol) {
			return Intersections[T]{l.Start}
		}
		return nil
	}

	d := l.Dist(c.Pos)
	tangent := EqualWithin(d, c.Radius, tol)
	if d > c.Radius && !tangent {
		return nil
	}

	t := v.Dot(c.Pos.Sub(l.Start)) / v.Len2()
	closest := l.Start.Add(v.Scale(t))

	if tangent {
		if containsLinePoint(l, closest, tol) {
			return Intersections[T]{closest}
		}
		return nil
	}

	off := v.Norm().Scale(sqrt(c.Radius*c.Radius - d*d))

	var ps Intersections[T]
	for _, p := range [2]Vec2[T]{closest.Sub(off), closest.Add(off)} {
		if containsLinePoint(l, p, tol) {
			ps = append(ps, p)
		}
	}
	return ps
}

func intersectRectLine[T Float](r Rect[T], l Line[T], tol T) (Intersections[T], []Side) {
	var ps Intersections[T]
	var sides []Side
	for i, s := range xiter.Enumerate(r.Sides()) {
		if p, ok := intersectLineLine(s, l, tol); ok {
			ps = append(ps, p)
			sides = append(sides, Side(i))
		}
	}
	return ps, sides
}

func intersectRectRect[T Float](r1, r2 Rect[T], tol T) (Intersections[T], []Side) {
	var ps Intersections[T]
	var sides []Side
	for i, s1 := range xiter.Enumerate(r1.Sides()) {
		hit := false
		for s2 := range r2.Sides() {
			if p, ok := intersectLineLine(s1, s2, tol); ok {
				ps = append(ps, p)
				hit = true
			}
		}
		if hit {
			sides = append(sides, Side(i))
		}
	}
	return ps, sides
}

func intersectCircleRect[T Float](c Circle[T], r Rect[T], tol T) (Intersections[T], []Side) {
	var ps Intersections[T]
	var sides []Side
	for i, s := range xiter.Enumerate(r.Sides()) {
		if hits := intersectCircleLine(c, s, tol); len(hits) > 0 {
			ps = append(ps, hits...)
			sides = append(sides, Side(i))
		}
	}
	return ps, sides
}

func intersectRectPoint[T Float](r Rect[T], p Vec2[T], tol T) (Side, bool) {
	for i, s := range xiter.Enumerate(r.Sides()) {
		if containsLinePoint(s, p, tol) {
			return Side(i), true
		}
	}
	if containsRectPoint(r, p) {
		return SideNone, true
	}
	return SideNone, false
}
