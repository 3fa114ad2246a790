package geom

// ContainsPoint reports whether p lies on l, within tolerance of the
// segment. A degenerate segment contains only points within tolerance
// of its single point.
func (l Line[T]) ContainsPoint(p Vec2[T]) bool {
	return containsLinePoint(l, p, defaultTol[T]())
}

// ContainsLine reports whether o is the same segment as l, in either
// orientation, with endpoints matched within tolerance.
func (l Line[T]) ContainsLine(o Line[T]) bool {
	return containsLineLine(l, o, defaultTol[T]())
}

// ContainsPoint reports whether p lies inside or on the boundary of c.
func (c Circle[T]) ContainsPoint(p Vec2[T]) bool {
	return containsCirclePoint(c, p, defaultTol[T]())
}

// ContainsLine reports whether both endpoints of l lie inside or on
// the boundary of c.
func (c Circle[T]) ContainsLine(l Line[T]) bool {
	return containsCircleLine(c, l, defaultTol[T]())
}

// ContainsCircle reports whether o lies entirely inside c, boundary
// included: an equal circle is contained.
func (c Circle[T]) ContainsCircle(o Circle[T]) bool {
	return containsCircleCircle(c, o)
}

// ContainsRect reports whether all four corners of r lie inside or on
// the boundary of c.
func (c Circle[T]) ContainsRect(r Rect[T]) bool {
	return containsCircleRect(c, r)
}

// ContainsPoint reports whether p lies inside or on the boundary of r.
func (r Rect[T]) ContainsPoint(p Vec2[T]) bool {
	return containsRectPoint(r, p)
}

// ContainsLine reports whether both endpoints of l lie inside or on
// the boundary of r.
func (r Rect[T]) ContainsLine(l Line[T]) bool {
	return containsRectLine(r, l)
}

// ContainsCircle reports whether r contains the axis-aligned bounding
// square of c.
func (r Rect[T]) ContainsCircle(c Circle[T]) bool {
	return containsRectCircle(r, c)
}

// ContainsRect reports whether o lies entirely inside r, boundary
// included.
func (r Rect[T]) ContainsRect(o Rect[T]) bool {
	return containsRectRect(r, o)
}

func containsLinePoint[T Float](l Line[T], p Vec2[T], tol T) bool {
	v := l.Vec()
	l2 := v.Len2()
	if l2 == 0 {
		return p.Dist(l.Start) <= tol
	}
	t := v.Dot(p.Sub(l.Start)) / l2
	if t < 0 || t > 1 {
		return false
	}
	proj := l.Start.Add(v.Scale(t))
	return p.Dist(proj) <= tol
}

func containsLineLine[T Float](l1, l2 Line[T], tol T) bool {
	return (l1.Start.NearWithin(l2.Start, tol) && l1.End.NearWithin(l2.End, tol)) ||
		(l1.Start.NearWithin(l2.End, tol) && l1.End.NearWithin(l2.Start, tol))
}

func containsCirclePoint[T Float](c Circle[T], p Vec2[T], tol T) bool {
	d2 := p.Sub(c.Pos).Len2()
	r2 := c.Radius * c.Radius
	return d2 <= r2 || EqualWithin(d2, r2, tol)
}

func containsCircleLine[T Float](c Circle[T], l Line[T], tol T) bool {
	return containsCirclePoint(c, l.Start, tol) && containsCirclePoint(c, l.End, tol)
}

func containsCircleCircle[T Float](c1, c2 Circle[T]) bool {
	return c1.Radius >= c1.Pos.Dist(c2.Pos)+c2.Radius
}

func containsCircleRect[T Float](c Circle[T], r Rect[T]) bool {
	r2 := c.Radius * c.Radius
	for p := range r.Corners() {
		if p.Sub(c.Pos).Len2() > r2 {
			return false
		}
	}
	return true
}

func containsRectPoint[T Float](r Rect[T], p Vec2[T]) bool {
	return p.GreaterEq(r.Pos) && p.LessEq(r.BottomRight())
}

func containsRectLine[T Float](r Rect[T], l Line[T]) bool {
	return containsRectPoint(r, l.Start) && containsRectPoint(r, l.End)
}

func containsRectCircle[T Float](r Rect[T], c Circle[T]) bool {
	bound := Rect[T]{
		Pos:  c.Pos.Sub(Splat(c.Radius)),
		Size: Splat(2 * c.Radius),
	}
	return containsRectRect(r, bound)
}

func containsRectRect[T Float](r1, r2 Rect[T]) bool {
	return r2.Pos.GreaterEq(r1.Pos) && r2.BottomRight().LessEq(r1.BottomRight())
}
