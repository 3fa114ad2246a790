//go:build go1.24

package geom_test

import (
	"testing"
)

func BenchmarkLineIntersectLine(b *testing.B) {
	l1 := ln(0, 0, 10, 10)
	l2 := ln(0, 10, 10, 0)

	for b.Loop() {
		l1.IntersectLine(l2)
	}
}

func BenchmarkCircleIntersectCircle(b *testing.B) {
	c1 := circ(0, 0, 5)
	c2 := circ(8, 0, 5)

	for b.Loop() {
		c1.IntersectCircle(c2)
	}
}

func BenchmarkRectIntersectRect(b *testing.B) {
	r1 := rect(0, 0, 10, 10)
	r2 := rect(5, 5, 10, 10)

	for b.Loop() {
		r1.IntersectRect(r2)
	}
}
