package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineVec(t *testing.T) {
	require.Equal(t, v2(3, 4), ln(1, 1, 4, 5).Vec())
	require.Equal(t, v2(0, 0), ln(2, 2, 2, 2).Vec())
}

func TestLineLen(t *testing.T) {
	require.Equal(t, 5.0, ln(1, 1, 4, 5).Len())
	require.Equal(t, 0.0, ln(2, 2, 2, 2).Len())
}

func TestLineDist(t *testing.T) {
	l := ln(0, 0, 10, 0)

	require.Equal(t, 3.0, l.Dist(v2(5, 3)))
	require.Equal(t, 3.0, l.Dist(v2(5, -3)))
	require.Equal(t, 0.0, l.Dist(v2(5, 0)))

	// The distance is to the infinite line, not the segment.
	require.Equal(t, 0.0, l.Dist(v2(20, 0)))

	d := ln(3, 4, 3, 4)
	require.Equal(t, 5.0, d.Dist(v2(0, 0)))
}
