package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCircleArea(t *testing.T) {
	require.InDelta(t, 9*math.Pi, circ(1, 2, 3).Area(), 1e-12)
	require.Equal(t, 0.0, circ(1, 2, 0).Area())
}

func TestCircleCircumference(t *testing.T) {
	require.InDelta(t, 6*math.Pi, circ(1, 2, 3).Circumference(), 1e-12)
}
