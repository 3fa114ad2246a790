package geom_test

import (
	"slices"
	"testing"

	geom "github.com/defini7/defGeometry2D"
	"github.com/stretchr/testify/require"
)

func TestHSplit(t *testing.T) {
	left, right := geom.HSplit(rect(0, 0, 10, 4), 3.0)

	require.Equal(t, rect(0, 0, 3, 4), left)
	require.Equal(t, rect(3, 0, 7, 4), right)
}

func TestVSplit(t *testing.T) {
	top, bottom := geom.VSplit(rect(0, 0, 10, 4), 1.0)

	require.Equal(t, rect(0, 0, 10, 1), top)
	require.Equal(t, rect(0, 1, 10, 3), bottom)
}

func TestSplitHalf(t *testing.T) {
	left, right := geom.HSplitHalf(rect(0, 0, 10, 4))
	require.Equal(t, rect(0, 0, 5, 4), left)
	require.Equal(t, rect(5, 0, 5, 4), right)

	top, bottom := geom.VSplitHalf(rect(0, 0, 10, 4))
	require.Equal(t, rect(0, 0, 10, 2), top)
	require.Equal(t, rect(0, 2, 10, 2), bottom)
}

func TestSplitEvenX(t *testing.T) {
	tiles := slices.Collect(geom.SplitEvenX(4, rect(0, 0, 8, 2)))

	require.Equal(t, []geom.Rect[float64]{
		rect(0, 0, 2, 2),
		rect(2, 0, 2, 2),
		rect(4, 0, 2, 2),
		rect(6, 0, 2, 2),
	}, tiles)
}

func TestSplitEvenY(t *testing.T) {
	tiles := slices.Collect(geom.SplitEvenY(3, rect(0, 0, 6, 9)))

	require.Equal(t, []geom.Rect[float64]{
		rect(0, 0, 6, 3),
		rect(0, 3, 6, 3),
		rect(0, 6, 6, 3),
	}, tiles)
}

func TestTileEvenX(t *testing.T) {
	tiles := make([]geom.Rect[float64], 4)
	geom.TileEvenX(tiles, rect(0, 0, 8, 2))

	require.Equal(t, slices.Collect(geom.SplitEvenX(4, rect(0, 0, 8, 2))), tiles)
}

func TestTileEvenY(t *testing.T) {
	tiles := make([]geom.Rect[float64], 3)
	geom.TileEvenY(tiles, rect(0, 0, 6, 9))

	require.Equal(t, slices.Collect(geom.SplitEvenY(3, rect(0, 0, 6, 9))), tiles)
}

func TestAlign(t *testing.T) {
	outer := rect(0, 0, 10, 10)
	inner := rect(0, 0, 4, 2)

	tests := []struct {
		name  string
		edges geom.Edges
		want  geom.Rect[float64]
	}{
		{"none centers", geom.EdgeNone, rect(3, 4, 4, 2)},
		{"top", geom.EdgeTop, rect(3, 0, 4, 2)},
		{"bottom", geom.EdgeBottom, rect(3, 8, 4, 2)},
		{"left", geom.EdgeLeft, rect(0, 4, 4, 2)},
		{"right", geom.EdgeRight, rect(6, 4, 4, 2)},
		{"top and left", geom.EdgeTop | geom.EdgeLeft, rect(0, 0, 4, 2)},
		{"top and bottom stretch", geom.EdgeTop | geom.EdgeBottom, rect(3, 0, 4, 10)},
		{"left and right stretch", geom.EdgeLeft | geom.EdgeRight, rect(0, 4, 10, 2)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, geom.Align(outer, inner, test.edges))
		})
	}
}
