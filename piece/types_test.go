package piece_test

import (
	"testing"

	"github.com/katalvlaran/polycube/piece"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxSingleCube(t *testing.T) {
	min, max := piece.BoundingBox([]piece.Offset{{X: 0, Y: 0, Z: 0}})
	require.Equal(t, piece.Offset{X: 0, Y: 0, Z: 0}, min)
	require.Equal(t, piece.Offset{X: 0, Y: 0, Z: 0}, max)
}

func TestBoundingBoxNegativeOffsets(t *testing.T) {
	off := []piece.Offset{{X: 0, Y: 0, Z: 0}, {X: -2, Y: 1, Z: 0}, {X: -1, Y: -1, Z: 3}}
	min, max := piece.BoundingBox(off)
	require.Equal(t, piece.Offset{X: -2, Y: -1, Z: 0}, min)
	require.Equal(t, piece.Offset{X: 0, Y: 1, Z: 3}, max)
}

func TestBoundingBoxMatchesEveryLibraryPiece(t *testing.T) {
	for _, p := range piece.Library {
		min, max := piece.BoundingBox(p.Cubes)
		require.True(t, min.X <= max.X && min.Y <= max.Y && min.Z <= max.Z, "piece %q has inverted bounding box", p.Name)
	}
}
