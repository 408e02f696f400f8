package solver_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/polycube/cover"
	"github.com/katalvlaran/polycube/piece"
	"github.com/katalvlaran/polycube/solver"
	"github.com/stretchr/testify/require"
)

func TestSolutionPieceNameAndCoveredCells(t *testing.T) {
	b, err := cover.NewBoard(2, 1, 1)
	require.NoError(t, err)
	p, ok := piece.Lookup("2_")
	require.True(t, ok)
	require.NoError(t, b.AddPiece(p, 2, 1, 1, false, false, false, 24))

	var sol *solver.Solution
	require.NoError(t, solver.Solve(context.Background(), b, func(s *solver.Solution) error {
		sol = s

		return nil
	}))
	require.NotNil(t, sol)
	require.Equal(t, 1, sol.Rows())

	name, err := sol.PieceName(1)
	require.NoError(t, err)
	require.Equal(t, "2_", name)

	cells, err := sol.CoveredCells(1)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"0 0 0", "1 0 0"}, cells)
}
