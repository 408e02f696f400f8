package cover_test

import (
	"testing"

	"github.com/katalvlaran/polycube/cover"
	"github.com/katalvlaran/polycube/piece"
	"github.com/stretchr/testify/require"
)

func mustPiece(t *testing.T, name string) piece.Piece {
	t.Helper()
	p, ok := piece.Lookup(name)
	require.True(t, ok, "piece %q not found", name)

	return p
}

func rowOnesCount(t *testing.T, b *cover.Board, row int) int {
	t.Helper()
	n := 0
	for j := 1; j <= b.Cols(); j++ {
		v, err := b.At(row, j)
		require.NoError(t, err)
		n += v
	}

	return n
}

// Scenario 1: trivial tile — box (1,1,1), piece [1_]. Exactly one row, with
// exactly two ones (the single cube column and the piece column).
func TestAddPieceTrivialTile(t *testing.T) {
	b, err := cover.NewBoard(1, 1, 1)
	require.NoError(t, err)

	require.NoError(t, b.AddPiece(mustPiece(t, "1_"), 1, 1, 1, false, false, false, 24))

	require.Equal(t, 1, b.Rows())
	require.Equal(t, 2, b.Cols())
	require.Equal(t, 2, rowOnesCount(t, b, 1))
}

// Scenario 2: unsolvable shape is out of cover's scope (that's a solver
// property), but the board itself must still reflect exactly one valid
// placement per cell for a single monocube in a 2×1×1 box.
func TestAddPieceMonocubeInLongBox(t *testing.T) {
	b, err := cover.NewBoard(2, 1, 1)
	require.NoError(t, err)

	require.NoError(t, b.AddPiece(mustPiece(t, "1_"), 2, 1, 1, false, false, false, 24))

	require.Equal(t, 2, b.Rows(), "one row per cell the monocube can occupy")
	for i := 1; i <= b.Rows(); i++ {
		require.Equal(t, 2, rowOnesCount(t, b, i))
	}
}

// Scenario 3: the core treats repeated AddPiece calls for the same piece
// name as distinct piece-columns; box (2,1,1) with two "1_" columns yields
// two rows per column (one for each of the two cells), four rows total,
// two piece columns.
func TestAddPieceRepeatedPieceNameGetsDistinctColumn(t *testing.T) {
	b, err := cover.NewBoard(2, 1, 1)
	require.NoError(t, err)

	require.NoError(t, b.AddPiece(mustPiece(t, "1_"), 2, 1, 1, false, false, false, 24))
	require.NoError(t, b.AddPiece(mustPiece(t, "1_"), 2, 1, 1, false, false, false, 24))

	require.Equal(t, 4, b.Rows())
	require.Equal(t, 4, b.Cols()) // 2 cube columns + 2 piece columns
	require.Equal(t, "1_", b.Headers[2])
	require.Equal(t, "1_", b.Headers[3])
}

// Scenario 4: simple pentomino box — box (5,2,1), pieces [L_, P_]. Every
// emitted row has exactly |cubes|+1 ones, and at least one row exists for
// each piece.
func TestAddPiecePentominoRowsHaveCorrectWeight(t *testing.T) {
	b, err := cover.NewBoard(5, 2, 1)
	require.NoError(t, err)

	l := mustPiece(t, "L_")
	p := mustPiece(t, "P_")
	require.NoError(t, b.AddPiece(l, 5, 2, 1, false, false, false, 24))
	lRows := b.Rows()
	require.Greater(t, lRows, 0)
	require.NoError(t, b.AddPiece(p, 5, 2, 1, false, false, false, 24))
	require.Greater(t, b.Rows(), lRows)

	for i := 1; i <= lRows; i++ {
		require.Equal(t, l.Size()+1, rowOnesCount(t, b, i))
	}
	for i := lRows + 1; i <= b.Rows(); i++ {
		require.Equal(t, p.Size()+1, rowOnesCount(t, b, i))
	}
}

// Scenario 6: symmetric box constraint — box (2,2,2), constrain all three
// axes for "1_". xp=yp=zp=ceil(2/2)=1, so the piece is restricted to the
// single (0,0,0) translation: exactly one row.
func TestAddPieceConstrainedMonocubeInSymmetricBox(t *testing.T) {
	b, err := cover.NewBoard(2, 2, 2)
	require.NoError(t, err)

	require.NoError(t, b.AddPiece(mustPiece(t, "1_"), 2, 2, 2, true, true, true, 24))

	require.Equal(t, 1, b.Rows())
	col, err := b.At(1, cover.XYZToColumn(0, 0, 0, 2, 2))
	require.NoError(t, err)
	require.Equal(t, 1, col)
}

// Orientation lock on an isotropic piece (the monocube) must not crash and
// must produce the same result as the unlocked case (scenario 5).
func TestAddPieceOrientationLockIsNoOpForMonocube(t *testing.T) {
	b, err := cover.NewBoard(1, 1, 1)
	require.NoError(t, err)

	require.NoError(t, b.AddPiece(mustPiece(t, "1_"), 1, 1, 1, false, false, false, 1))

	require.Equal(t, 1, b.Rows())
	require.Equal(t, 2, rowOnesCount(t, b, 1))
}

func TestAddPieceRejectsBadOrientationLimit(t *testing.T) {
	b, err := cover.NewBoard(1, 1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, b.AddPiece(mustPiece(t, "1_"), 1, 1, 1, false, false, false, 0), cover.ErrBadOrientationLimit)
	require.ErrorIs(t, b.AddPiece(mustPiece(t, "1_"), 1, 1, 1, false, false, false, 25), cover.ErrBadOrientationLimit)
}

// Counts must track the matrix exactly: every 1 bit in a kept row is
// reflected by Counts at that column.
func TestAddPieceCountsMatchPopcount(t *testing.T) {
	b, err := cover.NewBoard(3, 2, 1)
	require.NoError(t, err)
	require.NoError(t, b.AddPiece(mustPiece(t, "3I"), 3, 2, 1, false, false, false, 24))

	for j := 1; j <= b.Cols(); j++ {
		want := 0
		for i := 1; i <= b.Rows(); i++ {
			v, err := b.At(i, j)
			require.NoError(t, err)
			want += v
		}
		require.Equal(t, want, b.Counts[j-1], "column %d", j)
	}
}

func TestAddPieceWithRowHashIndexMatchesDefault(t *testing.T) {
	plain, err := cover.NewBoard(5, 2, 1)
	require.NoError(t, err)
	require.NoError(t, plain.AddPiece(mustPiece(t, "L_"), 5, 2, 1, false, false, false, 24))

	hashed, err := cover.NewBoard(5, 2, 1, cover.WithRowHashIndex())
	require.NoError(t, err)
	require.NoError(t, hashed.AddPiece(mustPiece(t, "L_"), 5, 2, 1, false, false, false, 24))

	require.Equal(t, plain.Rows(), hashed.Rows())
	require.Equal(t, plain.Counts, hashed.Counts)
}
