package bitmatrix_test

import (
	"testing"

	"github.com/katalvlaran/polycube/bitmatrix"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T, m *bitmatrix.Matrix) [][]int {
	t.Helper()
	out := make([][]int, m.Rows())
	for i := 1; i <= m.Rows(); i++ {
		row := make([]int, m.Cols())
		for j := 1; j <= m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			row[j-1] = v
		}
		out[i-1] = row
	}

	return out
}

func TestInsertRowShiftsDown(t *testing.T) {
	m, err := bitmatrix.New(3, 4)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 1))
	require.NoError(t, m.Set(2, 2, 1))
	require.NoError(t, m.Set(3, 3, 1))

	require.NoError(t, m.InsertRow(2))
	require.Equal(t, 4, m.Rows())

	v, _ := m.At(1, 1)
	require.Equal(t, 1, v, "row 1 unaffected")
	for j := 1; j <= 4; j++ {
		v, _ := m.At(2, j)
		require.Equal(t, 0, v, "inserted row is zero")
	}
	v, _ = m.At(3, 2)
	require.Equal(t, 1, v, "old row 2 shifted to row 3")
	v, _ = m.At(4, 3)
	require.Equal(t, 1, v, "old row 3 shifted to row 4")
}

func TestInsertRowAtEnd(t *testing.T) {
	m, err := bitmatrix.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.InsertRow(3))
	require.Equal(t, 3, m.Rows())
}

func TestInsertRowOutOfRange(t *testing.T) {
	m, err := bitmatrix.New(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, m.InsertRow(0), bitmatrix.ErrOutOfRange)
	require.ErrorIs(t, m.InsertRow(4), bitmatrix.ErrOutOfRange)
}

func TestRemoveRowShiftsUp(t *testing.T) {
	m, err := bitmatrix.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 1))
	require.NoError(t, m.Set(2, 1, 1))
	require.NoError(t, m.Set(3, 1, 1))

	require.NoError(t, m.RemoveRow(2))
	require.Equal(t, 2, m.Rows())

	v, _ := m.At(1, 1)
	require.Equal(t, 1, v)
	v, _ = m.At(2, 1)
	require.Equal(t, 1, v, "old row 3 shifted to row 2")
}

func TestRowsEqual(t *testing.T) {
	m, err := bitmatrix.New(3, 40)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 1))
	require.NoError(t, m.Set(1, 33, 1))
	require.NoError(t, m.Set(2, 1, 1))
	require.NoError(t, m.Set(2, 33, 1))
	require.NoError(t, m.Set(3, 1, 1))

	eq, err := m.RowsEqual(1, 2)
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = m.RowsEqual(1, 3)
	require.NoError(t, err)
	require.False(t, eq)

	_, err = m.RowsEqual(0, 1)
	require.ErrorIs(t, err, bitmatrix.ErrOutOfRange)
	_, err = m.RowsEqual(1, 4)
	require.ErrorIs(t, err, bitmatrix.ErrOutOfRange)
}

func TestInsertThenRemoveRowIsIdentity(t *testing.T) {
	m, err := bitmatrix.New(3, 40)
	require.NoError(t, err)
	require.NoError(t, m.Set(2, 33, 1))
	before := snapshot(t, m)

	require.NoError(t, m.InsertRow(2))
	require.NoError(t, m.RemoveRow(2))

	require.Equal(t, before, snapshot(t, m))
}
