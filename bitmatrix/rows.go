// SPDX-License-Identifier: MIT
package bitmatrix

import "fmt"

// InsertRow inserts a zero row at position i (1-based, 1 ≤ i ≤ Rows()+1),
// shifting rows i..m down by one. m grows by one.
// Complexity: O(m) for the slice shift, O(⌈n/32⌉) to build the zero row.
func (mat *Matrix) InsertRow(i int) error {
	if i < 1 || i > mat.rows+1 {
		return fmt.Errorf("bitmatrix.Matrix.InsertRow(%d): %w", i, ErrOutOfRange)
	}

	zero := make([]word, wordsFor(mat.cols))
	mat.data = append(mat.data, nil)     // grow by one, value fixed up below
	copy(mat.data[i:], mat.data[i-1:mat.rows])
	mat.data[i-1] = zero
	mat.rows++

	return nil
}

// RowsEqual reports whether rows i and j (both 1-based) are bit-for-bit
// identical, compared one packed word at a time. Because stale high bits
// above Cols() are always zero (the matrix invariant), word equality is
// equivalent to logical row equality; no masking is needed here.
// Complexity: O(⌈n/32⌉).
func (mat *Matrix) RowsEqual(i, j int) (bool, error) {
	if i < 1 || i > mat.rows {
		return false, fmt.Errorf("bitmatrix.Matrix.RowsEqual(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if j < 1 || j > mat.rows {
		return false, fmt.Errorf("bitmatrix.Matrix.RowsEqual(%d,%d): %w", i, j, ErrOutOfRange)
	}

	a, b := mat.data[i-1], mat.data[j-1]
	for k := range a {
		if a[k] != b[k] {
			return false, nil
		}
	}

	return true, nil
}

// RemoveRow deletes row i (1-based, 1 ≤ i ≤ Rows()), shifting rows i+1..m
// up by one. m shrinks by one.
// Complexity: O(m) for the slice shift.
func (mat *Matrix) RemoveRow(i int) error {
	if i < 1 || i > mat.rows {
		return fmt.Errorf("bitmatrix.Matrix.RemoveRow(%d): %w", i, ErrOutOfRange)
	}

	copy(mat.data[i-1:], mat.data[i:mat.rows])
	mat.data = mat.data[:mat.rows-1]
	mat.rows--

	return nil
}
