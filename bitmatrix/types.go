// SPDX-License-Identifier: MIT
package bitmatrix

import "fmt"

// word is the packed storage unit. G, the bit width of a word, is 32.
type word = uint32

// wordBits is G from spec: the number of usable bits per packed word.
const wordBits = 32

// Matrix is a dense m×n bit array packed into rows of ⌈n/32⌉ words.
// The zero value is not valid; construct with New.
type Matrix struct {
	rows, cols int
	data       [][]word // data[i] has wordsFor(cols) elements, len(data) == rows
}

// wordsFor returns ⌈n/wordBits⌉, the number of words needed to hold n bits.
func wordsFor(n int) int {
	if n <= 0 {
		return 0
	}

	return (n + wordBits - 1) / wordBits
}

// matrixErrorf wraps err with method context and the 1-based coordinates
// involved, mirroring the teacher's denseErrorf convention.
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("bitmatrix.Matrix.%s(%d,%d): %w", method, i, j, err)
}

// New allocates an m×n zero Matrix. Fails with ErrBadShape if m<0 or n<0.
// Complexity: O(m·⌈n/32⌉).
func New(m, n int) (*Matrix, error) {
	if m < 0 || n < 0 {
		return nil, fmt.Errorf("bitmatrix.New(%d,%d): %w", m, n, ErrBadShape)
	}

	wpr := wordsFor(n)
	data := make([][]word, m)
	for i := range data {
		data[i] = make([]word, wpr)
	}

	return &Matrix{rows: m, cols: n, data: data}, nil
}

// Rows returns the number of logical rows (m).
// Complexity: O(1).
func (mat *Matrix) Rows() int { return mat.rows }

// Cols returns the number of logical columns (n).
// Complexity: O(1).
func (mat *Matrix) Cols() int { return mat.cols }

// Clone returns a fully independent deep copy of mat.
// Complexity: O(m·⌈n/32⌉).
func (mat *Matrix) Clone() *Matrix {
	data := make([][]word, mat.rows)
	for i, row := range mat.data {
		cp := make([]word, len(row))
		copy(cp, row)
		data[i] = cp
	}

	return &Matrix{rows: mat.rows, cols: mat.cols, data: data}
}
