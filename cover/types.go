// SPDX-License-Identifier: MIT
package cover

import (
	"fmt"

	"github.com/katalvlaran/polycube/bitmatrix"
)

// Board is the exact-cover matrix under construction: a bitmatrix.Matrix
// plus the column bookkeeping (Headers, Counts) the solver and AddPiece
// both depend on staying in sync with the matrix itself.
type Board struct {
	*bitmatrix.Matrix
	Headers []string
	Counts  []int

	w, h, d int

	hashIndex map[uint64][]int // non-nil only when WithRowHashIndex is set
}

// BoardOption configures optional Board behavior at construction time,
// mirroring the functional-options pattern used elsewhere in this module.
type BoardOption func(*Board)

// WithRowHashIndex enables a row-hash pre-filter for AddPiece's dedup scan:
// rather than comparing every new candidate row against every row already
// added for the same piece, the board first narrows the candidate set to
// rows sharing the same structural hash (via hashstructure), then falls
// back to bitmatrix.Matrix.RowsEqual for the final word-vector compare.
// Observable dedup behavior is unchanged; this only trades time for a
// small amount of bookkeeping memory. Off by default.
func WithRowHashIndex() BoardOption {
	return func(b *Board) {
		b.hashIndex = make(map[uint64][]int)
	}
}

// NewBoard allocates a Board for a W×H×D box: n = w·h·d cube-cell columns,
// zero rows, headers named "x y z" (Z-major, matching XYZToColumn so column
// index and header enumeration order agree — see DESIGN.md's resolution of
// the header loop-bounds question).
// Complexity: O(w·h·d).
func NewBoard(w, h, d int, opts ...BoardOption) (*Board, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, fmt.Errorf("cover.NewBoard(%d,%d,%d): %w", w, h, d, ErrBadBoxSize)
	}

	n := w * h * d
	mat, err := bitmatrix.New(0, n)
	if err != nil {
		return nil, fmt.Errorf("cover.NewBoard(%d,%d,%d): %w", w, h, d, err)
	}

	headers := make([]string, n)
	idx := 0
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				headers[idx] = fmt.Sprintf("%d %d %d", x, y, z)
				idx++
			}
		}
	}

	b := &Board{Matrix: mat, Headers: headers, Counts: make([]int, n), w: w, h: h, d: d}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}
