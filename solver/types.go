package solver

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/polycube/bitmatrix"
)

// Solution is an immutable snapshot of one exact cover: a bit matrix whose
// columns are the original problem board's columns (box cells then piece
// columns, same Headers) and whose rows are the chosen placements, one per
// piece. Callers must not mutate it; Solve only ever hands out clones.
type Solution struct {
	*bitmatrix.Matrix
	Headers []string
}

// PieceName returns the name of the piece row i (1-based) belongs to: the
// last header among the columns row i sets that is not a box-cell header
// (a box-cell header always has the three-token "x y z" form; a piece
// header is whatever name was passed to cover.Board.AddPiece and is never
// of that form in this repository's own problems). Complexity: O(n).
func (s *Solution) PieceName(i int) (string, error) {
	name := ""
	for j := 1; j <= s.Cols(); j++ {
		v, err := s.At(i, j)
		if err != nil {
			return "", err
		}
		if v == 1 && !isBoxCellHeader(s.Headers[j-1]) {
			name = s.Headers[j-1]
		}
	}

	return name, nil
}

// CoveredCells returns the box-cell headers ("x y z" tokens) row i (1-
// based) sets, in column order. Complexity: O(n).
func (s *Solution) CoveredCells(i int) ([]string, error) {
	var cells []string
	for j := 1; j <= s.Cols(); j++ {
		v, err := s.At(i, j)
		if err != nil {
			return nil, err
		}
		if v == 1 && isBoxCellHeader(s.Headers[j-1]) {
			cells = append(cells, s.Headers[j-1])
		}
	}

	return cells, nil
}

// isBoxCellHeader reports whether h has the "x y z" three-integer-token
// shape NewBoard gives every box-cell column.
func isBoxCellHeader(h string) bool {
	fields := strings.Fields(h)
	if len(fields) != 3 {
		return false
	}
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}

	return true
}
