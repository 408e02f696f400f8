package solver

import (
	"context"
	"strconv"

	"github.com/katalvlaran/polycube/bitmatrix"
	"github.com/katalvlaran/polycube/cover"
)

// Solve runs Knuth's Algorithm X to exhaustion over b, invoking emit once
// per exact cover in depth-first, deterministic order.
//
// Stage 1 (Validate): none beyond what cover.Board already guarantees —
// Counts and Headers are assumed to track the matrix exactly.
// Stage 2 (Execute): recurse, cloning the working matrix and the partial
// solution on every branch (spec's reference design; the observable
// column-choice rule, row order, and emission order are what downstream
// callers depend on, not the cloning strategy itself).
// Stage 3 (Finalize): returns nil after the search is exhausted with no
// early stop, emit's first non-nil error otherwise, or ctx.Err() if the
// context is cancelled between branches.
//
// ctx is checked once per recursive call, purely for cancellation; a
// cancelled Solve has produced an incomplete — not wrong — enumeration.
func Solve(ctx context.Context, b *cover.Board, emit func(*Solution) error) error {
	solHeaders := append([]string(nil), b.Headers...)

	// The working columns are keyed by their original 1-based position, not
	// by name: a problem that lists the same piece twice has two piece
	// columns with one name, and each must map back to its own column.
	headers := make([]string, len(solHeaders))
	colIndex := make(map[string]int, len(solHeaders))
	for i := range headers {
		headers[i] = strconv.Itoa(i + 1)
		colIndex[headers[i]] = i + 1
	}

	mat := b.Matrix.Clone()
	counts := append([]int(nil), b.Counts...)

	sol, err := bitmatrix.New(0, len(solHeaders))
	if err != nil {
		return err
	}

	return solveRec(ctx, mat, headers, counts, sol, solHeaders, colIndex, emit)
}

func solveRec(ctx context.Context, mat *bitmatrix.Matrix, headers []string, counts []int, sol *bitmatrix.Matrix, solHeaders []string, colIndex map[string]int, emit func(*Solution) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if mat.Cols() == 0 {
		snap := sol.Clone()
		return emit(&Solution{Matrix: snap, Headers: append([]string(nil), solHeaders...)})
	}

	c := pickColumn(counts)
	if counts[c-1] == 0 {
		return nil // dead end
	}

	for r := 1; r <= mat.Rows(); r++ {
		v, err := mat.At(r, c)
		if err != nil {
			return err
		}
		if v != 1 {
			continue
		}

		matPrime, headersPrime, countsPrime, solPrime, err := branch(mat, headers, counts, sol, r, colIndex)
		if err != nil {
			return err
		}

		if err := solveRec(ctx, matPrime, headersPrime, countsPrime, solPrime, solHeaders, colIndex, emit); err != nil {
			return err
		}
	}

	return nil
}

// pickColumn returns the 1-based index of the smallest entry in counts,
// ties broken by smallest index — Knuth's "S heuristic".
func pickColumn(counts []int) int {
	best := 1
	for j := 2; j <= len(counts); j++ {
		if counts[j-1] < counts[best-1] {
			best = j
		}
	}

	return best
}

// branch produces the cloned, reduced state for choosing row r of mat:
// records the chosen placement into a clone of sol, then removes (from
// clones of mat/headers/counts) every column row r covers and every row
// that shares any of those columns, per spec.md's add_piece-style splice.
func branch(mat *bitmatrix.Matrix, headers []string, counts []int, sol *bitmatrix.Matrix, r int, colIndex map[string]int) (*bitmatrix.Matrix, []string, []int, *bitmatrix.Matrix, error) {
	solPrime := sol.Clone()
	solRow := solPrime.Rows() + 1
	if err := solPrime.InsertRow(solRow); err != nil {
		return nil, nil, nil, nil, err
	}

	var colsToRemove []int
	for j := mat.Cols(); j >= 1; j-- {
		v, err := mat.At(r, j)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if v != 1 {
			continue
		}
		colsToRemove = append(colsToRemove, j)
		if err := solPrime.Set(solRow, colIndex[headers[j-1]], 1); err != nil {
			return nil, nil, nil, nil, err
		}
	}

	matPrime := mat.Clone()
	headersPrime := append([]string(nil), headers...)
	countsPrime := append([]int(nil), counts...)

	for _, j := range colsToRemove {
		if err := removeRowsCoveringColumn(matPrime, countsPrime, j); err != nil {
			return nil, nil, nil, nil, err
		}
		if err := matPrime.RemoveCol(j); err != nil {
			return nil, nil, nil, nil, err
		}
		headersPrime = append(headersPrime[:j-1], headersPrime[j:]...)
		countsPrime = append(countsPrime[:j-1], countsPrime[j:]...)
	}

	return matPrime, headersPrime, countsPrime, solPrime, nil
}

// removeRowsCoveringColumn removes, from mat, every row with a 1 in column
// j, decrementing counts for every column each such row sets before it is
// removed. Rows are removed in descending index order so earlier indices
// in the same pass stay valid.
func removeRowsCoveringColumn(mat *bitmatrix.Matrix, counts []int, j int) error {
	var rows []int
	for i := 1; i <= mat.Rows(); i++ {
		v, err := mat.At(i, j)
		if err != nil {
			return err
		}
		if v == 1 {
			rows = append(rows, i)
		}
	}

	for k := len(rows) - 1; k >= 0; k-- {
		i := rows[k]
		for jj := 1; jj <= mat.Cols(); jj++ {
			v, err := mat.At(i, jj)
			if err != nil {
				return err
			}
			if v == 1 {
				counts[jj-1]--
			}
		}
		if err := mat.RemoveRow(i); err != nil {
			return err
		}
	}

	return nil
}
