// SPDX-License-Identifier: MIT
package cover

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polycube/orientation"
	"github.com/katalvlaran/polycube/piece"
	"github.com/mitchellh/hashstructure"
)

// AddPiece appends one new column named p.Name, then one row for every
// valid, non-duplicate placement of p across orientations 1..min(24,
// orientationLimit) and every translation that keeps the piece inside the
// w×h×d box.
//
// Stage 1 (Validate): orientationLimit must be in [1,24].
// Stage 2 (Execute): for each orientation, compute the rotated bounding
// box, halve the translation range on each constrained axis (rounding up),
// and for each translation insert a row, set its bits, and deduplicate it
// word-for-word against every row already kept for this piece.
// Stage 3 (Finalize): Counts is incremented for every column a kept row
// sets; Headers already carries p.Name from the column append made before
// the orientation loop of Stage 2.
//
// A cube offset that rotates/translates outside the box is a bug in the
// bounding-box or translation-range computation above it, not a caller
// input error, so it panics rather than returning an error (mirrors
// spec's "fatal if not").
// Complexity: O(orientations · translations · |p.Cubes| + duplicates²),
// or O(... + duplicates) amortized when WithRowHashIndex is set.
func (b *Board) AddPiece(p piece.Piece, w, h, d int, constrainX, constrainY, constrainZ bool, orientationLimit int) error {
	if orientationLimit < 1 || orientationLimit > 24 {
		return fmt.Errorf("cover.Board.AddPiece(%s): %w", p.Name, ErrBadOrientationLimit)
	}

	pieceCol := b.Cols() + 1
	if err := b.InsertCol(pieceCol); err != nil {
		return fmt.Errorf("cover.Board.AddPiece(%s): %w", p.Name, err)
	}
	b.Headers = append(b.Headers, p.Name)
	b.Counts = append(b.Counts, 0)

	minOff, maxOff := piece.BoundingBox(p.Cubes)
	firstRow := b.Rows()
	limit := orientationLimit
	if limit > orientation.Count {
		limit = orientation.Count
	}

	for o := 1; o <= limit; o++ {
		rot, err := orientation.At(o)
		if err != nil {
			return fmt.Errorf("cover.Board.AddPiece(%s): %w", p.Name, err)
		}

		rxMin, ryMin, rzMin := rot.Apply(minOff.X, minOff.Y, minOff.Z)
		rxMax, ryMax, rzMax := rot.Apply(maxOff.X, maxOff.Y, maxOff.Z)
		if rxMin > rxMax {
			rxMin, rxMax = rxMax, rxMin
		}
		if ryMin > ryMax {
			ryMin, ryMax = ryMax, ryMin
		}
		if rzMin > rzMax {
			rzMin, rzMax = rzMax, rzMin
		}

		xp := halveIfConstrained(w-(rxMax-rxMin), constrainX)
		yp := halveIfConstrained(h-(ryMax-ryMin), constrainY)
		zp := halveIfConstrained(d-(rzMax-rzMin), constrainZ)

		for zi := 0; zi < zp; zi++ {
			zo := -rzMin + zi
			for yi := 0; yi < yp; yi++ {
				yo := -ryMin + yi
				for xi := 0; xi < xp; xi++ {
					xo := -rxMin + xi
					if err := b.tryPlaceRow(p, rot, pieceCol, xo, yo, zo, w, h, d, firstRow); err != nil {
						return fmt.Errorf("cover.Board.AddPiece(%s): %w", p.Name, err)
					}
				}
			}
		}
	}

	return nil
}

// halveIfConstrained replaces count with ⌈count/2⌉ when constrained is
// set; a non-positive count (the piece cannot fit along this axis at all
// in this orientation) is left as-is so the caller's loop simply does not
// execute.
func halveIfConstrained(count int, constrained bool) int {
	if !constrained || count <= 0 {
		return count
	}

	return (count + 1) / 2
}

// tryPlaceRow inserts one candidate placement row, sets its bits, and
// either keeps it (incrementing Counts) or removes it as a duplicate of an
// earlier row added for this same piece (rows firstRow+1..newRow-1).
func (b *Board) tryPlaceRow(p piece.Piece, rot orientation.Rotation, pieceCol, xo, yo, zo, w, h, d, firstRow int) error {
	newRow := b.Rows() + 1
	if err := b.InsertRow(newRow); err != nil {
		return err
	}
	if err := b.Set(newRow, pieceCol, 1); err != nil {
		return err
	}

	cols := make([]int, 0, len(p.Cubes)+1)
	cols = append(cols, pieceCol)
	for _, c := range p.Cubes {
		rx, ry, rz := rot.Apply(c.X, c.Y, c.Z)
		x, y, z := rx+xo, ry+yo, rz+zo
		if x < 0 || x >= w || y < 0 || y >= h || z < 0 || z >= d {
			panic(fmt.Sprintf("cover: piece %q placed out of bounds at (%d,%d,%d)", p.Name, x, y, z))
		}
		col := XYZToColumn(x, y, z, w, h)
		if err := b.Set(newRow, col, 1); err != nil {
			return err
		}
		cols = append(cols, col)
	}
	// Sorted so that the same cell set hashes the same whichever
	// orientation produced it.
	sort.Ints(cols)

	dup, err := b.isDuplicate(newRow, firstRow, cols)
	if err != nil {
		return err
	}
	if dup {
		return b.RemoveRow(newRow)
	}

	for _, j := range cols {
		b.Counts[j-1]++
	}
	b.indexRow(newRow, cols)

	return nil
}

// isDuplicate compares newRow word-for-word against every row in
// [firstRow+1, newRow) — the rows kept so far for the piece currently
// being added. When a row-hash index is active, the scan is narrowed to
// rows sharing cols' structural hash before falling back to RowsEqual.
func (b *Board) isDuplicate(newRow, firstRow int, cols []int) (bool, error) {
	candidates := candidateRows(firstRow, newRow)
	if b.hashIndex != nil {
		h, err := hashstructure.Hash(cols, nil)
		if err == nil {
			candidates = b.hashIndex[h]
		}
	}

	for _, r := range candidates {
		if r <= firstRow || r >= newRow {
			continue
		}
		eq, err := b.RowsEqual(r, newRow)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}

	return false, nil
}

// candidateRows returns the default O(k) dedup scan range when no row-hash
// index is active: every row added for this piece so far.
func candidateRows(firstRow, newRow int) []int {
	out := make([]int, 0, newRow-firstRow-1)
	for r := firstRow + 1; r < newRow; r++ {
		out = append(out, r)
	}

	return out
}

// indexRow records a kept row's structural hash for future dedup scans.
// A no-op unless WithRowHashIndex was set.
func (b *Board) indexRow(row int, cols []int) {
	if b.hashIndex == nil {
		return
	}
	h, err := hashstructure.Hash(cols, nil)
	if err != nil {
		return
	}
	b.hashIndex[h] = append(b.hashIndex[h], row)
}
