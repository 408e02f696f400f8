package problem

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polycube/cover"
	"github.com/katalvlaran/polycube/piece"
	"github.com/katalvlaran/polycube/solver"
)

// Run builds the initial W·H·D-column board for p, calls cover.AddPiece
// for every entry of p.Pieces in order with the constrain/lock flags
// derived from p's named fields, then calls solver.Solve. emit is passed
// straight through to Solve.
//
// constrain/constrain_x/y/z/lock each name a single piece; since pieces
// may repeat the same name (spec.md §8 scenario 6's eight "1_" pieces),
// each flag is applied only to the *first* occurrence of its named piece
// in iteration order — pinning one instance's reference placement is what
// breaks the box's symmetry group, pinning every instance would instead
// make the problem unsolvable (all but one would compete for the same
// single reference position). Constrain and ConstrainX/Y/Z name pieces
// independently of each other (they are not required to agree), so each
// of the four "used" latches below tracks only whether its own field's
// named piece has been seen — never whether a different field's match
// happened to imply the same axis for some other piece.
//
// Complexity: dominated by solver.Solve; board construction is
// O(len(Pieces) · placements-per-piece).
func Run(ctx context.Context, p *Problem, emit func(*solver.Solution) error) error {
	b, err := cover.NewBoard(p.Box.W, p.Box.H, p.Box.D)
	if err != nil {
		return fmt.Errorf("problem.Run: %w", err)
	}

	var constrainUsed, constrainXUsed, constrainYUsed, constrainZUsed, lockUsed bool

	for _, name := range p.Pieces {
		pc, ok := piece.Lookup(name)
		if !ok {
			return fmt.Errorf("problem.Run: %w: %q", ErrUnknownPiece, name)
		}

		cAll := !constrainUsed && name == p.Constrain
		cxOwn := !constrainXUsed && name == p.ConstrainX
		cyOwn := !constrainYUsed && name == p.ConstrainY
		czOwn := !constrainZUsed && name == p.ConstrainZ
		cx := cAll || cxOwn
		cy := cAll || cyOwn
		cz := cAll || czOwn
		if cAll {
			constrainUsed = true
		}
		if cxOwn {
			constrainXUsed = true
		}
		if cyOwn {
			constrainYUsed = true
		}
		if czOwn {
			constrainZUsed = true
		}

		limit := 24
		if !lockUsed && name == p.Lock {
			lockUsed = true
			limit = p.LockCount
			if limit == 0 {
				limit = 1
			}
		}

		if err := b.AddPiece(pc, p.Box.W, p.Box.H, p.Box.D, cx, cy, cz, limit); err != nil {
			return fmt.Errorf("problem.Run: %w", err)
		}
	}

	if err := solver.Solve(ctx, b, emit); err != nil {
		return fmt.Errorf("problem.Run: %w", err)
	}

	return nil
}
