// Package problem loads a problem file into a Problem, builds the initial
// cover.Board, wires every named piece in via cover.Board.AddPiece, and
// drives solver.Solve — the concrete implementation of what spec.md §4.6
// and §6 describe as "thin external glue, interface only".
//
// What:
//
//   - Problem is the literal field table from spec.md §6: box dimensions,
//     an ordered piece-name list, and the optional constrain/lock fields.
//   - Load parses a YAML problem file into a validated Problem.
//   - Run builds the board and calls solver.Solve, passing emit through.
//
// Why:
//
//   - The core packages never touch I/O or file formats by design (spec.md
//     §5); something still has to turn a file on disk into the box/piece
//     calls cover.AddPiece expects, and this is this repository's concrete
//     choice for that collaborator.
//
// Errors:
//
//   - ErrMissingBox / ErrMissingPieces / ErrUnknownPiece / ErrBadLockCount are
//     loader-level sentinel errors, distinct from the core's own
//     precondition-violation sentinels; Load never returns a partially
//     valid Problem.
//
// AI-Hints:
//
//   - Run resolves the Open Question on cube-header loop bounds the same
//     way cover.NewBoard does (see DESIGN.md) — by construction, since it
//     calls cover.NewBoard directly rather than building headers itself.
package problem
