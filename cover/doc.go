// SPDX-License-Identifier: MIT

// Package cover builds the exact-cover matrix the solver consumes: a
// bitmatrix.Matrix whose columns are the box's unit cells plus one column
// per placed piece, and whose rows are the candidate placements.
//
// What:
//
//   - Board wraps a *bitmatrix.Matrix with parallel Headers and Counts
//     slices, kept in lockstep with every column insert/remove.
//   - AddPiece appends one piece column and one row per valid, non-
//     duplicate placement of a piece across all its allowed orientations
//     and translations.
//
// Why:
//
//   - Counts must equal the live popcount of each column at all times: the
//     solver picks branches by reading Counts directly rather than
//     rescanning the matrix, so any drift between Counts and the matrix
//     (e.g. forgetting to decrement on a splice) silently corrupts every
//     solve downstream.
//
// Complexity:
//
//   - AddPiece: O(orientations · translations · |piece.Cubes| + duplicates²)
//     — the squared term is the word-vector dedup scan against rows already
//     added for the same piece; WithRowHashIndex narrows that scan.
//
// Errors:
//
//   - ErrBadBoxSize: NewBoard called with a non-positive dimension.
//   - ErrBadOrientationLimit: AddPiece called with an orientationLimit
//     outside [1,24]; see errors.go.
//   - AddPiece panics if a rotated, translated cube lands outside the
//     box — a bug in the bounding-box or translation-range computation
//     above it, not a caller input error, so it is not a returned error.
//
// AI-Hints:
//
//   - XYZToColumn is the only place the Z-major box-column numbering is
//     spelled out; every other box-column access goes through it.
package cover
