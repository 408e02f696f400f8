// SPDX-License-Identifier: MIT

// Package bitmatrix provides a dense, word-packed two-dimensional bit array
// with dynamic rows and columns.
//
// What:
//
//   - Matrix stores m rows of ⌈n/32⌉ uint32 words each; bit (i,j) (1-based)
//     lives at word ⌈j/32⌉, bit (j-1) mod 32 (bit 0 = least significant).
//   - InsertCol/RemoveCol shift bits within and across word boundaries with
//     explicit carry propagation instead of rebuilding rows from scratch.
//   - InsertRow/RemoveRow operate on whole word-rows; no per-bit work.
//
// Why:
//
//   - The exact-cover solver (see package solver) mutates a matrix on every
//     branch: columns vanish as constraints are satisfied, rows vanish as
//     placements conflict. Packing into machine words keeps those mutations
//     and the per-column popcounts (package cover) cache-friendly.
//
// Complexity:
//
//   - At/Set: O(1). Clone: O(m·⌈n/32⌉). InsertRow/RemoveRow: O(m·⌈n/32⌉)
//     amortized (slice shift). InsertCol/RemoveCol: O(m·⌈n/32⌉) (one
//     word-shift pass per row).
//
// Invariants:
//
//   - Bits at logical positions ≥ n in the last word of every row are
//     always 0 ("no stale high bits"). Every mutator preserves this.
//   - A Matrix exclusively owns its word storage; Clone returns an
//     independent copy.
//
// Errors:
//
//   - ErrBadShape: negative m or n at New.
//   - ErrOutOfRange: index outside [1,Rows]×[1,Cols] at At/Set, or an
//     insertion/removal index outside its documented range.
//   - ErrBitValue: a Set value other than 0 or 1.
//
// AI-Hints:
//
//   - InsertCol/RemoveCol are the hot path for the solver's column-removal
//     during cover/uncover; they never reallocate more than one word per
//     row, and only when crossing a word boundary.
package bitmatrix
