// Package orientation enumerates the 24 proper rotations of the cube as
// integer coordinate permutations with signs.
//
// What:
//
//   - Table holds all 24 rotations in the canonical order: six "up" axes
//     (+z, +y, +x, −z, −y, −x) × four spins (0°, 90°, 180°, 270°) around
//     that up axis. Table[0] (1-based index 1 via At) is the identity.
//   - Rotation.Apply maps an integer offset (x,y,z) to its rotated image.
//
// Why:
//
//   - Piece placement (package cover) needs every distinct way a polycube
//     can sit in the box. The enumeration order is observable: spec.md's
//     "lockcount" restricts a piece to a *prefix* of this table, so the
//     order is part of the contract, not an implementation detail.
//
// Complexity:
//
//   - Apply: O(1). Building the table (package init): O(1) (24 entries, each
//     a product of fixed 3×3 integer matrices).
//
// AI-Hints:
//
//   - Each rotation is built by composing a fixed "bring +z to this up
//     axis" rotation with 0..3 powers of a "spin around that axis"
//     rotation — the same face/spin decomposition used by most 24-cube-
//     rotation implementations, written out as explicit 3×3 matrices so
//     the composition is inspectable rather than hidden behind recursion.
package orientation
