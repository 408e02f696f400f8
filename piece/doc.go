// Package piece holds the static, closed catalogue of named polycubes
// referenced by spec.md §6: monocube through pentacubes, including the
// 3D-chiral pairs.
//
// What:
//
//   - Piece is a name plus a non-empty, connected set of integer (x,y,z)
//     unit-cube offsets.
//   - Library is the fixed ~40-entry catalogue; Lookup resolves a name via
//     linear scan (the library is small and read-only, so a map buys
//     nothing but mutability risk).
//
// Why:
//
//   - Exact offsets are part of the contract: two repositories that
//     disagree on what "L2" looks like will silently disagree on which
//     boxes are solvable. Keeping the catalogue in one literal table, with
//     a duplicate-name invariant enforced by test, avoids that drift.
//
// Complexity:
//
//   - Lookup: O(len(Library)), negligible for ~40 entries.
//   - BoundingBox: O(len(cubes)).
//
// AI-Hints:
//
//   - Offsets are given in the piece's own unrotated frame; orientation and
//     translation are applied later by package cover using
//     package orientation.
package piece
