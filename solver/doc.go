// Package solver implements Knuth's Algorithm X over a *cover.Board:
// exact, exhaustive, deterministic enumeration of exact covers.
//
// What:
//
//   - Solve recursively picks the column with the smallest live count
//     (ties broken by smallest index), branches over every row covering
//     that column in ascending order, and emits one Solution per leaf
//     where no columns remain.
//
// Why:
//
//   - The "smallest count, then smallest index" rule and ascending row
//     order are both part of the observable contract: changing either
//     changes solution emission order, which downstream callers (and
//     lockcount-sensitive problems) depend on.
//
// Complexity:
//
//   - Branching factor equals the chosen column's live count; depth is
//     bounded by the number of piece columns. Each branch clones the
//     board (O(m·⌈n/32⌉)), per spec.md's cloning design — the simplest
//     way to make unwind O(1) without an explicit undo log.
//
// AI-Hints:
//
//   - Solve takes a context.Context purely for cancellation between
//     branches; cancelling mid-solve is explicitly undefined relative to
//     enumeration completeness, so callers must not treat a cancelled
//     Solve as having exhausted the search space.
package solver
