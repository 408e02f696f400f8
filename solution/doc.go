// Package solution formats a *solver.Solution for a human or another
// program: the "printer" collaborator spec.md §1 names as out of the
// core's scope.
//
// What:
//
//   - Format writes s to w in either FormatText (one line per placement:
//     piece name and the box cells it covers) or FormatJSON (structured,
//     for tooling).
//
// Why:
//
//   - Format never mutates s, matching spec.md §4.5's "the callback
//     receives a consistent snapshot; it must not mutate it" — Format is
//     exactly the kind of read-only consumer that contract anticipates.
package solution
