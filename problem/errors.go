// Package problem: sentinel error set.
//
// ERROR PRIORITY: structural YAML errors are reported first (Load fails
// before any field-level validation runs); among field-level checks, box
// is validated before pieces, and pieces before constrain/lock, matching
// the order fields are declared in spec.md §6's table.
package problem

import "errors"

var (
	// ErrMissingBox is returned when box is absent or has a non-positive
	// dimension.
	ErrMissingBox = errors.New("problem: box must have three dimensions >= 1")

	// ErrMissingPieces is returned when pieces is empty.
	ErrMissingPieces = errors.New("problem: pieces must name at least one piece")

	// ErrUnknownPiece is returned when a name in pieces, constrain,
	// constrain_x/y/z, or lock does not resolve via piece.Lookup.
	ErrUnknownPiece = errors.New("problem: unknown piece name")

	// ErrBadLockCount is returned when lockcount is set without lock, or
	// is < 1.
	ErrBadLockCount = errors.New("problem: lockcount must be >= 1 and requires lock")
)
