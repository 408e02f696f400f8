// SPDX-License-Identifier: MIT
// Package cover: sentinel error set.
//
// ERROR PRIORITY: ErrBadBoxSize is checked before anything else touches the
// box dimensions; AddPiece's own preconditions are checked before any
// mutation of the board, so a rejected call never leaves Board half-built.
package cover

import "errors"

var (
	// ErrBadBoxSize is returned by NewBoard when w, h, or d is <= 0.
	ErrBadBoxSize = errors.New("cover: box dimensions must be positive")

	// ErrBadOrientationLimit is returned by AddPiece when orientationLimit
	// is outside [1,24].
	ErrBadOrientationLimit = errors.New("cover: orientation limit must be in [1,24]")
)
