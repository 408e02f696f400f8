// SPDX-License-Identifier: MIT
// Package bitmatrix: sentinel error set.
//
// Every message is prefixed with "bitmatrix: ..." for consistent grepping.
// Algorithms return these sentinels directly or wrap them with %w at the
// call site; callers match with errors.Is. No public method panics on a
// caller-triggered condition.
package bitmatrix

import "errors"

var (
	// ErrBadShape is returned by New when rows or cols is negative.
	ErrBadShape = errors.New("bitmatrix: rows and cols must be >= 0")

	// ErrOutOfRange is returned by any indexer or insert/remove operation
	// when an index falls outside its documented 1-based range.
	ErrOutOfRange = errors.New("bitmatrix: index out of range")

	// ErrBitValue is returned by Set when v is not 0 or 1.
	ErrBitValue = errors.New("bitmatrix: bit value must be 0 or 1")
)
