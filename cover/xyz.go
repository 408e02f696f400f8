// SPDX-License-Identifier: MIT
package cover

// XYZToColumn implements xyz_to_j: the Z-major box-column numbering, X
// varying fastest. x, y, z are 0-based box-local coordinates; the result
// is a 1-based column index in [1, w·h·d] (d is implied by the caller's
// own bound checks and does not appear in the formula).
// Complexity: O(1).
func XYZToColumn(x, y, z, w, h int) int {
	return 1 + z*h*w + y*w + x
}
