package orientation

import "fmt"

// Rotation is a proper rotation of the cube expressed as a signed coordinate
// permutation: a 3×3 matrix with entries in {-1,0,1}, exactly one nonzero
// entry per row and column, and determinant +1.
type Rotation struct {
	m [3][3]int
}

// Apply maps the integer offset (x,y,z) to its rotated image.
// Complexity: O(1).
func (r Rotation) Apply(x, y, z int) (int, int, int) {
	in := [3]int{x, y, z}

	return r.m[0][0]*in[0] + r.m[0][1]*in[1] + r.m[0][2]*in[2],
		r.m[1][0]*in[0] + r.m[1][1]*in[1] + r.m[1][2]*in[2],
		r.m[2][0]*in[0] + r.m[2][1]*in[1] + r.m[2][2]*in[2]
}

// matMul returns a∘b: the rotation that first applies b, then a.
func matMul(a, b [3][3]int) [3][3]int {
	var out [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// matPow returns m raised to the n-th power (n >= 0) under matMul.
func matPow(m [3][3]int, n int) [3][3]int {
	out := identityMat
	for i := 0; i < n; i++ {
		out = matMul(out, m)
	}

	return out
}

// errIndexRange is returned by At when o falls outside [1,24].
var errIndexRange = fmt.Errorf("orientation: index must be in [1,24]")
