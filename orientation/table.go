package orientation

// Primitive 90° rotations, each fixing one coordinate axis and cycling the
// other two. These three matrices (and their powers/inverses) generate the
// full 24-element rotation group of the cube.
var (
	identityMat = [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	// rotX: (x,y,z) -> (x,-z,y); fixes +x, cycles y->z->-y->-z->y.
	rotX = [3][3]int{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}

	// rotY: (x,y,z) -> (z,y,-x); fixes +y, cycles x->-z->-x->z->x.
	rotY = [3][3]int{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}

	// rotZ: (x,y,z) -> (-y,x,z); fixes +z, cycles x->y->-x->-y->x.
	rotZ = [3][3]int{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
)

// upAxis names the six "up" directions in the exact order spec.md §6
// enumerates them. It is used only to keep axisFrames self-documenting.
type upAxis int

const (
	upPosZ upAxis = iota
	upPosY
	upPosX
	upNegZ
	upNegY
	upNegX
)

// axisFrame pairs the rotation that brings the canonical +z axis to a given
// up axis (base) with the rotation that spins 90° around that same axis
// (spin). Composing spin^k ∘ base for k=0..3 yields the four orientations
// whose "up" face is that axis.
type axisFrame struct {
	base [3][3]int
	spin [3][3]int
}

// axisFrames is indexed by upAxis, in spec.md §6 order: +z, +y, +x, -z, -y, -x.
var axisFrames = [6]axisFrame{
	upPosZ: {base: identityMat, spin: rotZ},
	// base maps +z -> +y: (x,y,z) -> (x,z,-y).
	upPosY: {base: [3][3]int{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}}, spin: rotY},
	// base maps +z -> +x: rotY itself sends (0,0,1) -> (1,0,0).
	upPosX: {base: rotY, spin: rotX},
	// base maps +z -> -z: 180° about x: (x,y,z) -> (x,-y,-z).
	upNegZ: {base: [3][3]int{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, spin: rotZ},
	// base maps +z -> -y: rotX sends (0,0,1) -> (0,-1,0).
	upNegY: {base: rotX, spin: rotY},
	// base maps +z -> -x: (x,y,z) -> (-z,y,x).
	upNegX: {base: [3][3]int{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}}, spin: rotX},
}

// Table holds the 24 proper rotations of the cube, 0-indexed, in the exact
// order of spec.md §6: up axis outer loop (+z,+y,+x,-z,-y,-x), spin inner
// loop (0,1,2,3 quarter turns). Table[0] is the identity.
var Table = buildTable()

func buildTable() [24]Rotation {
	var out [24]Rotation
	axes := [6]upAxis{upPosZ, upPosY, upPosX, upNegZ, upNegY, upNegX}
	idx := 0
	for _, au := range axes {
		fr := axisFrames[au]
		for k := 0; k < 4; k++ {
			out[idx] = Rotation{m: matMul(matPow(fr.spin, k), fr.base)}
			idx++
		}
	}

	return out
}

// At returns the o-th rotation using spec.md's 1-based orientation index
// (1 ≤ o ≤ 24); At(1) is the identity.
func At(o int) (Rotation, error) {
	if o < 1 || o > 24 {
		return Rotation{}, errIndexRange
	}

	return Table[o-1], nil
}

// Count is the total number of proper cube rotations (24), exposed so
// callers never hardcode the magic number.
const Count = 24
