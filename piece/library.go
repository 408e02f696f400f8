package piece

// cubes is a short constructor for an Offset literal list; it exists only
// to keep the Library table below readable as a grid of shapes rather than
// a wall of Offset{X: ..., Y: ..., Z: ...} literals.
func cubes(xyz ...int) []Offset {
	out := make([]Offset, 0, len(xyz)/3)
	for i := 0; i+2 < len(xyz); i += 3 {
		out = append(out, Offset{X: xyz[i], Y: xyz[i+1], Z: xyz[i+2]})
	}

	return out
}

// Library is the closed catalogue of named polycubes from spec.md §6:
// the monocube, the domino, both trominoes, all eight named
// tetromino/tetracube shapes, all twelve lettered pentominoes (flat, z=0),
// five true-3D pentacubes, and six chiral pentacube pairs. Offsets are
// given in each piece's own unrotated frame.
var Library = []Piece{
	{Name: "1_", Cubes: cubes(0, 0, 0)},
	{Name: "2_", Cubes: cubes(0, 0, 0, 1, 0, 0)},

	{Name: "3I", Cubes: cubes(0, 0, 0, 1, 0, 0, 2, 0, 0)},
	{Name: "3L", Cubes: cubes(0, 0, 0, 1, 0, 0, 0, 1, 0)},

	{Name: "4I", Cubes: cubes(0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0)},
	{Name: "4O", Cubes: cubes(0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0)},
	{Name: "4L", Cubes: cubes(0, 0, 0, 0, 1, 0, 0, 2, 0, 1, 0, 0)},
	{Name: "4S", Cubes: cubes(0, 0, 0, 1, 0, 0, 1, 1, 0, 2, 1, 0)},
	{Name: "4T", Cubes: cubes(0, 0, 0, 1, 0, 0, 2, 0, 0, 1, 1, 0)},
	{Name: "4^", Cubes: cubes(0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1)},
	{Name: "4<", Cubes: cubes(0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1)},
	{Name: "4>", Cubes: cubes(0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 1, -1)},

	{Name: "F_", Cubes: cubes(1, 0, 0, 2, 0, 0, 0, 1, 0, 1, 1, 0, 1, 2, 0)},
	{Name: "I_", Cubes: cubes(0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0, 4, 0, 0)},
	{Name: "L_", Cubes: cubes(0, 0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 1, 3, 0)},
	{Name: "N_", Cubes: cubes(1, 0, 0, 1, 1, 0, 0, 2, 0, 1, 2, 0, 0, 3, 0)},
	{Name: "P_", Cubes: cubes(0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0, 0, 2, 0)},
	{Name: "T_", Cubes: cubes(0, 0, 0, 1, 0, 0, 2, 0, 0, 1, 1, 0, 1, 2, 0)},
	{Name: "U_", Cubes: cubes(0, 0, 0, 2, 0, 0, 0, 1, 0, 1, 1, 0, 2, 1, 0)},
	{Name: "V_", Cubes: cubes(0, 0, 0, 0, 1, 0, 0, 2, 0, 1, 2, 0, 2, 2, 0)},
	{Name: "W_", Cubes: cubes(0, 0, 0, 0, 1, 0, 1, 1, 0, 1, 2, 0, 2, 2, 0)},
	{Name: "X_", Cubes: cubes(1, 0, 0, 0, 1, 0, 1, 1, 0, 2, 1, 0, 1, 2, 0)},
	{Name: "Y_", Cubes: cubes(1, 0, 0, 0, 1, 0, 1, 1, 0, 1, 2, 0, 1, 3, 0)},
	{Name: "Z_", Cubes: cubes(0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 2, 0, 2, 2, 0)},

	{Name: "Q_", Cubes: cubes(0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0, 0, 0, 1)},
	{Name: "A_", Cubes: cubes(0, 0, 0, 1, 0, 0, 2, 0, 0, 1, 0, 1, 1, 0, 2)},
	{Name: "T1", Cubes: cubes(0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 2)},
	{Name: "T2", Cubes: cubes(0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1, 1, 1, 2)},
	{Name: "L3", Cubes: cubes(0, 0, 0, 1, 0, 0, 2, 0, 0, 2, 1, 0, 2, 1, 1)},

	{Name: "L1", Cubes: cubes(0, 0, 0, 1, 0, 0, 2, 0, 0, 0, 1, 0, 0, 0, 1)},
	{Name: "J1", Cubes: cubes(0, 0, 0, -1, 0, 0, -2, 0, 0, 0, 1, 0, 0, 0, 1)},

	{Name: "L2", Cubes: cubes(0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 2, 0, 1, 1, 1)},
	{Name: "J2", Cubes: cubes(0, 0, 0, -1, 0, 0, -1, 1, 0, -1, 2, 0, -1, 1, 1)},

	{Name: "L4", Cubes: cubes(0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0, 3, 0, 1)},
	{Name: "J4", Cubes: cubes(0, 0, 0, -1, 0, 0, -2, 0, 0, -3, 0, 0, -3, 0, 1)},

	{Name: "N1", Cubes: cubes(0, 0, 0, 1, 0, 0, 1, 1, 0, 2, 1, 0, 1, 1, 1)},
	{Name: "S1", Cubes: cubes(0, 0, 0, -1, 0, 0, -1, 1, 0, -2, 1, 0, -1, 1, 1)},

	{Name: "N2", Cubes: cubes(0, 0, 0, 0, 1, 0, 1, 1, 0, 1, 2, 0, 1, 1, 1)},
	{Name: "S2", Cubes: cubes(0, 0, 0, 0, 1, 0, -1, 1, 0, -1, 2, 0, -1, 1, 1)},

	{Name: "V1", Cubes: cubes(0, 0, 0, 0, 1, 0, 0, 2, 0, 1, 2, 0, 0, 1, 1)},
	{Name: "V2", Cubes: cubes(0, 0, 0, 0, 1, 0, 0, 2, 0, -1, 2, 0, 0, 1, 1)},
}

// Lookup resolves name against Library by linear scan. ok is false when no
// entry matches.
func Lookup(name string) (p Piece, ok bool) {
	for _, entry := range Library {
		if entry.Name == name {
			return entry, true
		}
	}

	return Piece{}, false
}
