package piece

// Offset is an integer unit-cube coordinate relative to a piece's own
// origin, before any rotation or translation is applied.
type Offset struct {
	X, Y, Z int
}

// Piece is a named, connected set of unit cubes. Cubes is never mutated
// after construction; callers that need a rotated/translated copy build a
// new slice rather than editing one in place.
type Piece struct {
	Name  string
	Cubes []Offset
}

// Size returns the number of unit cubes the piece occupies.
func (p Piece) Size() int {
	return len(p.Cubes)
}

// BoundingBox returns the inclusive per-axis [min,max] extents of off. It
// panics on an empty slice since a piece with zero cubes is not a piece;
// callers only ever pass a Piece.Cubes, which the library guarantees is
// non-empty.
func BoundingBox(off []Offset) (min, max Offset) {
	min, max = off[0], off[0]
	for _, c := range off[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Z < min.Z {
			min.Z = c.Z
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
		if c.Z > max.Z {
			max.Z = c.Z
		}
	}

	return min, max
}
