package component

// Shape is a tether piece silhouette
type Shape uint8

const (
	ShapeT Shape = iota
	ShapeL
	ShapeS
)

// Cell is a unit block offset in the wall plane (Y lateral, Z vertical)
type Cell struct {
	Y, Z int
}

var shapeCells = [...][]Cell{
	ShapeT: {{0, 1}, {0, 0}, {-1, -1}, {0, -1}, {1, -1}},
	ShapeL: {{0, 1}, {0, 0}, {0, -1}, {1, -1}},
	ShapeS: {{0, 1}, {0, 0}, {1, 0}, {1, -1}},
}

func (s Shape) String() string {
	switch s {
	case ShapeT:
		return "T"
	case ShapeL:
		return "L"
	case ShapeS:
		return "S"
	default:
		return "?"
	}
}

// Symmetry returns the number of distinct quarter-turn orientations
func (s Shape) Symmetry() int {
	if s == ShapeS {
		return 2
	}
	return 4
}

// Cells returns the shape blocks rotated clockwise by turns quarter turns
func (s Shape) Cells(turns int) []Cell {
	base := shapeCells[s]
	out := make([]Cell, len(base))
	t := ((turns % 4) + 4) % 4
	for i, c := range base {
		y, z := c.Y, c.Z
		for range t {
			y, z = z, -y
		}
		out[i] = Cell{Y: y, Z: z}
	}
	return out
}

// Pose is shape plus placement on the lane grid
type Pose struct {
	Shape Shape
	Lane  int // World y
	Level int // World z
	Turns int // Quarter turns clockwise, 0..3
}

// Fits reports whether p passes through hole h
func (p Pose) Fits(h Pose) bool {
	if p.Shape != h.Shape || p.Lane != h.Lane || p.Level != h.Level {
		return false
	}
	sym := p.Shape.Symmetry()
	return ((p.Turns-h.Turns)%sym+sym)%sym == 0
}

// PieceComponent is the player-controlled piece
type PieceComponent struct {
	Pose Pose
}

// WallComponent is an approaching wall with a hole cut for one pose
type WallComponent struct {
	Hole   Pose
	Fading bool // Passed walls drift away without being checked
}
