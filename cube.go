package gocube

import (
	"fmt"
	"strings"
)

// Cube holds the current state of a cube as a single permutation cell.
// Every move replaces the cell with a new value; nothing is mutated in place.
//
// Cube does no locking. Callers that share one across goroutines must
// serialize writes themselves, or use a Controller.
type Cube struct {
	perm Perm
}

// NewCube creates a solved cube.
func NewCube() *Cube {
	return &Cube{perm: Identity()}
}

// NewCubeFrom creates a cube holding an existing permutation.
func NewCubeFrom(p Perm) (*Cube, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Cube{perm: p}, nil
}

// Permutation returns a snapshot of the current state.
func (c *Cube) Permutation() Perm {
	return c.perm
}

// ApplyMove composes a move into the state.
func (c *Cube) ApplyMove(m Move) {
	c.perm = Compose(m.Perm(), c.perm)
}

// Apply applies moves in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// ApplyPerm composes an arbitrary permutation into the state.
func (c *Cube) ApplyPerm(p Perm) {
	c.perm = Compose(p, c.perm)
}

// ApplyNotation parses text and applies the moves. If the text is malformed
// the state is left untouched.
func (c *Cube) ApplyNotation(text string) error {
	seq, err := Tokenize(text)
	if err != nil {
		return err
	}
	c.ApplyPerm(ComposeMoves(seq))
	return nil
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	c.perm = Identity()
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	return c.perm.IsIdentity()
}

// Clone creates an independent copy of the cube.
func (c *Cube) Clone() *Cube {
	return &Cube{perm: c.perm}
}

// solvedColors holds the color of every slot on a solved cube.
var solvedColors = func() [Size]Color {
	var colors [Size]Color
	for i := range colors {
		colors[i] = facelets[i].Face.SolvedColor()
	}
	return colors
}()

// Facelets returns the color currently showing in every slot.
func (c *Cube) Facelets() [Size]Color {
	return Permute(c.perm, solvedColors)
}

// FaceColors returns the 3x3 grid of colors on a face, center included.
func (c *Cube) FaceColors(f Face) [3][3]Color {
	colors := c.Facelets()
	var grid [3][3]Color
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row == 1 && col == 1 {
				grid[row][col] = f.SolvedColor()
				continue
			}
			grid[row][col] = colors[MustIndexOf(f, row, col)]
		}
	}
	return grid
}

// String returns an unfolded net of the cube:
//
//	      U
//	L F R B
//	      D
func (c *Cube) String() string {
	var b strings.Builder
	grids := make(map[Face][3][3]Color, NumFaces)
	for _, f := range Faces {
		grids[f] = c.FaceColors(f)
	}

	writeRow := func(f Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(grids[f][row][col].String())
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceU, row)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(f, row)
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceD, row)
		b.WriteString("\n")
	}

	return b.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v, Order: %d, Moved: %d", c.IsSolved(), Order(c.perm), MovedCount(c.perm))
}
