package gocube

// Face represents a cube face. The numeric order U, D, L, R, F, B is fixed and
// determines which block of facelet indices a face owns.
type Face uint8

const (
	FaceU Face = iota // Up
	FaceD             // Down
	FaceL             // Left
	FaceR             // Right
	FaceF             // Front
	FaceB             // Back
)

// NumFaces is the number of faces on the cube.
const NumFaces = 6

// Faces lists every face in index order.
var Faces = [NumFaces]Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

// String returns the single-letter notation for the face.
func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceL:
		return "L"
	case FaceR:
		return "R"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f < NumFaces
}

// ParseFace maps an upper-case face letter to its Face.
func ParseFace(r rune) (Face, bool) {
	switch r {
	case 'U':
		return FaceU, true
	case 'D':
		return FaceD, true
	case 'L':
		return FaceL, true
	case 'R':
		return FaceR, true
	case 'F':
		return FaceF, true
	case 'B':
		return FaceB, true
	default:
		return 0, false
	}
}

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Orange Color = 2 // Left face when solved
	Red    Color = 3 // Right face when solved
	Green  Color = 4 // Front face when solved
	Blue   Color = 5 // Back face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face when the cube is solved
// (white on top, green in front).
func (f Face) SolvedColor() Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceL:
		return Orange
	case FaceR:
		return Red
	case FaceF:
		return Green
	case FaceB:
		return Blue
	default:
		return White
	}
}
