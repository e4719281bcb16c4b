package gocube

import "fmt"

const (
	// Size is the number of movable facelets (6 faces x 8, centers excluded).
	Size = NumFaces * FaceletsPerFace

	// FaceletsPerFace is the number of non-center cells on a face.
	FaceletsPerFace = 8
)

// Facelet describes one movable sticker: its logical address on a face and
// its position and outward normal in cube space.
type Facelet struct {
	Index  int
	Face   Face
	Row    int
	Col    int
	Pos    Vec3
	Normal Vec3
}

// Label returns a compact description such as "U(0,2)".
func (f Facelet) Label() string {
	return fmt.Sprintf("%s(%d,%d)", f.Face, f.Row, f.Col)
}

// Basis holds the outward normal of a face and the two in-plane directions
// along which its columns and rows increase, as seen from outside the cube.
type Basis struct {
	Normal Vec3
	Right  Vec3
	Down   Vec3
}

// FaceBasis returns the spatial basis of a face. Cell (row, col) sits at
// Normal + (col-1)*Right + (row-1)*Down.
func FaceBasis(f Face) Basis {
	switch f {
	case FaceU:
		return Basis{Normal: Vec3{0, 1, 0}, Right: Vec3{1, 0, 0}, Down: Vec3{0, 0, 1}}
	case FaceD:
		return Basis{Normal: Vec3{0, -1, 0}, Right: Vec3{1, 0, 0}, Down: Vec3{0, 0, -1}}
	case FaceL:
		return Basis{Normal: Vec3{-1, 0, 0}, Right: Vec3{0, 0, 1}, Down: Vec3{0, -1, 0}}
	case FaceR:
		return Basis{Normal: Vec3{1, 0, 0}, Right: Vec3{0, 0, -1}, Down: Vec3{0, -1, 0}}
	case FaceF:
		return Basis{Normal: Vec3{0, 0, 1}, Right: Vec3{1, 0, 0}, Down: Vec3{0, -1, 0}}
	case FaceB:
		return Basis{Normal: Vec3{0, 0, -1}, Right: Vec3{-1, 0, 0}, Down: Vec3{0, -1, 0}}
	default:
		panic(fmt.Sprintf("gocube: unknown face %d", f))
	}
}

// cellOrder enumerates the non-center cells of a face, row-major.
var cellOrder = [FaceletsPerFace][2]int{
	{0, 0}, {0, 1}, {0, 2},
	{1, 0}, {1, 2},
	{2, 0}, {2, 1}, {2, 2},
}

type stickerKey struct {
	pos    Vec3
	normal Vec3
}

var (
	localIndex             = buildLocalIndex() // -1 for the center
	facelets, indexBySpace = buildFacelets()
)

func buildLocalIndex() [3][3]int {
	var idx [3][3]int
	for r := range idx {
		for c := range idx[r] {
			idx[r][c] = -1
		}
	}
	for i, rc := range cellOrder {
		idx[rc[0]][rc[1]] = i
	}
	return idx
}

func buildFacelets() ([Size]Facelet, map[stickerKey]int) {
	var table [Size]Facelet
	bySpace := make(map[stickerKey]int, Size)
	for _, face := range Faces {
		basis := FaceBasis(face)
		for local, rc := range cellOrder {
			row, col := rc[0], rc[1]
			idx := int(face)*FaceletsPerFace + local
			pos := basis.Normal.
				Add(basis.Right.Scale(col - 1)).
				Add(basis.Down.Scale(row - 1))
			table[idx] = Facelet{
				Index:  idx,
				Face:   face,
				Row:    row,
				Col:    col,
				Pos:    pos,
				Normal: basis.Normal,
			}
			bySpace[stickerKey{pos, basis.Normal}] = idx
		}
	}
	return table, bySpace
}

// IndexOf returns the facelet index of (face, row, col).
// The center cell (1, 1) has no index and yields ErrCenterHasNoIndex.
func IndexOf(face Face, row, col int) (int, error) {
	if !face.Valid() || row < 0 || row > 2 || col < 0 || col > 2 {
		return -1, fmt.Errorf("%w: %s(%d,%d)", ErrInvalidFacelet, face, row, col)
	}
	local := localIndex[row][col]
	if local < 0 {
		return -1, fmt.Errorf("%w: %s(%d,%d)", ErrCenterHasNoIndex, face, row, col)
	}
	return int(face)*FaceletsPerFace + local, nil
}

// MustIndexOf is like IndexOf but panics on error. It is intended for
// package-level tables built from constant coordinates.
func MustIndexOf(face Face, row, col int) int {
	idx, err := IndexOf(face, row, col)
	if err != nil {
		panic(err)
	}
	return idx
}

// Describe returns the facelet stored at index.
func Describe(index int) (Facelet, error) {
	if index < 0 || index >= Size {
		return Facelet{}, fmt.Errorf("%w: index %d", ErrInvalidFacelet, index)
	}
	return facelets[index], nil
}

// Label returns the label of the facelet at index, or "?" when out of range.
func Label(index int) string {
	f, err := Describe(index)
	if err != nil {
		return "?"
	}
	return f.Label()
}

// faceletAt looks up the facelet occupying a position with a given normal.
func faceletAt(pos, normal Vec3) (int, bool) {
	idx, ok := indexBySpace[stickerKey{pos, normal}]
	return idx, ok
}
