package gocube

import "fmt"

// turnGeometry describes how a face turn acts on cube space.
type turnGeometry struct {
	axis  Axis
	layer int // coordinate along axis that selects the turning layer
	sign  int // Rotate90 sign that reads as clockwise from outside the face
}

// geometryFor returns the turn geometry of a face. A clockwise turn seen from
// outside is a negative rotation about the outward normal, so the sign is the
// opposite of the layer.
func geometryFor(f Face) turnGeometry {
	switch f {
	case FaceU:
		return turnGeometry{axis: AxisY, layer: 1, sign: -1}
	case FaceD:
		return turnGeometry{axis: AxisY, layer: -1, sign: 1}
	case FaceL:
		return turnGeometry{axis: AxisX, layer: -1, sign: 1}
	case FaceR:
		return turnGeometry{axis: AxisX, layer: 1, sign: -1}
	case FaceF:
		return turnGeometry{axis: AxisZ, layer: 1, sign: -1}
	case FaceB:
		return turnGeometry{axis: AxisZ, layer: -1, sign: 1}
	default:
		panic(fmt.Sprintf("gocube: unknown face %d", f))
	}
}

// deriveQuarter builds the clockwise quarter-turn permutation of a face from
// the facelet geometry. It fails if a rotated sticker lands on a position
// that no facelet occupies.
func deriveQuarter(f Face) (Perm, error) {
	g := geometryFor(f)
	p := Identity()
	for i := range facelets {
		s := facelets[i]
		if s.Pos.Component(g.axis) != g.layer {
			continue
		}
		pos := s.Pos.Rotate90(g.axis, g.sign)
		normal := s.Normal.Rotate90(g.axis, g.sign)
		dest, ok := faceletAt(pos, normal)
		if !ok {
			return Perm{}, fmt.Errorf("gocube: %s turn sends %s to %v/%v, which has no facelet",
				f, s.Label(), pos, normal)
		}
		p[i] = uint8(dest)
	}
	if err := p.Validate(); err != nil {
		return Perm{}, fmt.Errorf("gocube: %s turn: %w", f, err)
	}
	return p, nil
}

// moveTable holds the permutation of every face and turn, indexed by
// [face][turnIndex]. It is built once and never modified.
var moveTable = buildMoveTable()

func buildMoveTable() [NumFaces][numTurns]Perm {
	var table [NumFaces][numTurns]Perm
	for _, f := range Faces {
		q, err := deriveQuarter(f)
		if err != nil {
			panic(err)
		}
		table[f][CW.index()] = q
		table[f][CCW.index()] = Invert(q)
		table[f][Double.index()] = Compose(q, q)
	}
	return table
}

// QuarterTurn returns the permutation of a clockwise quarter turn of face f,
// clockwise as seen looking at that face from outside the cube.
func QuarterTurn(f Face) Perm {
	return moveTable[f][CW.index()]
}

// CounterQuarterTurn returns the inverse of QuarterTurn(f).
func CounterQuarterTurn(f Face) Perm {
	return moveTable[f][CCW.index()]
}

// HalfTurn returns QuarterTurn(f) composed with itself.
func HalfTurn(f Face) Perm {
	return moveTable[f][Double.index()]
}
