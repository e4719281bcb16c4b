package gocube

import "fmt"

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees), written with a prime
	Double Turn = 2  // Half turn (180 degrees), direction-independent
)

const numTurns = 3

// Turns lists the three turn kinds.
var Turns = [numTurns]Turn{CW, CCW, Double}

// index maps a turn to its column in the move table.
func (t Turn) index() int {
	switch t {
	case CW:
		return 0
	case CCW:
		return 1
	case Double:
		return 2
	default:
		panic(fmt.Sprintf("gocube: unknown turn %d", int(t)))
	}
}

// Valid reports whether t is one of CW, CCW or Double.
func (t Turn) Valid() bool {
	return t == CW || t == CCW || t == Double
}

// Suffix returns the notation suffix of the turn: "", "'" or "2".
func (t Turn) Suffix() string {
	switch t {
	case CCW:
		return "'"
	case Double:
		return "2"
	default:
		return ""
	}
}

func (t Turn) String() string {
	switch t {
	case CW:
		return "clockwise"
	case CCW:
		return "counter-clockwise"
	case Double:
		return "half"
	default:
		return "unknown"
	}
}

// Move is a single move token: a face and how far to turn it.
type Move struct {
	Face Face
	Turn Turn
}

// Valid reports whether m has a known face and turn.
func (m Move) Valid() bool {
	return m.Face.Valid() && m.Turn.Valid()
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return m.Face.String() + m.Turn.Suffix()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// InvertToken returns m.Inverse().
func InvertToken(m Move) Move {
	return m.Inverse()
}

// Perm returns the permutation this move applies.
func (m Move) Perm() Perm {
	return moveTable[m.Face][m.Turn.index()]
}

// Quarters returns the number of quarter turns the move is worth.
func (m Move) Quarters() int {
	if m.Turn == Double {
		return 2
	}
	return 1
}
