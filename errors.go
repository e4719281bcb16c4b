package gocube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gocube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("gocube: invalid move notation")

	// Indexing errors
	ErrCenterHasNoIndex = errors.New("gocube: center facelet has no index")
	ErrInvalidFacelet   = errors.New("gocube: facelet out of range")

	// Permutation errors
	ErrLengthMismatch = errors.New("gocube: permutation length mismatch")
	ErrOutOfRange     = errors.New("gocube: permutation value out of range")
	ErrNotBijective   = errors.New("gocube: permutation is not a bijection")

	// Controller errors
	ErrControllerClosed = errors.New("gocube: controller closed")

	// Connection errors
	ErrDeviceNotFound = errors.New("gocube: device not found")
)

// ParseError reports a token that does not match the move grammar.
// Token holds the substring as the user typed it, before any normalization.
type ParseError struct {
	Token    string
	Position int // 0-based position of the token in the input sequence
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gocube: invalid move %q at position %d", e.Token, e.Position)
}

// Unwrap lets errors.Is match ErrInvalidNotation.
func (e *ParseError) Unwrap() error {
	return ErrInvalidNotation
}

// PermutationError reports a structural violation found by validation.
// Kind is one of ErrLengthMismatch, ErrOutOfRange or ErrNotBijective.
type PermutationError struct {
	Kind  error
	Index int
	Value int
}

func (e *PermutationError) Error() string {
	switch e.Kind {
	case ErrLengthMismatch:
		return fmt.Sprintf("%v: got %d values, want %d", e.Kind, e.Value, Size)
	case ErrOutOfRange:
		return fmt.Sprintf("%v: p[%d] = %d", e.Kind, e.Index, e.Value)
	case ErrNotBijective:
		return fmt.Sprintf("%v: duplicate value %d at p[%d]", e.Kind, e.Value, e.Index)
	default:
		return fmt.Sprintf("gocube: invalid permutation at p[%d]", e.Index)
	}
}

func (e *PermutationError) Unwrap() error {
	return e.Kind
}
