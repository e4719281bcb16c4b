package gocube

import "strings"

// Perm is a bijection on facelet slots. p[i] is the slot that the sticker
// originally at slot i occupies after the operation.
//
// Perm is an array, so assignment copies it and a value handed out by any
// function in this package can never be changed behind the caller's back.
type Perm [Size]uint8

// Identity returns the permutation that leaves every facelet in place.
func Identity() Perm {
	var p Perm
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// Compose returns a∘b: apply b first, then a. result[i] = a[b[i]].
func Compose(a, b Perm) Perm {
	var out Perm
	for i := range out {
		out[i] = a[b[i]]
	}
	return out
}

// Invert returns the inverse permutation: result[p[i]] = i.
func Invert(p Perm) Perm {
	var out Perm
	for i, v := range p {
		out[v] = uint8(i)
	}
	return out
}

// Transpose is Invert under its permutation-matrix name.
func Transpose(p Perm) Perm {
	return Invert(p)
}

// Inverse returns Invert(p).
func (p Perm) Inverse() Perm {
	return Invert(p)
}

// Then returns the permutation that applies p and then next.
func (p Perm) Then(next Perm) Perm {
	return Compose(next, p)
}

// IsIdentity reports whether p fixes every slot.
func (p Perm) IsIdentity() bool {
	for i, v := range p {
		if int(v) != i {
			return false
		}
	}
	return true
}

// Validate checks that p is a bijection on [0, Size).
func (p Perm) Validate() error {
	_, err := FromSlice(p.Slice())
	return err
}

// FromSlice validates values and converts them to a Perm. Errors are
// *PermutationError wrapping ErrLengthMismatch, ErrOutOfRange or
// ErrNotBijective.
func FromSlice(values []int) (Perm, error) {
	var p Perm
	if len(values) != Size {
		return p, &PermutationError{Kind: ErrLengthMismatch, Index: -1, Value: len(values)}
	}
	var seen [Size]bool
	for i, v := range values {
		if v < 0 || v >= Size {
			return p, &PermutationError{Kind: ErrOutOfRange, Index: i, Value: v}
		}
		if seen[v] {
			return p, &PermutationError{Kind: ErrNotBijective, Index: i, Value: v}
		}
		seen[v] = true
		p[i] = uint8(v)
	}
	return p, nil
}

// MustFromSlice is like FromSlice but panics on invalid input.
func MustFromSlice(values []int) Perm {
	p, err := FromSlice(values)
	if err != nil {
		panic(err)
	}
	return p
}

// Slice returns the permutation as a fresh []int.
func (p Perm) Slice() []int {
	out := make([]int, Size)
	for i, v := range p {
		out[i] = int(v)
	}
	return out
}

// IsOrthogonal reports whether p times its transpose is the identity, which
// holds for every valid permutation matrix.
func (p Perm) IsOrthogonal() bool {
	return Compose(p, Transpose(p)).IsIdentity()
}

// Parity returns +1 for an even permutation and -1 for an odd one.
func (p Perm) Parity() int {
	var visited [Size]bool
	cycles := 0
	for i := range p {
		if visited[i] {
			continue
		}
		cycles++
		for j := i; !visited[j]; j = int(p[j]) {
			visited[j] = true
		}
	}
	if (Size-cycles)%2 == 0 {
		return 1
	}
	return -1
}

// Power composes p with itself n times. Negative n powers the inverse.
func Power(p Perm, n int) Perm {
	if n < 0 {
		p = Invert(p)
		n = -n
	}
	result := Identity()
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = Compose(base, result)
		}
		base = Compose(base, base)
		n >>= 1
	}
	return result
}

// Permute moves each value along the permutation: the value at slot i ends
// up at slot p[i].
func Permute[T any](p Perm, values [Size]T) [Size]T {
	var out [Size]T
	for i, v := range values {
		out[p[i]] = v
	}
	return out
}

// String returns p in cycle notation, e.g. "(0 2 7 5)(1 4 6 3)".
// The identity is written "()".
func (p Perm) String() string {
	cycles := CyclesOf(p, false)
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, c := range cycles {
		b.WriteString(c.String())
	}
	return b.String()
}
