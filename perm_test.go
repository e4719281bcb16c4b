package gocube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	id := Identity()
	assert.True(t, id.IsIdentity())
	assert.NoError(t, id.Validate())
	assert.Equal(t, "()", id.String())
	assert.Equal(t, 1, id.Parity())
	assert.Equal(t, 0, MovedCount(id))
}

func TestComposeOrder(t *testing.T) {
	// Compose(a, b) applies b first.
	a := R.Perm()
	b := U.Perm()
	ab := Compose(a, b)
	for i := range ab {
		assert.Equal(t, a[b[i]], ab[i])
	}
	assert.Equal(t, ab, b.Then(a))
	assert.NotEqual(t, ab, Compose(b, a), "R and U do not commute")
}

func TestComposeIdentityLaws(t *testing.T) {
	id := Identity()
	for _, m := range AllMoves {
		p := m.Perm()
		assert.Equal(t, p, Compose(id, p), "move %s", m)
		assert.Equal(t, p, Compose(p, id), "move %s", m)
	}
}

func TestComposeAssociative(t *testing.T) {
	a, b, c := R.Perm(), U.Perm(), FPrime.Perm()
	assert.Equal(t, Compose(Compose(a, b), c), Compose(a, Compose(b, c)))
}

func TestInvert(t *testing.T) {
	for _, m := range AllMoves {
		p := m.Perm()
		inv := Invert(p)
		assert.True(t, Compose(p, inv).IsIdentity(), "move %s", m)
		assert.True(t, Compose(inv, p).IsIdentity(), "move %s", m)
		assert.Equal(t, inv, p.Inverse())
		assert.Equal(t, inv, Transpose(p))
		assert.Equal(t, m.Inverse().Perm(), inv, "move %s", m)
		assert.True(t, p.IsOrthogonal())
	}
}

func TestInvertOfComposition(t *testing.T) {
	a, b := R.Perm(), U.Perm()
	assert.Equal(t, Compose(Invert(b), Invert(a)), Invert(Compose(a, b)))
}

func TestFromSlice(t *testing.T) {
	valid := Identity().Slice()
	valid[0], valid[1] = 1, 0

	p, err := FromSlice(valid)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), p[0])
	assert.Equal(t, -1, p.Parity())

	tests := []struct {
		name   string
		values []int
		kind   error
	}{
		{"too short", make([]int, Size-1), ErrLengthMismatch},
		{"too long", make([]int, Size+1), ErrLengthMismatch},
		{"negative", withValue(0, -1), ErrOutOfRange},
		{"too large", withValue(3, Size), ErrOutOfRange},
		{"duplicate", withValue(5, 4), ErrNotBijective},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSlice(tt.values)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var perr *PermutationError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind)
		})
	}
}

func withValue(i, v int) []int {
	s := Identity().Slice()
	s[i] = v
	return s
}

func TestMustFromSlicePanics(t *testing.T) {
	assert.Panics(t, func() { MustFromSlice([]int{0, 1, 2}) })
	assert.NotPanics(t, func() { MustFromSlice(Identity().Slice()) })
}

func TestSliceIsACopy(t *testing.T) {
	p := R.Perm()
	s := p.Slice()
	s[0] = 47
	assert.Equal(t, R.Perm(), p)
}

func TestPower(t *testing.T) {
	r := R.Perm()
	assert.True(t, Power(r, 0).IsIdentity())
	assert.Equal(t, r, Power(r, 1))
	assert.Equal(t, R2.Perm(), Power(r, 2))
	assert.Equal(t, RPrime.Perm(), Power(r, 3))
	assert.Equal(t, RPrime.Perm(), Power(r, -1))
	assert.True(t, Power(r, 4).IsIdentity())
	assert.Equal(t, Power(r, 5), Power(r, 1))
}

func TestPowerOfOrderIsIdentity(t *testing.T) {
	seqs := []string{"R U R' U'", "R U", DemoScramble, "F2 B2"}
	for _, text := range seqs {
		p, err := ComposeNotation(text)
		require.NoError(t, err)

		n := Order(p)
		assert.True(t, Power(p, n).IsIdentity(), "%q ^ %d", text, n)
		for k := 1; k < n && k <= 12; k++ {
			assert.False(t, Power(p, k).IsIdentity(), "%q ^ %d", text, k)
		}
	}
}

func TestParityIsMultiplicative(t *testing.T) {
	for _, a := range AllMoves {
		for _, b := range AllMoves {
			pa, pb := a.Perm(), b.Perm()
			assert.Equal(t, pa.Parity()*pb.Parity(), Compose(pa, pb).Parity(), "%s %s", a, b)
		}
	}
}

func TestPermute(t *testing.T) {
	var labels [Size]string
	for i := range labels {
		labels[i] = Label(i)
	}

	moved := Permute(R.Perm(), labels)
	// The sticker that started at F(0,2) now sits in slot U(0,2).
	assert.Equal(t, "F(0,2)", moved[MustIndexOf(FaceU, 0, 2)])

	back := Permute(RPrime.Perm(), moved)
	assert.Equal(t, labels, back)
}

func TestPermString(t *testing.T) {
	s := R.Perm().String()
	assert.Regexp(t, `^(\(\d+ \d+ \d+ \d+\)){5}$`, s)
}
