package gocube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCyclesOfIdentity(t *testing.T) {
	all := CyclesOf(Identity(), true)
	require.Len(t, all, Size)
	for i, c := range all {
		assert.Equal(t, Cycle{i}, c)
	}
	assert.Empty(t, CyclesOf(Identity(), false))
}

func TestCyclesPartitionFacelets(t *testing.T) {
	for _, text := range []string{"R", "R U R' U'", DemoScramble} {
		p, err := ComposeNotation(text)
		require.NoError(t, err)

		cycles := CyclesOf(p, true)
		var seen [Size]bool
		total := 0
		for _, c := range cycles {
			total += c.Len()
			for _, idx := range c {
				assert.False(t, seen[idx], "%q: %d appears twice", text, idx)
				seen[idx] = true
			}
		}
		assert.Equal(t, Size, total, "%q", text)
	}
}

func TestCyclesFollowPermutation(t *testing.T) {
	p := ComposeMoves(TPerm)
	for _, c := range CyclesOf(p, false) {
		for k, idx := range c {
			next := c[(k+1)%len(c)]
			assert.Equal(t, next, int(p[idx]))
		}
		// Each cycle starts at its smallest member.
		for _, idx := range c[1:] {
			assert.Greater(t, idx, c[0])
		}
	}
}

func TestCyclesOrderedBySmallestMember(t *testing.T) {
	cycles := CyclesOf(ComposeMoves(SexyMove), false)
	for i := 1; i < len(cycles); i++ {
		assert.Less(t, cycles[i-1][0], cycles[i][0])
	}
}

func TestOrder(t *testing.T) {
	tests := []struct {
		notation string
		want     int
	}{
		{"", 1},
		{"R", 4},
		{"R2", 2},
		{"R U R' U'", 6},
		{"R U", 105},
		{"R L", 4},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			p, err := ComposeNotation(tt.notation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Order(p))
		})
	}
}

func TestTPermShape(t *testing.T) {
	p := ComposeMoves(TPerm)
	assert.Equal(t, 2, Order(p))
	assert.True(t, Compose(p, p).IsIdentity())
	assert.False(t, p.IsIdentity())
}

func TestMovedCountMatchesCycles(t *testing.T) {
	p := MustTokenize(DemoScramble)
	perm := ComposeMoves(p)

	moved := 0
	for _, c := range CyclesOf(perm, false) {
		moved += c.Len()
	}
	assert.Equal(t, moved, MovedCount(perm))

	types := CycleType(perm)
	sum := 0
	for length, count := range types {
		sum += length * count
	}
	assert.Equal(t, Size, sum)
	assert.Equal(t, Size-moved, types[1])
}

func TestBucketByLength(t *testing.T) {
	cycles := CyclesOf(R.Perm(), true)
	buckets := BucketByLength(cycles)
	assert.Len(t, buckets[1], 28)
	assert.Len(t, buckets[4], 5)
	assert.Len(t, buckets, 2)
}

func TestSortLongestFirst(t *testing.T) {
	cycles := []Cycle{{1}, {2, 3}, {4}, {5, 6, 7}, {8, 9}}
	sorted := SortLongestFirst(cycles)
	assert.Equal(t, []Cycle{{5, 6, 7}, {2, 3}, {8, 9}, {1}, {4}}, sorted)
	// The input is left alone.
	assert.Equal(t, Cycle{1}, cycles[0])
}

func TestCycleFormatting(t *testing.T) {
	c := Cycle{2, 34, 47}
	assert.Equal(t, "(2 34 47)", c.String())
	assert.Equal(t, []string{"U(0,2)", "F(0,2)", "B(2,2)"}, c.Labels())
}

func TestRootsOfUnity(t *testing.T) {
	assert.Nil(t, RootsOfUnity(0))
	assert.Equal(t, []float64{0}, RootsOfUnity(1))

	angles := RootsOfUnity(4)
	require.Len(t, angles, 4)
	assert.InDelta(t, math.Pi/2, angles[1], 1e-12)
	assert.InDelta(t, math.Pi, angles[2], 1e-12)
}
