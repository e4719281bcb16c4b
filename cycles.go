package gocube

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Cycle is one orbit of a permutation, listed in visiting order starting at
// its smallest member. A fixed point is a cycle of length 1.
type Cycle []int

// Len returns the number of facelets in the cycle.
func (c Cycle) Len() int {
	return len(c)
}

// String returns the cycle as "(a b c)".
func (c Cycle) String() string {
	parts := make([]string, len(c))
	for i, idx := range c {
		parts[i] = strconv.Itoa(idx)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Labels returns the facelet labels of the cycle members, e.g. "U(0,0)".
func (c Cycle) Labels() []string {
	labels := make([]string, len(c))
	for i, idx := range c {
		labels[i] = Label(idx)
	}
	return labels
}

// CyclesOf decomposes p into disjoint cycles. Indices are scanned in
// increasing order and each unvisited index starts a new cycle, so cycles
// come out ordered by their smallest member. Fixed points are included only
// when includeFixed is true.
func CyclesOf(p Perm, includeFixed bool) []Cycle {
	var visited [Size]bool
	var out []Cycle
	for start := range p {
		if visited[start] {
			continue
		}
		var c Cycle
		j := start
		for {
			c = append(c, j)
			visited[j] = true
			j = int(p[j])
			if j == start {
				break
			}
		}
		if includeFixed || len(c) > 1 {
			out = append(out, c)
		}
	}
	return out
}

// Order returns the smallest n > 0 with Power(p, n) equal to the identity:
// the least common multiple of the cycle lengths.
func Order(p Perm) int {
	order := 1
	for _, c := range CyclesOf(p, false) {
		order = lcm(order, len(c))
	}
	return order
}

// MovedCount returns how many facelets p displaces.
func MovedCount(p Perm) int {
	moved := 0
	for i, v := range p {
		if int(v) != i {
			moved++
		}
	}
	return moved
}

// CycleType maps each cycle length to the number of cycles of that length,
// fixed points included.
func CycleType(p Perm) map[int]int {
	counts := make(map[int]int)
	for _, c := range CyclesOf(p, true) {
		counts[len(c)]++
	}
	return counts
}

// BucketByLength groups cycles by their length.
func BucketByLength(cycles []Cycle) map[int][]Cycle {
	buckets := make(map[int][]Cycle)
	for _, c := range cycles {
		buckets[len(c)] = append(buckets[len(c)], c)
	}
	return buckets
}

// SortLongestFirst returns a copy of cycles ordered by decreasing length.
// Cycles of equal length keep their relative order.
func SortLongestFirst(cycles []Cycle) []Cycle {
	out := make([]Cycle, len(cycles))
	copy(out, cycles)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// RootsOfUnity returns the angles 2πj/k, j = 0..k-1. These are the
// eigenvalue arguments a k-cycle contributes to a permutation matrix.
func RootsOfUnity(k int) []float64 {
	if k <= 0 {
		return nil
	}
	angles := make([]float64, k)
	for j := range angles {
		angles[j] = 2 * math.Pi * float64(j) / float64(k)
	}
	return angles
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
