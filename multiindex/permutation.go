package multiindex

const (
	star uint8 = 0
	bar  uint8 = 1
)

// FixedNorm enumerates every tuple of non-negative integers whose components
// sum to exactly N. A tuple of size s is encoded as a pattern of N stars and
// s-1 bars, the d-th component being the number of stars between the (d-1)-th
// and the d-th bar. Tuples are visited in the lexicographic order of their
// pattern, from (N, 0, ..., 0) to (0, ..., 0, N).
type FixedNorm struct {
	N       int
	pattern []uint8
}

// Init implements [Incrementer].
func (inc *FixedNorm) Init(idx []int, first bool) bool {

	if inc.N < 0 {
		for i := range idx {
			idx[i] = 0
		}
		return false
	}

	n := inc.N + len(idx) - 1
	if cap(inc.pattern) < n {
		inc.pattern = make([]uint8, n)
	}
	inc.pattern = inc.pattern[:n]

	if first {
		for i := range inc.pattern {
			if i < inc.N {
				inc.pattern[i] = star
			} else {
				inc.pattern[i] = bar
			}
		}
	} else {
		for i := range inc.pattern {
			if i < len(idx)-1 {
				inc.pattern[i] = bar
			} else {
				inc.pattern[i] = star
			}
		}
	}

	inc.decode(idx)

	return true
}

// Increment implements [Incrementer].
func (inc *FixedNorm) Increment(idx []int) bool {
	if !nextPermutation(inc.pattern) {
		return false
	}
	inc.decode(idx)
	return true
}

// Decrement implements [Incrementer].
func (inc *FixedNorm) Decrement(idx []int) bool {
	if !prevPermutation(inc.pattern) {
		return false
	}
	inc.decode(idx)
	return true
}

// Bound implements [Incrementer].
func (inc *FixedNorm) Bound(d int) int {
	return inc.N + 1
}

// Clone implements [Incrementer].
func (inc *FixedNorm) Clone() Incrementer {
	c := &FixedNorm{N: inc.N, pattern: make([]uint8, len(inc.pattern))}
	copy(c.pattern, inc.pattern)
	return c
}

func (inc *FixedNorm) decode(idx []int) {
	d := 0
	idx[0] = 0
	for _, c := range inc.pattern {
		if c == bar {
			d++
			idx[d] = 0
		} else {
			idx[d]++
		}
	}
}

// nextPermutation rearranges s into the lexicographically next permutation.
// If s is already the greatest permutation, it is left unchanged and false is returned.
func nextPermutation(s []uint8) bool {

	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}

	if i < 0 {
		return false
	}

	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}

	s[i], s[j] = s[j], s[i]
	reverse(s[i+1:])

	return true
}

// prevPermutation rearranges s into the lexicographically previous permutation.
// If s is already the smallest permutation, it is left unchanged and false is returned.
func prevPermutation(s []uint8) bool {

	i := len(s) - 2
	for i >= 0 && s[i] <= s[i+1] {
		i--
	}

	if i < 0 {
		return false
	}

	j := len(s) - 1
	for s[j] >= s[i] {
		j--
	}

	s[i], s[j] = s[j], s[i]
	reverse(s[i+1:])

	return true
}

func reverse(s []uint8) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
