package multiindex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/berry/utils"
)

func testString(opname string, size, n int) string {
	return fmt.Sprintf("%s/size=%d/n=%d", opname, size, n)
}

func collect[S Storage](m *MultiIndex[S]) (tuples [][]int, flats []int) {
	for ; !m.Last(); m.Next() {
		tuples = append(tuples, append([]int{}, m.Values()...))
		flats = append(flats, m.FlatIndex())
	}
	return
}

func collectBackward[S Storage](m *MultiIndex[S]) (tuples [][]int) {
	for ; !m.First(); m.Prev() {
		tuples = append(tuples, append([]int{}, m.Values()...))
	}
	return
}

func flatten(e []int, extent int) (flat int) {
	stride := 1
	for _, ei := range e {
		flat += ei * stride
		stride *= extent
	}
	return
}

func reversed(s [][]int) (r [][]int) {
	for i := len(s) - 1; i >= 0; i-- {
		r = append(r, s[i])
	}
	return
}

func TestMultiIndex(t *testing.T) {

	for _, tc := range []struct{ size, n int }{{1, 4}, {2, 3}, {3, 2}, {4, 3}} {

		t.Run(testString("Exhaustive", tc.size, tc.n), func(t *testing.T) {
			m := NewExhaustive(tc.size, tc.n, true)
			require.True(t, m.First())
			require.False(t, m.Last())

			tuples, flats := collect(m)
			require.Len(t, tuples, utils.IntPow(tc.n, tc.size))

			for i, e := range tuples {
				require.Equal(t, i, flats[i])
				require.Equal(t, i, flatten(e, tc.n))
			}

			// Failed Next leaves the tuple unchanged
			last := append([]int{}, m.Values()...)
			require.False(t, m.Next())
			require.Equal(t, last, m.Values())
			require.True(t, m.Last())
		})

		t.Run(testString("ExhaustiveWrap", tc.size, tc.n), func(t *testing.T) {
			tuples, flats := collect(NewExhaustiveWrap(tc.size, tc.n, true))
			for i, e := range tuples {
				require.Equal(t, flatten(e, tc.n), flats[i])
			}

			m := NewExhaustiveWrap(tc.size, tc.n, false)
			require.False(t, m.First())
			require.True(t, m.Last())
			require.Equal(t, utils.IntPow(tc.n, tc.size)-1, m.FlatIndex())
			require.Equal(t, reversed(tuples), collectBackward(m))
		})
	}

	t.Run("BoundedWrap", func(t *testing.T) {
		bounds := []int{2, 3, 1, 4}
		extent := 5

		tuples, flats := collect(NewBoundedWrap(bounds, extent, true))
		require.Len(t, tuples, utils.Product(bounds))

		for i, e := range tuples {
			for d := range e {
				require.Less(t, e[d], bounds[d])
			}
			require.Equal(t, flatten(e, extent), flats[i])
		}

		m := NewBoundedWrap(bounds, extent, false)
		require.Equal(t, flatten([]int{1, 2, 0, 3}, extent), m.FlatIndex())

		var backFlats []int
		for ; !m.First(); m.Prev() {
			backFlats = append(backFlats, m.FlatIndex())
			require.Equal(t, flatten(m.Values(), extent), m.FlatIndex())
		}
		require.Len(t, backFlats, len(flats))
	})

	t.Run("BoundedWrap/Reset", func(t *testing.T) {
		inc := NewBoundedWrapIncrementer([]int{3, 3}, 3)
		inc.Reset([]int{1, 2})
		tuples, flats := collect(New(2, true, inc))
		require.Equal(t, [][]int{{0, 0}, {0, 1}}, tuples)
		require.Equal(t, []int{0, 3}, flats)

		require.Panics(t, func() { inc.Reset([]int{4, 1}) })
	})

	t.Run("FixedNorm/Completeness", func(t *testing.T) {
		m := NewFixedNorm(3, 4, true)
		require.Equal(t, []int{4, 0, 0}, m.Values())

		tuples, _ := collect(m)
		require.Len(t, tuples, 15)
		require.Equal(t, []int{0, 0, 4}, m.Values())

		seen := map[string]bool{}
		for _, e := range tuples {
			require.Equal(t, 4, utils.Sum(e))
			seen[fmt.Sprint(e)] = true
		}
		require.Len(t, seen, 15)

		require.Equal(t, reversed(tuples), collectBackward(NewFixedNorm(3, 4, false)))
	})

	t.Run("FixedNorm/Degenerate", func(t *testing.T) {
		tuples, _ := collect(NewFixedNorm(1, 3, true))
		require.Equal(t, [][]int{{3}}, tuples)

		tuples, _ = collect(NewFixedNorm(3, 0, true))
		require.Equal(t, [][]int{{0, 0, 0}}, tuples)

		tuples, _ = collect(NewFixedNorm(2, 2, true))
		require.Equal(t, [][]int{{2, 0}, {1, 1}, {0, 2}}, tuples)
	})

	t.Run("ZeroBound", func(t *testing.T) {
		m := NewExhaustive(3, 0, true)
		require.True(t, m.First())
		require.True(t, m.Last())
		require.Equal(t, []int{0, 0, 0}, m.Values())

		tuples, _ := collect(m)
		require.Empty(t, tuples)

		m = NewBoundedWrap([]int{2, 0}, 3, true)
		require.True(t, m.First() && m.Last())
	})

	t.Run("SizeZero", func(t *testing.T) {
		require.Panics(t, func() { NewExhaustive(0, 3, true) })
		require.Panics(t, func() { NewBorrowed(nil, true, &Exhaustive{N: 2}) })
	})

	t.Run("Borrowed", func(t *testing.T) {
		buf := make([]int, 2)
		m := NewBorrowed(buf, true, &ExhaustiveWrap{N: 2})
		m.Next()
		m.Next()
		require.Equal(t, []int{0, 1}, buf)
		require.Equal(t, 2, m.FlatIndex())
	})

	t.Run("Copy", func(t *testing.T) {
		m := NewBoundedWrap([]int{2, 2}, 2, true)
		m.Next()
		c := m.Copy()
		c.Next()
		require.Equal(t, []int{1, 0}, m.Values())
		require.Equal(t, 1, m.FlatIndex())
		require.Equal(t, []int{0, 1}, c.Values())
		require.Equal(t, 2, c.FlatIndex())
		require.Equal(t, "[0 1]", c.String())
	})

	t.Run("FlatIndex/MixedRadix", func(t *testing.T) {
		m := NewFixedNorm(2, 3, true)
		m.Next()
		// (2, 1) with radix 4
		require.Equal(t, 2+1*4, m.FlatIndex())
	})
}
