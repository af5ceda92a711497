package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMaxSlice(t *testing.T) {
	min, pos := MinSlice([]float64{3, -1, 4, -1, 5})
	require.Equal(t, -1.0, min)
	require.Equal(t, 1, pos)

	max, pos := MaxSlice([]int{3, 9, 4, 9, 5})
	require.Equal(t, 9, max)
	require.Equal(t, 1, pos)

	require.Panics(t, func() { MinSlice([]int{}) })
}

func TestSumProduct(t *testing.T) {
	require.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	require.Equal(t, 24, Product([]int{1, 2, 3, 4}))
	require.Equal(t, 1.0, Product([]float64{}))
}

func TestCombinatorics(t *testing.T) {
	t.Run("Factorial", func(t *testing.T) {
		require.Equal(t, 1.0, Factorial(0))
		require.Equal(t, 1.0, Factorial(1))
		require.Equal(t, 120.0, Factorial(5))
		require.Equal(t, 3628800.0, Factorial(10))
	})

	t.Run("Binomial", func(t *testing.T) {
		require.Equal(t, 1.0, Binomial(0, 0))
		require.Equal(t, 1.0, Binomial(7, 0))
		require.Equal(t, 1.0, Binomial(7, 7))
		require.Equal(t, 35.0, Binomial(7, 3))
		require.Equal(t, 15.0, Binomial(6, 2))
		require.Panics(t, func() { Binomial(3, 4) })
		for n := 0; n < 30; n++ {
			for k := 0; k <= n; k++ {
				require.InDelta(t, Factorial(n)/(Factorial(k)*Factorial(n-k)), Binomial(n, k), 1e-6)
			}
		}
	})

	t.Run("IntPow", func(t *testing.T) {
		require.Equal(t, 1, IntPow(5, 0))
		require.Equal(t, 125, IntPow(5, 3))
		require.Equal(t, uint64(1)<<40, IntPow[uint64](2, 40))
		require.Equal(t, 0, IntPow(0, 3))
	})
	t.Run("PascalRow", func(t *testing.T) {
		require.Equal(t, []float64{1}, PascalRow(0))
		require.Equal(t, []float64{1, 4, 6, 4, 1}, PascalRow(4))
		row := PascalRow(12)
		for k := range row {
			require.Equal(t, Binomial(12, k), row[k])
		}
	})

	t.Run("Multinomial", func(t *testing.T) {
		require.Equal(t, 1.0, Multinomial([]int{}))
		require.Equal(t, 1.0, Multinomial([]int{4}))
		require.Equal(t, 6.0, Multinomial([]int{2, 2}))
		// 5! / (2! 1! 2!)
		require.Equal(t, 30.0, Multinomial([]int{2, 1, 2}))
	})
}
